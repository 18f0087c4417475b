package game

import (
	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/config"
)

// PlayerCount is the number of seats at the table
const PlayerCount = 2

// DefaultFleet returns the configured fleet
func DefaultFleet() []int {
	return append([]int(nil), config.Get().Game.Fleet...)
}

// DefaultMaxTurns returns the configured shot limit per game
func DefaultMaxTurns() int {
	return config.Get().Game.MaxTurns
}
