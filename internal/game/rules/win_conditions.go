package rules

import "github.com/rs/zerolog"

// WinConditionChecker handles game over detection and winner determination
type WinConditionChecker struct {
	logger zerolog.Logger
}

// NewWinConditionChecker creates a new win condition checker
func NewWinConditionChecker(logger zerolog.Logger) *WinConditionChecker {
	return &WinConditionChecker{
		logger: logger.With().Str("component", "WinConditionChecker").Logger(),
	}
}

// CheckGameOver reports whether any fleet is destroyed. The winner is the
// only player with ships afloat, or -1 if none or several remain.
func (wc *WinConditionChecker) CheckGameOver(players []Player) (bool, int) {
	aliveCount := 0
	winnerID := -1

	for _, p := range players {
		if p.IsAlive() {
			aliveCount++
			winnerID = p.GetID()
		}
	}

	gameOver := aliveCount < len(players)
	if !gameOver || aliveCount != 1 {
		winnerID = -1
	}

	if gameOver {
		wc.logger.Debug().
			Int("winner_player_id", winnerID).
			Int("alive_player_count", aliveCount).
			Msg("Fleet destroyed")
	}
	return gameOver, winnerID
}

// Player interface to avoid circular imports
type Player interface {
	GetID() int
	IsAlive() bool
}
