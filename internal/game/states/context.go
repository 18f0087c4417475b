package states

import (
	"time"

	"github.com/rs/zerolog"
)

// RequiredPlayers is the number of seats in a game
const RequiredPlayers = 2

// GameContext provides game-specific information to states for making decisions
type GameContext struct {
	// GameID uniquely identifies this game instance
	GameID string

	Logger zerolog.Logger

	PlayerCount int

	// FleetsPlaced is set once every player has a ShipYard
	FleetsPlaced bool

	// StartTime is when PhaseRunning was entered
	StartTime time.Time

	// EndTime is when PhaseEnded was entered
	EndTime time.Time

	// Winner is the player ID of the winner, -1 until the game ends
	Winner int

	// Error holds any error that caused transition to PhaseError
	Error error

	// Metadata for custom state data
	Metadata map[string]interface{}
}

// NewGameContext creates a new game context
func NewGameContext(gameID string, logger zerolog.Logger) *GameContext {
	return &GameContext{
		GameID:   gameID,
		Logger:   logger.With().Str("game_id", gameID).Logger(),
		Metadata: make(map[string]interface{}),
		Winner:   -1,
	}
}

// IsReady returns true if the game has exactly two players
func (gc *GameContext) IsReady() bool {
	return gc.PlayerCount == RequiredPlayers
}

// GetElapsedTime returns the time spent in play
func (gc *GameContext) GetElapsedTime() time.Duration {
	if gc.StartTime.IsZero() {
		return 0
	}
	if !gc.EndTime.IsZero() {
		return gc.EndTime.Sub(gc.StartTime)
	}
	return time.Since(gc.StartTime)
}

// SetMetadata stores custom data for states
func (gc *GameContext) SetMetadata(key string, value interface{}) {
	gc.Metadata[key] = value
}

// GetMetadata retrieves custom data stored by states
func (gc *GameContext) GetMetadata(key string) (interface{}, bool) {
	val, exists := gc.Metadata[key]
	return val, exists
}

func (gc *GameContext) clear() {
	gc.FleetsPlaced = false
	gc.StartTime = time.Time{}
	gc.EndTime = time.Time{}
	gc.Winner = -1
	gc.Error = nil
	gc.Metadata = make(map[string]interface{})
}
