package events

import (
	"time"

	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/game/core"
)

// Event type constants
const (
	TypeGameStarted     = "game.started"
	TypeGameEnded       = "game.ended"
	TypeShotChosen      = "shot.chosen"
	TypeShotFired       = "shot.fired"
	TypeShipSunk        = "ship.sunk"
	TypeStateTransition = "state.transition"
)

// GameStartedEvent is published once both fleets are placed
type GameStartedEvent struct {
	BaseEvent
	Players    []string `json:"players"`
	Strategies []string `json:"strategies"`
	Fleet      []int    `json:"fleet"`
}

func NewGameStartedEvent(gameID string, players, strategies []string, fleet []int) *GameStartedEvent {
	return &GameStartedEvent{
		BaseEvent:  newBase(TypeGameStarted, gameID),
		Players:    players,
		Strategies: strategies,
		Fleet:      fleet,
	}
}

// GameEndedEvent is published when the last ship of a player sinks
type GameEndedEvent struct {
	BaseEvent
	Winner     int           `json:"winner"`
	WinnerName string        `json:"winner_name"`
	Duration   time.Duration `json:"duration"`
	FinalTurn  int           `json:"final_turn"`
	Shots      []int         `json:"shots"`
}

func NewGameEndedEvent(gameID string, winner int, winnerName string, duration time.Duration, finalTurn int, shots []int) *GameEndedEvent {
	return &GameEndedEvent{
		BaseEvent:  newBase(TypeGameEnded, gameID),
		Winner:     winner,
		WinnerName: winnerName,
		Duration:   duration,
		FinalTurn:  finalTurn,
		Shots:      shots,
	}
}

// ShotChosenEvent records how long a strategy took to pick a cell
type ShotChosenEvent struct {
	BaseEvent
	PlayerID int           `json:"player_id"`
	Strategy string        `json:"strategy"`
	Target   core.Cell     `json:"target"`
	Elapsed  time.Duration `json:"elapsed"`
	Turn     int           `json:"turn"`
}

func NewShotChosenEvent(gameID string, playerID int, strategy string, target core.Cell, elapsed time.Duration, turn int) *ShotChosenEvent {
	return &ShotChosenEvent{
		BaseEvent: newBase(TypeShotChosen, gameID),
		PlayerID:  playerID,
		Strategy:  strategy,
		Target:    target,
		Elapsed:   elapsed,
		Turn:      turn,
	}
}

// ShotFiredEvent is published for every resolved real shot
type ShotFiredEvent struct {
	BaseEvent
	PlayerID int          `json:"player_id"`
	Target   core.Cell    `json:"target"`
	Outcome  core.Outcome `json:"outcome"`
	Turn     int          `json:"turn"`
}

func NewShotFiredEvent(gameID string, playerID int, target core.Cell, outcome core.Outcome, turn int) *ShotFiredEvent {
	return &ShotFiredEvent{
		BaseEvent: newBase(TypeShotFired, gameID),
		PlayerID:  playerID,
		Target:    target,
		Outcome:   outcome,
		Turn:      turn,
	}
}

// ShipSunkEvent is published when a shot destroys the last cell of a ship
type ShipSunkEvent struct {
	BaseEvent
	PlayerID  int `json:"player_id"` // shooter
	OwnerID   int `json:"owner_id"`
	ShipID    int `json:"ship_id"`
	Size      int `json:"size"`
	ShipsLeft int `json:"ships_left"`
	Turn      int `json:"turn"`
}

func NewShipSunkEvent(gameID string, playerID, ownerID, shipID, size, shipsLeft, turn int) *ShipSunkEvent {
	return &ShipSunkEvent{
		BaseEvent: newBase(TypeShipSunk, gameID),
		PlayerID:  playerID,
		OwnerID:   ownerID,
		ShipID:    shipID,
		Size:      size,
		ShipsLeft: shipsLeft,
		Turn:      turn,
	}
}

// StateTransitionEvent is published when the game changes phase
type StateTransitionEvent struct {
	BaseEvent
	FromPhase string `json:"from_phase"`
	ToPhase   string `json:"to_phase"`
	Reason    string `json:"reason"`
}

func NewStateTransitionEvent(gameID, fromPhase, toPhase, reason string) *StateTransitionEvent {
	return &StateTransitionEvent{
		BaseEvent: newBase(TypeStateTransition, gameID),
		FromPhase: fromPhase,
		ToPhase:   toPhase,
		Reason:    reason,
	}
}
