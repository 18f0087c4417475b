package states

import (
	"fmt"
	"time"
)

// InitializingState represents game object creation
type InitializingState struct{}

func NewInitializingState() State {
	return &InitializingState{}
}

func (s *InitializingState) Phase() GamePhase {
	return PhaseInitializing
}

func (s *InitializingState) Enter(ctx *GameContext) error {
	ctx.Logger.Debug().Msg("Entering Initializing state")
	return nil
}

func (s *InitializingState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().Msg("Exiting Initializing state")
	return nil
}

func (s *InitializingState) Validate(ctx *GameContext) error {
	return nil
}

// PlacingState represents fleet layout
type PlacingState struct{}

func NewPlacingState() State {
	return &PlacingState{}
}

func (s *PlacingState) Phase() GamePhase {
	return PhasePlacing
}

func (s *PlacingState) Enter(ctx *GameContext) error {
	ctx.Logger.Debug().Int("player_count", ctx.PlayerCount).Msg("Placing fleets")
	return nil
}

func (s *PlacingState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().Msg("Fleet placement complete")
	return nil
}

func (s *PlacingState) Validate(ctx *GameContext) error {
	if !ctx.IsReady() {
		return fmt.Errorf("need exactly %d players to place fleets, have %d", RequiredPlayers, ctx.PlayerCount)
	}
	return nil
}

// RunningState represents active gameplay
type RunningState struct{}

func NewRunningState() State {
	return &RunningState{}
}

func (s *RunningState) Phase() GamePhase {
	return PhaseRunning
}

func (s *RunningState) Enter(ctx *GameContext) error {
	ctx.StartTime = time.Now()
	ctx.Logger.Info().
		Time("start_time", ctx.StartTime).
		Msg("Game started")
	return nil
}

func (s *RunningState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().
		Dur("elapsed", ctx.GetElapsedTime()).
		Msg("Exiting running state")
	return nil
}

func (s *RunningState) Validate(ctx *GameContext) error {
	if !ctx.FleetsPlaced {
		return fmt.Errorf("cannot start shooting before fleets are placed")
	}
	return nil
}

// EndedState represents a completed game
type EndedState struct{}

func NewEndedState() State {
	return &EndedState{}
}

func (s *EndedState) Phase() GamePhase {
	return PhaseEnded
}

func (s *EndedState) Enter(ctx *GameContext) error {
	ctx.EndTime = time.Now()
	ctx.Logger.Info().
		Int("winner", ctx.Winner).
		Dur("game_duration", ctx.GetElapsedTime()).
		Msg("Game ended")
	return nil
}

func (s *EndedState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().Msg("Exiting ended state")
	return nil
}

func (s *EndedState) Validate(ctx *GameContext) error {
	if ctx.Winner < 0 || ctx.Winner >= RequiredPlayers {
		return fmt.Errorf("ended state requires a winner, got %d", ctx.Winner)
	}
	return nil
}

// ErrorState represents an error condition
type ErrorState struct{}

func NewErrorState() State {
	return &ErrorState{}
}

func (s *ErrorState) Phase() GamePhase {
	return PhaseError
}

func (s *ErrorState) Enter(ctx *GameContext) error {
	ctx.Logger.Error().
		Err(ctx.Error).
		Msg("Game entered error state")
	return nil
}

func (s *ErrorState) Exit(ctx *GameContext) error {
	ctx.Logger.Info().Msg("Recovering from error state")
	return nil
}

func (s *ErrorState) Validate(ctx *GameContext) error {
	if ctx.Error == nil {
		return fmt.Errorf("error state requires an error in context")
	}
	return nil
}

// ResetState clears per-game data so the same players can play again
type ResetState struct{}

func NewResetState() State {
	return &ResetState{}
}

func (s *ResetState) Phase() GamePhase {
	return PhaseReset
}

func (s *ResetState) Enter(ctx *GameContext) error {
	ctx.Logger.Info().Msg("Resetting game")
	ctx.clear()
	return nil
}

func (s *ResetState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().Msg("Game reset complete")
	return nil
}

func (s *ResetState) Validate(ctx *GameContext) error {
	return nil
}
