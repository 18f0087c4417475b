package game

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/game/core"
	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/game/events"
)

// TurnProcessor asks strategies for shots and applies them to a game
type TurnProcessor struct {
	game   *Game
	logger zerolog.Logger
}

// NewTurnProcessor creates a new turn processor
func NewTurnProcessor(g *Game) *TurnProcessor {
	return &TurnProcessor{
		game:   g,
		logger: g.logger.With().Str("component", "TurnProcessor").Logger(),
	}
}

// ProcessTurn lets the current player's strategy choose a cell and fires it
func (tp *TurnProcessor) ProcessTurn(ctx context.Context) (core.Cell, core.Outcome, error) {
	g := tp.game
	if err := tp.checkContext(ctx, "before choosing shot"); err != nil {
		return core.Cell{}, core.OutcomeMiss, err
	}
	if g.gameOver {
		return core.Cell{}, core.OutcomeMiss, core.ErrGameOver
	}

	p := g.CurrentPlayer()
	if p.Strategy == nil {
		return core.Cell{}, core.OutcomeMiss, fmt.Errorf("player %d has no strategy", p.ID)
	}

	start := time.Now()
	cell, err := p.Strategy.NextShot(ctx, p.Target.Copy(), g.Fleet())
	if err != nil {
		return core.Cell{}, core.OutcomeMiss, fmt.Errorf("player %d (%s): choose shot: %w", p.ID, p.Strategy.Name(), err)
	}
	elapsed := time.Since(start)

	tp.logger.Debug().
		Int("turn", g.gs.Turn+1).
		Int("player_id", p.ID).
		Str("strategy", p.Strategy.Name()).
		Stringer("cell", cell).
		Dur("elapsed", elapsed).
		Msg("Shot chosen")
	g.eventBus.Publish(events.NewShotChosenEvent(g.id, p.ID, p.Strategy.Name(), cell, elapsed, g.gs.Turn+1))

	outcome, err := g.MakeMove(cell)
	return cell, outcome, err
}

// checkContext checks if the context is cancelled
func (tp *TurnProcessor) checkContext(ctx context.Context, phase string) error {
	select {
	case <-ctx.Done():
		tp.logger.Warn().
			Err(ctx.Err()).
			Int("turn", tp.game.gs.Turn).
			Str("phase", phase).
			Msg("Turn cancelled or timed out")
		return ctx.Err()
	default:
		return nil
	}
}

// PlayTurn asks the current player's strategy for a cell and applies it
func (g *Game) PlayTurn(ctx context.Context) (core.Cell, core.Outcome, error) {
	return NewTurnProcessor(g).ProcessTurn(ctx)
}

// Run plays turns until one fleet is destroyed and returns the winner. If the
// shot limit is reached first the game moves to the error phase and Run
// returns ErrTurnLimit.
func (g *Game) Run(ctx context.Context) (int, error) {
	tp := NewTurnProcessor(g)
	for !g.gameOver {
		if g.gs.Turn >= g.maxTurns {
			err := fmt.Errorf("game %s after %d shots: %w", g.id, g.gs.Turn, ErrTurnLimit)
			_ = g.stateMachine.Fail(err)
			return -1, err
		}
		if _, _, err := tp.ProcessTurn(ctx); err != nil {
			return -1, err
		}
	}
	return g.winner, nil
}
