package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/game/core"
	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/game/events"
	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/game/placement"
	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/game/rules"
	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/game/states"
)

// ErrTurnLimit is returned by Run when the shot limit is reached without a winner
var ErrTurnLimit = errors.New("turn limit reached")

// Game is a two-player match. A player keeps shooting while they hit; a miss
// passes the turn. Game is not safe for concurrent use.
type Game struct {
	gs           *GameState
	id           string
	fleet        []int
	maxTurns     int
	layouts      [][]core.Placement
	generator    *placement.Generator
	logger       zerolog.Logger
	eventBus     *events.EventBus
	stateMachine *states.StateMachine
	winCondition *rules.WinConditionChecker
	gameOver     bool
	winner       int
	startedAt    time.Time
}

// NewGame creates a game with both fleets placed, ready for the first shot
func NewGame(cfg GameConfig) (*Game, error) {
	return NewEngineInitializer(cfg).Initialize()
}

// MakeMove fires the current player's shot at cell and resolves it against
// the opponent's fleet.
func (g *Game) MakeMove(cell core.Cell) (core.Outcome, error) {
	if g.gameOver {
		return core.OutcomeMiss, core.ErrGameOver
	}
	if !g.stateMachine.CurrentPhase().CanReceiveShots() {
		return core.OutcomeMiss, fmt.Errorf("shot rejected in phase %s", g.stateMachine.CurrentPhase())
	}

	shooter := g.gs.Players[g.gs.Current]
	opponent := g.opponentOf(shooter.ID)

	action := core.ShotAction{PlayerID: shooter.ID, Target: cell}
	if err := action.Validate(shooter.Target); err != nil {
		return core.OutcomeMiss, core.WrapShotError(action, err)
	}

	outcome, err := opponent.Yard.Fire(cell)
	if err != nil {
		return core.OutcomeMiss, core.WrapShotError(action, err)
	}

	g.gs.Turn++
	shooter.Shots++
	mark := core.Miss
	if outcome.IsHit() {
		mark = core.Hit
		shooter.Hits++
	}
	// Both boards were checked above, so Mark cannot fail here
	_ = shooter.Target.Mark(cell, mark)
	_ = opponent.Incoming.Mark(cell, mark)

	g.gs.ShotLog = append(g.gs.ShotLog, ShotRecord{
		Turn:     g.gs.Turn,
		PlayerID: shooter.ID,
		Row:      cell.Row,
		Col:      cell.Col,
		Outcome:  outcome,
	})

	g.logger.Debug().
		Int("turn", g.gs.Turn).
		Int("player_id", shooter.ID).
		Stringer("cell", cell).
		Str("outcome", outcome.String()).
		Msg("Shot resolved")

	g.eventBus.Publish(events.NewShotFiredEvent(g.id, shooter.ID, cell, outcome, g.gs.Turn))

	if outcome == core.OutcomeSunk || outcome == core.OutcomeWin {
		ship, _ := opponent.Yard.ShipAt(cell)
		g.eventBus.Publish(events.NewShipSunkEvent(
			g.id, shooter.ID, opponent.ID, ship.ID, ship.Size, opponent.Yard.Afloat(), g.gs.Turn))
	}

	switch outcome {
	case core.OutcomeMiss:
		g.gs.Current = opponent.ID
	case core.OutcomeWin:
		if err := g.checkGameOver(); err != nil {
			return outcome, err
		}
	}
	return outcome, nil
}

// checkGameOver ends the game if a fleet has been destroyed
func (g *Game) checkGameOver() error {
	players := make([]rules.Player, len(g.gs.Players))
	for i, p := range g.gs.Players {
		players[i] = p
	}
	over, winner := g.winCondition.CheckGameOver(players)
	if !over {
		return nil
	}

	g.gameOver = true
	g.winner = winner

	ctx := g.stateMachine.GetContext()
	ctx.Winner = winner
	if err := g.stateMachine.TransitionTo(states.PhaseEnded, "Fleet destroyed"); err != nil {
		return fmt.Errorf("failed to end game: %w", err)
	}

	shots := make([]int, len(g.gs.Players))
	for i, p := range g.gs.Players {
		shots[i] = p.Shots
	}
	g.eventBus.Publish(events.NewGameEndedEvent(
		g.id, winner, g.gs.Players[winner].Name, time.Since(g.startedAt), g.gs.Turn, shots))

	g.logger.Info().
		Int("winner", winner).
		Str("winner_name", g.gs.Players[winner].Name).
		Int("turns", g.gs.Turn).
		Msg("Game over")
	return nil
}

// Reset places new fleets and starts the game again under the same id.
// Fixed layouts from the config are reused.
func (g *Game) Reset() error {
	if err := g.stateMachine.Reset(); err != nil {
		return err
	}

	g.gameOver = false
	g.winner = -1
	g.gs.Turn = 0
	g.gs.Current = 0
	g.gs.ShotLog = nil

	if err := g.stateMachine.TransitionTo(states.PhasePlacing, "Game reset"); err != nil {
		return err
	}
	if err := g.placeFleets(); err != nil {
		_ = g.stateMachine.Fail(err)
		return fmt.Errorf("fleet placement failed: %w", err)
	}
	return g.start()
}

func (g *Game) opponentOf(id int) *Player {
	return g.gs.Players[(id+1)%len(g.gs.Players)]
}

// Public accessors
func (g *Game) ID() string                         { return g.id }
func (g *Game) IsOver() bool                       { return g.gameOver }
func (g *Game) Turn() int                          { return g.gs.Turn }
func (g *Game) MaxTurns() int                      { return g.maxTurns }
func (g *Game) Players() []*Player                 { return g.gs.Players }
func (g *Game) CurrentPlayer() *Player             { return g.gs.Players[g.gs.Current] }
func (g *Game) Phase() states.GamePhase            { return g.stateMachine.CurrentPhase() }
func (g *Game) EventBus() *events.EventBus         { return g.eventBus }
func (g *Game) StateMachine() *states.StateMachine { return g.stateMachine }

// Fleet returns a copy of the ship sizes each player started with
func (g *Game) Fleet() []int { return append([]int(nil), g.fleet...) }

// Winner returns the winning player ID, or -1 if the game isn't over
func (g *Game) Winner() int {
	if !g.gameOver {
		return -1
	}
	return g.winner
}
