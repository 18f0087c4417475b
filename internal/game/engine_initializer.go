package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/game/core"
	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/game/events"
	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/game/placement"
	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/game/rules"
	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/game/states"
)

// GameConfig configures a new game. Zero values fall back to defaults: a
// time-seeded RNG, a fresh uuid, the configured fleet and turn limit.
type GameConfig struct {
	GameID     string
	Fleet      []int
	MaxTurns   int
	Rng        *rand.Rand
	Logger     zerolog.Logger
	Names      []string
	Strategies []Strategy
	// Layouts fixes each player's ship placements; nil entries are generated
	Layouts   [][]core.Placement
	Placement placement.Config
	EventBus  *events.EventBus
}

// EngineInitializer handles construction of a game and its fleets
type EngineInitializer struct {
	config GameConfig
	logger zerolog.Logger
}

// NewEngineInitializer creates a new engine initializer
func NewEngineInitializer(cfg GameConfig) *EngineInitializer {
	return &EngineInitializer{
		config: cfg,
		logger: cfg.Logger.With().Str("component", "GameEngine").Logger(),
	}
}

// Initialize creates a game with both fleets placed, in PhaseRunning
func (ei *EngineInitializer) Initialize() (*Game, error) {
	if err := ei.setupDefaults(); err != nil {
		return nil, err
	}

	g := ei.createGame()

	if err := g.stateMachine.TransitionTo(states.PhasePlacing, "Players seated"); err != nil {
		return nil, fmt.Errorf("state machine initialization failed: %w", err)
	}

	if err := g.placeFleets(); err != nil {
		_ = g.stateMachine.Fail(err)
		return nil, fmt.Errorf("fleet placement failed: %w", err)
	}

	if err := g.start(); err != nil {
		return nil, err
	}

	ei.logger.Info().
		Str("game_id", g.id).
		Ints("fleet", g.fleet).
		Str("player_0", g.gs.Players[0].StrategyName()).
		Str("player_1", g.gs.Players[1].StrategyName()).
		Msg("Game created")

	return g, nil
}

// setupDefaults fills in missing configuration and validates the rest
func (ei *EngineInitializer) setupDefaults() error {
	c := &ei.config
	if c.Rng == nil {
		ei.logger.Debug().Msg("No RNG provided, creating new seeded RNG")
		c.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if c.GameID == "" {
		c.GameID = uuid.NewString()
	}
	if c.Fleet == nil {
		c.Fleet = DefaultFleet()
	} else {
		c.Fleet = append([]int(nil), c.Fleet...)
	}
	if err := core.ValidateFleet(c.Fleet); err != nil {
		return fmt.Errorf("invalid fleet: %w", err)
	}
	if c.MaxTurns <= 0 {
		c.MaxTurns = DefaultMaxTurns()
	}
	if c.Placement == (placement.Config{}) {
		c.Placement = placement.DefaultConfig()
	}
	if len(c.Strategies) > PlayerCount {
		return fmt.Errorf("got %d strategies for %d players", len(c.Strategies), PlayerCount)
	}
	if len(c.Layouts) > PlayerCount {
		return fmt.Errorf("got %d layouts for %d players", len(c.Layouts), PlayerCount)
	}
	return nil
}

// createGame wires the game together with its components
func (ei *EngineInitializer) createGame() *Game {
	c := ei.config
	logger := ei.logger.With().Str("game_id", c.GameID).Logger()

	bus := c.EventBus
	if bus == nil {
		bus = events.NewEventBusWithLogger(c.Logger)
	}

	players := make([]*Player, PlayerCount)
	for i := range players {
		name := fmt.Sprintf("Player %d", i+1)
		if i < len(c.Names) && c.Names[i] != "" {
			name = c.Names[i]
		}
		var strategy Strategy
		if i < len(c.Strategies) {
			strategy = c.Strategies[i]
		}
		players[i] = &Player{ID: i, Name: name, Strategy: strategy}
	}

	gameContext := states.NewGameContext(c.GameID, c.Logger)
	gameContext.PlayerCount = len(players)

	return &Game{
		gs:           &GameState{Players: players},
		id:           c.GameID,
		fleet:        c.Fleet,
		maxTurns:     c.MaxTurns,
		layouts:      c.Layouts,
		generator:    placement.NewGenerator(c.Placement, c.Rng),
		logger:       logger,
		eventBus:     bus,
		stateMachine: states.NewStateMachine(gameContext, bus),
		winCondition: rules.NewWinConditionChecker(logger),
		winner:       -1,
	}
}

// placeFleets gives every player a ShipYard and fresh boards
func (g *Game) placeFleets() error {
	for i, p := range g.gs.Players {
		var layout []core.Placement
		if i < len(g.layouts) && g.layouts[i] != nil {
			layout = g.layouts[i]
			if err := matchesFleet(layout, g.fleet); err != nil {
				return fmt.Errorf("player %d: %w", i, err)
			}
		} else {
			generated, err := g.generator.PlaceFleet(g.fleet)
			if err != nil {
				return fmt.Errorf("player %d: %w", i, err)
			}
			layout = generated
		}

		yard, err := core.NewShipYard(layout)
		if err != nil {
			return fmt.Errorf("player %d: %w", i, err)
		}
		p.Yard = yard
		p.Target = core.NewBoard()
		p.Incoming = core.NewBoard()
		p.Shots = 0
		p.Hits = 0
	}
	g.stateMachine.GetContext().FleetsPlaced = true
	return nil
}

func matchesFleet(layout []core.Placement, fleet []int) error {
	if len(layout) != len(fleet) {
		return fmt.Errorf("layout has %d ships, fleet has %d: %w", len(layout), len(fleet), core.ErrInvalidPlacement)
	}
	for i, p := range layout {
		if len(p) != fleet[i] {
			return fmt.Errorf("ship %d has %d cells, fleet expects %d: %w", i, len(p), fleet[i], core.ErrInvalidPlacement)
		}
	}
	return nil
}

// start moves a placed game into play and announces it
func (g *Game) start() error {
	if err := g.stateMachine.TransitionTo(states.PhaseRunning, "Fleets placed"); err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}
	g.startedAt = time.Now()

	names := make([]string, len(g.gs.Players))
	strategies := make([]string, len(g.gs.Players))
	for i, p := range g.gs.Players {
		names[i] = p.Name
		strategies[i] = p.StrategyName()
	}
	g.eventBus.Publish(events.NewGameStartedEvent(g.id, names, strategies, g.Fleet()))
	return nil
}
