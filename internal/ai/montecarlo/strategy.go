package montecarlo

import (
	"context"
	"errors"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/ai/random"
	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/game/core"
)

// Strategy is the Monte-Carlo shot chooser
type Strategy struct {
	sim    *Simulator
	rng    *rand.Rand
	logger zerolog.Logger
}

// NewStrategy creates a Monte-Carlo strategy. The simulator and the tie-break
// share rng, so a Strategy must not be used from several goroutines at once.
func NewStrategy(config Config, rng *rand.Rand, logger zerolog.Logger) *Strategy {
	return &Strategy{
		sim:    NewSimulator(config, rng, logger),
		rng:    rng,
		logger: logger.With().Str("component", "MonteCarloStrategy").Logger(),
	}
}

func (s *Strategy) Name() string { return "montecarlo" }

// Simulator exposes the underlying simulator
func (s *Strategy) Simulator() *Simulator { return s.sim }

// DetermineBestMove estimates hit frequencies for observed and returns the most
// likely cell along with its count.
func (s *Strategy) DetermineBestMove(ctx context.Context, observed *core.Board, fleet []int) (core.Cell, int, error) {
	tally, err := s.sim.Estimate(ctx, observed, fleet)
	if err != nil {
		return core.Cell{}, 0, err
	}
	return SelectBest(tally, s.rng)
}

// NextShot returns the best estimated cell. When no simulated ship was hit at
// all it falls back to a random unshot cell.
func (s *Strategy) NextShot(ctx context.Context, target *core.Board, fleet []int) (core.Cell, error) {
	cell, count, err := s.DetermineBestMove(ctx, target, fleet)
	switch {
	case err == nil:
		s.logger.Debug().Stringer("cell", cell).Int("count", count).Msg("Chose shot")
		return cell, nil
	case errors.Is(err, core.ErrEmptyTally):
		s.logger.Debug().Msg("No simulated hits, falling back to a random shot")
		return random.PickUnshot(s.rng, target)
	default:
		return core.Cell{}, err
	}
}
