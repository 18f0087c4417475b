// Package montecarlo chooses shots by simulating random fleets consistent with
// what has been observed and firing random shots into them.
package montecarlo

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/game/analysis"
	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/game/core"
	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/game/placement"
)

// Config controls how much work one estimate does
type Config struct {
	Simulations          int
	ShotsPerSimulation   int
	MaxPlacementAttempts int // per ship, per pass
	Workers              int // 1 runs passes sequentially
}

// DefaultConfig returns the reference parameters
func DefaultConfig() Config {
	return Config{
		Simulations:          1000,
		ShotsPerSimulation:   100,
		MaxPlacementAttempts: 100,
		Workers:              1,
	}
}

// Validate checks that an estimate would fire at least one shot
func (c Config) Validate() error {
	if c.Simulations < 1 {
		return fmt.Errorf("simulations must be at least 1, got %d", c.Simulations)
	}
	if c.ShotsPerSimulation < 1 {
		return fmt.Errorf("shots per simulation must be at least 1, got %d", c.ShotsPerSimulation)
	}
	if c.MaxPlacementAttempts < 1 {
		return fmt.Errorf("max placement attempts must be at least 1, got %d", c.MaxPlacementAttempts)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	return nil
}

// Stats describes the most recent estimate
type Stats struct {
	Passes       int
	SkippedShips int
	Hits         int
	Elapsed      time.Duration
}

// Simulator runs Monte-Carlo passes over an observed board
type Simulator struct {
	config Config
	rng    *rand.Rand
	logger zerolog.Logger
	last   Stats
}

// NewSimulator creates a simulator. rng must not be shared with concurrent users.
func NewSimulator(config Config, rng *rand.Rand, logger zerolog.Logger) *Simulator {
	return &Simulator{
		config: config,
		rng:    rng,
		logger: logger.With().Str("component", "MonteCarloSimulator").Logger(),
	}
}

// Config returns the simulator's configuration
func (s *Simulator) Config() Config { return s.config }

// LastStats returns statistics for the most recent completed estimate
func (s *Simulator) LastStats() Stats { return s.last }

// Estimate runs the configured number of passes against observed and returns
// the accumulated hit counts. observed is never modified.
func (s *Simulator) Estimate(ctx context.Context, observed *core.Board, fleet []int) (Tally, error) {
	if err := s.config.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()

	var (
		tally   Tally
		skipped int
		err     error
	)
	if s.config.Workers == 1 || s.config.Simulations == 1 {
		tally, skipped, err = s.runPasses(ctx, s.rng, observed, fleet, s.config.Simulations)
	} else {
		tally, skipped, err = s.estimateParallel(ctx, observed, fleet)
	}
	if err != nil {
		return nil, err
	}

	s.last = Stats{
		Passes:       s.config.Simulations,
		SkippedShips: skipped,
		Hits:         tally.Total(),
		Elapsed:      time.Since(start),
	}
	s.logger.Debug().
		Int("passes", s.last.Passes).
		Int("workers", s.config.Workers).
		Int("skipped_ships", skipped).
		Int("simulated_hits", s.last.Hits).
		Int("cells_hit", len(tally)).
		Dur("elapsed", s.last.Elapsed).
		Msg("Estimate complete")

	return tally, nil
}

// estimateParallel splits the passes across workers. Each worker owns its rng,
// generator, scratch boards and tally; tallies are summed once all finish.
func (s *Simulator) estimateParallel(ctx context.Context, observed *core.Board, fleet []int) (Tally, int, error) {
	workers := s.config.Workers
	if workers > s.config.Simulations {
		workers = s.config.Simulations
	}

	seeds := make([]int64, workers)
	for i := range seeds {
		seeds[i] = s.rng.Int63()
	}

	tallies := make([]Tally, workers)
	skipped := make([]int, workers)
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		passes := s.config.Simulations / workers
		if w < s.config.Simulations%workers {
			passes++
		}
		g.Go(func() error {
			rng := rand.New(rand.NewSource(seeds[w]))
			t, sk, err := s.runPasses(gctx, rng, observed, fleet, passes)
			tallies[w], skipped[w] = t, sk
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	total := make(Tally, core.NumCells)
	totalSkipped := 0
	for w := range tallies {
		total.Merge(tallies[w])
		totalSkipped += skipped[w]
	}
	return total, totalSkipped, nil
}

func (s *Simulator) runPasses(ctx context.Context, rng *rand.Rand, observed *core.Board, fleet []int, passes int) (Tally, int, error) {
	gen := placement.NewGenerator(placement.Config{
		MaxAttempts:      s.config.MaxPlacementAttempts,
		MaxFleetRestarts: 1,
	}, rng)

	tally := make(Tally, core.NumCells)
	skipped := 0
	for pass := 0; pass < passes; pass++ {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		skipped += s.runPass(gen, rng, observed, fleet, tally)
	}
	return tally, skipped, nil
}

// runPass performs one simulation: copy the observed board, overlay the fleet
// not yet explained by hit clusters, fire random shots, count simulated hits.
func (s *Simulator) runPass(gen *placement.Generator, rng *rand.Rand, observed *core.Board, fleet []int, tally Tally) int {
	scratch := observed.Copy()
	remaining := analysis.RemainingFleet(observed, fleet)
	_, skipped := gen.PlaceOnBoard(scratch, remaining)

	for shot := 0; shot < s.config.ShotsPerSimulation; shot++ {
		c := core.Cell{Row: rng.Intn(core.BoardSize), Col: rng.Intn(core.BoardSize)}
		if scratch.At(c) == core.Simulated {
			tally[c]++
		}
	}
	return skipped
}
