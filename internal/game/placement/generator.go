package placement

import (
	"fmt"
	"math/rand"

	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/game/core"
)

// Config holds configuration for ship placement
type Config struct {
	// MaxAttempts bounds the candidates drawn per ship when placing onto a
	// partially observed board.
	MaxAttempts int
	// MaxFleetRestarts bounds how often PlaceFleet starts over from an empty
	// ocean. Each restart retries every ship until it fits.
	MaxFleetRestarts int
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig() Config {
	return Config{
		MaxAttempts:      100,
		MaxFleetRestarts: 1000,
	}
}

// Generator produces random ship placements from an explicit RNG
type Generator struct {
	config Config
	rng    *rand.Rand
}

// NewGenerator creates a new placement generator
func NewGenerator(config Config, rng *rand.Rand) *Generator {
	return &Generator{
		config: config,
		rng:    rng,
	}
}

// Place draws a uniformly random origin and orientation, resampling both until
// the ship lies entirely on the board. size must be between 1 and core.BoardSize.
func (g *Generator) Place(size int) core.Placement {
	if size < 1 || size > core.BoardSize {
		panic(fmt.Sprintf("placement: ship size %d out of range", size))
	}
	for {
		origin := core.Cell{Row: g.rng.Intn(core.BoardSize), Col: g.rng.Intn(core.BoardSize)}
		o := core.Orientation(g.rng.Intn(2))
		p := core.NewPlacement(origin, size, o)
		if p.InBounds() {
			return p
		}
	}
}

// PlaceFleet lays out a whole fleet on an empty ocean with no two ships
// overlapping or touching, including diagonally. Each ship is retried until it
// fits; if the ships already down leave no room the fleet starts over.
func (g *Generator) PlaceFleet(sizes []int) ([]core.Placement, error) {
	perShip := core.NumCells * 100
	for restart := 0; restart < g.config.MaxFleetRestarts; restart++ {
		if placed, ok := g.tryFleet(sizes, perShip); ok {
			return placed, nil
		}
	}
	return nil, fmt.Errorf("fleet %v after %d restarts: %w", sizes, g.config.MaxFleetRestarts, core.ErrPlacementExhausted)
}

func (g *Generator) tryFleet(sizes []int, perShip int) ([]core.Placement, bool) {
	placed := make([]core.Placement, 0, len(sizes))
	for _, size := range sizes {
		ok := false
		for attempt := 0; attempt < perShip; attempt++ {
			candidate := g.Place(size)
			if len(placed) == 0 || !conflictsAny(candidate, placed) {
				placed = append(placed, candidate)
				ok = true
				break
			}
		}
		if !ok {
			return nil, false
		}
	}
	return placed, true
}

func conflictsAny(candidate core.Placement, placed []core.Placement) bool {
	for _, p := range placed {
		if candidate.Conflicts(p) {
			return true
		}
	}
	return false
}

// PlaceOnBoard overlays ships onto a scratch board. A candidate is rejected if
// any of its cells is already Hit, Miss or Simulated, or touches a Simulated
// cell. Each ship gets at most MaxAttempts candidates; ships that never fit are
// skipped and counted. Accepted cells are marked Simulated.
func (g *Generator) PlaceOnBoard(board *core.Board, sizes []int) (placed []core.Placement, skipped int) {
	placed = make([]core.Placement, 0, len(sizes))
	for _, size := range sizes {
		ok := false
		for attempt := 0; attempt < g.config.MaxAttempts; attempt++ {
			candidate := g.Place(size)
			if !Fits(board, candidate) {
				continue
			}
			for _, c := range candidate {
				board.Simulate(c)
			}
			placed = append(placed, candidate)
			ok = true
			break
		}
		if !ok {
			skipped++
		}
	}
	return placed, skipped
}

// Fits reports whether a placement can be overlaid on the board: every cell on
// the board and Unknown, and no cell touching a Simulated cell.
func Fits(board *core.Board, p core.Placement) bool {
	for _, c := range p {
		if !c.IsValid() || board.At(c) != core.Unknown {
			return false
		}
	}
	for _, c := range p {
		for _, n := range c.Surrounding() {
			if board.At(n) == core.Simulated {
				return false
			}
		}
	}
	return true
}
