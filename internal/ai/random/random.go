// Package random implements the baseline opponent: a uniformly random shot at
// any cell not yet fired upon.
package random

import (
	"context"
	"math/rand"

	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/game/core"
)

// Strategy picks shots uniformly at random among unshot cells
type Strategy struct {
	rng *rand.Rand
}

// New creates a random strategy drawing from rng
func New(rng *rand.Rand) *Strategy {
	return &Strategy{rng: rng}
}

func (s *Strategy) Name() string { return "random" }

// NextShot returns a random unshot cell of the target board
func (s *Strategy) NextShot(_ context.Context, target *core.Board, _ []int) (core.Cell, error) {
	return PickUnshot(s.rng, target)
}

// PickUnshot returns a uniformly random cell that has not been Hit or Miss
func PickUnshot(rng *rand.Rand, board *core.Board) (core.Cell, error) {
	open := board.UnshotCells()
	if len(open) == 0 {
		return core.Cell{}, core.ErrNoUnshotCells
	}
	return open[rng.Intn(len(open))], nil
}
