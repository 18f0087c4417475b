package montecarlo

import (
	"math/rand"
	"sort"

	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/game/core"
)

// SelectBest returns a cell with the highest count, chosen uniformly among ties,
// together with that count. Ties are ordered row-major before drawing so a
// seeded rng gives repeatable picks.
func SelectBest(t Tally, rng *rand.Rand) (core.Cell, int, error) {
	if len(t) == 0 {
		return core.Cell{}, 0, core.ErrEmptyTally
	}

	best := 0
	first := true
	var ties []core.Cell
	for c, n := range t {
		switch {
		case first || n > best:
			best = n
			ties = append(ties[:0], c)
			first = false
		case n == best:
			ties = append(ties, c)
		}
	}

	sort.Slice(ties, func(i, j int) bool {
		return ties[i].ToIndex() < ties[j].ToIndex()
	})
	return ties[rng.Intn(len(ties))], best, nil
}
