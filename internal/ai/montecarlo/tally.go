package montecarlo

import "github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/game/core"

// Tally maps a cell to the number of simulated shots that struck a simulated ship there
type Tally map[core.Cell]int

// Merge adds every count of other into t
func (t Tally) Merge(other Tally) {
	for c, n := range other {
		t[c] += n
	}
}

// Total returns the sum of all counts
func (t Tally) Total() int {
	total := 0
	for _, n := range t {
		total += n
	}
	return total
}

// Grid returns the counts laid out row-major
func (t Tally) Grid() [core.NumCells]int {
	var g [core.NumCells]int
	for c, n := range t {
		if c.IsValid() {
			g[c.ToIndex()] = n
		}
	}
	return g
}
