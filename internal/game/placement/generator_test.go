package placement

import (
	"math/rand"
	"testing"

	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/game/core"
	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRNG provides a random number generator with a fixed seed for deterministic tests.
func newTestRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, 100, config.MaxAttempts)
	assert.Equal(t, 1000, config.MaxFleetRestarts)
}

func TestNewGenerator(t *testing.T) {
	config := DefaultConfig()
	rng := newTestRNG()
	generator := NewGenerator(config, rng)

	require.NotNil(t, generator)
	assert.Equal(t, config, generator.config)
	assert.Same(t, rng, generator.rng)
}

func TestPlace(t *testing.T) {
	generator := NewGenerator(DefaultConfig(), newTestRNG())

	for size := 1; size <= core.BoardSize; size++ {
		for i := 0; i < 200; i++ {
			p := generator.Place(size)
			require.Len(t, p, size)
			for _, c := range p {
				require.True(t, c.IsValid(), "cell %s of size-%d ship is off the board", c, size)
			}
			require.True(t, p.IsStraight(), "placement %v is not a straight run", p)
		}
	}

	testutil.AssertPanic(t, func() { generator.Place(0) })
	testutil.AssertPanic(t, func() { generator.Place(core.BoardSize + 1) }, "longer than the board")
}

func TestPlace_ReachesLastRowAndColumn(t *testing.T) {
	generator := NewGenerator(DefaultConfig(), newTestRNG())

	sawLastRow, sawLastCol := false, false
	for i := 0; i < 2000 && !(sawLastRow && sawLastCol); i++ {
		for _, c := range generator.Place(4) {
			sawLastRow = sawLastRow || c.Row == core.BoardSize-1
			sawLastCol = sawLastCol || c.Col == core.BoardSize-1
		}
	}
	assert.True(t, sawLastRow, "ships should be able to occupy the last row")
	assert.True(t, sawLastCol, "ships should be able to occupy the last column")
}

func TestPlaceFleet(t *testing.T) {
	generator := NewGenerator(DefaultConfig(), newTestRNG())

	for trial := 0; trial < 50; trial++ {
		placements, err := generator.PlaceFleet(core.StandardFleet)
		require.NoError(t, err)
		require.Len(t, placements, len(core.StandardFleet))

		for i, p := range placements {
			assert.Len(t, p, core.StandardFleet[i], "ships are placed in fleet order")
			assert.True(t, p.InBounds())
			assert.True(t, p.IsStraight())
		}
		for i := 0; i < len(placements); i++ {
			for j := i + 1; j < len(placements); j++ {
				assert.False(t, placements[i].Conflicts(placements[j]),
					"ships %d %v and %d %v overlap or touch", i, placements[i], j, placements[j])
			}
		}

		_, err = core.NewShipYard(placements)
		assert.NoError(t, err)
	}
}

func TestPlaceFleet_Impossible(t *testing.T) {
	config := DefaultConfig()
	config.MaxFleetRestarts = 2
	generator := NewGenerator(config, newTestRNG())

	// At most five full-length ships fit without touching.
	fleet := []int{10, 10, 10, 10, 10, 10}
	_, err := generator.PlaceFleet(fleet)
	assert.ErrorIs(t, err, core.ErrPlacementExhausted)
}

func TestPlaceOnBoard(t *testing.T) {
	t.Run("EmptyBoard", func(t *testing.T) {
		generator := NewGenerator(DefaultConfig(), newTestRNG())
		board := core.NewBoard()

		placed, skipped := generator.PlaceOnBoard(board, core.StandardFleet)
		assert.Equal(t, 0, skipped)
		require.Len(t, placed, len(core.StandardFleet))
		assert.Equal(t, core.FleetCells(core.StandardFleet), board.Count(core.Simulated))

		for i := 0; i < len(placed); i++ {
			for j := i + 1; j < len(placed); j++ {
				assert.False(t, placed[i].Conflicts(placed[j]))
			}
		}
	})

	t.Run("AvoidsShotCells", func(t *testing.T) {
		generator := NewGenerator(DefaultConfig(), newTestRNG())
		board := core.NewBoard()
		for c := 0; c < core.BoardSize; c++ {
			require.NoError(t, board.Mark(core.Cell{Row: 4, Col: c}, core.Miss))
			require.NoError(t, board.Mark(core.Cell{Row: 5, Col: c}, core.Hit))
		}

		generator.PlaceOnBoard(board, core.StandardFleet)
		for c := 0; c < core.BoardSize; c++ {
			assert.Equal(t, core.Miss, board.At(core.Cell{Row: 4, Col: c}))
			assert.Equal(t, core.Hit, board.At(core.Cell{Row: 5, Col: c}))
		}
	})

	t.Run("SkipsWhenNoRoom", func(t *testing.T) {
		generator := NewGenerator(DefaultConfig(), newTestRNG())
		board := core.NewBoard()
		for i := range board.T {
			board.T[i] = core.Miss
		}

		placed, skipped := generator.PlaceOnBoard(board, []int{3, 1})
		assert.Empty(t, placed)
		assert.Equal(t, 2, skipped)
		assert.Equal(t, 0, board.Count(core.Simulated))
	})
}

func TestFits(t *testing.T) {
	board := core.NewBoard()
	board.Simulate(core.Cell{Row: 5, Col: 5})
	require.NoError(t, board.Mark(core.Cell{Row: 0, Col: 0}, core.Hit))

	tests := []struct {
		name     string
		p        core.Placement
		expected bool
	}{
		{"open water", core.Placement{{Row: 2, Col: 2}, {Row: 2, Col: 3}}, true},
		{"on a hit", core.Placement{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, false},
		{"beside a hit", core.Placement{{Row: 0, Col: 1}, {Row: 0, Col: 2}}, true},
		{"on simulated", core.Placement{{Row: 5, Col: 5}}, false},
		{"edge of simulated", core.Placement{{Row: 5, Col: 6}}, false},
		{"corner of simulated", core.Placement{{Row: 6, Col: 6}}, false},
		{"off board", core.Placement{{Row: 9, Col: 9}, {Row: 9, Col: 10}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Fits(board, tt.p))
		})
	}
}
