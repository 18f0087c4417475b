package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoShipYard(t *testing.T) *ShipYard {
	t.Helper()
	y, err := NewShipYard([]Placement{
		{{0, 0}, {0, 1}},
		{{5, 5}},
	})
	require.NoError(t, err)
	return y
}

func TestNewShipYard_Rejects(t *testing.T) {
	tests := []struct {
		name       string
		placements []Placement
	}{
		{"overlap", []Placement{{{0, 0}, {0, 1}}, {{0, 1}}}},
		{"off board", []Placement{{{0, 9}, {0, 10}}}},
		{"bent", []Placement{{{0, 0}, {0, 1}, {1, 1}}}},
		{"empty", []Placement{{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewShipYard(tt.placements)
			assert.ErrorIs(t, err, ErrInvalidPlacement)
		})
	}
}

func TestShipYard_Fire(t *testing.T) {
	y := twoShipYard(t)
	assert.Equal(t, 2, y.Afloat())
	assert.Equal(t, 3, y.RemainingCells())

	out, err := y.Fire(Cell{9, 9})
	require.NoError(t, err)
	assert.Equal(t, OutcomeMiss, out)

	out, err = y.Fire(Cell{0, 0})
	require.NoError(t, err)
	assert.Equal(t, OutcomeHit, out)

	out, err = y.Fire(Cell{0, 0})
	require.NoError(t, err)
	assert.Equal(t, OutcomeMiss, out, "a destroyed cell cannot be hit twice")

	out, err = y.Fire(Cell{0, 1})
	require.NoError(t, err)
	assert.Equal(t, OutcomeSunk, out)
	assert.Equal(t, 1, y.Afloat())

	out, err = y.Fire(Cell{5, 5})
	require.NoError(t, err)
	assert.Equal(t, OutcomeWin, out)
	assert.Equal(t, 0, y.Afloat())
	assert.Equal(t, 0, y.RemainingCells())

	_, err = y.Fire(Cell{-1, 0})
	assert.ErrorIs(t, err, ErrInvalidCell)
}

func TestShipYard_Lookup(t *testing.T) {
	y := twoShipYard(t)

	s, ok := y.ShipAt(Cell{0, 1})
	require.True(t, ok)
	assert.Equal(t, 0, s.ID)
	assert.Equal(t, 2, s.Size)
	assert.Equal(t, Placement{{0, 0}, {0, 1}}, s.Cells())

	_, ok = y.ShipAt(Cell{3, 3})
	assert.False(t, ok)
	_, ok = y.ShipAt(Cell{30, 3})
	assert.False(t, ok)

	assert.Equal(t, []Placement{{{0, 0}, {0, 1}}, {{5, 5}}}, y.Placements())
	assert.Len(t, y.Ships(), 2)
}

func TestOutcome_Codes(t *testing.T) {
	assert.Equal(t, "M", OutcomeMiss.Code())
	assert.Equal(t, "H", OutcomeHit.Code())
	assert.Equal(t, "S", OutcomeSunk.Code())
	assert.Equal(t, "W", OutcomeWin.Code())
	assert.False(t, OutcomeMiss.IsHit())
	assert.True(t, OutcomeSunk.IsHit())
	assert.Equal(t, "win", OutcomeWin.String())
}
