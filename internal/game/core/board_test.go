package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, NumCells, b.Count(Unknown))
	assert.Len(t, b.UnshotCells(), NumCells)
}

func TestBoard_Mark(t *testing.T) {
	tests := []struct {
		name    string
		cell    Cell
		outcome CellState
		wantErr error
	}{
		{"hit", Cell{0, 0}, Hit, nil},
		{"miss", Cell{9, 9}, Miss, nil},
		{"unknown rejected", Cell{1, 1}, Unknown, ErrInvalidOutcome},
		{"simulated rejected", Cell{1, 1}, Simulated, ErrInvalidOutcome},
		{"off board", Cell{10, 0}, Hit, ErrInvalidCell},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard()
			err := b.Mark(tt.cell, tt.outcome)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, NumCells, b.Count(Unknown), "failed mark must not change the board")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.outcome, b.At(tt.cell))
			assert.True(t, b.IsShot(tt.cell))
		})
	}
}

func TestBoard_CopyIsIndependent(t *testing.T) {
	b := NewBoard()
	require.NoError(t, b.Mark(Cell{2, 2}, Hit))

	scratch := b.Copy()
	assert.Equal(t, b.T, scratch.T)

	scratch.Simulate(Cell{5, 5})
	require.NoError(t, scratch.Mark(Cell{0, 0}, Miss))

	assert.Equal(t, Unknown, b.At(Cell{5, 5}), "simulated cells must not leak to the original")
	assert.Equal(t, Unknown, b.At(Cell{0, 0}))
	assert.Equal(t, Simulated, scratch.At(Cell{5, 5}))
}

func TestBoard_CellsAndUnshot(t *testing.T) {
	b := NewBoard()
	require.NoError(t, b.Mark(Cell{0, 1}, Hit))
	require.NoError(t, b.Mark(Cell{0, 0}, Hit))
	require.NoError(t, b.Mark(Cell{3, 3}, Miss))

	assert.Equal(t, []Cell{{0, 0}, {0, 1}}, b.Cells(Hit), "cells are returned in row-major order")
	assert.Equal(t, 1, b.Count(Miss))
	assert.Len(t, b.UnshotCells(), NumCells-3)
	assert.NotContains(t, b.UnshotCells(), Cell{3, 3})
}

func TestParseBoard(t *testing.T) {
	rows := []string{
		"XX........",
		"..........",
		"....o.....",
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
		".........S",
	}

	b, err := ParseBoard(strings.Join(rows, "\n"))
	require.NoError(t, err)
	assert.Equal(t, Hit, b.At(Cell{0, 0}))
	assert.Equal(t, Hit, b.At(Cell{0, 1}))
	assert.Equal(t, Miss, b.At(Cell{2, 4}))
	assert.Equal(t, Simulated, b.At(Cell{9, 9}))
	assert.Equal(t, strings.Join(rows, "\n")+"\n", b.String())

	again, err := ParseBoard(b.Encode())
	require.NoError(t, err)
	assert.Equal(t, b.T, again.T)

	t.Run("too short", func(t *testing.T) {
		_, err := ParseBoard("....")
		assert.ErrorIs(t, err, ErrInvalidBoard)
	})

	t.Run("too long", func(t *testing.T) {
		_, err := ParseBoard(strings.Repeat(".", NumCells+1))
		assert.ErrorIs(t, err, ErrInvalidBoard)
	})

	t.Run("bad symbol", func(t *testing.T) {
		_, err := ParseBoard(strings.Repeat(".", NumCells-1) + "?")
		assert.ErrorIs(t, err, ErrInvalidBoard)
	})
}
