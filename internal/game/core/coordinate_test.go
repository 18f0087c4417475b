package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCell(t *testing.T) {
	c := NewCell(3, 5)
	assert.Equal(t, 3, c.Row)
	assert.Equal(t, 5, c.Col)
}

func TestCell_IndexRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		index int
		cell  Cell
	}{
		{"TopLeft", 0, Cell{0, 0}},
		{"TopRight", 9, Cell{0, 9}},
		{"SecondRow", 10, Cell{1, 0}},
		{"Middle", 55, Cell{5, 5}},
		{"BottomRight", 99, Cell{9, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.cell, FromIndex(tt.index))
			assert.Equal(t, tt.index, tt.cell.ToIndex())
		})
	}
}

func TestCell_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		cell     Cell
		expected bool
	}{
		{"origin", Cell{0, 0}, true},
		{"far corner", Cell{9, 9}, true},
		{"negative row", Cell{-1, 0}, false},
		{"negative col", Cell{0, -1}, false},
		{"row too large", Cell{10, 0}, false},
		{"col too large", Cell{0, 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cell.IsValid())
		})
	}
}

func TestCell_Adjacency(t *testing.T) {
	c := Cell{4, 4}

	assert.True(t, c.IsAdjacentTo(Cell{3, 4}))
	assert.True(t, c.IsAdjacentTo(Cell{4, 5}))
	assert.False(t, c.IsAdjacentTo(Cell{5, 5}), "diagonal is not edge-adjacent")
	assert.False(t, c.IsAdjacentTo(c))

	assert.True(t, c.Touches(Cell{5, 5}), "diagonal touches")
	assert.True(t, c.Touches(Cell{4, 3}))
	assert.False(t, c.Touches(Cell{4, 6}))
	assert.False(t, c.Touches(c), "a cell does not touch itself")
}

func TestCell_Neighborhoods(t *testing.T) {
	t.Run("interior", func(t *testing.T) {
		c := Cell{5, 5}
		assert.Len(t, c.ValidNeighbors(), 4)
		assert.Len(t, c.Surrounding(), 8)
	})

	t.Run("corner", func(t *testing.T) {
		c := Cell{0, 0}
		assert.ElementsMatch(t, []Cell{{0, 1}, {1, 0}}, c.ValidNeighbors())
		assert.ElementsMatch(t, []Cell{{0, 1}, {1, 0}, {1, 1}}, c.Surrounding())
	})

	t.Run("edge", func(t *testing.T) {
		c := Cell{0, 5}
		assert.Len(t, c.ValidNeighbors(), 3)
		assert.Len(t, c.Surrounding(), 5)
	})
}

func TestOrientation_Step(t *testing.T) {
	assert.Equal(t, Cell{Col: 1}, Horizontal.Step())
	assert.Equal(t, Cell{Row: 1}, Vertical.Step())
	assert.Equal(t, "vertical", Vertical.String())
}

func TestCell_String(t *testing.T) {
	assert.Equal(t, "(2,7)", Cell{2, 7}.String())
}
