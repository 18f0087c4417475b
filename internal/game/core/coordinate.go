package core

import "fmt"

const (
	// BoardSize is the side length of the square grid.
	BoardSize = 10
	// NumCells is the number of cells on a board.
	NumCells = BoardSize * BoardSize
)

// Cell is a (row, column) position on the board.
type Cell struct {
	Row, Col int
}

// NewCell creates a new cell with the given row and column
func NewCell(row, col int) Cell {
	return Cell{Row: row, Col: col}
}

// FromIndex creates a cell from a board array index using row-major ordering
func FromIndex(idx int) Cell {
	return Cell{
		Row: idx / BoardSize,
		Col: idx % BoardSize,
	}
}

// IsValid checks if the cell lies on the board
func (c Cell) IsValid() bool {
	return c.Row >= 0 && c.Row < BoardSize && c.Col >= 0 && c.Col < BoardSize
}

// ToIndex converts the cell to a board array index using row-major ordering
func (c Cell) ToIndex() int {
	return c.Row*BoardSize + c.Col
}

// Add returns the cell offset by another cell
func (c Cell) Add(other Cell) Cell {
	return Cell{Row: c.Row + other.Row, Col: c.Col + other.Col}
}

// IsAdjacentTo reports whether the two cells share an edge
func (c Cell) IsAdjacentTo(other Cell) bool {
	dr := abs(c.Row - other.Row)
	dc := abs(c.Col - other.Col)
	return dr+dc == 1
}

// Touches reports whether the two cells share an edge or a corner.
// A cell does not touch itself.
func (c Cell) Touches(other Cell) bool {
	dr := abs(c.Row - other.Row)
	dc := abs(c.Col - other.Col)
	return dr <= 1 && dc <= 1 && !(dr == 0 && dc == 0)
}

// Neighbors returns the four orthogonal neighbors of this cell
func (c Cell) Neighbors() []Cell {
	return []Cell{
		{Row: c.Row - 1, Col: c.Col}, // North
		{Row: c.Row, Col: c.Col + 1}, // East
		{Row: c.Row + 1, Col: c.Col}, // South
		{Row: c.Row, Col: c.Col - 1}, // West
	}
}

// ValidNeighbors returns only the orthogonal neighbors that are on the board
func (c Cell) ValidNeighbors() []Cell {
	valid := make([]Cell, 0, 4)
	for _, n := range c.Neighbors() {
		if n.IsValid() {
			valid = append(valid, n)
		}
	}
	return valid
}

// Surrounding returns the on-board cells sharing an edge or corner with c
func (c Cell) Surrounding() []Cell {
	out := make([]Cell, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n := Cell{Row: c.Row + dr, Col: c.Col + dc}
			if n.IsValid() {
				out = append(out, n)
			}
		}
	}
	return out
}

// String returns a string representation of the cell
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Orientation is the axis a ship runs along
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Step returns the offset between consecutive cells of a ship with this orientation
func (o Orientation) Step() Cell {
	if o == Vertical {
		return Cell{Row: 1}
	}
	return Cell{Col: 1}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
