package core

import (
	"fmt"
	"strings"
)

// CellState is what is known about a single cell.
// Simulated only ever appears on scratch boards owned by a simulation pass.
type CellState uint8

const (
	Unknown CellState = iota
	Hit
	Miss
	Simulated
)

var stateSymbols = [...]byte{Unknown: '.', Hit: 'X', Miss: 'o', Simulated: 'S'}

func (s CellState) String() string {
	switch s {
	case Unknown:
		return "unknown"
	case Hit:
		return "hit"
	case Miss:
		return "miss"
	case Simulated:
		return "simulated"
	default:
		return fmt.Sprintf("CellState(%d)", s)
	}
}

// Symbol returns the single-character encoding used by String and ParseBoard
func (s CellState) Symbol() byte {
	if int(s) < len(stateSymbols) {
		return stateSymbols[s]
	}
	return '?'
}

// Board is a 10x10 grid of cell states stored row-major.
// The zero value is an all-Unknown board.
type Board struct {
	T [NumCells]CellState
}

func NewBoard() *Board { return &Board{} }

// At returns the state of a cell. The cell must be valid.
func (b *Board) At(c Cell) CellState { return b.T[c.ToIndex()] }

// Mark records the outcome of a confirmed shot. Only Hit and Miss are accepted.
func (b *Board) Mark(c Cell, outcome CellState) error {
	if !c.IsValid() {
		return fmt.Errorf("mark %s: %w", c, ErrInvalidCell)
	}
	if outcome != Hit && outcome != Miss {
		return fmt.Errorf("mark %s as %s: %w", c, outcome, ErrInvalidOutcome)
	}
	b.T[c.ToIndex()] = outcome
	return nil
}

// Simulate overlays a simulated ship cell. Used on scratch boards only.
func (b *Board) Simulate(c Cell) { b.T[c.ToIndex()] = Simulated }

// Copy returns an independent board with identical cell states
func (b *Board) Copy() *Board {
	cp := *b
	return &cp
}

// IsShot reports whether a confirmed shot has landed on the cell
func (b *Board) IsShot(c Cell) bool {
	s := b.At(c)
	return s == Hit || s == Miss
}

// Cells returns every cell in the given state, in row-major order
func (b *Board) Cells(state CellState) []Cell {
	var out []Cell
	for i, s := range b.T {
		if s == state {
			out = append(out, FromIndex(i))
		}
	}
	return out
}

// Count returns how many cells are in the given state
func (b *Board) Count(state CellState) int {
	n := 0
	for _, s := range b.T {
		if s == state {
			n++
		}
	}
	return n
}

// UnshotCells returns the cells no confirmed shot has landed on
func (b *Board) UnshotCells() []Cell {
	out := make([]Cell, 0, NumCells)
	for i, s := range b.T {
		if s != Hit && s != Miss {
			out = append(out, FromIndex(i))
		}
	}
	return out
}

// Encode returns the board as a single 100-symbol string
func (b *Board) Encode() string {
	buf := make([]byte, NumCells)
	for i, s := range b.T {
		buf[i] = s.Symbol()
	}
	return string(buf)
}

// String returns the board as ten lines of ten symbols
func (b *Board) String() string {
	var sb strings.Builder
	enc := b.Encode()
	for r := 0; r < BoardSize; r++ {
		sb.WriteString(enc[r*BoardSize : (r+1)*BoardSize])
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseBoard reads a board written with the symbols produced by Encode or String.
// Whitespace is ignored; 'O' is accepted as a miss.
func ParseBoard(s string) (*Board, error) {
	b := NewBoard()
	n := 0
	for i := 0; i < len(s); i++ {
		ch := s[i]
		var st CellState
		switch ch {
		case ' ', '\t', '\n', '\r':
			continue
		case '.':
			st = Unknown
		case 'X', 'x':
			st = Hit
		case 'o', 'O':
			st = Miss
		case 'S':
			st = Simulated
		default:
			return nil, fmt.Errorf("unexpected symbol %q at offset %d: %w", ch, i, ErrInvalidBoard)
		}
		if n >= NumCells {
			return nil, fmt.Errorf("more than %d cells: %w", NumCells, ErrInvalidBoard)
		}
		b.T[n] = st
		n++
	}
	if n != NumCells {
		return nil, fmt.Errorf("got %d cells, want %d: %w", n, NumCells, ErrInvalidBoard)
	}
	return b, nil
}
