package core

import (
	"fmt"
	"math/bits"
)

// Outcome is the result of a real shot against a fleet
type Outcome int

const (
	OutcomeMiss Outcome = iota
	OutcomeHit
	OutcomeSunk
	OutcomeWin
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMiss:
		return "miss"
	case OutcomeHit:
		return "hit"
	case OutcomeSunk:
		return "sunk"
	case OutcomeWin:
		return "win"
	default:
		return fmt.Sprintf("Outcome(%d)", o)
	}
}

// MarshalText encodes the outcome by name in JSON event payloads
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Code returns the one-letter code for the outcome: M, H, S or W
func (o Outcome) Code() string {
	return [...]string{"M", "H", "S", "W"}[o]
}

// IsHit reports whether the shot struck a ship
func (o Outcome) IsHit() bool { return o != OutcomeMiss }

// Ship is one record in a ShipYard. Alive cells are tracked as a bitmask over cells.
type Ship struct {
	ID    int
	Size  int
	cells [BoardSize]Cell
	alive uint16
}

// Cells returns the ship's cells in placement order
func (s *Ship) Cells() Placement {
	return append(Placement(nil), s.cells[:s.Size]...)
}

// Remaining returns the number of cells not yet hit
func (s *Ship) Remaining() int { return bits.OnesCount16(s.alive) }

func (s *Ship) IsSunk() bool { return s.alive == 0 }

// ShipYard is an arena of ships indexed by ship id, with a per-cell lookup.
type ShipYard struct {
	ships  []Ship
	owner  [NumCells]int8 // ship id + 1, 0 for open water
	afloat int
}

// NewShipYard builds a yard from placements. Placements must be straight,
// on the board and non-overlapping.
func NewShipYard(placements []Placement) (*ShipYard, error) {
	y := &ShipYard{ships: make([]Ship, len(placements))}
	for id, p := range placements {
		if len(p) == 0 || len(p) > BoardSize || !p.InBounds() || !p.IsStraight() {
			return nil, fmt.Errorf("ship %d: %w", id, ErrInvalidPlacement)
		}
		s := &y.ships[id]
		s.ID = id
		s.Size = len(p)
		for i, c := range p {
			idx := c.ToIndex()
			if y.owner[idx] != 0 {
				return nil, fmt.Errorf("ship %d overlaps ship %d at %s: %w", id, y.owner[idx]-1, c, ErrInvalidPlacement)
			}
			y.owner[idx] = int8(id + 1)
			s.cells[i] = c
			s.alive |= 1 << uint(i)
		}
	}
	y.afloat = len(placements)
	return y, nil
}

// Fire resolves a shot. Hitting a cell that was already destroyed counts as a miss.
func (y *ShipYard) Fire(c Cell) (Outcome, error) {
	if !c.IsValid() {
		return OutcomeMiss, fmt.Errorf("fire at %s: %w", c, ErrInvalidCell)
	}
	s, ok := y.ShipAt(c)
	if !ok {
		return OutcomeMiss, nil
	}
	for i := 0; i < s.Size; i++ {
		bit := uint16(1) << uint(i)
		if s.cells[i] != c || s.alive&bit == 0 {
			continue
		}
		s.alive &^= bit
		if !s.IsSunk() {
			return OutcomeHit, nil
		}
		y.afloat--
		if y.afloat == 0 {
			return OutcomeWin, nil
		}
		return OutcomeSunk, nil
	}
	return OutcomeMiss, nil
}

// ShipAt returns the ship occupying c, if any
func (y *ShipYard) ShipAt(c Cell) (*Ship, bool) {
	if !c.IsValid() {
		return nil, false
	}
	id := y.owner[c.ToIndex()]
	if id == 0 {
		return nil, false
	}
	return &y.ships[id-1], true
}

// Afloat returns the number of ships not yet sunk
func (y *ShipYard) Afloat() int { return y.afloat }

// RemainingCells returns the number of ship cells not yet hit
func (y *ShipYard) RemainingCells() int {
	n := 0
	for i := range y.ships {
		n += y.ships[i].Remaining()
	}
	return n
}

// Ships returns a copy of every ship record
func (y *ShipYard) Ships() []Ship {
	return append([]Ship(nil), y.ships...)
}

// Placements returns the original cells of every ship
func (y *ShipYard) Placements() []Placement {
	out := make([]Placement, len(y.ships))
	for i := range y.ships {
		out[i] = y.ships[i].Cells()
	}
	return out
}
