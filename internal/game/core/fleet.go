package core

import "fmt"

// StandardFleet is the ship sizes each player starts with: 10 ships, 20 cells.
var StandardFleet = []int{4, 3, 3, 2, 2, 2, 1, 1, 1, 1}

// DefaultFleet returns a fresh copy of StandardFleet
func DefaultFleet() []int {
	return append([]int(nil), StandardFleet...)
}

// FleetCells returns the total number of cells occupied by a fleet
func FleetCells(sizes []int) int {
	total := 0
	for _, s := range sizes {
		total += s
	}
	return total
}

// ValidateFleet checks that every ship fits on the board and the fleet fits in the grid
func ValidateFleet(sizes []int) error {
	if len(sizes) == 0 {
		return fmt.Errorf("fleet is empty")
	}
	for i, s := range sizes {
		if s < 1 || s > BoardSize {
			return fmt.Errorf("fleet[%d] = %d must be between 1 and %d", i, s, BoardSize)
		}
	}
	if FleetCells(sizes) > NumCells {
		return fmt.Errorf("fleet needs %d cells, board has %d", FleetCells(sizes), NumCells)
	}
	return nil
}

// Placement is the ordered cells of one ship
type Placement []Cell

// NewPlacement lays out size cells from origin along the orientation.
// The result may run off the board; check InBounds.
func NewPlacement(origin Cell, size int, o Orientation) Placement {
	step := o.Step()
	p := make(Placement, size)
	c := origin
	for i := range p {
		p[i] = c
		c = c.Add(step)
	}
	return p
}

// InBounds reports whether every cell lies on the board
func (p Placement) InBounds() bool {
	for _, c := range p {
		if !c.IsValid() {
			return false
		}
	}
	return true
}

// IsStraight reports whether the cells form a contiguous horizontal or vertical run
func (p Placement) IsStraight() bool {
	if len(p) <= 1 {
		return true
	}
	step := Cell{Row: p[1].Row - p[0].Row, Col: p[1].Col - p[0].Col}
	if step != (Cell{Col: 1}) && step != (Cell{Row: 1}) {
		return false
	}
	for i := 1; i < len(p); i++ {
		if p[i] != p[i-1].Add(step) {
			return false
		}
	}
	return true
}

// Contains reports whether the placement covers c
func (p Placement) Contains(c Cell) bool {
	for _, pc := range p {
		if pc == c {
			return true
		}
	}
	return false
}

// Conflicts reports whether two placements overlap or share an edge or corner
func (p Placement) Conflicts(other Placement) bool {
	for _, a := range p {
		for _, b := range other {
			if a == b || a.Touches(b) {
				return true
			}
		}
	}
	return false
}
