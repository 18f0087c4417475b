package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/game/core"
)

// StandardLayout is a fixed, legal layout of core.StandardFleet: every ship
// starts in column 0 or 5 of an even row, so no two ships touch.
func StandardLayout() []core.Placement {
	h := core.Horizontal
	return []core.Placement{
		core.NewPlacement(core.NewCell(0, 0), 4, h),
		core.NewPlacement(core.NewCell(2, 0), 3, h),
		core.NewPlacement(core.NewCell(4, 0), 3, h),
		core.NewPlacement(core.NewCell(6, 0), 2, h),
		core.NewPlacement(core.NewCell(8, 0), 2, h),
		core.NewPlacement(core.NewCell(0, 5), 2, h),
		core.NewPlacement(core.NewCell(2, 5), 1, h),
		core.NewPlacement(core.NewCell(4, 5), 1, h),
		core.NewPlacement(core.NewCell(6, 5), 1, h),
		core.NewPlacement(core.NewCell(8, 5), 1, h),
	}
}

// LayoutCells flattens a layout into its ship cells in placement order
func LayoutCells(layout []core.Placement) []core.Cell {
	var cells []core.Cell
	for _, p := range layout {
		cells = append(cells, p...)
	}
	return cells
}

// StandardYard builds a ShipYard from StandardLayout
func StandardYard(t testing.TB) *core.ShipYard {
	t.Helper()
	yard, err := core.NewShipYard(StandardLayout())
	require.NoError(t, err)
	return yard
}

// MustParseBoard parses rows of board symbols. Short rows and missing
// trailing rows are padded with unknown cells.
func MustParseBoard(t testing.TB, rows ...string) *core.Board {
	t.Helper()
	padded := make([]string, core.BoardSize)
	for i := range padded {
		row := ""
		if i < len(rows) {
			row = rows[i]
		}
		if n := core.BoardSize - len(row); n > 0 {
			row += strings.Repeat(".", n)
		}
		padded[i] = row
	}
	rows = padded
	b, err := core.ParseBoard(strings.Join(rows, "\n"))
	require.NoError(t, err)
	return b
}
