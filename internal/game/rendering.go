package game

import (
	"strconv"
	"strings"

	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/game/core"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorGray   = "\033[90m"
)

// ShipSymbol marks an intact ship cell on a fleet grid
const ShipSymbol = '#'

var symbolColors = map[byte]string{
	core.Hit.Symbol():       ColorRed,
	core.Miss.Symbol():      ColorGray,
	core.Simulated.Symbol(): ColorYellow,
	ShipSymbol:              ColorBlue,
}

// gridWidth is the printed width of one rendered grid line
const gridWidth = 2 + 2*core.BoardSize

// RenderBoard draws a board with row and column headers
func RenderBoard(b *core.Board) string {
	return strings.Join(renderGrid(func(c core.Cell) byte { return b.At(c).Symbol() }, false), "\n") + "\n"
}

// RenderFleet draws a player's own grid: intact ship cells as '#', and the
// opponent's shots from incoming on top.
func RenderFleet(yard *core.ShipYard, incoming *core.Board) string {
	return strings.Join(renderGrid(fleetSymbol(yard, incoming), false), "\n") + "\n"
}

func fleetSymbol(yard *core.ShipYard, incoming *core.Board) func(core.Cell) byte {
	return func(c core.Cell) byte {
		if incoming != nil && incoming.IsShot(c) {
			return incoming.At(c).Symbol()
		}
		if _, ok := yard.ShipAt(c); ok {
			return ShipSymbol
		}
		return core.Unknown.Symbol()
	}
}

// renderGrid returns header and row lines, each gridWidth visible columns wide
func renderGrid(symbolAt func(core.Cell) byte, color bool) []string {
	lines := make([]string, 0, core.BoardSize+1)

	var sb strings.Builder
	sb.WriteString("  ")
	for col := 0; col < core.BoardSize; col++ {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(col))
	}
	lines = append(lines, sb.String())

	for row := 0; row < core.BoardSize; row++ {
		sb.Reset()
		if row < 10 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(row))
		for col := 0; col < core.BoardSize; col++ {
			sym := symbolAt(core.NewCell(row, col))
			sb.WriteByte(' ')
			if c, ok := symbolColors[sym]; ok && color {
				sb.WriteString(c)
				sb.WriteByte(sym)
				sb.WriteString(ColorReset)
			} else {
				sb.WriteByte(sym)
			}
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// Board renders what playerID knows of the opponent next to their own fleet
func (g *Game) Board(playerID int, color bool) string {
	p := g.gs.Players[playerID]
	left := renderGrid(func(c core.Cell) byte { return p.Target.At(c).Symbol() }, color)
	right := renderGrid(fleetSymbol(p.Yard, p.Incoming), color)

	const gap = "    "
	var sb strings.Builder
	sb.WriteString(padRight("Target", gridWidth))
	sb.WriteString(gap)
	sb.WriteString(p.Name)
	sb.WriteString("'s fleet\n")
	for i := range left {
		sb.WriteString(left[i])
		sb.WriteString(gap)
		sb.WriteString(right[i])
		sb.WriteByte('\n')
	}
	sb.WriteString("\n. unknown  X hit  o miss  # ship\n")
	return sb.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
