package rules

import "github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/game/core"

// LegalShotMask returns one entry per cell in row-major order; true marks a
// cell the shooter has not fired at yet.
func LegalShotMask(view *core.Board) []bool {
	mask := make([]bool, core.NumCells)
	for i, s := range view.T {
		mask[i] = s == core.Unknown
	}
	return mask
}

// IsLegalShot reports whether c is on the board and not yet fired at
func IsLegalShot(view *core.Board, c core.Cell) bool {
	return c.IsValid() && !view.IsShot(c)
}
