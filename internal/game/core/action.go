package core

import "fmt"

// ShotAction is a player's request to fire at a cell of the opponent's grid
type ShotAction struct {
	PlayerID int
	Target   Cell
}

// Validate checks the shot against the shooter's view of the opponent
func (a ShotAction) Validate(view *Board) error {
	if !a.Target.IsValid() {
		return ErrInvalidCell
	}
	if view.IsShot(a.Target) {
		return ErrAlreadyShot
	}
	return nil
}

// WrapShotError adds the player and target to an error
func WrapShotError(a ShotAction, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("player %d: shot at %s: %w", a.PlayerID, a.Target, err)
}
