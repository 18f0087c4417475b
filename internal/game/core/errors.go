package core

import "errors"

var (
	ErrInvalidCell        = errors.New("cell is off the board")
	ErrInvalidOutcome     = errors.New("outcome must be hit or miss")
	ErrInvalidBoard       = errors.New("malformed board")
	ErrInvalidPlacement   = errors.New("invalid ship placement")
	ErrAlreadyShot        = errors.New("cell already shot")
	ErrGameOver           = errors.New("game is over")
	ErrNoUnshotCells      = errors.New("no unshot cells left")
	ErrEmptyTally         = errors.New("no simulated hits to choose from")
	ErrPlacementExhausted = errors.New("placement attempts exhausted")
)
