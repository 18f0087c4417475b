package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShotAction_Validate(t *testing.T) {
	view := NewBoard()
	require.NoError(t, view.Mark(Cell{1, 1}, Miss))
	require.NoError(t, view.Mark(Cell{2, 2}, Hit))

	assert.NoError(t, ShotAction{PlayerID: 0, Target: Cell{0, 0}}.Validate(view))
	assert.ErrorIs(t, ShotAction{Target: Cell{1, 1}}.Validate(view), ErrAlreadyShot)
	assert.ErrorIs(t, ShotAction{Target: Cell{2, 2}}.Validate(view), ErrAlreadyShot)
	assert.ErrorIs(t, ShotAction{Target: Cell{-1, 2}}.Validate(view), ErrInvalidCell)
}
