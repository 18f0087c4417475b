package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapShotError(t *testing.T) {
	tests := []struct {
		name     string
		action   ShotAction
		err      error
		expected string
	}{
		{
			name:     "already shot",
			action:   ShotAction{PlayerID: 1, Target: Cell{5, 3}},
			err:      ErrAlreadyShot,
			expected: "player 1: shot at (5,3): cell already shot",
		},
		{
			name:     "off board",
			action:   ShotAction{PlayerID: 0, Target: Cell{10, 0}},
			err:      ErrInvalidCell,
			expected: "player 0: shot at (10,0): cell is off the board",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := WrapShotError(tt.action, tt.err)
			require.NotNil(t, wrapped)
			assert.Equal(t, tt.expected, wrapped.Error())
			assert.True(t, errors.Is(wrapped, tt.err))
		})
	}

	assert.Nil(t, WrapShotError(ShotAction{}, nil))
}
