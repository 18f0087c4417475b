package random

import (
	"context"
	"math/rand"
	"testing"

	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/game/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrategy_NextShot(t *testing.T) {
	s := New(rand.New(rand.NewSource(7)))
	assert.Equal(t, "random", s.Name())

	board := core.NewBoard()
	for i := 0; i < core.NumCells; i++ {
		c, err := s.NextShot(context.Background(), board, core.StandardFleet)
		require.NoError(t, err)
		require.False(t, board.IsShot(c), "picked %s twice", c)
		require.NoError(t, board.Mark(c, core.Miss))
	}

	_, err := s.NextShot(context.Background(), board, core.StandardFleet)
	assert.ErrorIs(t, err, core.ErrNoUnshotCells)
}

func TestPickUnshot_OnlyCandidate(t *testing.T) {
	board := core.NewBoard()
	for i := range board.T {
		board.T[i] = core.Miss
	}
	board.T[core.NewCell(6, 3).ToIndex()] = core.Unknown

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		c, err := PickUnshot(rng, board)
		require.NoError(t, err)
		assert.Equal(t, core.NewCell(6, 3), c)
	}
}
