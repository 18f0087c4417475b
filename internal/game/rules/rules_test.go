package rules

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/game/core"
)

type fakePlayer struct {
	id    int
	alive bool
}

func (p fakePlayer) GetID() int    { return p.id }
func (p fakePlayer) IsAlive() bool { return p.alive }

func TestCheckGameOver(t *testing.T) {
	wc := NewWinConditionChecker(zerolog.Nop())

	tests := []struct {
		name     string
		players  []Player
		over     bool
		winnerID int
	}{
		{"both afloat", []Player{fakePlayer{0, true}, fakePlayer{1, true}}, false, -1},
		{"player 1 sunk", []Player{fakePlayer{0, true}, fakePlayer{1, false}}, true, 0},
		{"player 0 sunk", []Player{fakePlayer{0, false}, fakePlayer{1, true}}, true, 1},
		{"both sunk", []Player{fakePlayer{0, false}, fakePlayer{1, false}}, true, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			over, winner := wc.CheckGameOver(tt.players)
			assert.Equal(t, tt.over, over)
			assert.Equal(t, tt.winnerID, winner)
		})
	}
}

func TestLegalShots(t *testing.T) {
	view := core.NewBoard()
	hit := core.NewCell(2, 3)
	miss := core.NewCell(9, 9)
	assert.NoError(t, view.Mark(hit, core.Hit))
	assert.NoError(t, view.Mark(miss, core.Miss))

	mask := LegalShotMask(view)
	assert.Len(t, mask, core.NumCells)
	assert.False(t, mask[hit.ToIndex()])
	assert.False(t, mask[miss.ToIndex()])
	assert.True(t, mask[0])

	legal := 0
	for _, ok := range mask {
		if ok {
			legal++
		}
	}
	assert.Equal(t, core.NumCells-2, legal)

	assert.True(t, IsLegalShot(view, core.NewCell(0, 0)))
	assert.False(t, IsLegalShot(view, hit))
	assert.False(t, IsLegalShot(view, core.NewCell(10, 0)))
}
