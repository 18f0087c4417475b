package game

import (
	"context"

	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/game/core"
)

// Strategy chooses the next cell to fire at. target is the shooter's view of
// the opponent's grid and fleet the opponent's full list of ship sizes.
type Strategy interface {
	Name() string
	NextShot(ctx context.Context, target *core.Board, fleet []int) (core.Cell, error)
}

type Player struct {
	ID       int
	Name     string
	Yard     *core.ShipYard
	Target   *core.Board // shots this player fired at the opponent
	Incoming *core.Board // shots the opponent fired at this player
	Shots    int
	Hits     int
	Strategy Strategy
}

func (p *Player) GetID() int { return p.ID }

// IsAlive reports whether the player still has a ship afloat
func (p *Player) IsAlive() bool { return p.Yard != nil && p.Yard.Afloat() > 0 }

// Accuracy is the fraction of shots that hit, 0 before the first shot
func (p *Player) Accuracy() float64 {
	if p.Shots == 0 {
		return 0
	}
	return float64(p.Hits) / float64(p.Shots)
}

// StrategyName returns the name of the player's strategy, or "none"
func (p *Player) StrategyName() string {
	if p.Strategy == nil {
		return "none"
	}
	return p.Strategy.Name()
}

type GameState struct {
	Turn    int // real shots fired so far
	Current int // id of the player to move
	Players []*Player
	ShotLog []ShotRecord
}
