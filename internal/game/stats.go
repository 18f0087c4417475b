package game

import (
	"time"

	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/game/core"
)

// ShotRecord is one entry of a game's shot log
type ShotRecord struct {
	Turn     int          `json:"turn"`
	PlayerID int          `json:"player_id"`
	Row      int          `json:"row"`
	Col      int          `json:"col"`
	Outcome  core.Outcome `json:"outcome"`
}

// PlayerSummary holds one player's end-of-game figures
type PlayerSummary struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Strategy    string  `json:"strategy"`
	Shots       int     `json:"shots"`
	Hits        int     `json:"hits"`
	Accuracy    float64 `json:"accuracy"`
	ShipsAfloat int     `json:"ships_afloat"`
}

// Summary describes a game at the moment it is taken
type Summary struct {
	GameID   string          `json:"game_id"`
	Turns    int             `json:"turns"`
	Winner   int             `json:"winner"`
	Over     bool            `json:"over"`
	Duration time.Duration   `json:"duration"`
	Players  []PlayerSummary `json:"players"`
}

// WinnerName returns the winner's name, or "" if the game isn't over
func (s Summary) WinnerName() string {
	if s.Winner < 0 || s.Winner >= len(s.Players) {
		return ""
	}
	return s.Players[s.Winner].Name
}

// LoserName returns the loser's name, or "" if the game isn't over
func (s Summary) LoserName() string {
	if s.Winner < 0 || len(s.Players) != PlayerCount {
		return ""
	}
	return s.Players[(s.Winner+1)%PlayerCount].Name
}

// ShotLog returns a copy of every real shot fired, in order
func (g *Game) ShotLog() []ShotRecord {
	return append([]ShotRecord(nil), g.gs.ShotLog...)
}

// Summary collects per-player statistics
func (g *Game) Summary() Summary {
	s := Summary{
		GameID:  g.id,
		Turns:   g.gs.Turn,
		Winner:  g.Winner(),
		Over:    g.gameOver,
		Players: make([]PlayerSummary, len(g.gs.Players)),
	}
	if ctx := g.stateMachine.GetContext(); ctx != nil {
		s.Duration = ctx.GetElapsedTime()
	}
	for i, p := range g.gs.Players {
		afloat := 0
		if p.Yard != nil {
			afloat = p.Yard.Afloat()
		}
		s.Players[i] = PlayerSummary{
			ID:          p.ID,
			Name:        p.Name,
			Strategy:    p.StrategyName(),
			Shots:       p.Shots,
			Hits:        p.Hits,
			Accuracy:    p.Accuracy(),
			ShipsAfloat: afloat,
		}
	}
	return s
}
