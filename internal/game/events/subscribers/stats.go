package subscribers

import (
	"sync"

	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/game/events"
)

// PlayerTotals accumulates results for one seat across games
type PlayerTotals struct {
	Wins  int
	Shots int
	Hits  int
	Sunk  int
}

// StatsSubscriber aggregates shot and win counts over a series of games
type StatsSubscriber struct {
	id      string
	mu      sync.Mutex
	games   int
	turns   int
	players map[int]*PlayerTotals
}

func NewStatsSubscriber(id string) *StatsSubscriber {
	return &StatsSubscriber{id: id, players: make(map[int]*PlayerTotals)}
}

func (s *StatsSubscriber) ID() string { return s.id }

func (s *StatsSubscriber) InterestedIn(eventType string) bool {
	switch eventType {
	case events.TypeShotFired, events.TypeShipSunk, events.TypeGameEnded:
		return true
	}
	return false
}

func (s *StatsSubscriber) HandleEvent(event events.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch e := event.(type) {
	case *events.ShotFiredEvent:
		p := s.player(e.PlayerID)
		p.Shots++
		if e.Outcome.IsHit() {
			p.Hits++
		}
	case *events.ShipSunkEvent:
		s.player(e.PlayerID).Sunk++
	case *events.GameEndedEvent:
		s.games++
		s.turns += e.FinalTurn
		s.player(e.Winner).Wins++
	}
}

func (s *StatsSubscriber) player(id int) *PlayerTotals {
	p, ok := s.players[id]
	if !ok {
		p = &PlayerTotals{}
		s.players[id] = p
	}
	return p
}

// Games returns the number of finished games seen
func (s *StatsSubscriber) Games() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.games
}

// AverageTurns returns the mean final turn over finished games
func (s *StatsSubscriber) AverageTurns() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.games == 0 {
		return 0
	}
	return float64(s.turns) / float64(s.games)
}

// Player returns a copy of the totals for a seat
func (s *StatsSubscriber) Player(id int) PlayerTotals {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.players[id]; ok {
		return *p
	}
	return PlayerTotals{}
}
