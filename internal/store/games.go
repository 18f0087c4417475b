package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/sqlc-dev/pqtype"

	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/game"
)

// QueryTimeout bounds every store query
const QueryTimeout = 10 * time.Second

// ErrUnfinished is returned when recording a game that has no winner
var ErrUnfinished = errors.New("game has not finished")

const insertGame = `INSERT INTO games (id, winner, loser, turns, shots, finished_at)
VALUES ($1, $2, $3, $4, $5, $6)`

const winCounts = `SELECT winner, COUNT(*) FROM games GROUP BY winner`

// DBTX is the part of *sql.DB the store uses
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

// GameRecord is one row of the games table
type GameRecord struct {
	ID         string
	Winner     string
	Loser      string
	Turns      int
	Shots      pqtype.NullRawMessage
	FinishedAt time.Time
}

// NewGameRecord builds a record from a finished game's summary and shot log
func NewGameRecord(summary game.Summary, shots []game.ShotRecord, finishedAt time.Time) (GameRecord, error) {
	if !summary.Over || summary.WinnerName() == "" {
		return GameRecord{}, ErrUnfinished
	}
	rec := GameRecord{
		ID:         summary.GameID,
		Winner:     summary.WinnerName(),
		Loser:      summary.LoserName(),
		Turns:      summary.Turns,
		FinishedAt: finishedAt,
	}
	if shots != nil {
		raw, err := json.Marshal(shots)
		if err != nil {
			return GameRecord{}, fmt.Errorf("encode shot log: %w", err)
		}
		rec.Shots = pqtype.NullRawMessage{RawMessage: raw, Valid: true}
	}
	return rec, nil
}

// GameStore reads and writes finished games
type GameStore struct {
	db     DBTX
	logger zerolog.Logger
}

func NewGameStore(db DBTX, logger zerolog.Logger) *GameStore {
	return &GameStore{
		db:     db,
		logger: logger.With().Str("component", "GameStore").Logger(),
	}
}

// RecordGame inserts one finished game
func (s *GameStore) RecordGame(ctx context.Context, rec GameRecord) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeout)
	defer cancel()

	_, err := s.db.ExecContext(ctx, insertGame,
		rec.ID, rec.Winner, rec.Loser, rec.Turns, rec.Shots, rec.FinishedAt)
	if err != nil {
		return fmt.Errorf("record game %s: %w", rec.ID, err)
	}
	s.logger.Debug().Str("game_id", rec.ID).Str("winner", rec.Winner).Int("turns", rec.Turns).Msg("Game recorded")
	return nil
}

// WinCounts returns the number of recorded wins per player name
func (s *GameStore) WinCounts(ctx context.Context) (map[string]int, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, winCounts)
	if err != nil {
		return nil, fmt.Errorf("query win counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			name string
			n    int
		)
		if err := rows.Scan(&name, &n); err != nil {
			return nil, fmt.Errorf("scan win count: %w", err)
		}
		counts[name] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read win counts: %w", err)
	}
	return counts, nil
}
