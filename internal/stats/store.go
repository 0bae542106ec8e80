// Package stats persists finished games to a local SQLite database and
// aggregates simple lifetime statistics from them.
package stats

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/Zakrzewiaczek/CLI-Solitaire/internal/game"
)

const schema = `
CREATE TABLE IF NOT EXISTS games (
	id          TEXT PRIMARY KEY,
	difficulty  TEXT NOT NULL,
	moves       INTEGER NOT NULL,
	duration_s  INTEGER NOT NULL,
	won         INTEGER NOT NULL,
	score       INTEGER NOT NULL,
	finished_at TIMESTAMP NOT NULL
);`

// Store wraps the games database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path. Use ":memory:"
// for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open stats db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init stats schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// Record inserts one finished game.
func (s *Store) Record(ctx context.Context, r game.Result) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO games (id, difficulty, moves, duration_s, won, score, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.GameID.String(), r.Difficulty, r.Moves, r.Duration, r.Won, r.Score, r.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("record game %s: %w", r.GameID, err)
	}
	return nil
}

// Summary aggregates lifetime statistics.
type Summary struct {
	Played     int `json:"played"`
	Won        int `json:"won"`
	BestScore  int `json:"bestScore"`
	TotalMoves int `json:"totalMoves"`
}

// Summary returns aggregate statistics over every recorded game.
func (s *Store) Summary(ctx context.Context) (Summary, error) {
	var sum Summary
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
		        COALESCE(SUM(won), 0),
		        COALESCE(MAX(score), 0),
		        COALESCE(SUM(moves), 0)
		 FROM games`,
	).Scan(&sum.Played, &sum.Won, &sum.BestScore, &sum.TotalMoves)
	if err != nil {
		return Summary{}, fmt.Errorf("stats summary: %w", err)
	}
	return sum, nil
}
