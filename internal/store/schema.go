package store

import (
	"context"
	"fmt"
)

const (
	tablePlayers  = "players"
	tableScores   = "scores"
	tableAttempts = "question_attempts"
)

// Timestamps are stored as Unix nanoseconds so ordering survives
// sub-second writes.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS players (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		created_at INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS scores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		submission_id TEXT NOT NULL UNIQUE,
		player_id INTEGER NOT NULL REFERENCES players (id),
		level TEXT NOT NULL,
		score INTEGER NOT NULL,
		max_score INTEGER NOT NULL,
		percentage REAL NOT NULL,
		risk_level TEXT NOT NULL,
		played_at INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS question_attempts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		submission_id TEXT NOT NULL DEFAULT '',
		player_id INTEGER NOT NULL REFERENCES players (id),
		question_id INTEGER NOT NULL,
		level TEXT NOT NULL,
		correct BOOLEAN NOT NULL,
		attempted_at INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_scores_rank ON scores (score DESC, played_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_scores_player ON scores (player_id)`,
	`CREATE INDEX IF NOT EXISTS idx_attempts_player_level ON question_attempts (player_id, level)`,
}

func (s *Store) migrate(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if err := s.drv.Exec(ctx, stmt, []any{}, nil); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}
