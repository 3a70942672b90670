package store

import (
	"context"
	"time"
)

// MaxUsernameLength is the number of characters kept from a username.
const MaxUsernameLength = 50

// ScoreRecord is one completed play-through. Immutable once written.
type ScoreRecord struct {
	SubmissionID string
	PlayerID     int64
	Level        string
	Score        int
	MaxScore     int
	Percentage   float64
	RiskTier     string
}

// AttemptRecord is one answered question within a submission.
type AttemptRecord struct {
	SubmissionID string
	PlayerID     int64
	QuestionID   int
	Level        string
	Correct      bool
}

// SubmissionRecord groups the score and attempts written for one submission.
type SubmissionRecord struct {
	Score    ScoreRecord
	Attempts []AttemptRecord
}

// LeaderboardEntry is one row of the leaderboard.
type LeaderboardEntry struct {
	Username   string
	Level      string
	Score      int
	MaxScore   int
	Percentage float64
	RiskTier   string
	PlayedAt   time.Time
}

// BestScore is a player's highest raw score.
type BestScore struct {
	Level      string
	Score      int
	MaxScore   int
	Percentage float64
	RiskTier   string
	PlayedAt   time.Time
}

// PlayerStats summarizes a player's history.
type PlayerStats struct {
	TotalGames        int
	Best              *BestScore // nil when the player has no games
	AveragePercentage float64
}

// LevelPerformance is the attempt tally of one level.
type LevelPerformance struct {
	Level           string
	TotalAttempts   int
	CorrectAttempts int
}

// ScoreRepo records players, scores and attempts and answers the
// leaderboard and statistics queries.
type ScoreRepo interface {
	// EnsurePlayer returns the id of the named player, creating it on first use.
	EnsurePlayer(ctx context.Context, username string) (int64, error)

	// FindPlayer returns the id of an existing player.
	FindPlayer(ctx context.Context, username string) (int64, error)

	// RecordScore appends one score record.
	RecordScore(ctx context.Context, rec ScoreRecord) (int64, error)

	// RecordAttempt appends one attempt record.
	RecordAttempt(ctx context.Context, rec AttemptRecord) error

	// RecordSubmission writes all attempts and the score in one transaction.
	RecordSubmission(ctx context.Context, sub SubmissionRecord) (int64, error)

	// Leaderboard returns the top scores, highest first, newest first on ties.
	Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error)

	// PlayerStats returns zero values for players with no games.
	PlayerStats(ctx context.Context, playerID int64) (PlayerStats, error)

	// CategoryPerformance groups a player's attempts by level.
	CategoryPerformance(ctx context.Context, playerID int64) ([]LevelPerformance, error)
}

var _ ScoreRepo = (*Store)(nil)
