package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	"github.com/google/uuid"
)

// RecordScore appends a score record in its own transaction.
func (s *Store) RecordScore(ctx context.Context, rec ScoreRecord) (int64, error) {
	if rec.SubmissionID == "" {
		rec.SubmissionID = uuid.NewString()
	}
	var id int64
	err := s.withTx(ctx, "record score", func(tx dialect.Tx) error {
		var err error
		id, err = s.insertScore(ctx, tx, rec)
		return err
	})
	return id, err
}

// RecordAttempt appends an attempt record in its own transaction.
func (s *Store) RecordAttempt(ctx context.Context, rec AttemptRecord) error {
	return s.withTx(ctx, "record attempt", func(tx dialect.Tx) error {
		return s.insertAttempt(ctx, tx, rec)
	})
}

// RecordSubmission writes every attempt and then the score. Nothing is
// visible to readers unless all writes succeed. The score and attempts
// share one submission id, generated when empty.
func (s *Store) RecordSubmission(ctx context.Context, sub SubmissionRecord) (int64, error) {
	if sub.Score.SubmissionID == "" {
		sub.Score.SubmissionID = uuid.NewString()
	}
	var id int64
	err := s.withTx(ctx, "record submission", func(tx dialect.Tx) error {
		for _, a := range sub.Attempts {
			a.SubmissionID = sub.Score.SubmissionID
			if err := s.insertAttempt(ctx, tx, a); err != nil {
				return fmt.Errorf("attempt for question %d: %w", a.QuestionID, err)
			}
		}
		var err error
		id, err = s.insertScore(ctx, tx, sub.Score)
		return err
	})
	return id, err
}

func (s *Store) insertScore(ctx context.Context, ex dialect.ExecQuerier, rec ScoreRecord) (int64, error) {
	return insert(ctx, ex, sqlite().
		Insert(tableScores).
		Columns("submission_id", "player_id", "level", "score", "max_score", "percentage", "risk_level", "played_at").
		Values(rec.SubmissionID, rec.PlayerID, rec.Level, rec.Score, rec.MaxScore, rec.Percentage, rec.RiskTier, s.now().UnixNano()))
}

func (s *Store) insertAttempt(ctx context.Context, ex dialect.ExecQuerier, rec AttemptRecord) error {
	_, err := insert(ctx, ex, sqlite().
		Insert(tableAttempts).
		Columns("submission_id", "player_id", "question_id", "level", "correct", "attempted_at").
		Values(rec.SubmissionID, rec.PlayerID, rec.QuestionID, rec.Level, rec.Correct, s.now().UnixNano()))
	return err
}
