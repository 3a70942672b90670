// Package quiz ties the question bank, the scoring engine and the score
// store together into play sessions.
package quiz

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/cyberquest/cyberquest/internal/logger"
	"github.com/cyberquest/cyberquest/internal/questions"
	"github.com/cyberquest/cyberquest/internal/scoring"
	"github.com/cyberquest/cyberquest/internal/store"
)

// Session is a started quiz: a registered player and the questions for
// the chosen level.
type Session struct {
	PlayerID  int64
	Username  string
	Level     questions.Level
	Questions []questions.Question
}

// Submitted is the evaluated and recorded outcome of a session.
type Submitted struct {
	*scoring.Result
	PlayerID int64
	Username string
	ScoreID  int64
}

// Report is the statistics view of one player.
type Report struct {
	Username string
	Stats    store.PlayerStats
	Levels   []store.LevelPerformance
}

// Service runs quiz sessions.
type Service struct {
	engine *scoring.Engine
	bank   questions.Repository
	scores store.ScoreRepo
	log    *logger.Logger
	rng    *rand.Rand
}

// Option configures a Service.
type Option func(*Service)

// WithShuffle makes Start draw the level's questions in random order,
// up to the level's question count.
func WithShuffle(rng *rand.Rand) Option {
	return func(s *Service) { s.rng = rng }
}

// NewService creates a Service. A nil log discards output.
func NewService(engine *scoring.Engine, bank questions.Repository, scores store.ScoreRepo, log *logger.Logger, opts ...Option) *Service {
	if log == nil {
		log = logger.Nop()
	}
	s := &Service{engine: engine, bank: bank, scores: scores, log: log}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Bank returns the question repository.
func (s *Service) Bank() questions.Repository { return s.bank }

// Start validates the username and level, registers the player and
// returns the level's questions.
func (s *Service) Start(ctx context.Context, username, level string) (*Session, error) {
	name, err := ValidateUsername(username)
	if err != nil {
		return nil, err
	}
	lvl, err := questions.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	playerID, err := s.scores.EnsurePlayer(ctx, name)
	if err != nil {
		s.log.Error("ensure player failed", "player", name, "error", err)
		return nil, err
	}
	qs := s.bank.ForLevel(lvl)
	if s.rng != nil {
		qs = questions.Sample(s.bank, lvl, lvl.Info().QuestionCount, s.rng)
	}
	s.log.Debug("session started", "player", name, "level", lvl, "questions", len(qs))
	return &Session{
		PlayerID:  playerID,
		Username:  name,
		Level:     lvl,
		Questions: qs,
	}, nil
}

// Submit evaluates sub against the session's questions and records the
// score and every attempt in one transaction.
func (s *Service) Submit(ctx context.Context, sess *Session, sub scoring.Submission) (*Submitted, error) {
	res, err := s.engine.Evaluate(sess.Level, sess.Questions, sub)
	if err != nil {
		return nil, err
	}

	rec := store.SubmissionRecord{
		Score: store.ScoreRecord{
			PlayerID:   sess.PlayerID,
			Level:      string(res.Level),
			Score:      res.Score,
			MaxScore:   res.MaxScore,
			Percentage: res.Percentage,
			RiskTier:   string(res.Risk.Tier),
		},
		Attempts: make([]store.AttemptRecord, 0, len(res.Outcomes)),
	}
	for _, o := range res.Outcomes {
		rec.Attempts = append(rec.Attempts, store.AttemptRecord{
			PlayerID:   sess.PlayerID,
			QuestionID: o.QuestionID,
			Level:      string(res.Level),
			Correct:    o.Correct,
		})
	}

	scoreID, err := s.scores.RecordSubmission(ctx, rec)
	if err != nil {
		s.log.Error("record submission failed", "player", sess.Username, "level", sess.Level, "error", err)
		return nil, fmt.Errorf("record submission: %w", err)
	}

	s.log.Info("submission recorded",
		"player", sess.Username,
		"level", res.Level,
		"score", res.Score,
		"max_score", res.MaxScore,
		"risk", res.Risk.Tier,
	)
	return &Submitted{Result: res, PlayerID: sess.PlayerID, Username: sess.Username, ScoreID: scoreID}, nil
}

// Play is Start followed by Submit.
func (s *Service) Play(ctx context.Context, username, level string, sub scoring.Submission) (*Submitted, error) {
	sess, err := s.Start(ctx, username, level)
	if err != nil {
		return nil, err
	}
	return s.Submit(ctx, sess, sub)
}

// Leaderboard returns the top limit scores.
func (s *Service) Leaderboard(ctx context.Context, limit int) ([]store.LeaderboardEntry, error) {
	return s.scores.Leaderboard(ctx, limit)
}

// Stats returns the history of an existing player.
func (s *Service) Stats(ctx context.Context, username string) (*Report, error) {
	id, err := s.scores.FindPlayer(ctx, username)
	if err != nil {
		return nil, err
	}
	stats, err := s.scores.PlayerStats(ctx, id)
	if err != nil {
		return nil, err
	}
	levels, err := s.scores.CategoryPerformance(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Report{Username: username, Stats: stats, Levels: levels}, nil
}
