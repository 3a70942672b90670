package scoring

import (
	"github.com/cyberquest/cyberquest/internal/apperr"
	"github.com/cyberquest/cyberquest/internal/questions"
)

// Outcome records whether one question was answered correctly.
type Outcome struct {
	QuestionID int
	Correct    bool
}

// Result is everything computed for one submission.
type Result struct {
	Level       questions.Level
	Score       int
	MaxScore    int
	Percentage  float64
	Risk        RiskOutcome
	Categories  CategoryStats
	Feedback    []FeedbackItem
	Suggestions []Suggestion
	Outcomes    []Outcome
}

// Engine evaluates submissions under a policy.
type Engine struct {
	policy Policy
}

// NewEngine creates an engine with the given policy.
func NewEngine(policy Policy) *Engine {
	return &Engine{policy: policy}
}

// Policy returns the engine's policy.
func (e *Engine) Policy() Policy { return e.policy }

// Evaluate scores sub against qs and runs the category, feedback, risk and
// suggestion steps.
func (e *Engine) Evaluate(level questions.Level, qs []questions.Question, sub Submission) (*Result, error) {
	if !level.Valid() {
		return nil, apperr.Validation("level", "unknown level %q", level)
	}
	if err := sub.validateAgainst(qs); err != nil {
		return nil, err
	}

	res := &Result{
		Level:    level,
		Outcomes: make([]Outcome, 0, len(qs)),
	}
	for _, q := range qs {
		points := q.PointValue()
		res.MaxScore += points
		correct := sub.IsCorrect(q)
		if correct {
			res.Score += points
		}
		res.Outcomes = append(res.Outcomes, Outcome{QuestionID: q.ID, Correct: correct})
	}

	res.Percentage = round(Percentage(res.Score, res.MaxScore), 2)
	res.Risk = e.policy.Classify(res.Score, res.MaxScore)
	res.Categories = AggregateCategories(qs, sub)
	res.Feedback = GenerateFeedback(qs, sub)
	res.Suggestions = e.policy.RankSuggestions(res.Categories)
	return res, nil
}

// EvaluateLevel pulls the level's questions from repo and evaluates sub.
func (e *Engine) EvaluateLevel(repo questions.Repository, level questions.Level, sub Submission) (*Result, error) {
	if !level.Valid() {
		return nil, apperr.Validation("level", "unknown level %q", level)
	}
	return e.Evaluate(level, repo.ForLevel(level), sub)
}
