package scoring

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyberquest/cyberquest/internal/apperr"
	"github.com/cyberquest/cyberquest/internal/questions"
)

func fixtureQuestions(categories ...string) []questions.Question {
	qs := make([]questions.Question, 0, len(categories))
	for i, c := range categories {
		qs = append(qs, questions.Question{
			ID:          i + 1,
			Level:       questions.LevelBeginner,
			Category:    c,
			Text:        fmt.Sprintf("question %d", i+1),
			Options:     []string{"a", "b", "c", "d"},
			Correct:     1,
			Explanation: fmt.Sprintf("because %d", i+1),
		})
	}
	return qs
}

func allWrong(qs []questions.Question) Submission {
	sub := Submission{}
	for _, q := range qs {
		sub[q.ID] = 0
	}
	return sub
}

func TestEvaluateFourOfFive(t *testing.T) {
	qs := fixtureQuestions("A", "A", "B", "B", "C")
	sub := Submission{1: 1, 2: 1, 3: 1, 4: 1, 5: 3}

	res, err := NewEngine(DefaultPolicy()).Evaluate(questions.LevelBeginner, qs, sub)
	require.NoError(t, err)
	assert.Equal(t, 40, res.Score)
	assert.Equal(t, 50, res.MaxScore)
	assert.Equal(t, 80.0, res.Percentage)
	assert.Equal(t, TierSecurityAware, res.Risk.Tier)
	assert.Len(t, res.Outcomes, 5)
	assert.False(t, res.Outcomes[4].Correct)
}

func TestEvaluateAllWrong(t *testing.T) {
	qs := fixtureQuestions("A", "A", "B", "B", "C")

	res, err := NewEngine(DefaultPolicy()).Evaluate(questions.LevelBeginner, qs, allWrong(qs))
	require.NoError(t, err)
	assert.Zero(t, res.Score)
	assert.Zero(t, res.Percentage)
	assert.Equal(t, TierHighRisk, res.Risk.Tier)
}

func TestEvaluateCategorySuggestions(t *testing.T) {
	qs := fixtureQuestions("A", "A", "A", "B", "B")
	sub := Submission{1: 1, 2: 0, 3: 0, 4: 0}

	res, err := NewEngine(DefaultPolicy()).Evaluate(questions.LevelBeginner, qs, sub)
	require.NoError(t, err)

	a, ok := res.Categories.Get("A")
	require.True(t, ok)
	assert.Equal(t, 33.3, a.Percentage)
	b, ok := res.Categories.Get("B")
	require.True(t, ok)
	assert.Equal(t, 0.0, b.Percentage)

	require.Len(t, res.Suggestions, 2)
	assert.Equal(t, "B", res.Suggestions[0].Category)
	assert.Equal(t, PriorityHigh, res.Suggestions[0].Priority)
	assert.Equal(t, "A", res.Suggestions[1].Category)
	assert.Equal(t, PriorityHigh, res.Suggestions[1].Priority)
	assert.Equal(t, "1/3 correct (33.3%)", res.Suggestions[1].Performance)
}

func TestEvaluateEmptySet(t *testing.T) {
	res, err := NewEngine(DefaultPolicy()).Evaluate(questions.LevelAdvanced, nil, Submission{})
	require.NoError(t, err)
	assert.Zero(t, res.MaxScore)
	assert.Zero(t, res.Percentage)
	assert.Equal(t, TierHighRisk, res.Risk.Tier)
	assert.Empty(t, res.Categories)
	assert.Empty(t, res.Feedback)
	assert.Empty(t, res.Suggestions)
}

func TestEvaluateRejectsBadInput(t *testing.T) {
	qs := fixtureQuestions("A")
	e := NewEngine(DefaultPolicy())

	_, err := e.Evaluate(questions.Level("expert"), qs, Submission{})
	assert.True(t, apperr.IsValidation(err))

	_, err = e.Evaluate(questions.LevelBeginner, qs, Submission{1: 4})
	assert.True(t, apperr.IsValidation(err))

	_, err = e.Evaluate(questions.LevelBeginner, qs, Submission{1: -1})
	assert.True(t, apperr.IsValidation(err))

	// Answers for questions outside the set are ignored.
	res, err := e.Evaluate(questions.LevelBeginner, qs, Submission{99: 7})
	require.NoError(t, err)
	assert.Zero(t, res.Score)
}

func TestEvaluateUsesPointValues(t *testing.T) {
	qs := fixtureQuestions("A", "B")
	qs[1].Points = 15

	res, err := NewEngine(DefaultPolicy()).Evaluate(questions.LevelBeginner, qs, Submission{2: 1})
	require.NoError(t, err)
	assert.Equal(t, 15, res.Score)
	assert.Equal(t, 25, res.MaxScore)
	assert.Equal(t, 60.0, res.Percentage)
	assert.Equal(t, TierSafeUser, res.Risk.Tier)
}

func TestEvaluateLevelFromRepository(t *testing.T) {
	bank, err := questions.Default()
	require.NoError(t, err)

	sub := Submission{}
	for _, q := range bank.ForLevel(questions.LevelBeginner) {
		sub[q.ID] = q.Correct
	}
	res, err := NewEngine(DefaultPolicy()).EvaluateLevel(bank, questions.LevelBeginner, sub)
	require.NoError(t, err)
	assert.Equal(t, 100.0, res.Percentage)
	assert.Equal(t, TierCyberDefender, res.Risk.Tier)
	assert.Empty(t, res.Suggestions)

	_, err = NewEngine(DefaultPolicy()).EvaluateLevel(bank, questions.Level("expert"), sub)
	assert.True(t, apperr.IsValidation(err))
}

func TestParseSubmission(t *testing.T) {
	sub, err := ParseSubmission(map[string]string{"1": "2", " 3 ": " 0 ", "4": ""})
	require.NoError(t, err)
	assert.Equal(t, Submission{1: 2, 3: 0}, sub)

	_, err = ParseSubmission(map[string]string{"1": "two"})
	assert.True(t, apperr.IsValidation(err))

	_, err = ParseSubmission(map[string]string{"q1": "2"})
	assert.True(t, apperr.IsValidation(err))
}
