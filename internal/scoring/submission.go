package scoring

import (
	"strconv"
	"strings"

	"github.com/cyberquest/cyberquest/internal/apperr"
	"github.com/cyberquest/cyberquest/internal/questions"
)

// Submission maps question id to the selected option index. Questions
// without a key were not answered.
type Submission map[int]int

// Answer returns the selected index for a question.
func (s Submission) Answer(questionID int) (int, bool) {
	idx, ok := s[questionID]
	return idx, ok
}

// IsCorrect reports whether q was answered with its correct option.
func (s Submission) IsCorrect(q questions.Question) bool {
	idx, ok := s[q.ID]
	return ok && idx == q.Correct
}

// ParseSubmission converts raw form values keyed by question id into a
// Submission. Blank values are treated as unanswered.
func ParseSubmission(raw map[string]string) (Submission, error) {
	sub := make(Submission, len(raw))
	for k, v := range raw {
		id, err := strconv.Atoi(strings.TrimSpace(k))
		if err != nil {
			return nil, apperr.Validation("answer", "question id %q is not an integer", k)
		}
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		idx, err := strconv.Atoi(v)
		if err != nil {
			return nil, apperr.Validation("answer", "option %q for question %d is not an integer", v, id)
		}
		sub[id] = idx
	}
	return sub, nil
}

// validateAgainst rejects answers whose option index falls outside the
// question's option list.
func (s Submission) validateAgainst(qs []questions.Question) error {
	for _, q := range qs {
		idx, ok := s[q.ID]
		if !ok {
			continue
		}
		if idx < 0 || idx >= len(q.Options) {
			return apperr.Validation("answer", "option %d out of range for question %d (%d options)", idx, q.ID, len(q.Options))
		}
	}
	return nil
}
