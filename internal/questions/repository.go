package questions

import (
	"math/rand/v2"
	"sort"

	"github.com/cyberquest/cyberquest/internal/apperr"
)

// Repository is the read contract the engine consumes. Implementations
// must be safe for concurrent reads.
type Repository interface {
	// ForLevel returns the ordered questions of a level, or nil when the
	// level is unknown.
	ForLevel(level Level) []Question

	// ByID returns the question with the given id.
	ByID(id int) (Question, bool)

	// Categories returns every category label across all levels, sorted.
	Categories() []string

	// CountByLevel returns the number of questions per level.
	CountByLevel() map[Level]int
}

// Bank is an in-memory Repository. It is never mutated after construction.
type Bank struct {
	version string
	levels  map[Level][]Question
	byID    map[int]Question
}

var _ Repository = (*Bank)(nil)

// NewBank builds a bank from per-level question lists. Each question's
// Level is set from the key it is listed under.
func NewBank(levels map[Level][]Question) (*Bank, error) {
	b := &Bank{
		levels: make(map[Level][]Question, len(levels)),
		byID:   make(map[int]Question),
	}
	for level, qs := range levels {
		if !level.Valid() {
			return nil, apperr.Validation("level", "unknown level %q", level)
		}
		list := make([]Question, 0, len(qs))
		for _, q := range qs {
			q.Level = level
			if err := validateQuestion(q); err != nil {
				return nil, err
			}
			if _, dup := b.byID[q.ID]; dup {
				return nil, apperr.Validation("question", "duplicate id %d", q.ID)
			}
			b.byID[q.ID] = q
			list = append(list, q)
		}
		b.levels[level] = list
	}
	return b, nil
}

func validateQuestion(q Question) error {
	if q.Text == "" {
		return apperr.Validation("question", "id %d has no text", q.ID)
	}
	if len(q.Options) < 2 {
		return apperr.Validation("question", "id %d needs at least two options", q.ID)
	}
	if q.Correct < 0 || q.Correct >= len(q.Options) {
		return apperr.Validation("question", "id %d has correct index %d outside %d options", q.ID, q.Correct, len(q.Options))
	}
	return nil
}

// Version returns the bank's declared format version.
func (b *Bank) Version() string { return b.version }

func (b *Bank) ForLevel(level Level) []Question {
	qs := b.levels[level]
	if len(qs) == 0 {
		return nil
	}
	out := make([]Question, len(qs))
	copy(out, qs)
	return out
}

func (b *Bank) ByID(id int) (Question, bool) {
	q, ok := b.byID[id]
	return q, ok
}

func (b *Bank) Categories() []string {
	seen := make(map[string]bool)
	for _, q := range b.byID {
		if q.Category != "" {
			seen[q.Category] = true
		}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

func (b *Bank) CountByLevel() map[Level]int {
	out := make(map[Level]int, len(b.levels))
	for level, qs := range b.levels {
		out[level] = len(qs)
	}
	return out
}

// Sample returns up to n questions of a level in random order. A
// non-positive n returns the whole level shuffled.
func Sample(repo Repository, level Level, n int, rng *rand.Rand) []Question {
	qs := repo.ForLevel(level)
	rng.Shuffle(len(qs), func(i, j int) { qs[i], qs[j] = qs[j], qs[i] })
	if n > 0 && len(qs) > n {
		qs = qs[:n]
	}
	return qs
}

// CheckResult is the outcome of grading a single answer.
type CheckResult struct {
	Correct      bool
	Explanation  string
	Points       int
	CorrectIndex int
}

// Check grades one answer against the repository.
func Check(repo Repository, id, answer int) (CheckResult, error) {
	q, ok := repo.ByID(id)
	if !ok {
		return CheckResult{}, apperr.NotFound("question", id)
	}
	res := CheckResult{
		Correct:      answer == q.Correct,
		Explanation:  q.Explanation,
		CorrectIndex: q.Correct,
	}
	if res.Correct {
		res.Points = q.PointValue()
	}
	return res, nil
}
