package scoring

import (
	"fmt"
	"sort"
	"strconv"
)

// Priority ranks how urgently a category needs work.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
)

// Suggestion is remediation guidance for one weak category.
type Suggestion struct {
	Category       string
	Performance    string
	Percentage     float64
	Priority       Priority
	Recommendation string
}

// RankSuggestions returns suggestions for the weakest categories, weakest
// first, using the default policy.
func RankSuggestions(stats CategoryStats) []Suggestion {
	return DefaultPolicy().RankSuggestions(stats)
}

// RankSuggestions sorts categories ascending by percentage (ties keep their
// input order), takes the first MaxSuggestions and keeps those below
// SuggestBelow.
func (p Policy) RankSuggestions(stats CategoryStats) []Suggestion {
	sorted := make(CategoryStats, len(stats))
	copy(sorted, stats)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Percentage < sorted[j].Percentage
	})
	if len(sorted) > p.MaxSuggestions {
		sorted = sorted[:p.MaxSuggestions]
	}

	var out []Suggestion
	for _, s := range sorted {
		if s.Percentage >= p.SuggestBelow {
			continue
		}
		priority := PriorityMedium
		if s.Percentage < p.HighPriorityBelow {
			priority = PriorityHigh
		}
		out = append(out, Suggestion{
			Category:       s.Category,
			Performance:    fmt.Sprintf("%d/%d correct (%s%%)", s.Correct, s.Total, strconv.FormatFloat(s.Percentage, 'f', 1, 64)),
			Percentage:     s.Percentage,
			Priority:       priority,
			Recommendation: fmt.Sprintf("Focus on improving your %s knowledge. Review the educational tips and resources provided.", s.Category),
		})
	}
	return out
}
