package scoring

import (
	"strconv"

	"github.com/cyberquest/cyberquest/internal/questions"
)

// CategoryStat is the correctness tally of one category.
type CategoryStat struct {
	Category   string
	Total      int
	Correct    int
	Percentage float64
}

// CategoryStats lists categories in order of first appearance.
type CategoryStats []CategoryStat

// Get returns the stat for a category label.
func (cs CategoryStats) Get(category string) (CategoryStat, bool) {
	for _, s := range cs {
		if s.Category == category {
			return s, true
		}
	}
	return CategoryStat{}, false
}

// Map indexes the stats by category label.
func (cs CategoryStats) Map() map[string]CategoryStat {
	out := make(map[string]CategoryStat, len(cs))
	for _, s := range cs {
		out[s.Category] = s
	}
	return out
}

// AggregateCategories tallies total and correct answers per category.
// Unanswered questions count toward the total only.
func AggregateCategories(qs []questions.Question, sub Submission) CategoryStats {
	stats := CategoryStats{}
	index := make(map[string]int)

	for _, q := range qs {
		label := q.CategoryLabel()
		i, ok := index[label]
		if !ok {
			i = len(stats)
			index[label] = i
			stats = append(stats, CategoryStat{Category: label})
		}
		stats[i].Total++
		if sub.IsCorrect(q) {
			stats[i].Correct++
		}
	}

	for i := range stats {
		if stats[i].Total > 0 {
			stats[i].Percentage = round(float64(stats[i].Correct)/float64(stats[i].Total)*100, 1)
		}
	}
	return stats
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
