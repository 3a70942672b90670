package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateCategoriesTotals(t *testing.T) {
	qs := fixtureQuestions("A", "B", "", "A", "C", "")
	sub := Submission{1: 1, 2: 0, 3: 1, 6: 1}

	stats := AggregateCategories(qs, sub)

	total, correct := 0, 0
	for _, s := range stats {
		assert.LessOrEqual(t, s.Correct, s.Total)
		total += s.Total
		correct += s.Correct
	}
	assert.Equal(t, len(qs), total)
	assert.LessOrEqual(t, correct, total)

	labels := []string{}
	for _, s := range stats {
		labels = append(labels, s.Category)
	}
	assert.Equal(t, []string{"A", "B", "General", "C"}, labels)

	general, ok := stats.Get("General")
	require.True(t, ok)
	assert.Equal(t, 2, general.Total)
	assert.Equal(t, 2, general.Correct)
	assert.Equal(t, 100.0, general.Percentage)

	c := stats.Map()["C"]
	assert.Equal(t, 1, c.Total)
	assert.Zero(t, c.Correct)
	assert.Zero(t, c.Percentage)
}

func TestAggregateCategoriesEmpty(t *testing.T) {
	stats := AggregateCategories(nil, Submission{1: 1})
	assert.Empty(t, stats)
	_, ok := stats.Get("A")
	assert.False(t, ok)
}

func TestAggregateCategoriesRounding(t *testing.T) {
	qs := fixtureQuestions("A", "A", "A")
	stats := AggregateCategories(qs, Submission{1: 1, 2: 1})
	assert.Equal(t, 66.7, stats[0].Percentage)
}
