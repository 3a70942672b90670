package questions

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyberquest/cyberquest/internal/apperr"
)

func TestDefaultBank(t *testing.T) {
	b, err := Default()
	require.NoError(t, err)
	assert.Equal(t, "v1.0.0", b.Version())

	counts := b.CountByLevel()
	for _, l := range Levels {
		assert.Equal(t, l.Info().QuestionCount, counts[l], "level %s", l)
	}

	cats := b.Categories()
	assert.IsNonDecreasing(t, cats)
	assert.Contains(t, cats, "Phishing Detection")
	assert.Contains(t, cats, "Incident Response")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"beginner", LevelBeginner, false},
		{"  Advanced ", LevelAdvanced, false},
		{"INTERMEDIATE", LevelIntermediate, false},
		{"expert", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperr.IsValidation(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuestionDefaults(t *testing.T) {
	q := Question{ID: 1, Text: "q", Options: []string{"a", "b"}}
	assert.Equal(t, DefaultPoints, q.PointValue())
	assert.Equal(t, DefaultCategory, q.CategoryLabel())
	assert.Equal(t, "a", q.CorrectText())

	q.Points = 15
	q.Category = "Data Privacy"
	assert.Equal(t, 15, q.PointValue())
	assert.Equal(t, "Data Privacy", q.CategoryLabel())
}

func TestForLevelReturnsCopy(t *testing.T) {
	b, err := Default()
	require.NoError(t, err)

	qs := b.ForLevel(LevelBeginner)
	require.NotEmpty(t, qs)
	qs[0].Text = "mutated"

	again := b.ForLevel(LevelBeginner)
	assert.NotEqual(t, "mutated", again[0].Text)
	assert.Nil(t, b.ForLevel(Level("expert")))
}

func TestByIDSetsLevel(t *testing.T) {
	b, err := Default()
	require.NoError(t, err)

	q, ok := b.ByID(12)
	require.True(t, ok)
	assert.Equal(t, LevelAdvanced, q.Level)

	_, ok = b.ByID(9999)
	assert.False(t, ok)
}

func TestSample(t *testing.T) {
	b, err := Default()
	require.NoError(t, err)
	rng := rand.New(rand.NewPCG(1, 2))

	got := Sample(b, LevelBeginner, 3, rng)
	assert.Len(t, got, 3)
	seen := map[int]bool{}
	for _, q := range got {
		assert.Equal(t, LevelBeginner, q.Level)
		assert.False(t, seen[q.ID], "duplicate id %d", q.ID)
		seen[q.ID] = true
	}

	all := Sample(b, LevelBeginner, 10, rng)
	assert.ElementsMatch(t, b.ForLevel(LevelBeginner), all)

	assert.Empty(t, Sample(b, Level("expert"), 3, rng))
}

func TestCheck(t *testing.T) {
	b, err := Default()
	require.NoError(t, err)

	res, err := Check(b, 1, 2)
	require.NoError(t, err)
	assert.True(t, res.Correct)
	assert.Equal(t, 10, res.Points)
	assert.Equal(t, 2, res.CorrectIndex)

	res, err = Check(b, 1, 0)
	require.NoError(t, err)
	assert.False(t, res.Correct)
	assert.Zero(t, res.Points)
	assert.NotEmpty(t, res.Explanation)

	_, err = Check(b, 404, 0)
	assert.True(t, apperr.IsNotFound(err))
}

func TestParseRejectsInvalidBanks(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{`},
		{"missing levels", `{"version":"v1.0.0"}`},
		{"unknown level", `{"levels":{"expert":[]}}`},
		{"one option", `{"levels":{"beginner":[{"id":1,"question":"q","options":["a"],"correct":0}]}}`},
		{"correct out of range", `{"levels":{"beginner":[{"id":1,"question":"q","options":["a","b"],"correct":2}]}}`},
		{"duplicate id", `{"levels":{"beginner":[
			{"id":1,"question":"q","options":["a","b"],"correct":0},
			{"id":1,"question":"r","options":["a","b"],"correct":1}]}}`},
		{"future major", `{"version":"v2.0.0","levels":{}}`},
		{"bad version", `{"version":"latest","levels":{}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}

func TestParseVersionNormalization(t *testing.T) {
	b, err := Parse([]byte(`{"version":"1.2","levels":{}}`))
	require.NoError(t, err)
	assert.Equal(t, "v1.2.0", b.Version())

	b, err = Parse([]byte(`{"levels":{}}`))
	require.NoError(t, err)
	assert.Equal(t, "v1.0.0", b.Version())
}

func TestLoadFileYAML(t *testing.T) {
	const doc = `
version: v1.1.0
levels:
  beginner:
    - id: 100
      category: Password Security
      question: Which is a password manager's main benefit?
      options:
        - Unique strong passwords per site
        - Faster typing
      correct: 0
    - id: 101
      question: Uncategorised question
      options: [Agree, Disagree]
      correct: 1
`
	path := filepath.Join(t.TempDir(), "bank.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	b, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "v1.1.0", b.Version())

	qs := b.ForLevel(LevelBeginner)
	require.Len(t, qs, 2)
	assert.Equal(t, DefaultCategory, qs[1].CategoryLabel())
	assert.Equal(t, DefaultPoints, qs[1].PointValue())
	assert.Equal(t, []string{"Password Security"}, b.Categories())
}

func TestCategoryIcon(t *testing.T) {
	assert.Equal(t, "🎣", CategoryIcon("Phishing Detection"))
	assert.Equal(t, "📝", CategoryIcon("Unknown"))
}
