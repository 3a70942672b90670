package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyberquest/cyberquest/internal/apperr"
	"github.com/cyberquest/cyberquest/internal/store"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"CYBERQUEST_CONFIG", "CYBERQUEST_DB", "CYBERQUEST_QUESTIONS", "CYBERQUEST_LOG_MODE", "CYBERQUEST_LEADERBOARD_LIMIT"} {
		t.Setenv(k, "")
	}
	// Commands are package globals, so flag values survive between runs.
	for _, name := range []string{"db", "config", "questions"} {
		require.NoError(t, rootCmd.PersistentFlags().Set(name, ""))
	}
	require.NoError(t, submitCmd.Flags().Lookup("answer").Value.(pflag.SliceValue).Replace(nil))
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestParseAnswerFlags(t *testing.T) {
	raw, err := parseAnswerFlags([]string{"1=2", " 3 = 0 "})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"1": "2", "3": "0"}, raw)

	for _, bad := range []string{"1", "=2", "1="} {
		_, err := parseAnswerFlags([]string{bad})
		assert.True(t, apperr.IsValidation(err), bad)
	}
}

func TestSubmitThenLeaderboardAndStats(t *testing.T) {
	clearEnv(t)
	db := filepath.Join(t.TempDir(), "cq.db")

	out, err := execute(t, "--db", db, "submit",
		"--user", "alice", "--level", "beginner",
		"--answer", "1=2", "--answer", "2=2", "--answer", "3=1", "--answer", "4=1", "--answer", "5=1")
	require.NoError(t, err)
	assert.Contains(t, out, "Cyber Defender")

	out, err = execute(t, "--db", db, "leaderboard", "--limit", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "alice")

	out, err = execute(t, "--db", db, "stats", "--user", "alice")
	require.NoError(t, err)
	assert.Contains(t, out, "Beginner")

	out, err = execute(t, "--db", db, "stats", "--user", "nobody")
	require.NoError(t, err)
	assert.Contains(t, out, "No games recorded")
}

func TestSubmitRejectsBadLevel(t *testing.T) {
	clearEnv(t)
	db := filepath.Join(t.TempDir(), "cq.db")

	_, err := execute(t, "--db", db, "submit", "--user", "alice", "--level", "expert", "--answer", "1=0")
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestQuestionsSummary(t *testing.T) {
	clearEnv(t)
	out, err := execute(t, "questions")
	require.NoError(t, err)
	assert.Contains(t, out, "Beginner")
	assert.Contains(t, out, "Categories:")
}

func TestResetRequiresConfirmation(t *testing.T) {
	clearEnv(t)
	db := filepath.Join(t.TempDir(), "cq.db")
	_, err := execute(t, "--db", db, "reset")
	require.Error(t, err)

	_, err = execute(t, "--db", db, "reset", "--yes")
	require.NoError(t, err)
}

// writeBank writes a beginner-only bank of n questions whose correct
// option is always index 1.
func writeBank(t *testing.T, n int) string {
	t.Helper()
	qs := make([]map[string]any, 0, n)
	for i := 1; i <= n; i++ {
		qs = append(qs, map[string]any{
			"id":       i,
			"category": "Password Security",
			"question": fmt.Sprintf("Question %d?", i),
			"options":  []string{"no", "yes", "maybe"},
			"correct":  1,
			"points":   10,
		})
	}
	raw, err := json.Marshal(map[string]any{
		"version": "v1.0.0",
		"levels":  map[string]any{"beginner": qs},
	})
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "bank.json")
	require.NoError(t, os.WriteFile(path, raw, 0o600))
	return path
}

func TestSubmitScoresFullLevel(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	db := filepath.Join(dir, "cq.db")
	bank := writeBank(t, 8)

	args := []string{"--db", db, "--questions", bank, "submit", "--user", "bob", "--level", "beginner"}
	for i := 1; i <= 8; i++ {
		args = append(args, "--answer", fmt.Sprintf("%d=1", i))
	}
	out, err := execute(t, args...)
	require.NoError(t, err)
	assert.Contains(t, out, "80/80")

	st, err := store.Open(db)
	require.NoError(t, err)
	defer st.Close()

	var score, maxScore, attempts int
	require.NoError(t, st.DB().QueryRow(`SELECT score, max_score FROM scores`).Scan(&score, &maxScore))
	require.NoError(t, st.DB().QueryRow(`SELECT COUNT(*) FROM question_attempts`).Scan(&attempts))
	assert.Equal(t, 80, score)
	assert.Equal(t, 80, maxScore)
	assert.Equal(t, 8, attempts)
}
