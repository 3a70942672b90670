package leaderboard

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/cyberquest/cyberquest/internal/store"
)

type fakeSource struct {
	entries []store.LeaderboardEntry
	err     error
	limit   int
}

func (f *fakeSource) Leaderboard(_ context.Context, limit int) ([]store.LeaderboardEntry, error) {
	f.limit = limit
	return f.entries, f.err
}

func load(t *testing.T, s *LeaderboardScreen) {
	t.Helper()
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected load command")
	}
	s.Update(cmd())
}

func TestLeaderboardScreen_ShowsEntries(t *testing.T) {
	src := &fakeSource{entries: []store.LeaderboardEntry{
		{Username: "carol", Level: "advanced", Score: 95, MaxScore: 100, Percentage: 95, RiskTier: "Cyber Defender", PlayedAt: time.Now()},
		{Username: "alice", Level: "beginner", Score: 80, MaxScore: 100, Percentage: 80, RiskTier: "Security Aware", PlayedAt: time.Now()},
	}}
	s := New(src, 10, "alice")
	load(t, s)

	if src.limit != 10 {
		t.Errorf("limit = %d, want 10", src.limit)
	}
	view := s.View(100, 30)
	for _, want := range []string{"carol", "alice", "Advanced", "95/100 (95%)", "Security Aware"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Index(view, "carol") > strings.Index(view, "alice") {
		t.Error("rows should keep leaderboard order")
	}
}

func TestLeaderboardScreen_Empty(t *testing.T) {
	s := New(&fakeSource{}, 10, "")
	if !strings.Contains(s.View(100, 30), "Loading") {
		t.Error("expected loading state before data arrives")
	}
	load(t, s)
	if !strings.Contains(s.View(100, 30), "No scores yet") {
		t.Error("expected empty state")
	}
}

func TestLeaderboardScreen_Error(t *testing.T) {
	s := New(&fakeSource{err: errors.New("db locked")}, 10, "")
	load(t, s)
	if !strings.Contains(s.View(100, 30), "db locked") {
		t.Error("expected error message")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdefghij", 5); got != "abcd…" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("abc", 5); got != "abc" {
		t.Errorf("truncate = %q", got)
	}
}
