package stats

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/cyberquest/cyberquest/internal/apperr"
	svc "github.com/cyberquest/cyberquest/internal/quiz"
	"github.com/cyberquest/cyberquest/internal/store"
)

type fakeSource struct {
	reports map[string]*svc.Report
}

func (f fakeSource) Stats(_ context.Context, username string) (*svc.Report, error) {
	r, ok := f.reports[username]
	if !ok {
		return nil, apperr.NotFound("player", username)
	}
	return r, nil
}

func loaded(t *testing.T, s *StatsScreen) string {
	t.Helper()
	s.Update(s.Init()())
	return s.View(100, 30)
}

func TestStatsScreen_Report(t *testing.T) {
	src := fakeSource{reports: map[string]*svc.Report{
		"alice": {
			Username: "alice",
			Stats: store.PlayerStats{
				TotalGames:        2,
				AveragePercentage: 70,
				Best: &store.BestScore{
					Level: "advanced", Score: 60, MaxScore: 75, Percentage: 80,
					RiskTier: "Security Aware", PlayedAt: time.Now(),
				},
			},
			Levels: []store.LevelPerformance{
				{Level: "beginner", TotalAttempts: 5, CorrectAttempts: 3},
				{Level: "advanced", TotalAttempts: 5, CorrectAttempts: 4},
			},
		},
	}}

	view := loaded(t, New(src, "alice"))
	for _, want := range []string{"Games played:    2", "70.00%", "60/75 (80%)", "Accuracy by level", "Beginner", "Advanced"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestStatsScreen_NoGames(t *testing.T) {
	src := fakeSource{reports: map[string]*svc.Report{"bob": {Username: "bob"}}}
	if view := loaded(t, New(src, "bob")); !strings.Contains(view, "No games played yet") {
		t.Error("expected empty state")
	}
}

func TestStatsScreen_UnknownPlayer(t *testing.T) {
	view := loaded(t, New(fakeSource{}, "ghost"))
	if !strings.Contains(view, "ghost") || !strings.Contains(view, "No games played yet") {
		t.Error("unregistered players should see the empty state")
	}
}
