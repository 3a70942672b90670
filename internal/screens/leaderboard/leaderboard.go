package leaderboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/cyberquest/cyberquest/internal/questions"
	"github.com/cyberquest/cyberquest/internal/scoring"
	"github.com/cyberquest/cyberquest/internal/screen"
	"github.com/cyberquest/cyberquest/internal/store"
	"github.com/cyberquest/cyberquest/internal/ui/components"
	"github.com/cyberquest/cyberquest/internal/ui/layout"
	"github.com/cyberquest/cyberquest/internal/ui/theme"
)

// Source serves the leaderboard.
type Source interface {
	Leaderboard(ctx context.Context, limit int) ([]store.LeaderboardEntry, error)
}

type loadedMsg struct {
	Entries []store.LeaderboardEntry
	Err     error
}

// LeaderboardScreen lists the top scores.
type LeaderboardScreen struct {
	source  Source
	limit   int
	player  string
	entries []store.LeaderboardEntry
	loaded  bool
	err     error
}

var _ screen.Screen = (*LeaderboardScreen)(nil)
var _ screen.KeyHintProvider = (*LeaderboardScreen)(nil)

// New creates a LeaderboardScreen that highlights rows of player.
func New(source Source, limit int, player string) *LeaderboardScreen {
	return &LeaderboardScreen{source: source, limit: limit, player: player}
}

func (s *LeaderboardScreen) Init() tea.Cmd {
	source, limit := s.source, s.limit
	return func() tea.Msg {
		entries, err := source.Leaderboard(context.Background(), limit)
		return loadedMsg{Entries: entries, Err: err}
	}
}

func (s *LeaderboardScreen) Title() string {
	return "Leaderboard"
}

func (s *LeaderboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}

func (s *LeaderboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(loadedMsg); ok {
		s.loaded = true
		s.entries = msg.Entries
		s.err = msg.Err
	}
	return s, nil
}

func (s *LeaderboardScreen) View(width, height int) string {
	var content string
	switch {
	case s.err != nil:
		content = theme.Incorrect.Render("Could not load leaderboard: " + s.err.Error())
	case !s.loaded:
		content = theme.Hint.Render("Loading...")
	case len(s.entries) == 0:
		content = theme.Hint.Render("No scores yet. Be the first!")
	default:
		content = components.Card(Table(s.entries, s.player), components.ContentWidth(width), "")
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// Table renders entries as aligned rows, highlighting those of player.
func Table(entries []store.LeaderboardEntry, player string) string {
	var b strings.Builder
	b.WriteString(theme.Selected.Render(fmt.Sprintf("%-4s %-14s %-13s %-14s %s", "#", "Player", "Level", "Score", "Risk")))
	for i, e := range entries {
		level := questions.Level(e.Level).Info()
		row := fmt.Sprintf("%-4d %-14s %-13s %-14s ", i+1, truncate(e.Username, 14), level.Name, scoring.FormatScore(e.Score, e.MaxScore))
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if e.Username == player {
			style = lipgloss.NewStyle().Foreground(theme.Highlight).Bold(true)
		}
		b.WriteString("\n" + style.Render(row))
		b.WriteString(theme.Accented(scoring.ColorFor(e.Percentage), e.RiskTier))
	}
	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
