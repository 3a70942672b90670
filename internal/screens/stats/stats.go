package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/cyberquest/cyberquest/internal/apperr"
	"github.com/cyberquest/cyberquest/internal/questions"
	svc "github.com/cyberquest/cyberquest/internal/quiz"
	"github.com/cyberquest/cyberquest/internal/scoring"
	"github.com/cyberquest/cyberquest/internal/screen"
	"github.com/cyberquest/cyberquest/internal/store"
	"github.com/cyberquest/cyberquest/internal/ui/components"
	"github.com/cyberquest/cyberquest/internal/ui/layout"
	"github.com/cyberquest/cyberquest/internal/ui/theme"
)

// Source serves player reports.
type Source interface {
	Stats(ctx context.Context, username string) (*svc.Report, error)
}

type loadedMsg struct {
	Report *svc.Report
	Err    error
}

// StatsScreen shows one player's history.
type StatsScreen struct {
	source   Source
	username string
	report   *svc.Report
	err      error
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a StatsScreen for username.
func New(source Source, username string) *StatsScreen {
	return &StatsScreen{source: source, username: username}
}

func (s *StatsScreen) Init() tea.Cmd {
	source, username := s.source, s.username
	return func() tea.Msg {
		r, err := source.Stats(context.Background(), username)
		return loadedMsg{Report: r, Err: err}
	}
}

func (s *StatsScreen) Title() string {
	return "My Stats"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(loadedMsg); ok {
		s.report = msg.Report
		s.err = msg.Err
		// Players are registered on their first quiz.
		if apperr.IsNotFound(msg.Err) {
			s.report = &svc.Report{Username: s.username}
			s.err = nil
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	var content string
	switch {
	case s.err != nil:
		content = theme.Incorrect.Render("Could not load stats: " + s.err.Error())
	case s.report == nil:
		content = theme.Hint.Render("Loading...")
	default:
		content = Render(s.report, components.ContentWidth(width))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// Render lays out a player report inside a card of width cw.
func Render(r *svc.Report, cw int) string {
	st := r.Stats
	var b strings.Builder
	b.WriteString(theme.Selected.Render(r.Username))
	b.WriteString("\n\n")

	if st.TotalGames == 0 {
		b.WriteString(theme.Hint.Render("No games played yet."))
		return components.Card(b.String(), cw, "")
	}

	b.WriteString(fmt.Sprintf("Games played:    %d\n", st.TotalGames))
	b.WriteString("Average score:   " + theme.Accented(scoring.ColorFor(st.AveragePercentage), fmt.Sprintf("%.2f%%", st.AveragePercentage)))
	if best := st.Best; best != nil {
		info := questions.Level(best.Level).Info()
		b.WriteString(fmt.Sprintf("\nBest score:      %s on %s (%s)",
			scoring.FormatScore(best.Score, best.MaxScore), info.Name, best.RiskTier))
		b.WriteString("\n" + theme.Hint.Render("                 "+best.PlayedAt.Local().Format("Jan 2, 2006 15:04")))
	}

	if len(r.Levels) > 0 {
		b.WriteString("\n\n" + theme.Selected.Render("Accuracy by level"))
		for _, lp := range r.Levels {
			b.WriteString("\n" + levelBar(lp, cw-8))
		}
	}
	return components.Card(b.String(), cw, "")
}

func levelBar(lp store.LevelPerformance, width int) string {
	var pct float64
	if lp.TotalAttempts > 0 {
		pct = float64(lp.CorrectAttempts) / float64(lp.TotalAttempts) * 100
	}
	info := questions.Level(lp.Level).Info()
	label := fmt.Sprintf("%-13s %3d/%-3d", info.Name, lp.CorrectAttempts, lp.TotalAttempts)
	return components.NewProgressBar(label, pct, info.Color, width).View()
}
