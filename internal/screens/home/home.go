package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/cyberquest/cyberquest/internal/apperr"
	"github.com/cyberquest/cyberquest/internal/questions"
	"github.com/cyberquest/cyberquest/internal/router"
	"github.com/cyberquest/cyberquest/internal/scoring"
	"github.com/cyberquest/cyberquest/internal/screen"
	"github.com/cyberquest/cyberquest/internal/screens/leaderboard"
	quizscreen "github.com/cyberquest/cyberquest/internal/screens/quiz"
	"github.com/cyberquest/cyberquest/internal/screens/stats"
	"github.com/cyberquest/cyberquest/internal/store"
	"github.com/cyberquest/cyberquest/internal/ui/components"
	"github.com/cyberquest/cyberquest/internal/ui/layout"
)

// Services is everything the home screen and the screens it opens need.
type Services interface {
	quizscreen.Runner
	leaderboard.Source
	stats.Source
}

type statsLoadedMsg struct {
	Stats store.PlayerStats
	Err   error
}

// HomeScreen is the level menu shown after sign-in.
type HomeScreen struct {
	services Services
	username string
	limit    int

	menu    components.Menu
	labels  []string
	details []string
	stats   *store.PlayerStats
	mascot  MascotVariant
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.Refresher = (*HomeScreen)(nil)

// New creates a HomeScreen for username. limit is the leaderboard size.
func New(services Services, username string, limit int) *HomeScreen {
	h := &HomeScreen{services: services, username: username, limit: limit}

	var items []components.MenuItem
	for _, lvl := range questions.Levels {
		info := lvl.Info()
		h.labels = append(h.labels, strings.ToUpper(info.Name))
		h.details = append(h.details, info.Description)
		items = append(items, components.MenuItem{Label: info.Name, Action: h.push(func() screen.Screen {
			return quizscreen.New(services, username, lvl)
		})})
	}

	h.labels = append(h.labels, "LEADERBOARD", "MY STATS", "EXIT")
	h.details = append(h.details, "Top scores across all players", "Your games and accuracy by level", "")
	items = append(items,
		components.MenuItem{Label: "Leaderboard", Action: h.push(func() screen.Screen {
			return leaderboard.New(services, limit, username)
		})},
		components.MenuItem{Label: "My Stats", Action: h.push(func() screen.Screen {
			return stats.New(services, username)
		})},
		components.MenuItem{Label: "Exit", Action: func() tea.Cmd { return tea.Quit }},
	)

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) push(build func() screen.Screen) func() tea.Cmd {
	return func() tea.Cmd {
		next := build()
		return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.Refresh()
}

// Refresh reloads the player's stats.
func (h *HomeScreen) Refresh() tea.Cmd {
	services, username := h.services, h.username
	return func() tea.Msg {
		r, err := services.Stats(context.Background(), username)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		return statsLoadedMsg{Stats: r.Stats}
	}
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(statsLoadedMsg); ok {
		h.applyStats(msg)
		return h, nil
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) applyStats(msg statsLoadedMsg) {
	st := msg.Stats
	if msg.Err != nil && !apperr.IsNotFound(msg.Err) {
		// Keep the last known stats; the menu still works.
		return
	}
	h.stats = &st

	var best scoring.RiskTier
	if st.Best != nil {
		best = scoring.RiskTier(st.Best.RiskTier)
	}
	avgTier := scoring.DefaultPolicy().ClassifyPercentage(st.AveragePercentage).Tier
	h.mascot = variantFor(st.TotalGames, best, avgTier)
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header and footer.
	compact := layout.IsCompact(width, height+8)
	cw := components.ContentWidth(width)

	sections := []string{renderTitle(cw, compact)}
	if !compact {
		sections = append(sections, renderMascotBox(h.mascot, cw))
	}
	sections = append(sections, renderStatsBar(h.stats, cw, compact))
	if compact {
		sections = append(sections, renderArcadeMenuCompact(h.labels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderArcadeMenu(h.labels, h.menu.Selected, cw))
	}
	if d := h.details[h.menu.Selected]; d != "" {
		sections = append(sections, renderDetail(d, cw))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}
