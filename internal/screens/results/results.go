package results

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	svc "github.com/cyberquest/cyberquest/internal/quiz"
	"github.com/cyberquest/cyberquest/internal/router"
	"github.com/cyberquest/cyberquest/internal/screen"
	"github.com/cyberquest/cyberquest/internal/ui/layout"
)

// ResultsScreen shows a scored submission.
type ResultsScreen struct {
	result *svc.Submitted
	offset int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a new ResultsScreen.
func New(result *svc.Submitted) *ResultsScreen {
	return &ResultsScreen{result: result}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Enter", Description: "Home"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up", "k":
			if s.offset > 0 {
				s.offset--
			}
		case "down", "j":
			s.offset++
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	if s.result == nil {
		return ""
	}
	lines := strings.Split(Render(s.result, width), "\n")

	// Clamp so the last page stays full.
	maxOffset := len(lines) - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.offset > maxOffset {
		s.offset = maxOffset
	}
	end := s.offset + height
	if end > len(lines) || height <= 0 {
		end = len(lines)
	}
	visible := strings.Join(lines[s.offset:end], "\n")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, visible)
}
