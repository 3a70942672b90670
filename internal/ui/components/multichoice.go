package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/cyberquest/cyberquest/internal/ui/theme"
)

// MultiChoice is a multiple-choice selector. Number keys pick an option
// directly; arrows move and Enter confirms. Once Reveal is called it
// shows the chosen and correct options.
type MultiChoice struct {
	Question     string
	Options      []string
	Selected     int
	Chosen       int // -1 until an option is confirmed
	CorrectIndex int // -1 until revealed
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(question string, options []string) MultiChoice {
	return MultiChoice{
		Question:     question,
		Options:      options,
		Chosen:       -1,
		CorrectIndex: -1,
	}
}

// Confirmed reports whether an option has been chosen.
func (m MultiChoice) Confirmed() bool {
	return m.Chosen >= 0
}

// Reveal marks which option was correct.
func (m *MultiChoice) Reveal(correct int) {
	m.CorrectIndex = correct
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Confirmed() {
		return m, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		m.Chosen = m.Selected
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if i := int(key[0] - '1'); i < len(m.Options) {
				m.Selected = i
				m.Chosen = i
			}
		}
	}
	return m, nil
}

// View renders the question and its options.
func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Question))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Confirmed() {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case m.CorrectIndex >= 0 && i == m.CorrectIndex:
			style = theme.Correct
		case m.CorrectIndex >= 0 && i == m.Chosen:
			style = theme.Incorrect
		case m.Confirmed():
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.Selected:
			style = theme.Selected
		}
		b.WriteString(style.Render(line) + "\n")
	}
	return b.String()
}
