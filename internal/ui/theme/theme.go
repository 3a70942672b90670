package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette, terminal green on navy.
var (
	Primary   = lipgloss.Color("#22D3EE") // Cyan
	Secondary = lipgloss.Color("#10B981") // Emerald
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#28A745") // Green
	Error     = lipgloss.Color("#DC3545") // Red
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0B1120") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
	Highlight = lipgloss.Color("#FACC15") // Yellow
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Hex turns a "#rrggbb" string from the scoring or question packages into
// a color, falling back to Text when empty.
func Hex(hex string) color.Color {
	if hex == "" {
		return Text
	}
	return lipgloss.Color(hex)
}

// Accented renders s bold in the given hex color.
func Accented(hex, s string) string {
	return lipgloss.NewStyle().Foreground(Hex(hex)).Bold(true).Render(s)
}
