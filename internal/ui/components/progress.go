package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/cyberquest/cyberquest/internal/ui/theme"
)

// ProgressBar displays a horizontal bar for a 0-100 percentage.
type ProgressBar struct {
	Label      string
	Percentage float64
	Color      string // hex fill color; Secondary when empty
	Width      int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, pct float64, color string, width int) ProgressBar {
	return ProgressBar{Label: label, Percentage: pct, Color: color, Width: width}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string
	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	const percentWidth = 8 // "  100.0%"
	barWidth := p.Width - lipgloss.Width(result) - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percentage / 100)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	fill := theme.Secondary
	if p.Color != "" {
		fill = theme.Hex(p.Color)
	}
	result += lipgloss.NewStyle().Background(fill).Render(strings.Repeat(" ", filled))
	result += lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", barWidth-filled))
	result += lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("  %.1f%%", p.Percentage))
	return result
}
