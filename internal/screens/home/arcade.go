package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/cyberquest/cyberquest/internal/scoring"
	"github.com/cyberquest/cyberquest/internal/store"
	"github.com/cyberquest/cyberquest/internal/ui/theme"
)

const arcadeTitleFull = `┏━╸╻ ╻┏┓ ┏━╸┏━┓┏━┓╻ ╻┏━╸┏━┓╺┳╸
┃  ┗┳┛┣┻┓┣╸ ┣┳┛┃┓┃┃ ┃┣╸ ┗━┓ ┃
┗━╸ ╹ ┗━┛┗━╸╹┗╸┗┻┛┗━┛┗━╸┗━┛ ╹`

const arcadeTitleCompact = "C · Y · B · E · R · Q · U · E · S · T"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	title := arcadeTitleFull
	if compact {
		title = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(lipgloss.NewStyle().Foreground(theme.Highlight).Bold(true).Render(title))
}

// renderStatsBar renders the player's history in a bordered box.
func renderStatsBar(st *store.PlayerStats, cw int, compact bool) string {
	gamesStyle := lipgloss.NewStyle().Foreground(theme.Highlight).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var line string
	switch {
	case st == nil:
		line = dimStyle.Render("loading stats...")
	case st.TotalGames == 0:
		line = dimStyle.Render("NO GAMES YET · PICK A LEVEL")
	default:
		avg := theme.Accented(scoring.ColorFor(st.AveragePercentage), fmt.Sprintf("%.0f%%", st.AveragePercentage))
		best := ""
		if st.Best != nil {
			best = theme.Accented(scoring.ColorFor(st.Best.Percentage), st.Best.RiskTier)
		}
		if compact {
			line = fmt.Sprintf("%s %s %s", gamesStyle.Render(fmt.Sprintf("▶%d", st.TotalGames)), avg, best)
		} else {
			line = fmt.Sprintf("%s  AVG %s  BEST %s",
				gamesStyle.Render(fmt.Sprintf("▶ %d GAMES", st.TotalGames)), avg, best)
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(cw).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(line)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(items []string, selected int, cw int) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Highlight).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Highlight).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, label := range items {
		if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderArcadeMenuCompact renders menu items as plain lines for small
// terminals where bordered buttons would overflow.
func renderArcadeMenuCompact(items []string, selected int, cw int) string {
	lines := make([]string, 0, len(items))
	for i, label := range items {
		if i == selected {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Highlight).
				Bold(true).
				Render(" ▸ "+label+" "))
			continue
		}
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Text).Render("   "+label))
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderDetail renders the dim description under the menu.
func renderDetail(text string, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Width(cw).
		Align(lipgloss.Center).
		Render(text)
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
