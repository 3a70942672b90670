package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/cyberquest/cyberquest/internal/ui/theme"
)

const bannerArt = `
  ______      __              ____                  __
 / ____/_  __/ /_  ___  _____/ __ \__  _____  _____/ /_
/ /   / / / / __ \/ _ \/ ___/ / / / / / / _ \/ ___/ __/
/ /___/ /_/ / /_/ /  __/ /  / /_/ / /_/ /  __(__  ) /_
\____/\__, /_.___/\___/_/   \___\_\__,_/\___/____/\__/
     /____/`

const bannerCompact = "C Y B E R Q U E S T"

// RenderBanner returns the CyberQuest banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 60 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 60 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
