package home

import (
	"charm.land/lipgloss/v2"

	"github.com/cyberquest/cyberquest/internal/scoring"
	"github.com/cyberquest/cyberquest/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle  MascotVariant = iota // No games yet
	MascotProud                      // Best tier is Cyber Defender
	MascotAlert                      // Average is in an at-risk tier
)

const mascotIdle = ` ╱▔▔▔▔▔╲
▕ ◉   ◉ ▏
▕   ▽   ▏
 ╲ 0101╱
  ╲___╱`

const mascotProud = ` ╱▔▔▔▔▔╲
▕ ★   ★ ▏
▕   ◡   ▏
 ╲ 0101╱
  ╲___╱`

const mascotAlert = ` ╱▔▔▔▔▔╲
▕ ◉   ◉ ▏ !
▕   ︵   ▏
 ╲ 0101╱
  ╲___╱`

// variantFor picks the mascot from a player's history.
func variantFor(games int, best scoring.RiskTier, avgTier scoring.RiskTier) MascotVariant {
	switch {
	case games == 0:
		return MascotIdle
	case avgTier == scoring.TierAtRisk || avgTier == scoring.TierHighRisk:
		return MascotAlert
	case best == scoring.TierCyberDefender:
		return MascotProud
	}
	return MascotIdle
}

// RenderMascot returns the shield mascot for the given variant.
func RenderMascot(v MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary

	switch v {
	case MascotProud:
		art = mascotProud
		fg = theme.Highlight
	case MascotAlert:
		art = mascotAlert
		fg = theme.Error
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
