package scoring

import (
	"fmt"
	"math"
)

// RiskTier names a risk classification.
type RiskTier string

const (
	TierCyberDefender RiskTier = "Cyber Defender"
	TierSecurityAware RiskTier = "Security Aware"
	TierSafeUser      RiskTier = "Safe User"
	TierAtRisk        RiskTier = "At Risk"
	TierHighRisk      RiskTier = "High Risk"
)

// RiskOutcome is the display form of a tier.
type RiskOutcome struct {
	Tier        RiskTier
	Description string
	Marker      string
	Color       string
}

var outcomes = map[RiskTier]RiskOutcome{
	TierCyberDefender: {
		Tier:        TierCyberDefender,
		Description: "Outstanding! You're a cybersecurity champion! You understand security fundamentals and can protect yourself and others online.",
		Marker:      "🛡️",
		Color:       "#10b981",
	},
	TierSecurityAware: {
		Tier:        TierSecurityAware,
		Description: "Great job! You have strong cybersecurity awareness. Keep learning and stay vigilant!",
		Marker:      "🔐",
		Color:       "#3b82f6",
	},
	TierSafeUser: {
		Tier:        TierSafeUser,
		Description: "Good foundation! You understand basic security concepts but should continue learning to improve your defenses.",
		Marker:      "🔒",
		Color:       "#f59e0b",
	},
	TierAtRisk: {
		Tier:        TierAtRisk,
		Description: "You're vulnerable to many common attacks. Take time to learn cybersecurity basics to protect yourself online!",
		Marker:      "⚠️",
		Color:       "#f97316",
	},
	TierHighRisk: {
		Tier:        TierHighRisk,
		Description: "Critical! Your cybersecurity knowledge needs immediate improvement. You're highly vulnerable to attacks. Please study the educational materials!",
		Marker:      "🚨",
		Color:       "#ef4444",
	},
}

// OutcomeFor returns the display record for a tier name.
func OutcomeFor(tier RiskTier) (RiskOutcome, bool) {
	o, ok := outcomes[tier]
	return o, ok
}

// Percentage returns 100*score/max, or 0 when max is 0.
func Percentage(score, max int) float64 {
	if max <= 0 {
		return 0
	}
	return float64(score) / float64(max) * 100
}

// ClassifyPercentage maps a percentage to exactly one tier, checking the
// highest threshold first.
func (p Policy) ClassifyPercentage(pct float64) RiskOutcome {
	r := p.Risk
	switch {
	case pct >= r.CyberDefender:
		return outcomes[TierCyberDefender]
	case pct >= r.SecurityAware:
		return outcomes[TierSecurityAware]
	case pct >= r.SafeUser:
		return outcomes[TierSafeUser]
	case pct >= r.AtRisk:
		return outcomes[TierAtRisk]
	default:
		return outcomes[TierHighRisk]
	}
}

// Classify computes the percentage of score over max and classifies it.
func (p Policy) Classify(score, max int) RiskOutcome {
	return p.ClassifyPercentage(Percentage(score, max))
}

// Classify classifies with the default policy.
func Classify(score, max int) RiskOutcome {
	return DefaultPolicy().Classify(score, max)
}

// ColorFor returns the tier color for a percentage under the default policy.
func ColorFor(pct float64) string {
	return DefaultPolicy().ClassifyPercentage(pct).Color
}

// FormatScore renders "score/max (pct%)" with pct rounded to 2 places.
func FormatScore(score, max int) string {
	return fmt.Sprintf("%d/%d (%s%%)", score, max, trimFloat(round(Percentage(score, max), 2)))
}

func round(x float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(x*scale) / scale
}
