// Package scoring turns a submission and its question set into a score, a
// risk classification, per-category statistics, feedback and suggestions.
// Everything here is pure and safe for concurrent use.
package scoring

import (
	"fmt"
)

// RiskThresholds are the minimum percentages for each tier above High Risk.
type RiskThresholds struct {
	CyberDefender float64
	SecurityAware float64
	SafeUser      float64
	AtRisk        float64
}

// Policy holds the tunable constants of the engine.
type Policy struct {
	Risk RiskThresholds

	// SuggestBelow is the category percentage under which a suggestion is made.
	SuggestBelow float64

	// HighPriorityBelow is the category percentage under which a suggestion
	// is marked high priority.
	HighPriorityBelow float64

	// MaxSuggestions caps how many of the weakest categories are considered.
	MaxSuggestions int
}

// DefaultPolicy returns the stock thresholds.
func DefaultPolicy() Policy {
	return Policy{
		Risk: RiskThresholds{
			CyberDefender: 90,
			SecurityAware: 75,
			SafeUser:      60,
			AtRisk:        40,
		},
		SuggestBelow:      70,
		HighPriorityBelow: 50,
		MaxSuggestions:    3,
	}
}

// Validate checks that tiers stay contiguous and ordered.
func (p Policy) Validate() error {
	r := p.Risk
	if !(r.CyberDefender > r.SecurityAware && r.SecurityAware > r.SafeUser && r.SafeUser > r.AtRisk && r.AtRisk > 0) {
		return fmt.Errorf("risk thresholds must be strictly descending and above 0: %v/%v/%v/%v",
			r.CyberDefender, r.SecurityAware, r.SafeUser, r.AtRisk)
	}
	if r.CyberDefender > 100 {
		return fmt.Errorf("cyber defender threshold %v exceeds 100", r.CyberDefender)
	}
	if p.HighPriorityBelow > p.SuggestBelow {
		return fmt.Errorf("high priority threshold %v above suggestion threshold %v", p.HighPriorityBelow, p.SuggestBelow)
	}
	if p.MaxSuggestions < 0 {
		return fmt.Errorf("max suggestions must not be negative")
	}
	return nil
}
