// Package questions holds question definitions and the read-only repository
// the scoring engine pulls them from.
package questions

import (
	"strings"

	"github.com/cyberquest/cyberquest/internal/apperr"
)

const (
	// DefaultPoints is the point value of a question that does not set one.
	DefaultPoints = 10

	// DefaultCategory labels questions that have no category.
	DefaultCategory = "General"
)

// Level is a difficulty tier.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Levels lists every level from easiest to hardest.
var Levels = []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}

// ParseLevel normalizes s and returns the matching level.
func ParseLevel(s string) (Level, error) {
	l := Level(strings.ToLower(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", apperr.Validation("level", "unknown level %q", s)
	}
	return l, nil
}

// Valid reports whether l is one of the known levels.
func (l Level) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

func (l Level) String() string { return string(l) }

// LevelInfo is display metadata for a level.
type LevelInfo struct {
	Name          string
	Description   string
	Icon          string
	Color         string
	QuestionCount int
}

var levelInfo = map[Level]LevelInfo{
	LevelBeginner: {
		Name:          "Beginner",
		Description:   "Learn fundamental cybersecurity concepts",
		Icon:          "🌱",
		Color:         "#10b981",
		QuestionCount: 5,
	},
	LevelIntermediate: {
		Name:          "Intermediate",
		Description:   "Test your security knowledge with real-world scenarios",
		Icon:          "🔥",
		Color:         "#3b82f6",
		QuestionCount: 5,
	},
	LevelAdvanced: {
		Name:          "Advanced",
		Description:   "Master advanced security concepts and incident response",
		Icon:          "🚀",
		Color:         "#8b5cf6",
		QuestionCount: 5,
	},
}

// Info returns display metadata for l. Unknown levels get a placeholder.
func (l Level) Info() LevelInfo {
	if info, ok := levelInfo[l]; ok {
		return info
	}
	return LevelInfo{Name: string(l), Icon: "❓", Color: "#94a3b8"}
}

// Question is a single multiple-choice question. Immutable once loaded.
type Question struct {
	ID          int      `json:"id"`
	Level       Level    `json:"-"`
	Category    string   `json:"category,omitempty"`
	Text        string   `json:"question"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Explanation string   `json:"explanation,omitempty"`
	Points      int      `json:"points,omitempty"`
}

// PointValue returns the question's points, falling back to DefaultPoints.
func (q Question) PointValue() int {
	if q.Points <= 0 {
		return DefaultPoints
	}
	return q.Points
}

// CategoryLabel returns the question's category, falling back to DefaultCategory.
func (q Question) CategoryLabel() string {
	if strings.TrimSpace(q.Category) == "" {
		return DefaultCategory
	}
	return q.Category
}

// CorrectText returns the text of the correct option.
func (q Question) CorrectText() string {
	if q.Correct < 0 || q.Correct >= len(q.Options) {
		return ""
	}
	return q.Options[q.Correct]
}

var categoryIcons = map[string]string{
	"Phishing Detection":        "🎣",
	"Password Security":         "🔑",
	"Safe Browsing":             "🌐",
	"Social Engineering":        "🎭",
	"Malware Awareness":         "🦠",
	"Two-Factor Authentication": "🔐",
	"Encryption Basics":         "🔒",
	"Advanced Threats":          "⚠️",
	"Data Privacy":              "🛡️",
	"Incident Response":         "🚨",
}

// CategoryIcon returns the emoji shown next to a category.
func CategoryIcon(category string) string {
	if icon, ok := categoryIcons[category]; ok {
		return icon
	}
	return "📝"
}
