// Package config resolves runtime settings from defaults, an optional
// YAML file and CYBERQUEST_* environment variables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/cyberquest/cyberquest/internal/scoring"
)

// Environment variables read by FromEnv.
const (
	EnvConfig           = "CYBERQUEST_CONFIG"
	EnvDB               = "CYBERQUEST_DB"
	EnvQuestions        = "CYBERQUEST_QUESTIONS"
	EnvLogMode          = "CYBERQUEST_LOG_MODE"
	EnvLeaderboardLimit = "CYBERQUEST_LEADERBOARD_LIMIT"
)

// Config holds all runtime configuration.
type Config struct {
	// DBPath is the SQLite file. Empty means the XDG default.
	DBPath string `yaml:"db_path"`

	// QuestionsPath points at a JSON or YAML question bank.
	// Empty means the embedded bank.
	QuestionsPath string `yaml:"questions_path"`

	Log LogConfig `yaml:"log"`

	// LeaderboardLimit is the number of rows shown. Default: 10.
	LeaderboardLimit int `yaml:"leaderboard_limit"`

	Scoring ScoringConfig `yaml:"scoring"`
}

// LogConfig selects the log format and destination.
type LogConfig struct {
	Mode string `yaml:"mode"` // "dev" or "prod"
	File string `yaml:"file"` // Optional. Stderr when empty.
}

// ScoringConfig mirrors scoring.Policy.
type ScoringConfig struct {
	CyberDefender     float64 `yaml:"cyber_defender"`
	SecurityAware     float64 `yaml:"security_aware"`
	SafeUser          float64 `yaml:"safe_user"`
	AtRisk            float64 `yaml:"at_risk"`
	SuggestBelow      float64 `yaml:"suggest_below"`
	HighPriorityBelow float64 `yaml:"high_priority_below"`
	MaxSuggestions    int     `yaml:"max_suggestions"`
}

// DefaultConfig returns a Config with the stock scoring policy.
func DefaultConfig() Config {
	p := scoring.DefaultPolicy()
	return Config{
		Log:              LogConfig{Mode: "prod"},
		LeaderboardLimit: 10,
		Scoring: ScoringConfig{
			CyberDefender:     p.Risk.CyberDefender,
			SecurityAware:     p.Risk.SecurityAware,
			SafeUser:          p.Risk.SafeUser,
			AtRisk:            p.Risk.AtRisk,
			SuggestBelow:      p.SuggestBelow,
			HighPriorityBelow: p.HighPriorityBelow,
			MaxSuggestions:    p.MaxSuggestions,
		},
	}
}

// Load builds a Config from defaults, the YAML file at path (or
// $CYBERQUEST_CONFIG when path is empty) and the environment, then
// validates it.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := cfg.mergeYAML(raw); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// mergeYAML overlays the keys present in raw. Unknown keys are an error.
func (c *Config) mergeYAML(raw []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (c *Config) applyEnv() error {
	if p := os.Getenv(EnvDB); p != "" {
		c.DBPath = p
	}
	if p := os.Getenv(EnvQuestions); p != "" {
		c.QuestionsPath = p
	}
	if m := os.Getenv(EnvLogMode); m != "" {
		c.Log.Mode = m
	}
	if v := os.Getenv(EnvLeaderboardLimit); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %q is not an integer", EnvLeaderboardLimit, v)
		}
		c.LeaderboardLimit = n
	}
	return nil
}

// Validate checks the log mode, the leaderboard limit and the scoring policy.
func (c Config) Validate() error {
	switch c.Log.Mode {
	case "dev", "prod":
	default:
		return fmt.Errorf("unknown log mode: %q", c.Log.Mode)
	}
	if c.LeaderboardLimit <= 0 {
		return fmt.Errorf("leaderboard limit must be positive, got %d", c.LeaderboardLimit)
	}
	if err := c.Policy().Validate(); err != nil {
		return fmt.Errorf("scoring: %w", err)
	}
	return nil
}

// Policy converts the scoring section into a scoring.Policy.
func (c Config) Policy() scoring.Policy {
	s := c.Scoring
	return scoring.Policy{
		Risk: scoring.RiskThresholds{
			CyberDefender: s.CyberDefender,
			SecurityAware: s.SecurityAware,
			SafeUser:      s.SafeUser,
			AtRisk:        s.AtRisk,
		},
		SuggestBelow:      s.SuggestBelow,
		HighPriorityBelow: s.HighPriorityBelow,
		MaxSuggestions:    s.MaxSuggestions,
	}
}
