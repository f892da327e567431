// Package config provides YAML-based configuration loading for the
// scribble game: session rules, scoring heuristics, canvas defaults and the
// locations of the external word and reference-image services.
package config

import (
	"fmt"
	"time"
)

// Config contains all configuration for a scribble installation.
type Config struct {
	Session   SessionConfig   `yaml:"session"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Canvas    CanvasConfig    `yaml:"canvas"`
	Words     WordsConfig     `yaml:"words"`
	Reference ReferenceConfig `yaml:"reference"`
}

// SessionConfig defines word progression, timing and scoring rules.
type SessionConfig struct {
	TargetCounts        map[Difficulty]int `yaml:"target_counts"`
	TimeLimits          map[Difficulty]int `yaml:"time_limits"` // Seconds per clue round
	ClassicTimeLimit    int                `yaml:"classic_time_limit"`
	AcceptanceThreshold float64            `yaml:"acceptance_threshold"` // Percent
	WordPoints          int                `yaml:"word_points"`
	BonusWindow         int                `yaml:"bonus_window"`         // Completion bonus = max(0, window - elapsed)
	ClassicScoreWindow  int                `yaml:"classic_score_window"` // Classic score = max(0, window - elapsed)
}

// ScoringConfig defines the coverage heuristic used to rate drawings.
type ScoringConfig struct {
	GridSize        int           `yaml:"grid_size"`
	ActiveThreshold uint8         `yaml:"active_threshold"` // Channel value below which a cell counts as ink
	Amplification   float64       `yaml:"amplification"`
	FallbackScore   float64       `yaml:"fallback_score"`
	Timeout         time.Duration `yaml:"timeout"`
}

// CanvasConfig defines drawing surface defaults.
type CanvasConfig struct {
	UndoDepth        int     `yaml:"undo_depth"`
	BrushSize        float64 `yaml:"brush_size"`
	EraserMultiplier float64 `yaml:"eraser_multiplier"`
	Color            string  `yaml:"color"`
	Background       string  `yaml:"background"`
	PixelsPerCell    int     `yaml:"pixels_per_cell"` // Buffer pixels per terminal half-cell
}

// WordsConfig locates the word dataset.
type WordsConfig struct {
	RemoteURL string        `yaml:"remote_url"`
	APIKey    string        `yaml:"api_key"`
	Table     string        `yaml:"table"`
	File      string        `yaml:"file"` // Empty means the embedded list
	Timeout   time.Duration `yaml:"timeout"`
}

// ReferenceConfig selects and configures the reference image provider.
type ReferenceConfig struct {
	Provider          string        `yaml:"provider"`
	URLTemplate       string        `yaml:"url_template"` // %s is replaced by the escaped seed
	Timeout           time.Duration `yaml:"timeout"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
}

// TargetCount returns how many words a clue round asks for at the difficulty.
func (s SessionConfig) TargetCount(d Difficulty) int {
	if n, ok := s.TargetCounts[d]; ok {
		return n
	}
	return defaultTargetCounts[d]
}

// TimeLimit returns the clue round countdown in seconds for the difficulty.
func (s SessionConfig) TimeLimit(d Difficulty) int {
	if n, ok := s.TimeLimits[d]; ok && n > 0 {
		return n
	}
	return defaultTimeLimit
}

// Validate reports the first setting that would make a session unplayable.
func (c Config) Validate() error {
	for _, d := range AllDifficulties() {
		if c.Session.TargetCount(d) <= 0 {
			return fmt.Errorf("config: target count for %s must be positive", d)
		}
	}
	if c.Session.ClassicTimeLimit <= 0 {
		return fmt.Errorf("config: classic_time_limit must be positive")
	}
	if c.Session.AcceptanceThreshold < 0 || c.Session.AcceptanceThreshold > 100 {
		return fmt.Errorf("config: acceptance_threshold must be within [0, 100]")
	}
	if c.Scoring.GridSize <= 0 {
		return fmt.Errorf("config: scoring grid_size must be positive")
	}
	if c.Scoring.Amplification <= 0 {
		return fmt.Errorf("config: scoring amplification must be positive")
	}
	if c.Canvas.UndoDepth <= 0 {
		return fmt.Errorf("config: canvas undo_depth must be positive")
	}
	if c.Canvas.BrushSize <= 0 {
		return fmt.Errorf("config: canvas brush_size must be positive")
	}
	if c.Canvas.PixelsPerCell <= 0 {
		return fmt.Errorf("config: canvas pixels_per_cell must be positive")
	}
	return nil
}
