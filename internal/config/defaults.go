package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/scribble.yaml
var defaultScribbleYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Session: SessionConfig{
			TargetCounts: map[Difficulty]int{
				DifficultyEasy:   8,
				DifficultyMedium: 12,
				DifficultyHard:   15,
			},
			TimeLimits: map[Difficulty]int{
				DifficultyEasy:   300,
				DifficultyMedium: 300,
				DifficultyHard:   300,
			},
			ClassicTimeLimit:    100,
			AcceptanceThreshold: 40,
			WordPoints:          10,
			BonusWindow:         60,
			ClassicScoreWindow:  100,
		},
		Scoring: ScoringConfig{
			GridSize:        64,
			ActiveThreshold: 240,
			Amplification:   2,
			FallbackScore:   50,
			Timeout:         10 * time.Second,
		},
		Canvas: CanvasConfig{
			UndoDepth:        20,
			BrushSize:        5,
			EraserMultiplier: 4,
			Color:            "#000000",
			Background:       "#ffffff",
			PixelsPerCell:    4,
		},
		Words: WordsConfig{
			Table:   "words",
			Timeout: 5 * time.Second,
		},
		Reference: ReferenceConfig{
			Provider:          "dicebear",
			URLTemplate:       "https://api.dicebear.com/7.x/shapes/png?seed=%s&backgroundColor=ffffff",
			Timeout:           10 * time.Second,
			RequestsPerSecond: 2,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultScribbleYAML
}
