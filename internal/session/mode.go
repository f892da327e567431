package session

import "github.com/vovakirdan/tui-scribble/internal/config"

// Policy is the word progression, scoring and acceptance rule set of a
// session mode.
type Policy struct {
	Mode        config.Mode
	TargetCount int
	TimeLimit   int     // Seconds
	Threshold   float64 // Minimum accuracy to accept a drawing; 0 accepts everything
}

// PolicyFor returns the rules for mode at difficulty d.
//
// Clue rounds draw a difficulty-sized list of words under the acceptance
// gate and score per word. Classic reveal draws a single word and scores
// only the time it took.
func PolicyFor(mode config.Mode, d config.Difficulty, cfg config.SessionConfig) Policy {
	if mode == config.ModeClassicReveal {
		limit := cfg.ClassicTimeLimit
		if limit <= 0 {
			limit = 100
		}
		return Policy{Mode: mode, TargetCount: 1, TimeLimit: limit}
	}

	return Policy{
		Mode:        config.ModeClueRound,
		TargetCount: cfg.TargetCount(d),
		TimeLimit:   cfg.TimeLimit(d),
		Threshold:   cfg.AcceptanceThreshold,
	}
}

// PerWordScoring reports whether accepted words earn points individually.
func (p Policy) PerWordScoring() bool {
	return p.Mode != config.ModeClassicReveal
}
