// Package words loads the word list and builds per-session word queues.
package words

import (
	"strings"

	"github.com/vovakirdan/tui-scribble/internal/config"
)

// Word is one drawing prompt.
type Word struct {
	Text          string            `json:"word" yaml:"word"`
	Clue          string            `json:"clue" yaml:"clue"`
	Difficulty    config.Difficulty `json:"difficulty" yaml:"difficulty"`
	ReferenceSeed string            `json:"reference_seed,omitempty" yaml:"reference_seed,omitempty"`
}

// Seed returns the reference image seed, defaulting to the lower-cased text.
func (w Word) Seed() string {
	if w.ReferenceSeed != "" {
		return w.ReferenceSeed
	}
	return strings.ToLower(w.Text)
}

// Is reports whether the word belongs to difficulty d (case-insensitive).
func (w Word) Is(d config.Difficulty) bool {
	return strings.EqualFold(string(w.Difficulty), string(d))
}
