package config

import "strings"

// Difficulty selects the word pool and the size of a clue round.
// Values match the difficulty column of the word dataset.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

var defaultTargetCounts = map[Difficulty]int{
	DifficultyEasy:   8,
	DifficultyMedium: 12,
	DifficultyHard:   15,
}

const defaultTimeLimit = 300

// AllDifficulties returns the difficulties in ascending order.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty converts user input ("easy", "HARD", "m") to a Difficulty.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "e":
		return DifficultyEasy, true
	case "medium", "m", "normal":
		return DifficultyMedium, true
	case "hard", "h":
		return DifficultyHard, true
	default:
		return DifficultyEasy, false
	}
}

// Mode selects the word progression and scoring policy of a session.
type Mode string

const (
	// ModeClueRound is the multi-word queue with accuracy gating.
	ModeClueRound Mode = "clue"
	// ModeClassicReveal is a single word scored by how fast it was drawn.
	ModeClassicReveal Mode = "classic"
)

// ParseMode converts user input to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "clue", "round", "":
		return ModeClueRound, true
	case "classic", "reveal":
		return ModeClassicReveal, true
	default:
		return ModeClueRound, false
	}
}

// String returns a display name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeClassicReveal:
		return "Classic Reveal"
	case ModeClueRound:
		return "Clue Round"
	default:
		return string(m)
	}
}
