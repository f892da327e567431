package session

import (
	"math"

	"github.com/vovakirdan/tui-scribble/internal/config"
)

// ScoreKeeper accumulates the session score and tracks the high score.
type ScoreKeeper struct {
	wordPoints    int
	bonusWindow   int
	classicWindow int

	score        int
	high         int
	bonusAwarded bool
}

// NewScoreKeeper creates a keeper with the stored high score.
func NewScoreKeeper(cfg config.SessionConfig, highScore int) *ScoreKeeper {
	return &ScoreKeeper{
		wordPoints:    cfg.WordPoints,
		bonusWindow:   cfg.BonusWindow,
		classicWindow: cfg.ClassicScoreWindow,
		high:          max(0, highScore),
	}
}

// Reset zeroes the session score. The high score is kept.
func (k *ScoreKeeper) Reset() {
	k.score = 0
	k.bonusAwarded = false
}

// Score returns the session score.
func (k *ScoreKeeper) Score() int { return k.score }

// HighScore returns the best score seen so far.
func (k *ScoreKeeper) HighScore() int { return k.high }

// AwardWord adds base points plus one point per full 10% of accuracy and
// returns the award.
func (k *ScoreKeeper) AwardWord(accuracy float64) int {
	points := k.wordPoints + int(math.Floor(math.Max(0, accuracy)/10))
	k.score += points
	return points
}

// AwardCompletionBonus adds max(0, window − elapsed) the first time it is
// called in a session and returns the bonus.
func (k *ScoreKeeper) AwardCompletionBonus(elapsed int) int {
	if k.bonusAwarded {
		return 0
	}
	k.bonusAwarded = true
	bonus := max(0, k.bonusWindow-elapsed)
	k.score += bonus
	return bonus
}

// SetTimeScore replaces the score with max(0, window − elapsed), the
// single-round formula.
func (k *ScoreKeeper) SetTimeScore(elapsed int) int {
	k.score = max(0, k.classicWindow-elapsed)
	return k.score
}

// Observe raises the high score to high when it is greater. Stored high
// scores only grow, so a lower value is ignored.
func (k *ScoreKeeper) Observe(high int) {
	if high > k.high {
		k.high = high
	}
}

// Finalize compares the session score against the high score and adopts
// it when strictly higher. Returns true if the high score was beaten.
func (k *ScoreKeeper) Finalize() bool {
	if k.score > k.high {
		k.high = k.score
		return true
	}
	return false
}
