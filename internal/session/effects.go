package session

import (
	"image"

	"github.com/vovakirdan/tui-scribble/internal/words"
)

// Effect is an output of Controller.Handle. Presentation effects describe
// what changed; driver effects ask the caller to do something.
type Effect interface {
	isEffect()
}

// WordChanged reports the new active word.
type WordChanged struct {
	Word  words.Word
	Index int // zero-based position in the session
	Total int
}

// TimerTicked reports the remaining seconds.
type TimerTicked struct{ Remaining int }

// ScoreChanged reports the session score and the high score.
type ScoreChanged struct {
	Score     int
	HighScore int
}

// Feedback is a message for the player.
type Feedback struct{ Message string }

// ScreenChanged reports a state transition.
type ScreenChanged struct{ Screen Screen }

// CanvasChanged reports that the canvas pixels changed.
type CanvasChanged struct{}

// AccuracyMeasured reports a scored drawing.
type AccuracyMeasured struct {
	Accuracy float64
	Accepted bool
}

// StartClock asks the driver to deliver a Tick with Generation every second.
// Ticks from earlier generations are ignored.
type StartClock struct {
	Generation uint64
	Seconds    int
}

// StopClock asks the driver to stop delivering ticks.
type StopClock struct{}

// RequestScore asks the driver to score Canvas against the reference for
// Seed and answer with ScoreResolved carrying Token.
type RequestScore struct {
	Token  uint64
	Seed   string
	Canvas image.Image
}

// RecordSession asks the driver to persist a finished session.
type RecordSession struct{ Result Result }

// SetHighScore asks the driver to persist a new high score.
type SetHighScore struct{ Score int }

func (WordChanged) isEffect()      {}
func (TimerTicked) isEffect()      {}
func (ScoreChanged) isEffect()     {}
func (Feedback) isEffect()         {}
func (ScreenChanged) isEffect()    {}
func (CanvasChanged) isEffect()    {}
func (AccuracyMeasured) isEffect() {}
func (StartClock) isEffect()       {}
func (StopClock) isEffect()        {}
func (RequestScore) isEffect()     {}
func (RecordSession) isEffect()    {}
func (SetHighScore) isEffect()     {}
