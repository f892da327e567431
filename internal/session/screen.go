package session

// Screen is the top-level state of a Controller.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenPlaying
	ScreenPaused
	ScreenResults
)

// String returns a human-readable name for the screen.
func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "Home"
	case ScreenPlaying:
		return "Playing"
	case ScreenPaused:
		return "Paused"
	case ScreenResults:
		return "Results"
	default:
		return "Unknown"
	}
}
