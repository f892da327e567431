package session

import "github.com/charmbracelet/log"

// Persistence stores finished sessions and the high score.
type Persistence interface {
	RecordSession(r Result) error
	HighScore() (int, error)
	SetHighScore(score int) error
}

// Persist carries out the RecordSession and SetHighScore effects against p.
// Failures are logged and otherwise ignored so the results screen still
// shows the locally computed score.
func Persist(p Persistence, logger *log.Logger, effects ...Effect) {
	if p == nil {
		return
	}
	if logger == nil {
		logger = log.Default()
	}

	for _, e := range effects {
		switch e := e.(type) {
		case SetHighScore:
			if err := p.SetHighScore(e.Score); err != nil {
				logger.Warn("Failed to save high score", "score", e.Score, "error", err)
			}
		case RecordSession:
			if err := p.RecordSession(e.Result); err != nil {
				logger.Warn("Failed to record session", "id", e.Result.ID, "error", err)
			}
		}
	}
}

// LoadHighScore reads the stored high score, treating failures as 0.
func LoadHighScore(p Persistence, logger *log.Logger) int {
	if p == nil {
		return 0
	}
	high, err := p.HighScore()
	if err != nil {
		if logger == nil {
			logger = log.Default()
		}
		logger.Warn("Failed to load high score", "error", err)
		return 0
	}
	return high
}
