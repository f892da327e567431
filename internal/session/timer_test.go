package session

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-scribble/internal/config"
)

func TestTimerCountdown(t *testing.T) {
	var tm Timer
	gen := tm.Start(3)

	for _, want := range []int{2, 1} {
		remaining, expired, ok := tm.Tick(gen)
		if !ok || expired || remaining != want {
			t.Errorf("Tick() = (%d, %v, %v), expected (%d, false, true)", remaining, expired, ok, want)
		}
	}

	remaining, expired, ok := tm.Tick(gen)
	if !ok || !expired || remaining != 0 {
		t.Errorf("final Tick() = (%d, %v, %v), expected (0, true, true)", remaining, expired, ok)
	}
	if _, expired, ok := tm.Tick(gen); ok || expired {
		t.Error("expiry should be reported exactly once")
	}
	if tm.Elapsed() != 3 || tm.Running() {
		t.Errorf("Elapsed() = %d Running() = %v", tm.Elapsed(), tm.Running())
	}
}

func TestTimerPause(t *testing.T) {
	var tm Timer
	gen := tm.Start(10)
	tm.Tick(gen)
	tm.SetPaused(true)

	for range 5 {
		if _, _, ok := tm.Tick(gen); ok {
			t.Fatal("ticks must be ignored while paused")
		}
	}
	tm.SetPaused(false)
	tm.Tick(gen)

	if tm.Remaining() != 8 || tm.Elapsed() != 2 {
		t.Errorf("Remaining() = %d Elapsed() = %d, expected 8 and 2", tm.Remaining(), tm.Elapsed())
	}
}

func TestTimerGenerations(t *testing.T) {
	var tm Timer
	old := tm.Start(10)
	gen := tm.Start(5)

	if _, _, ok := tm.Tick(old); ok {
		t.Error("stale generation tick should be ignored")
	}
	if tm.Remaining() != 5 {
		t.Errorf("Remaining() = %d, expected 5", tm.Remaining())
	}

	tm.Stop()
	if _, _, ok := tm.Tick(gen); ok {
		t.Error("stopped timer should ignore ticks")
	}
}

func TestScoreKeeper(t *testing.T) {
	k := NewScoreKeeper(config.DefaultConfig().Session, 30)

	awards := []struct {
		accuracy float64
		expected int
	}{
		{45, 14},
		{40, 14},
		{99.9, 19},
		{100, 20},
		{0, 10},
	}
	total := 0
	for _, a := range awards {
		if got := k.AwardWord(a.accuracy); got != a.expected {
			t.Errorf("AwardWord(%v) = %d, expected %d", a.accuracy, got, a.expected)
		}
		total += a.expected
	}

	if got := k.AwardCompletionBonus(45); got != 15 {
		t.Errorf("AwardCompletionBonus(45) = %d, expected 15", got)
	}
	if got := k.AwardCompletionBonus(10); got != 0 {
		t.Errorf("second AwardCompletionBonus() = %d, expected 0", got)
	}
	if k.Score() != total+15 {
		t.Errorf("Score() = %d, expected %d", k.Score(), total+15)
	}

	if !k.Finalize() || k.HighScore() != total+15 {
		t.Error("Finalize() should adopt a higher score")
	}

	k.Reset()
	if k.Score() != 0 || k.HighScore() != total+15 {
		t.Error("Reset() should keep the high score")
	}
	if got := k.AwardCompletionBonus(100); got != 0 {
		t.Errorf("AwardCompletionBonus(100) = %d, expected 0", got)
	}
	if k.Finalize() {
		t.Error("Finalize() with a lower score should not beat the high score")
	}
}

func TestScoreKeeperTimeScore(t *testing.T) {
	k := NewScoreKeeper(config.DefaultConfig().Session, 0)
	tests := []struct{ elapsed, expected int }{
		{0, 100},
		{30, 70},
		{100, 0},
		{150, 0},
	}
	for _, tc := range tests {
		if got := k.SetTimeScore(tc.elapsed); got != tc.expected {
			t.Errorf("SetTimeScore(%d) = %d, expected %d", tc.elapsed, got, tc.expected)
		}
	}
}

func TestPolicyFor(t *testing.T) {
	cfg := config.DefaultConfig().Session

	clue := PolicyFor(config.ModeClueRound, config.DifficultyMedium, cfg)
	if clue.TargetCount != 12 || clue.TimeLimit != 300 || clue.Threshold != 40 || !clue.PerWordScoring() {
		t.Errorf("clue policy = %+v", clue)
	}

	classic := PolicyFor(config.ModeClassicReveal, config.DifficultyHard, cfg)
	if classic.TargetCount != 1 || classic.TimeLimit != 100 || classic.Threshold != 0 || classic.PerWordScoring() {
		t.Errorf("classic policy = %+v", classic)
	}
}

type fakeStore struct {
	sessions []Result
	high     int
	err      error
}

func (f *fakeStore) RecordSession(r Result) error {
	if f.err != nil {
		return f.err
	}
	f.sessions = append(f.sessions, r)
	return nil
}

func (f *fakeStore) HighScore() (int, error) { return f.high, f.err }

func (f *fakeStore) SetHighScore(score int) error {
	if f.err != nil {
		return f.err
	}
	f.high = score
	return nil
}

func TestPersist(t *testing.T) {
	logger := log.New(io.Discard)
	store := &fakeStore{high: 5}

	Persist(store, logger,
		ScoreChanged{Score: 9},
		SetHighScore{Score: 9},
		RecordSession{Result: Result{ID: "a", Score: 9}},
	)
	if store.high != 9 || len(store.sessions) != 1 || store.sessions[0].ID != "a" {
		t.Errorf("Persist() stored %+v", store)
	}
	if LoadHighScore(store, logger) != 9 {
		t.Error("LoadHighScore() should return the stored value")
	}

	// Failures are logged, not fatal
	broken := &fakeStore{err: errors.New("disk full")}
	Persist(broken, logger, SetHighScore{Score: 1}, RecordSession{Result: Result{ID: "b"}})
	if LoadHighScore(broken, logger) != 0 {
		t.Error("LoadHighScore() should fall back to 0")
	}
	Persist(nil, logger, RecordSession{})
}
