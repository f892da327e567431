package session

// Timer is the session countdown. It does not own a clock: the driver
// delivers one Tick per second stamped with the generation returned by
// Start, and ticks from any other generation are ignored. Restarting the
// timer therefore cancels every earlier clock.
type Timer struct {
	initial    int
	remaining  int
	generation uint64
	running    bool
	paused     bool
}

// Start resets the countdown to seconds and returns the new generation.
func (t *Timer) Start(seconds int) uint64 {
	if seconds < 0 {
		seconds = 0
	}
	t.generation++
	t.initial = seconds
	t.remaining = seconds
	t.running = true
	t.paused = false
	return t.generation
}

// Stop halts the countdown, keeping the remaining time.
func (t *Timer) Stop() {
	t.running = false
	t.paused = false
}

// SetPaused suspends or resumes ticking. The remaining time is preserved.
func (t *Timer) SetPaused(paused bool) {
	t.paused = paused
}

// Tick counts down one second. ok is false when the tick was ignored
// (stale generation, stopped or paused). expired is true exactly once,
// on the tick that reaches zero, after which the timer is stopped.
func (t *Timer) Tick(generation uint64) (remaining int, expired, ok bool) {
	if generation != t.generation || !t.running || t.paused {
		return t.remaining, false, false
	}

	if t.remaining > 0 {
		t.remaining--
	}
	if t.remaining == 0 {
		t.running = false
		return 0, true, true
	}
	return t.remaining, false, true
}

// Remaining returns the seconds left.
func (t *Timer) Remaining() int { return t.remaining }

// Elapsed returns the seconds counted down so far. Paused time is not counted.
func (t *Timer) Elapsed() int { return t.initial - t.remaining }

// Running returns true while the countdown is active.
func (t *Timer) Running() bool { return t.running }
