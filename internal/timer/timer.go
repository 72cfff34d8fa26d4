// Package timer implements the focus-session countdown state machine.
// It holds no clock of its own: the owner calls Tick once per wall-clock
// second and reacts to the returned events.
package timer

import "fmt"

// State is the timer's lifecycle state.
type State int

const (
	// Idle means no session is running.
	Idle State = iota
	// Running means a session counts down once per tick.
	Running
)

// Timer is a countdown for one focus session. Zero value is Idle.
// Not safe for concurrent use; the surrounding application drives it
// from a single tick handler.
type Timer struct {
	state     State
	total     int // seconds in the current session
	remaining int // seconds left
}

// Start begins a session of the given number of minutes. Calling Start
// while already running resets the counter rather than failing: the UI
// is expected to prevent double-starts, but the machine stays safe if it
// does not.
func (t *Timer) Start(minutes int) error {
	if minutes <= 0 {
		return fmt.Errorf("session length must be positive, got %d minutes", minutes)
	}
	t.total = minutes * 60
	t.remaining = t.total
	t.state = Running
	return nil
}

// Stop cancels the session immediately. No completion signal fires.
func (t *Timer) Stop() {
	t.state = Idle
	t.remaining = 0
	t.total = 0
}

// Tick advances the countdown by one second. It returns true exactly
// once, on the tick that reaches zero: that is the completion signal
// that drives the chime and stops any dependent side effect such as
// background music. Ticks while idle are no-ops.
func (t *Timer) Tick() (completed bool) {
	if t.state != Running {
		return false
	}
	t.remaining--
	if t.remaining <= 0 {
		t.state = Idle
		t.remaining = 0
		return true
	}
	return false
}

// Running reports whether a session is in progress.
func (t *Timer) Running() bool {
	return t.state == Running
}

// Remaining returns the seconds left in the current session.
func (t *Timer) Remaining() int {
	return t.remaining
}

// Progress returns the fraction of the session still remaining, 0..1.
func (t *Timer) Progress() float64 {
	if t.total == 0 {
		return 0
	}
	return float64(t.remaining) / float64(t.total)
}

// FormatSeconds renders a second count as "MM:SS".
func FormatSeconds(s int) string {
	if s < 0 {
		s = 0
	}
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}
