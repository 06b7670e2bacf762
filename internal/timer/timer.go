// Package timer holds the focus-timer countdown model. The model is pure:
// the TUI drives it with one-second ticks and reacts to the returned events,
// so the countdown logic is testable without a terminal.
package timer

import "time"

// Phase is the timer's current mode.
type Phase int

const (
	Idle Phase = iota
	Focus
	Break
)

func (p Phase) String() string {
	switch p {
	case Focus:
		return "focus"
	case Break:
		return "break"
	default:
		return "idle"
	}
}

// Event is emitted by Tick when a phase finishes.
type Event int

const (
	// None means the countdown is still running (or the timer is idle).
	None Event = iota
	// FocusDone means a focus session just completed; the caller issues the
	// side-channel award and the timer rolls into the break.
	FocusDone
	// BreakDone means the break finished and the timer returned to idle.
	BreakDone
)

// Timer counts down a focus session and then a break.
type Timer struct {
	FocusDuration time.Duration
	BreakDuration time.Duration

	Phase     Phase
	Remaining time.Duration
	Completed int
}

func New(focus, brk time.Duration) *Timer {
	return &Timer{FocusDuration: focus, BreakDuration: brk}
}

// Start begins a focus session. Starting while running restarts the session.
func (t *Timer) Start() {
	t.Phase = Focus
	t.Remaining = t.FocusDuration
}

// Cancel abandons the current phase without completing it. No points are
// awarded or reversed for a cancelled session.
func (t *Timer) Cancel() {
	t.Phase = Idle
	t.Remaining = 0
}

// Tick advances the countdown by one second and reports a phase completion.
func (t *Timer) Tick() Event {
	if t.Phase == Idle {
		return None
	}

	t.Remaining -= time.Second
	if t.Remaining > 0 {
		return None
	}

	switch t.Phase {
	case Focus:
		t.Completed++
		t.Phase = Break
		t.Remaining = t.BreakDuration
		return FocusDone
	default:
		t.Phase = Idle
		t.Remaining = 0
		return BreakDone
	}
}

// Running reports whether a countdown is active.
func (t *Timer) Running() bool {
	return t.Phase != Idle
}
