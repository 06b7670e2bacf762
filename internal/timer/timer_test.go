package timer

import (
	"testing"
	"time"
)

func TestTimerCountsDownFocusThenBreak(t *testing.T) {
	tm := New(3*time.Second, 2*time.Second)
	tm.Start()

	if tm.Phase != Focus || tm.Remaining != 3*time.Second {
		t.Fatalf("after start: phase=%s remaining=%s", tm.Phase, tm.Remaining)
	}

	if ev := tm.Tick(); ev != None {
		t.Errorf("tick 1 = %v, want None", ev)
	}
	if ev := tm.Tick(); ev != None {
		t.Errorf("tick 2 = %v, want None", ev)
	}
	if ev := tm.Tick(); ev != FocusDone {
		t.Errorf("tick 3 = %v, want FocusDone", ev)
	}

	if tm.Phase != Break || tm.Remaining != 2*time.Second {
		t.Errorf("after focus: phase=%s remaining=%s", tm.Phase, tm.Remaining)
	}
	if tm.Completed != 1 {
		t.Errorf("completed = %d, want 1", tm.Completed)
	}

	tm.Tick()
	if ev := tm.Tick(); ev != BreakDone {
		t.Errorf("final break tick = %v, want BreakDone", ev)
	}
	if tm.Running() {
		t.Error("timer should be idle after the break")
	}
}

func TestTimerCancelKeepsCompletedCount(t *testing.T) {
	tm := New(time.Second, time.Second)
	tm.Start()
	tm.Tick() // FocusDone
	tm.Start()
	tm.Cancel()

	if tm.Running() {
		t.Error("cancel should stop the countdown")
	}
	if tm.Completed != 1 {
		t.Errorf("cancel must not take back finished sessions, completed = %d", tm.Completed)
	}
}

func TestTimerIdleTickIsNoop(t *testing.T) {
	tm := New(time.Second, time.Second)
	if ev := tm.Tick(); ev != None {
		t.Errorf("idle tick = %v, want None", ev)
	}
	if tm.Remaining != 0 {
		t.Errorf("idle tick changed remaining: %s", tm.Remaining)
	}
}

func TestTimerRestart(t *testing.T) {
	tm := New(5*time.Second, time.Second)
	tm.Start()
	tm.Tick()
	tm.Start()
	if tm.Remaining != 5*time.Second {
		t.Errorf("restart should reset the countdown, remaining = %s", tm.Remaining)
	}
}
