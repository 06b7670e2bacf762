package flow

import (
	"testing"

	"github.com/jmdelaney/dayglow/internal/constants"
	"github.com/jmdelaney/dayglow/internal/models"
)

func TestMachineGatesOnRequiredValue(t *testing.T) {
	m := NewMorning(models.DailyRecord{})

	if m.Advance() != Moved {
		t.Fatal("welcome step should never block")
	}
	if m.Step().Key != StepSleepQuality {
		t.Fatalf("expected sleep quality step, got %s", m.Step().Key)
	}

	if got := m.Advance(); got != Blocked {
		t.Errorf("advance without sleep quality should block, got %v", got)
	}
	if m.Index() != 1 {
		t.Errorf("blocked advance must not move the cursor, at %d", m.Index())
	}

	m.Draft.SleepQuality = 4
	if got := m.Advance(); got != Moved {
		t.Errorf("advance with sleep quality should move, got %v", got)
	}
}

func TestMachineOptionalStepsNeverBlock(t *testing.T) {
	// Walk an empty draft through the morning flow, filling only the gated
	// fields; optional list steps must let an empty draft pass.
	m := NewMorning(models.DailyRecord{})
	m.Draft.SleepQuality = 3
	m.Draft.BedTime = "23:00"
	m.Draft.WakeTime = "07:00"
	m.Draft.MorningMood = "okay"
	m.Draft.Reflection = "nothing much"
	m.Draft.MainPriority = "inbox zero"
	m.Draft.FirstStep = "open inbox"
	m.Draft.GoodDayVision = "calm evening"

	var last Outcome
	for i := 0; i < m.Len(); i++ {
		last = m.Advance()
		if last == Blocked {
			t.Fatalf("blocked at step %s with all required fields set", m.Step().Key)
		}
	}
	if last != Completed {
		t.Errorf("expected Completed, got %v", last)
	}
}

func TestMachineRetreatAndAbandon(t *testing.T) {
	m := NewWorry()

	if got := m.Retreat(); got != Abandoned {
		t.Errorf("retreat on first step should abandon, got %v", got)
	}

	m.Draft.Worry = "x"
	if m.Advance() != Moved {
		t.Fatal("expected to move off first step")
	}
	if got := m.Retreat(); got != Moved {
		t.Errorf("retreat mid-flow should move, got %v", got)
	}
	if m.Index() != 0 {
		t.Errorf("expected cursor back at 0, got %d", m.Index())
	}
	if m.Draft.Worry != "x" {
		t.Error("retreat must preserve draft values")
	}
}

func TestMachineCompletesOnLastStep(t *testing.T) {
	m := NewEvening(models.DailyRecord{})
	m.Draft.WinOfDay = "shipped it"
	m.Draft.EveningMood = "content"
	m.Draft.DayDescription = "long but good"

	var last Outcome
	for i := 0; i < m.Len(); i++ {
		last = m.Advance()
	}
	if last != Completed {
		t.Errorf("expected Completed after walking all steps, got %v", last)
	}
	// Completed must not move the cursor past the end.
	if m.Index() != m.Len()-1 {
		t.Errorf("cursor ran past the last step: %d", m.Index())
	}
}

func TestStepCountsAreFixed(t *testing.T) {
	if got := NewMorning(models.DailyRecord{}).Len(); got != constants.MorningStepCount {
		t.Errorf("morning has %d steps, want %d", got, constants.MorningStepCount)
	}
	if got := NewEvening(models.DailyRecord{}).Len(); got != constants.EveningStepCount {
		t.Errorf("evening has %d steps, want %d", got, constants.EveningStepCount)
	}
	if got := NewWorry().Len(); got != constants.WorryStepCount {
		t.Errorf("worry has %d steps, want %d", got, constants.WorryStepCount)
	}
}

func TestNewMorningResumesExistingRecord(t *testing.T) {
	existing := models.DailyRecord{
		SleepQuality: 5,
		MorningMood:  "calm",
		Points:       20, // side-channel points must survive a re-run
	}
	m := NewMorning(existing)

	if m.Draft.SleepQuality != 5 || m.Draft.MorningMood != "calm" {
		t.Error("draft should be seeded from the existing record")
	}
	if m.Draft.Points != 20 {
		t.Errorf("side-channel points lost on resume: %d", m.Draft.Points)
	}

	// The draft is a copy; editing it must not touch the caller's record.
	m.Draft.MorningMood = "tired"
	if existing.MorningMood != "calm" {
		t.Error("draft mutation leaked into the source record")
	}
}
