package models

import (
	"testing"
	"time"
)

func TestMorningComplete(t *testing.T) {
	tests := []struct {
		name string
		rec  DailyRecord
		want bool
	}{
		{"zero record", DailyRecord{}, false},
		{"all three", DailyRecord{SleepQuality: 3, MorningMood: "calm", MainPriority: "x"}, true},
		{"no sleep quality", DailyRecord{MorningMood: "calm", MainPriority: "x"}, false},
		{"no mood", DailyRecord{SleepQuality: 3, MainPriority: "x"}, false},
		{"no priority", DailyRecord{SleepQuality: 3, MorningMood: "calm"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rec.MorningComplete(); got != tt.want {
				t.Errorf("MorningComplete = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAddPointsKeepsAccumulatorAndEventsInSync(t *testing.T) {
	var rec DailyRecord
	now := time.Now()

	rec.AddPoints(PointCategoryDread, 20, now)
	rec.AddPoints(PointCategoryPomodoro, 15, now)
	rec.AddPoints(PointCategoryDread, -20, now)

	if rec.Points != 15 {
		t.Errorf("points = %d, want 15", rec.Points)
	}
	sum := 0
	for _, ev := range rec.PointEvents {
		sum += ev.Delta
	}
	if sum != rec.Points {
		t.Errorf("event sum %d != accumulator %d", sum, rec.Points)
	}
}

func TestBasicsCount(t *testing.T) {
	if got := (Basics{}).Count(); got != 0 {
		t.Errorf("empty basics count = %d", got)
	}
	b := Basics{Water: true, Mindfulness: true, Sleep7h: true}
	if got := b.Count(); got != 3 {
		t.Errorf("count = %d, want 3", got)
	}
}

func TestDayKeyRoundTrip(t *testing.T) {
	key := "2026-08-28"
	parsed, err := ParseDayKey(key)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if DayKey(parsed) != key {
		t.Errorf("round trip %q -> %q", key, DayKey(parsed))
	}

	if _, err := ParseDayKey("8/28/2026"); err == nil {
		t.Error("non-canonical key should not parse")
	}
}

func TestTimeBlockValidate(t *testing.T) {
	base := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)

	good := TimeBlock{ID: "b1", Start: base, End: base.Add(time.Hour), Category: BlockTask, Label: "x"}
	if err := good.Validate(); err != nil {
		t.Errorf("valid block rejected: %v", err)
	}

	inverted := good
	inverted.End = base.Add(-time.Hour)
	if err := inverted.Validate(); err == nil {
		t.Error("inverted block accepted")
	}

	unknown := good
	unknown.Category = "lunch"
	if err := unknown.Validate(); err == nil {
		t.Error("unknown category accepted")
	}
}
