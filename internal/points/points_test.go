package points

import (
	"testing"
	"time"

	"github.com/jmdelaney/dayglow/internal/constants"
	"github.com/jmdelaney/dayglow/internal/models"
)

func day(s string) time.Time {
	t, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

// morningDone returns the minimal record that counts as a completed morning
// check-in.
func morningDone() models.DailyRecord {
	return models.DailyRecord{
		SleepQuality: 3,
		MorningMood:  "calm",
		MainPriority: "write report",
	}
}

func TestForDayZeroRecord(t *testing.T) {
	if got := ForDay(models.DailyRecord{}); got != 0 {
		t.Errorf("zero record should score 0, got %d", got)
	}
}

func TestForDayMorningCheckin(t *testing.T) {
	rec := morningDone()
	if got := ForDay(rec); got != constants.PointsMorningCheckin {
		t.Errorf("completed morning should score %d, got %d", constants.PointsMorningCheckin, got)
	}

	// Missing any one of the three conditions scores no check-in points.
	for name, mutate := range map[string]func(*models.DailyRecord){
		"no sleep quality": func(r *models.DailyRecord) { r.SleepQuality = 0 },
		"no mood":          func(r *models.DailyRecord) { r.MorningMood = "" },
		"no priority":      func(r *models.DailyRecord) { r.MainPriority = "" },
	} {
		partial := morningDone()
		mutate(&partial)
		if got := ForDay(partial); got != 0 {
			t.Errorf("%s: expected 0, got %d", name, got)
		}
	}
}

func TestForDayIsIdempotent(t *testing.T) {
	rec := morningDone()
	rec.CompletedMainTask = true
	rec.Tasks = []models.TaskItem{{Text: "a", Done: true}, {Text: "b", Done: false}}
	rec.EveningMood = "content"
	rec.DayDescription = "fine"

	first := ForDay(rec)
	for i := 0; i < 10; i++ {
		if got := ForDay(rec); got != first {
			t.Fatalf("ForDay changed between calls: %d then %d", first, got)
		}
	}
}

func TestForDayBasicsOnly(t *testing.T) {
	rec := models.DailyRecord{
		Basics: models.Basics{
			Water: true, HealthyEating: true, Listened: true,
			Mindfulness: true, Steps10k: true, Sleep7h: true,
		},
	}
	want := 6 * constants.PointsPerBasic
	if got := ForDay(rec); got != want {
		t.Errorf("six basics should score %d, got %d", want, got)
	}
}

func TestForDayFullyLoaded(t *testing.T) {
	rec := models.DailyRecord{
		SleepQuality:      4,
		MorningMood:       "calm",
		MainPriority:      "ship spec",
		EveningMood:       "content",
		DayDescription:    "good",
		CompletedMainTask: true,
		Tasks: []models.TaskItem{
			{Text: "a", Done: true},
			{Text: "b", Done: true},
			{Text: "c", Done: false},
		},
		Connections:     []models.Connection{{Name: "ana", Done: true}},
		CompletedHabits: []string{"guitar", "read"},
		Basics: models.Basics{
			Water: true, HealthyEating: true, Listened: true,
			Mindfulness: true, Steps10k: true, Sleep7h: true,
		},
		Points: 5, // side-channel accumulator rides along verbatim
	}

	want := constants.PointsMorningCheckin +
		constants.PointsEveningReview +
		constants.PointsPriorityTask +
		2*constants.PointsPerTask +
		1*constants.PointsPerConnection +
		2*constants.PointsPerHabit +
		6*constants.PointsPerBasic +
		5
	if want != 275 {
		t.Fatalf("scenario constants drifted: want sums to %d, not 275", want)
	}
	if got := ForDay(rec); got != want {
		t.Errorf("fully loaded day should score %d, got %d", want, got)
	}
}

func TestPriorityTaskRequiresCompletion(t *testing.T) {
	rec := morningDone()
	rec.CompletedMainTask = false
	if got := ForDay(rec); got != constants.PointsMorningCheckin {
		t.Errorf("uncompleted priority must not score, got %d", got)
	}
}

func TestBreakdownSumsToForDay(t *testing.T) {
	now := day("2026-08-27")
	rec := morningDone()
	rec.CompletedMainTask = true
	rec.Tasks = []models.TaskItem{{Text: "a", Done: true}}
	rec.EveningMood = "tired"
	rec.DayDescription = "long"
	rec.AddPoints(models.PointCategoryDread, constants.PointsWorryEntry, now)
	rec.AddPoints(models.PointCategoryPomodoro, constants.PointsFocusSession, now)
	rec.AddPoints(models.PointCategoryPomodoro, constants.PointsFocusSession, now)

	b := BreakdownForDay(rec)
	if b.Total() != ForDay(rec) {
		t.Errorf("breakdown total %d != ForDay %d", b.Total(), ForDay(rec))
	}
	if b.Pomodoro != 2*constants.PointsFocusSession {
		t.Errorf("pomodoro bucket = %d, want %d", b.Pomodoro, 2*constants.PointsFocusSession)
	}
	if b.Dread != constants.PointsWorryEntry {
		t.Errorf("dread bucket = %d, want %d", b.Dread, constants.PointsWorryEntry)
	}
}

func TestBreakdownUntaggedPointsFoldIntoDread(t *testing.T) {
	// Records migrated from the old format carry an accumulator but no
	// events; the whole remainder lands in the dread bucket.
	rec := models.DailyRecord{Points: 45}
	b := BreakdownForDay(rec)
	if b.Dread != 45 || b.Pomodoro != 0 {
		t.Errorf("untagged points: dread=%d pomodoro=%d, want 45/0", b.Dread, b.Pomodoro)
	}
	if b.Total() != ForDay(rec) {
		t.Errorf("breakdown total %d != ForDay %d", b.Total(), ForDay(rec))
	}
}

func TestAllTime(t *testing.T) {
	doc := models.NewDocument()
	doc.SetRecord("2026-08-25", morningDone())
	doc.SetRecord("2026-08-26", morningDone())
	want := 2 * constants.PointsMorningCheckin
	if got := AllTime(doc); got != want {
		t.Errorf("AllTime = %d, want %d", got, want)
	}
}

func TestAllTimeIgnoresCachedScalar(t *testing.T) {
	doc := models.NewDocument()
	doc.TotalPoints = 9999 // stale cache must not leak into the derivation
	doc.SetRecord("2026-08-25", morningDone())
	if got := AllTime(doc); got != constants.PointsMorningCheckin {
		t.Errorf("AllTime = %d, want %d", got, constants.PointsMorningCheckin)
	}
}

func TestCurrentStreakCountsBackFromToday(t *testing.T) {
	doc := models.NewDocument()
	today := day("2026-08-28")
	for _, d := range []string{"2026-08-28", "2026-08-27", "2026-08-26"} {
		doc.SetRecord(d, morningDone())
	}
	// Gap at 08-25, then an older completed day that must not count.
	doc.SetRecord("2026-08-24", morningDone())

	if got := CurrentStreak(doc, today); got != 3 {
		t.Errorf("streak = %d, want 3", got)
	}
}

func TestCurrentStreakZeroWhenTodayIncomplete(t *testing.T) {
	doc := models.NewDocument()
	doc.SetRecord("2026-08-27", morningDone())

	// The walk anchors at today and never looks ahead; an incomplete today
	// means no streak regardless of yesterday.
	doc.SetRecord("2026-08-28", models.DailyRecord{Reflection: "only this"})
	if got := CurrentStreak(doc, day("2026-08-28")); got != 0 {
		t.Errorf("streak with incomplete today = %d, want 0", got)
	}

	empty := models.NewDocument()
	if got := CurrentStreak(empty, day("2026-08-28")); got != 0 {
		t.Errorf("empty document streak = %d, want 0", got)
	}
}

func TestLongestStreakIndependentOfCurrent(t *testing.T) {
	doc := models.NewDocument()
	// Old run of five days.
	for _, d := range []string{"2026-08-01", "2026-08-02", "2026-08-03", "2026-08-04", "2026-08-05"} {
		doc.SetRecord(d, morningDone())
	}
	// Current run of two days.
	doc.SetRecord("2026-08-27", morningDone())
	doc.SetRecord("2026-08-28", morningDone())

	if got := LongestStreak(doc); got != 5 {
		t.Errorf("longest streak = %d, want 5", got)
	}
	if got := CurrentStreak(doc, day("2026-08-28")); got != 2 {
		t.Errorf("current streak = %d, want 2", got)
	}
}

func TestPreviousHighScoreExcludesToday(t *testing.T) {
	doc := models.NewDocument()
	high := morningDone()
	high.CompletedMainTask = true
	doc.SetRecord("2026-08-20", high) // 60
	doc.SetRecord("2026-08-21", morningDone())

	today := morningDone()
	today.CompletedMainTask = true
	today.EveningMood = "great"
	today.DayDescription = "best"
	doc.SetRecord("2026-08-28", today) // 70, but must not count as "previous"

	want := constants.PointsMorningCheckin + constants.PointsPriorityTask
	if got := PreviousHighScore(doc, "2026-08-28"); got != want {
		t.Errorf("previous high = %d, want %d", got, want)
	}
}
