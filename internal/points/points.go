// Package points derives scores and streaks from a document. Every function
// here is pure: no input is mutated, absence of data scores zero, and nothing
// errors on an empty or partially-populated document, so callers can re-run
// any derivation on every render.
package points

import (
	"sort"
	"time"

	"github.com/jmdelaney/dayglow/internal/constants"
	"github.com/jmdelaney/dayglow/internal/models"
)

// ForDay computes the point total for one day's record. The same rules apply
// to today and to any historical day.
func ForDay(rec models.DailyRecord) int {
	return BreakdownForDay(rec).Total()
}

// AllTime sums ForDay over every record in the document.
func AllTime(doc models.Document) int {
	total := 0
	for _, rec := range doc.DailyData {
		total += ForDay(rec)
	}
	return total
}

// Breakdown itemizes a day's points by category. The sum of all buckets
// always equals ForDay for the same record.
type Breakdown struct {
	MorningCheckin int `json:"morning_checkin"`
	EveningReview  int `json:"evening_review"`
	PriorityTask   int `json:"priority_task"`
	Tasks          int `json:"tasks"`
	Connections    int `json:"connections"`
	Habits         int `json:"habits"`
	Basics         int `json:"basics"`
	Dread          int `json:"dread"`
	Pomodoro       int `json:"pomodoro"`
}

// Total sums all buckets.
func (b Breakdown) Total() int {
	return b.MorningCheckin + b.EveningReview + b.PriorityTask +
		b.Tasks + b.Connections + b.Habits + b.Basics + b.Dread + b.Pomodoro
}

// BreakdownForDay buckets a record's points. Side-channel points are split by
// the category tagged on each point event; any untagged remainder (records
// written before events were tracked) lands in the dread bucket.
func BreakdownForDay(rec models.DailyRecord) Breakdown {
	var b Breakdown

	if rec.MorningComplete() {
		b.MorningCheckin = constants.PointsMorningCheckin
	}
	if rec.EveningComplete() {
		b.EveningReview = constants.PointsEveningReview
	}
	if rec.CompletedMainTask {
		b.PriorityTask = constants.PointsPriorityTask
	}
	for _, t := range rec.Tasks {
		if t.Done {
			b.Tasks += constants.PointsPerTask
		}
	}
	for _, c := range rec.Connections {
		if c.Done {
			b.Connections += constants.PointsPerConnection
		}
	}
	b.Habits = len(rec.CompletedHabits) * constants.PointsPerHabit
	b.Basics = rec.Basics.Count() * constants.PointsPerBasic

	pomodoro := 0
	for _, ev := range rec.PointEvents {
		if ev.Category == models.PointCategoryPomodoro {
			pomodoro += ev.Delta
		}
	}
	b.Pomodoro = pomodoro
	b.Dread = rec.Points - pomodoro

	return b
}

// CurrentStreak counts consecutive morning-complete days ending at today,
// walking strictly backward one calendar day at a time. A day with no record,
// or today itself not qualifying, terminates the walk.
func CurrentStreak(doc models.Document, today time.Time) int {
	streak := 0
	day := today
	for {
		rec, ok := doc.DailyData[models.DayKey(day)]
		if !ok || !rec.MorningComplete() {
			return streak
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
}

// LongestStreak finds the longest run of day-adjacent morning-complete dates
// anywhere in the document. Keys are normalized and deduplicated by calendar
// date; unparseable keys are skipped. Independent of CurrentStreak.
func LongestStreak(doc models.Document) int {
	seen := make(map[string]time.Time)
	for key, rec := range doc.DailyData {
		if !rec.MorningComplete() {
			continue
		}
		t, err := models.ParseDayKey(key)
		if err != nil {
			continue
		}
		seen[models.DayKey(t)] = t
	}
	if len(seen) == 0 {
		return 0
	}

	days := make([]time.Time, 0, len(seen))
	for _, t := range seen {
		days = append(days, t)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// PreviousHighScore returns the best single-day total over every day except
// today's key, or 0 if no other day exists. Used for "+N vs your best"
// deltas.
func PreviousHighScore(doc models.Document, todayKey string) int {
	best := 0
	for key, rec := range doc.DailyData {
		if key == todayKey {
			continue
		}
		if p := ForDay(rec); p > best {
			best = p
		}
	}
	return best
}
