package models

import "time"

// TaskItem is an additional task with its completion flag. Tasks and their
// completion state live in one structure so no index alignment between
// parallel lists is ever required.
type TaskItem struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// Connection is a person the user intends to reach out to today.
type Connection struct {
	Name string `json:"name"`
	Done bool   `json:"done"`
}

// Meeting is a raw meeting row entered during the morning flow. Rows with a
// title and both times are converted to TimeBlocks on flow completion; the
// rest are dropped.
type Meeting struct {
	Title string `json:"title"`
	Start string `json:"start"` // HH:MM
	End   string `json:"end"`   // HH:MM
}

// Basics are the six daily wellness flags, each worth a fixed reward.
type Basics struct {
	Water         bool `json:"water"`
	HealthyEating bool `json:"healthy_eating"`
	Listened      bool `json:"listened"`
	Mindfulness   bool `json:"mindfulness"`
	Steps10k      bool `json:"steps_10k"`
	Sleep7h       bool `json:"sleep_7h"`
}

// Count returns the number of basics done.
func (b Basics) Count() int {
	n := 0
	for _, v := range []bool{b.Water, b.HealthyEating, b.Listened, b.Mindfulness, b.Steps10k, b.Sleep7h} {
		if v {
			n++
		}
	}
	return n
}

// PointCategory labels a side-channel point event so the breakdown can bucket
// it correctly.
type PointCategory string

const (
	PointCategoryDread    PointCategory = "dread"
	PointCategoryPomodoro PointCategory = "pomodoro"
)

// PointEvent records one side-channel award or reversal.
type PointEvent struct {
	Category PointCategory `json:"category"`
	Delta    int           `json:"delta"`
	At       time.Time     `json:"at"`
}

// DailyRecord is one calendar day's activity bag. Every field is optional;
// a zero record scores zero points.
type DailyRecord struct {
	// Morning
	SleepQuality  int          `json:"sleep_quality,omitempty"` // 1-5, 0 = unanswered
	BedTime       string       `json:"bed_time,omitempty"`      // HH:MM
	WakeTime      string       `json:"wake_time,omitempty"`     // HH:MM
	MorningMood   string       `json:"morning_mood,omitempty"`
	Reflection    string       `json:"reflection,omitempty"`
	MainPriority  string       `json:"main_priority,omitempty"`
	FirstStep     string       `json:"first_step,omitempty"`
	Tasks         []TaskItem   `json:"tasks,omitempty"`
	Connections   []Connection `json:"connections,omitempty"`
	ChosenHabits  []string     `json:"chosen_habits,omitempty"`
	GoodDayVision string       `json:"good_day_vision,omitempty"`
	Meetings      []Meeting    `json:"meetings,omitempty"`

	// Evening
	CompletedMainTask bool     `json:"completed_main_task,omitempty"`
	WinOfDay          string   `json:"win_of_day,omitempty"`
	Obstacles         []string `json:"obstacles,omitempty"`
	EveningMood       string   `json:"evening_mood,omitempty"`
	DayDescription    string   `json:"day_description,omitempty"`

	// Completion
	CompletedHabits []string `json:"completed_habits,omitempty"`

	// Trackers
	Basics       Basics       `json:"basics"`
	WaterGlasses int          `json:"water_glasses,omitempty"`
	TimeBlocks   []TimeBlock  `json:"time_blocks,omitempty"`
	Worries      []WorryEntry `json:"worries,omitempty"`

	// Points is the side-channel accumulator, mutated only by explicit
	// award/reverse operations. It is summed verbatim into the day's total
	// and can go negative through reversals. PointEvents tags each mutation
	// with its category; the accumulator stays equal to the event sum.
	Points      int          `json:"points,omitempty"`
	PointEvents []PointEvent `json:"point_events,omitempty"`
}

// MorningComplete reports whether the morning check-in condition holds:
// sleep quality, morning mood and main priority all present. This is the
// unit of streak counting.
func (r DailyRecord) MorningComplete() bool {
	return r.SleepQuality > 0 && r.MorningMood != "" && r.MainPriority != ""
}

// EveningComplete reports whether the evening review condition holds.
func (r DailyRecord) EveningComplete() bool {
	return r.EveningMood != "" && r.DayDescription != ""
}

// HabitDone reports whether the given habit id is marked complete today.
func (r DailyRecord) HabitDone(id string) bool {
	for _, h := range r.CompletedHabits {
		if h == id {
			return true
		}
	}
	return false
}

// AddPoints applies a categorized side-channel delta to the record.
func (r *DailyRecord) AddPoints(category PointCategory, delta int, at time.Time) {
	r.Points += delta
	r.PointEvents = append(r.PointEvents, PointEvent{Category: category, Delta: delta, At: at})
}
