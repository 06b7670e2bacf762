package flow

import "github.com/jmdelaney/dayglow/internal/models"

// Evening step keys, in order.
const (
	StepMainTaskDone   = "main_task_done"
	StepWinOfDay       = "win_of_day"
	StepObstacles      = "obstacles"
	StepEveningMood    = "evening_mood"
	StepDayDescription = "day_description"
)

func eveningSteps() []Step[*models.DailyRecord] {
	return []Step[*models.DailyRecord]{
		// A yes/no is always defined, so the first step never blocks.
		{Key: StepMainTaskDone, Title: "Did you finish your main priority?"},
		{Key: StepWinOfDay, Title: "What was your win today?",
			Filled: func(r *models.DailyRecord) bool { return r.WinOfDay != "" }},
		{Key: StepObstacles, Title: "What got in the way?", Optional: true},
		{Key: StepEveningMood, Title: "How do you feel now?",
			Filled: func(r *models.DailyRecord) bool { return r.EveningMood != "" }},
		{Key: StepDayDescription, Title: "Describe your day",
			Filled: func(r *models.DailyRecord) bool { return r.DayDescription != "" }},
	}
}

// NewEvening builds the evening machine seeded from today's existing record.
func NewEvening(existing models.DailyRecord) *Machine[*models.DailyRecord] {
	draft := existing
	return New(&draft, eveningSteps())
}
