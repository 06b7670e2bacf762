package flow

import (
	"time"

	"github.com/jmdelaney/dayglow/internal/constants"
	"github.com/jmdelaney/dayglow/internal/models"
)

// Morning step keys, in order.
const (
	StepWelcome       = "welcome"
	StepSleepQuality  = "sleep_quality"
	StepBedTime       = "bed_time"
	StepWakeTime      = "wake_time"
	StepMorningMood   = "morning_mood"
	StepReflection    = "reflection"
	StepMainPriority  = "main_priority"
	StepFirstStep     = "first_step"
	StepTasks         = "tasks"
	StepConnections   = "connections"
	StepHabits        = "habits"
	StepGoodDayVision = "good_day_vision"
	StepMeetings      = "meetings"
	StepMorningReview = "review"
)

func morningSteps() []Step[*models.DailyRecord] {
	return []Step[*models.DailyRecord]{
		{Key: StepWelcome, Title: "Good morning"},
		{Key: StepSleepQuality, Title: "How well did you sleep?",
			Filled: func(r *models.DailyRecord) bool { return r.SleepQuality > 0 }},
		{Key: StepBedTime, Title: "When did you go to bed?",
			Filled: func(r *models.DailyRecord) bool { return r.BedTime != "" }},
		{Key: StepWakeTime, Title: "When did you wake up?",
			Filled: func(r *models.DailyRecord) bool { return r.WakeTime != "" }},
		{Key: StepMorningMood, Title: "How are you feeling?",
			Filled: func(r *models.DailyRecord) bool { return r.MorningMood != "" }},
		{Key: StepReflection, Title: "What's on your mind?",
			Filled: func(r *models.DailyRecord) bool { return r.Reflection != "" }},
		{Key: StepMainPriority, Title: "What's your main priority today?",
			Filled: func(r *models.DailyRecord) bool { return r.MainPriority != "" }},
		{Key: StepFirstStep, Title: "What's the first step?",
			Filled: func(r *models.DailyRecord) bool { return r.FirstStep != "" }},
		{Key: StepTasks, Title: "Anything else to get done?", Optional: true},
		{Key: StepConnections, Title: "Anyone to reach out to?", Optional: true},
		{Key: StepHabits, Title: "Which habits today?", Optional: true},
		{Key: StepGoodDayVision, Title: "What would make today a good day?",
			Filled: func(r *models.DailyRecord) bool { return r.GoodDayVision != "" }},
		{Key: StepMeetings, Title: "Any meetings?", Optional: true},
		{Key: StepMorningReview, Title: "Ready for the day"},
	}
}

// NewMorning builds the morning machine seeded from today's existing record,
// so re-opening the flow resumes prior answers instead of resetting them.
func NewMorning(existing models.DailyRecord) *Machine[*models.DailyRecord] {
	draft := existing
	return New(&draft, morningSteps())
}

// FinishMorning finalizes a completed morning draft: meeting rows with a
// title and both times become custom time blocks anchored to the given day;
// incomplete rows are silently dropped. Re-opening the flow resumes a saved
// record whose meetings were already converted once, so rows that already
// have a matching block are skipped rather than converted again.
func FinishMorning(draft *models.DailyRecord, day string, newID func() string) models.DailyRecord {
	rec := *draft
	blocks := rec.TimeBlocks
	for _, b := range MeetingBlocks(day, rec.Meetings, newID) {
		if hasMeetingBlock(blocks, b) {
			continue
		}
		blocks = append(blocks, b)
	}
	rec.TimeBlocks = blocks
	return rec
}

func hasMeetingBlock(blocks []models.TimeBlock, b models.TimeBlock) bool {
	for _, existing := range blocks {
		if existing.Category == models.BlockCustom &&
			existing.Label == b.Label &&
			existing.Start.Equal(b.Start) {
			return true
		}
	}
	return false
}

// MeetingBlocks converts meeting rows to time blocks. A row converts only if
// its title is non-empty and both times parse; conversion failures are not
// errors.
func MeetingBlocks(day string, meetings []models.Meeting, newID func() string) []models.TimeBlock {
	date, err := models.ParseDayKey(day)
	if err != nil {
		return nil
	}

	var blocks []models.TimeBlock
	for _, mt := range meetings {
		if mt.Title == "" {
			continue
		}
		start, err := time.Parse(constants.TimeFormat, mt.Start)
		if err != nil {
			continue
		}
		end, err := time.Parse(constants.TimeFormat, mt.End)
		if err != nil {
			continue
		}
		blocks = append(blocks, models.TimeBlock{
			ID:       newID(),
			Start:    time.Date(date.Year(), date.Month(), date.Day(), start.Hour(), start.Minute(), 0, 0, date.Location()),
			End:      time.Date(date.Year(), date.Month(), date.Day(), end.Hour(), end.Minute(), 0, 0, date.Location()),
			Category: models.BlockCustom,
			Label:    mt.Title,
		})
	}
	return blocks
}
