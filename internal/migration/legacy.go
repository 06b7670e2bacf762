// Package migration converts documents written by earlier builds into the
// canonical model. Legacy payloads used camelCase field names, parallel
// task/people index arrays, locale-formatted day keys, and an evening mood
// that was sometimes a tag and sometimes a 1-5 rating.
package migration

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmdelaney/dayglow/internal/constants"
	"github.com/jmdelaney/dayglow/internal/logger"
	"github.com/jmdelaney/dayglow/internal/models"
)

type legacyBasics struct {
	Water         bool `json:"water"`
	HealthyEating bool `json:"healthyEating"`
	Listened      bool `json:"listenedToSomething"`
	Mindfulness   bool `json:"mindfulness"`
	Steps10k      bool `json:"tenKSteps"`
	Sleep7h       bool `json:"sevenHoursSleep"`
}

type legacyMeeting struct {
	Title string `json:"title"`
	Start string `json:"startTime"`
	End   string `json:"endTime"`
}

type legacyTimeBlock struct {
	ID       string    `json:"id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Category string    `json:"category"`
	Label    string    `json:"label"`
}

type legacyWorry struct {
	ID          string     `json:"id"`
	CreatedAt   time.Time  `json:"date"`
	Worry       string     `json:"worry"`
	Evidence    string     `json:"evidence"`
	Sensations  string     `json:"sensations"`
	PastEpisode string     `json:"pastExperience"`
	Balanced    string     `json:"balancedView"`
	FriendTake  string     `json:"adviceToFriend"`
	Kindness    string     `json:"selfKindness"`
	Reframe     string     `json:"reframe"`
	ReframeDate *time.Time `json:"reframeDate"`
}

type legacyNote struct {
	ID        string     `json:"id"`
	Text      string     `json:"text"`
	Color     string     `json:"color"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

type legacyRecord struct {
	SleepQuality      int             `json:"sleepQuality"`
	BedTime           string          `json:"bedTime"`
	WakeTime          string          `json:"wakeTime"`
	MorningMood       string          `json:"morningMood"`
	Reflection        string          `json:"morningReflection"`
	MainPriority      string          `json:"mainPriority"`
	FirstStep         string          `json:"firstStep"`
	AdditionalTasks   []string        `json:"additionalTasks"`
	CompletedTasks    []bool          `json:"completedTasks"`
	PeopleToMessage   []string        `json:"peopleToMessage"`
	CompletedPeople   []bool          `json:"completedPeople"`
	ChosenHabits      []string        `json:"habits"`
	GoodDayVision     string          `json:"goodDayVision"`
	Meetings          []legacyMeeting `json:"meetings"`
	CompletedMainTask bool            `json:"completedMainTask"`
	WinOfDay          string          `json:"winOfDay"`
	Obstacles         []string        `json:"obstacles"`
	EveningMood       json.RawMessage `json:"eveningMood"`
	DayDescription    string          `json:"dayDescription"`
	CompletedHabits   []string        `json:"completedHabits"`
	Basics            legacyBasics    `json:"basics"`
	WaterGlasses      int             `json:"waterGlasses"`
	TimeBlocks        []legacyTimeBlock `json:"timeBlocks"`
	Worries           []legacyWorry   `json:"worries"`
	Points            int             `json:"points"`
}

type legacyDocument struct {
	DailyData map[string]legacyRecord `json:"dailyData"`
	Habits    []string                `json:"habits"`
	Notes     []legacyNote            `json:"notes"`
}

// Day keys that older builds produced through locale formatting.
var legacyKeyLayouts = []string{
	constants.DateFormat,
	"1/2/2006",
	"January 2, 2006",
	"Monday, January 2, 2006",
	"02.01.2006",
}

// Moods older builds stored as a 1-5 rating in the evening field.
var numericMoods = map[int]string{
	1: "drained",
	2: "tired",
	3: "okay",
	4: "content",
	5: "great",
}

// IsLegacy reports whether raw looks like a legacy document (camelCase
// top-level daily data key).
func IsLegacy(raw []byte) bool {
	var probe struct {
		DailyData json.RawMessage `json:"dailyData"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return false
	}
	return len(probe.DailyData) > 0
}

// Convert parses a legacy document payload into the canonical model. Records
// whose day key cannot be parsed by any known layout are skipped with a
// warning rather than failing the whole migration.
func Convert(raw []byte) (models.Document, error) {
	var legacy legacyDocument
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return models.Document{}, fmt.Errorf("failed to parse legacy document: %w", err)
	}

	doc := models.NewDocument()
	doc.Habits = append(doc.Habits, legacy.Habits...)
	for _, n := range legacy.Notes {
		doc.Notes = append(doc.Notes, convertNote(n))
	}

	for key, lrec := range legacy.DailyData {
		day, ok := normalizeKey(key)
		if !ok {
			logger.Warn("Skipping record with unparseable day key", "key", key)
			continue
		}
		doc.SetRecord(day, convertRecord(lrec))
	}

	return doc, nil
}

func normalizeKey(key string) (string, bool) {
	for _, layout := range legacyKeyLayouts {
		if t, err := time.Parse(layout, key); err == nil {
			return models.DayKey(t), true
		}
	}
	return "", false
}

func convertRecord(lrec legacyRecord) models.DailyRecord {
	rec := models.DailyRecord{
		SleepQuality:      lrec.SleepQuality,
		BedTime:           lrec.BedTime,
		WakeTime:          lrec.WakeTime,
		MorningMood:       lrec.MorningMood,
		Reflection:        lrec.Reflection,
		MainPriority:      lrec.MainPriority,
		FirstStep:         lrec.FirstStep,
		ChosenHabits:      lrec.ChosenHabits,
		GoodDayVision:     lrec.GoodDayVision,
		CompletedMainTask: lrec.CompletedMainTask,
		WinOfDay:          lrec.WinOfDay,
		Obstacles:         lrec.Obstacles,
		EveningMood:       convertEveningMood(lrec.EveningMood),
		DayDescription:    lrec.DayDescription,
		CompletedHabits:   lrec.CompletedHabits,
		WaterGlasses:      lrec.WaterGlasses,
		Points:            lrec.Points,
		Basics: models.Basics{
			Water:         lrec.Basics.Water,
			HealthyEating: lrec.Basics.HealthyEating,
			Listened:      lrec.Basics.Listened,
			Mindfulness:   lrec.Basics.Mindfulness,
			Steps10k:      lrec.Basics.Steps10k,
			Sleep7h:       lrec.Basics.Sleep7h,
		},
	}

	// Pair parallel index arrays. The completion array may be shorter than
	// its source (missing means not completed) or longer; flags past the end
	// of the source list have nothing to refer to and are dropped.
	rec.Tasks = pairTasks(lrec.AdditionalTasks, lrec.CompletedTasks)
	rec.Connections = pairConnections(lrec.PeopleToMessage, lrec.CompletedPeople)

	for _, m := range lrec.Meetings {
		rec.Meetings = append(rec.Meetings, models.Meeting{Title: m.Title, Start: m.Start, End: m.End})
	}
	for _, b := range lrec.TimeBlocks {
		rec.TimeBlocks = append(rec.TimeBlocks, models.TimeBlock{
			ID:       b.ID,
			Start:    b.Start,
			End:      b.End,
			Category: convertCategory(b.Category),
			Label:    b.Label,
		})
	}
	for _, w := range lrec.Worries {
		rec.Worries = append(rec.Worries, models.WorryEntry{
			ID:          w.ID,
			CreatedAt:   w.CreatedAt,
			Worry:       w.Worry,
			Evidence:    w.Evidence,
			Sensations:  w.Sensations,
			PastEpisode: w.PastEpisode,
			Balanced:    w.Balanced,
			FriendTake:  w.FriendTake,
			Kindness:    w.Kindness,
			Reframe:     w.Reframe,
			ReframeDate: w.ReframeDate,
		})
	}

	return rec
}

func pairTasks(texts []string, done []bool) []models.TaskItem {
	if len(texts) == 0 {
		return nil
	}
	items := make([]models.TaskItem, 0, len(texts))
	for i, text := range texts {
		item := models.TaskItem{Text: text}
		if i < len(done) {
			item.Done = done[i]
		}
		items = append(items, item)
	}
	return items
}

func pairConnections(names []string, done []bool) []models.Connection {
	if len(names) == 0 {
		return nil
	}
	items := make([]models.Connection, 0, len(names))
	for i, name := range names {
		item := models.Connection{Name: name}
		if i < len(done) {
			item.Done = done[i]
		}
		items = append(items, item)
	}
	return items
}

func convertCategory(c string) models.BlockCategory {
	switch models.BlockCategory(c) {
	case models.BlockPriority, models.BlockTask, models.BlockHabit, models.BlockConnect, models.BlockCustom:
		return models.BlockCategory(c)
	default:
		return models.BlockCustom
	}
}

func convertNote(n legacyNote) models.Note {
	color := models.NoteColor(n.Color)
	if !models.ValidNoteColor(color) {
		color = models.NoteYellow
	}
	return models.Note{
		ID:        n.ID,
		Text:      n.Text,
		Color:     color,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

// convertEveningMood accepts both historical representations: a mood tag
// string or a 1-5 numeric rating.
func convertEveningMood(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var tag string
	if err := json.Unmarshal(raw, &tag); err == nil {
		return tag
	}

	var rating int
	if err := json.Unmarshal(raw, &rating); err == nil {
		if mood, ok := numericMoods[rating]; ok {
			return mood
		}
	}

	return ""
}
