package points

import (
	"time"

	"github.com/jmdelaney/dayglow/internal/constants"
	"github.com/jmdelaney/dayglow/internal/models"
)

// Side-channel operations. These are the only writers of a record's Points
// accumulator; each mutation is tagged with its category so the breakdown
// can bucket it. All of them read the current record out of the document
// rather than a caller-held copy, then write the merged record back.

// AddWorry appends a completed worry entry to the day's record and awards
// the fixed worry reward.
func AddWorry(doc *models.Document, day string, entry models.WorryEntry, now time.Time) {
	rec := doc.Record(day)
	rec.Worries = append(rec.Worries, entry)
	rec.AddPoints(models.PointCategoryDread, constants.PointsWorryEntry, now)
	doc.SetRecord(day, rec)
}

// DeleteWorry removes the worry with the given id and reverses its award,
// plus the reframe award if one had been issued. Returns false if no such
// worry exists on that day.
func DeleteWorry(doc *models.Document, day, id string, now time.Time) bool {
	rec := doc.Record(day)
	for i, w := range rec.Worries {
		if w.ID != id {
			continue
		}
		rec.Worries = append(rec.Worries[:i], rec.Worries[i+1:]...)
		rec.AddPoints(models.PointCategoryDread, -constants.PointsWorryEntry, now)
		if w.HasReframe() {
			rec.AddPoints(models.PointCategoryDread, -constants.PointsWorryReframe, now)
		}
		doc.SetRecord(day, rec)
		return true
	}
	return false
}

// AddReframe records a reframe on an existing worry. The reframe reward is
// issued exactly once per worry; editing an existing reframe updates the
// text without re-awarding. Returns false if no such worry exists.
func AddReframe(doc *models.Document, day, id, reframe string, now time.Time) bool {
	rec := doc.Record(day)
	for i, w := range rec.Worries {
		if w.ID != id {
			continue
		}
		first := !w.HasReframe()
		rec.Worries[i].Reframe = reframe
		rec.Worries[i].ReframeDate = &now
		if first {
			rec.AddPoints(models.PointCategoryDread, constants.PointsWorryReframe, now)
		}
		doc.SetRecord(day, rec)
		return true
	}
	return false
}

// CompleteFocusSession awards the focus-session reward to the day's record.
func CompleteFocusSession(doc *models.Document, day string, now time.Time) {
	rec := doc.Record(day)
	rec.AddPoints(models.PointCategoryPomodoro, constants.PointsFocusSession, now)
	doc.SetRecord(day, rec)
}
