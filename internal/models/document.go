package models

import (
	"time"

	"github.com/jmdelaney/dayglow/internal/constants"
)

// Document is the full persisted state for one user: every daily record keyed
// by canonical day key, the habit catalog, and freeform notes.
type Document struct {
	Version   int                    `json:"version"`
	DailyData map[string]DailyRecord `json:"daily_data"`
	Habits    []string               `json:"habits"`
	Notes     []Note                 `json:"notes"`

	// TotalPoints and CurrentStreak are cached scalars kept for display in
	// contexts where the full derivation is unavailable. They may be stale;
	// the points package recomputes the real values from DailyData.
	TotalPoints   int `json:"total_points"`
	CurrentStreak int `json:"current_streak"`
}

// NewDocument returns an empty, initialized document.
func NewDocument() Document {
	return Document{
		Version:   1,
		DailyData: make(map[string]DailyRecord),
		Habits:    []string{},
		Notes:     []Note{},
	}
}

// Record returns the record for the given day key, or a zero record if none
// exists. Absence of data is never an error.
func (d Document) Record(day string) DailyRecord {
	if d.DailyData == nil {
		return DailyRecord{}
	}
	return d.DailyData[day]
}

// SetRecord stores the record under the given day key, creating the map if
// the document was decoded from an empty payload.
func (d *Document) SetRecord(day string, rec DailyRecord) {
	if d.DailyData == nil {
		d.DailyData = make(map[string]DailyRecord)
	}
	d.DailyData[day] = rec
}

// AddHabit appends a habit id to the catalog. Returns false if it was already
// present.
func (d *Document) AddHabit(id string) bool {
	for _, h := range d.Habits {
		if h == id {
			return false
		}
	}
	d.Habits = append(d.Habits, id)
	return true
}

// DayKey formats a moment as the canonical calendar-day key.
func DayKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDayKey parses a canonical day key into a date at midnight UTC.
func ParseDayKey(key string) (time.Time, error) {
	return time.Parse(constants.DateFormat, key)
}

// Today returns the canonical day key for the current local date.
func Today() string {
	return DayKey(time.Now())
}
