package models

import "time"

// NoteColor is the fixed palette a note can be tagged with.
type NoteColor string

const (
	NoteYellow NoteColor = "yellow"
	NoteGreen  NoteColor = "green"
	NoteBlue   NoteColor = "blue"
	NotePink   NoteColor = "pink"
	NotePurple NoteColor = "purple"
)

// NoteColors lists the palette in display order.
var NoteColors = []NoteColor{NoteYellow, NoteGreen, NoteBlue, NotePink, NotePurple}

// Note is a freeform sticky note. The document keeps notes most-recent-first.
type Note struct {
	ID        string     `json:"id"`
	Text      string     `json:"text"`
	Color     NoteColor  `json:"color"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// ValidNoteColor reports whether c is part of the palette.
func ValidNoteColor(c NoteColor) bool {
	for _, p := range NoteColors {
		if p == c {
			return true
		}
	}
	return false
}
