package models

import "time"

// WorryEntry is one pass through the worry-reframing workflow: the worry
// itself plus six structured follow-up answers, with an optional reframe
// added later in a separate step.
type WorryEntry struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Worry       string `json:"worry"`
	Evidence    string `json:"evidence"`
	Sensations  string `json:"sensations"`
	PastEpisode string `json:"past_episode"`
	Balanced    string `json:"balanced"`
	FriendTake  string `json:"friend_take"`
	Kindness    string `json:"kindness"`

	Reframe     string     `json:"reframe,omitempty"`
	ReframeDate *time.Time `json:"reframe_date,omitempty"`
}

// HasReframe reports whether a reframe has been recorded for this entry.
func (w WorryEntry) HasReframe() bool {
	return w.Reframe != ""
}
