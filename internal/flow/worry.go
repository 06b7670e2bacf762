package flow

import (
	"time"

	"github.com/jmdelaney/dayglow/internal/models"
)

// Worry step keys, in order. The first seven each require an answer; the
// review step commits.
const (
	StepWorry       = "worry"
	StepEvidence    = "evidence"
	StepSensations  = "sensations"
	StepPastEpisode = "past_episode"
	StepBalanced    = "balanced"
	StepFriendTake  = "friend_take"
	StepKindness    = "kindness"
	StepWorryReview = "worry_review"
)

func worrySteps() []Step[*models.WorryEntry] {
	return []Step[*models.WorryEntry]{
		{Key: StepWorry, Title: "What are you worried about?",
			Filled: func(w *models.WorryEntry) bool { return w.Worry != "" }},
		{Key: StepEvidence, Title: "What evidence supports this worry?",
			Filled: func(w *models.WorryEntry) bool { return w.Evidence != "" }},
		{Key: StepSensations, Title: "What do you notice in your body and mind?",
			Filled: func(w *models.WorryEntry) bool { return w.Sensations != "" }},
		{Key: StepPastEpisode, Title: "Have you faced something like this before?",
			Filled: func(w *models.WorryEntry) bool { return w.PastEpisode != "" }},
		{Key: StepBalanced, Title: "What's a more balanced way to see it?",
			Filled: func(w *models.WorryEntry) bool { return w.Balanced != "" }},
		{Key: StepFriendTake, Title: "What would you tell a friend in this spot?",
			Filled: func(w *models.WorryEntry) bool { return w.FriendTake != "" }},
		{Key: StepKindness, Title: "One kind thing you can do for yourself?",
			Filled: func(w *models.WorryEntry) bool { return w.Kindness != "" }},
		{Key: StepWorryReview, Title: "Review"},
	}
}

// NewWorry builds a worry machine over an empty draft. Worry entries are
// never resumed; each pass through the workflow produces a fresh entry.
func NewWorry() *Machine[*models.WorryEntry] {
	return New(&models.WorryEntry{}, worrySteps())
}

// FinishWorry stamps a completed draft with its identity and creation time.
func FinishWorry(draft *models.WorryEntry, id string, now time.Time) models.WorryEntry {
	entry := *draft
	entry.ID = id
	entry.CreatedAt = now
	return entry
}
