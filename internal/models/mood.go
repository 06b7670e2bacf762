package models

import (
	"sort"
	"strings"
)

// MoodValence classifies a mood tag. Every place a mood string is interpreted
// goes through Valence so the word lists cannot drift between call sites.
type MoodValence int

const (
	MoodUnclassified MoodValence = iota
	MoodNegative
	MoodNeutral
	MoodPositive
)

func (v MoodValence) String() string {
	switch v {
	case MoodPositive:
		return "positive"
	case MoodNegative:
		return "negative"
	case MoodNeutral:
		return "neutral"
	default:
		return "unclassified"
	}
}

var moodValences = map[string]MoodValence{
	"great":     MoodPositive,
	"happy":     MoodPositive,
	"energized": MoodPositive,
	"calm":      MoodPositive,
	"content":   MoodPositive,
	"grateful":  MoodPositive,
	"excited":   MoodPositive,
	"okay":      MoodNeutral,
	"fine":      MoodNeutral,
	"meh":       MoodNeutral,
	"tired":     MoodNegative,
	"stressed":  MoodNegative,
	"anxious":   MoodNegative,
	"sad":       MoodNegative,
	"angry":     MoodNegative,
	"drained":   MoodNegative,
}

// MoodTags returns the known mood tags in alphabetical order, for input
// suggestions. Moods outside this list are accepted and classify as
// Unclassified.
func MoodTags() []string {
	tags := make([]string, 0, len(moodValences))
	for tag := range moodValences {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Valence classifies a free-form mood tag. Unknown tags are Unclassified,
// never an error.
func Valence(mood string) MoodValence {
	if v, ok := moodValences[strings.ToLower(strings.TrimSpace(mood))]; ok {
		return v
	}
	return MoodUnclassified
}
