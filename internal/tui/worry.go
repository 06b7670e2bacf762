package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/jmdelaney/dayglow/internal/flow"
	"github.com/jmdelaney/dayglow/internal/models"
)

// NewWorryWizard wires the worry machine to its step forms. Each of the seven
// prompts is a required free-text answer; the review step shows the entry
// before it is committed.
func NewWorryWizard(machine *flow.Machine[*models.WorryEntry]) *Wizard[*models.WorryEntry] {
	build := func(step flow.Step[*models.WorryEntry], entry *models.WorryEntry) *huh.Form {
		if step.Key == flow.StepWorryReview {
			return oneField(huh.NewNote().
				Title(step.Title).
				Description(worrySummary(entry)))
		}
		return oneField(huh.NewText().
			Title(step.Title).
			Value(worryField(step.Key, entry)).
			Validate(nonEmpty("an answer")))
	}

	return NewWizard("Worry time", machine, build, nil)
}

func worryField(key string, entry *models.WorryEntry) *string {
	switch key {
	case flow.StepEvidence:
		return &entry.Evidence
	case flow.StepSensations:
		return &entry.Sensations
	case flow.StepPastEpisode:
		return &entry.PastEpisode
	case flow.StepBalanced:
		return &entry.Balanced
	case flow.StepFriendTake:
		return &entry.FriendTake
	case flow.StepKindness:
		return &entry.Kindness
	default:
		return &entry.Worry
	}
}

func worrySummary(entry *models.WorryEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Worry: %s\n", entry.Worry)
	fmt.Fprintf(&b, "Balanced view: %s\n", entry.Balanced)
	fmt.Fprintf(&b, "Kindness: %s\n", entry.Kindness)
	b.WriteString("\nPress enter to save this entry.")
	return b.String()
}
