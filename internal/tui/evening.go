package tui

import (
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/jmdelaney/dayglow/internal/flow"
	"github.com/jmdelaney/dayglow/internal/models"
)

// NewEveningWizard wires the evening machine to its step forms.
func NewEveningWizard(machine *flow.Machine[*models.DailyRecord]) *Wizard[*models.DailyRecord] {
	obstacles := strings.Join(machine.Draft.Obstacles, "\n")

	build := func(step flow.Step[*models.DailyRecord], rec *models.DailyRecord) *huh.Form {
		switch step.Key {
		case flow.StepMainTaskDone:
			return oneField(huh.NewConfirm().
				Title(step.Title).
				Affirmative("Yes").
				Negative("Not today").
				Value(&rec.CompletedMainTask))
		case flow.StepWinOfDay:
			return oneField(requiredInput(step.Title, "Even a small one counts", &rec.WinOfDay))
		case flow.StepObstacles:
			return oneField(huh.NewText().
				Title(step.Title).
				Description("One per line, leave empty to skip").
				Value(&obstacles))
		case flow.StepEveningMood:
			return oneField(moodInput(step.Title, &rec.EveningMood))
		default: // day description
			return oneField(huh.NewText().
				Title(step.Title).
				Value(&rec.DayDescription).
				Validate(nonEmpty("a few words")))
		}
	}

	onStep := func(key string, rec *models.DailyRecord) {
		if key == flow.StepObstacles {
			rec.Obstacles = splitLines(obstacles)
		}
	}

	return NewWizard("Evening review", machine, build, onStep)
}
