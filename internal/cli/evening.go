package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmdelaney/dayglow/internal/flow"
	"github.com/jmdelaney/dayglow/internal/models"
	"github.com/jmdelaney/dayglow/internal/points"
	"github.com/jmdelaney/dayglow/internal/tui"
)

type EveningCmd struct{}

func (c *EveningCmd) Run(ctx *Context) error {
	machine := flow.NewEvening(ctx.TodayRecord())
	wiz := tui.NewEveningWizard(machine)

	if _, err := tea.NewProgram(wiz).Run(); err != nil {
		return fmt.Errorf("failed to run evening review: %w", err)
	}

	if !wiz.Done {
		fmt.Println("Evening review abandoned; nothing saved.")
		return nil
	}

	rec := *wiz.Draft()
	ctx.SetTodayRecord(rec)
	ctx.Persist()

	fmt.Printf("Evening review complete. Today: %d points.\n", points.ForDay(rec))
	if v := models.Valence(rec.EveningMood); v == models.MoodNegative {
		fmt.Println("Rough day. Tomorrow is a fresh start.")
	}
	ctx.Flush()
	return nil
}
