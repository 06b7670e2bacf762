package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jmdelaney/dayglow/internal/flow"
	"github.com/jmdelaney/dayglow/internal/points"
	"github.com/jmdelaney/dayglow/internal/tui"
)

type MorningCmd struct{}

func (c *MorningCmd) Run(ctx *Context) error {
	machine := flow.NewMorning(ctx.TodayRecord())
	wiz := tui.NewMorningWizard(machine, ctx.Doc.Habits)

	if _, err := tea.NewProgram(wiz).Run(); err != nil {
		return fmt.Errorf("failed to run morning check-in: %w", err)
	}

	if !wiz.Done {
		fmt.Println("Morning check-in abandoned; nothing saved.")
		return nil
	}

	rec := flow.FinishMorning(wiz.Draft(), ctx.Today(), func() string { return uuid.New().String() })
	ctx.SetTodayRecord(rec)
	ctx.Persist()

	fmt.Printf("Morning check-in complete. Today so far: %d points.\n", points.ForDay(rec))
	ctx.Flush()
	return nil
}
