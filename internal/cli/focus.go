package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmdelaney/dayglow/internal/constants"
	"github.com/jmdelaney/dayglow/internal/points"
	"github.com/jmdelaney/dayglow/internal/timer"
	"github.com/jmdelaney/dayglow/internal/tui"
)

type FocusCmd struct {
	Minutes  int `help:"Focus session length in minutes." default:"25"`
	Break    int `help:"Break length in minutes." default:"5"`
	Sessions int `help:"Number of focus sessions to run." default:"1"`
}

func (c *FocusCmd) Run(ctx *Context) error {
	if c.Minutes < 1 || c.Break < 1 || c.Sessions < 1 {
		return fmt.Errorf("minutes, break and sessions must all be positive")
	}

	t := timer.New(time.Duration(c.Minutes)*time.Minute, time.Duration(c.Break)*time.Minute)

	// Each completed focus session is awarded immediately, so a later cancel
	// never takes back sessions already finished.
	model := tui.NewFocusModel(t, c.Sessions, func() {
		points.CompleteFocusSession(&ctx.Doc, ctx.Today(), Timestamp())
		ctx.Persist()
	})

	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("failed to run focus timer: %w", err)
	}

	if t.Completed == 0 {
		fmt.Println("No sessions completed.")
		return nil
	}

	fmt.Printf("Completed %d focus session(s): +%d points.\n",
		t.Completed, t.Completed*constants.PointsFocusSession)
	ctx.Flush()
	return nil
}
