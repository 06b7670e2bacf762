package cli

import (
	"fmt"
	"sort"

	"github.com/jmdelaney/dayglow/internal/constants"
	"github.com/jmdelaney/dayglow/internal/models"
	"github.com/jmdelaney/dayglow/internal/tui"
)

// TuiCmd renders the full day view: scoreboard plus the day's plan.
type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	fmt.Println(tui.Dashboard(ctx.Doc, ctx.Today(), Timestamp(), StatusLine(ctx.Saver.Status())))

	rec := ctx.TodayRecord()

	if rec.MainPriority != "" {
		status := "[ ]"
		if rec.CompletedMainTask {
			status = "[x]"
		}
		fmt.Printf("  %s %s\n", status, rec.MainPriority)
	}
	for _, t := range rec.Tasks {
		status := "[ ]"
		if t.Done {
			status = "[x]"
		}
		fmt.Printf("  %s %s\n", status, t.Text)
	}

	if len(rec.TimeBlocks) > 0 {
		fmt.Println()
		blocks := make([]models.TimeBlock, len(rec.TimeBlocks))
		copy(blocks, rec.TimeBlocks)
		sort.Slice(blocks, func(i, j int) bool { return blocks[i].Start.Before(blocks[j].Start) })
		for _, b := range blocks {
			fmt.Printf("  %s-%s  %s\n",
				b.Start.Format(constants.TimeFormat),
				b.End.Format(constants.TimeFormat), b.Label)
		}
	}

	return nil
}
