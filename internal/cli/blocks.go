package cli

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jmdelaney/dayglow/internal/constants"
	"github.com/jmdelaney/dayglow/internal/models"
)

type BlocksCmd struct {
	Add  BlocksAddCmd  `cmd:"" help:"Add a time block to today."`
	List BlocksListCmd `cmd:"" default:"1" help:"List today's time blocks."`
}

type BlocksAddCmd struct {
	Start    string   `arg:"" help:"Start time (HH:MM)."`
	End      string   `arg:"" help:"End time (HH:MM)."`
	Label    []string `arg:"" help:"Block label."`
	Category string   `help:"Block category (priority, task, habit, connect, custom)." default:"custom"`
}

func (c *BlocksAddCmd) Run(ctx *Context) error {
	label := strings.TrimSpace(strings.Join(c.Label, " "))
	if label == "" {
		return fmt.Errorf("block label cannot be empty")
	}

	category := models.BlockCategory(strings.ToLower(c.Category))
	switch category {
	case models.BlockPriority, models.BlockTask, models.BlockHabit, models.BlockConnect, models.BlockCustom:
	default:
		return fmt.Errorf("invalid category %q", c.Category)
	}

	day, err := models.ParseDayKey(ctx.Today())
	if err != nil {
		return err
	}
	start, err := clockOn(day, c.Start)
	if err != nil {
		return err
	}
	end, err := clockOn(day, c.End)
	if err != nil {
		return err
	}

	block := models.TimeBlock{
		ID:       uuid.New().String(),
		Start:    start,
		End:      end,
		Category: category,
		Label:    label,
	}
	if err := block.Validate(); err != nil {
		return err
	}

	rec := ctx.TodayRecord()
	rec.TimeBlocks = append(rec.TimeBlocks, block)
	ctx.SetTodayRecord(rec)
	ctx.Persist()

	fmt.Printf("Added block %s-%s %s\n", c.Start, c.End, label)
	ctx.Flush()
	return nil
}

type BlocksListCmd struct{}

func (c *BlocksListCmd) Run(ctx *Context) error {
	rec := ctx.TodayRecord()
	if len(rec.TimeBlocks) == 0 {
		fmt.Println("No time blocks for today.")
		return nil
	}

	blocks := make([]models.TimeBlock, len(rec.TimeBlocks))
	copy(blocks, rec.TimeBlocks)
	sort.Slice(blocks, func(i, j int) bool { return blocks[i].Start.Before(blocks[j].Start) })

	for _, b := range blocks {
		fmt.Printf("%s-%s  %-8s  %s\n",
			b.Start.Format(constants.TimeFormat),
			b.End.Format(constants.TimeFormat),
			b.Category, b.Label)
	}
	return nil
}

// clockOn anchors an HH:MM clock reading to the given date.
func clockOn(day time.Time, clock string) (time.Time, error) {
	t, err := time.Parse(constants.TimeFormat, clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q (expected HH:MM)", clock)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}
