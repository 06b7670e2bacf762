package cli

import (
	"fmt"

	"github.com/jmdelaney/dayglow/internal/points"
	"github.com/jmdelaney/dayglow/internal/tui"
)

type PointsCmd struct {
	Show      PointsShowCmd      `cmd:"" default:"1" hidden:"" help:"Show today's scoreboard."`
	Breakdown PointsBreakdownCmd `cmd:"" help:"Show a per-day points breakdown."`
	Streak    PointsStreakCmd    `cmd:"" help:"Show streak details."`
}

type PointsShowCmd struct{}

func (c *PointsShowCmd) Run(ctx *Context) error {
	fmt.Println(tui.Dashboard(ctx.Doc, ctx.Today(), Timestamp(), StatusLine(ctx.Saver.Status())))
	return nil
}

type PointsBreakdownCmd struct {
	Day string `help:"Day to break down (YYYY-MM-DD, default: today)." default:""`
}

func (c *PointsBreakdownCmd) Run(ctx *Context) error {
	day, err := resolveDay(c.Day, ctx)
	if err != nil {
		return err
	}

	b := points.BreakdownForDay(ctx.Doc.Record(day))
	fmt.Printf("Points for %s:\n\n", FormatDay(day))
	for _, row := range []struct {
		label string
		val   int
	}{
		{"Morning check-in", b.MorningCheckin},
		{"Evening review", b.EveningReview},
		{"Priority task", b.PriorityTask},
		{"Tasks", b.Tasks},
		{"Connections", b.Connections},
		{"Habits", b.Habits},
		{"Basics", b.Basics},
		{"Worry work", b.Dread},
		{"Focus sessions", b.Pomodoro},
	} {
		fmt.Printf("  %-18s %4d\n", row.label, row.val)
	}
	fmt.Printf("\n  %-18s %4d\n", "Total", b.Total())
	return nil
}

type PointsStreakCmd struct{}

func (c *PointsStreakCmd) Run(ctx *Context) error {
	current := points.CurrentStreak(ctx.Doc, Timestamp())
	longest := points.LongestStreak(ctx.Doc)

	fmt.Printf("Current streak: %d day(s)\n", current)
	fmt.Printf("Longest streak: %d day(s)\n", longest)
	if current == 0 {
		fmt.Println("Complete your morning check-in to start a new streak.")
	}
	return nil
}
