package cli

import (
	"fmt"
	"strings"

	"github.com/jmdelaney/dayglow/internal/constants"
)

type BasicsCmd struct {
	Toggle []string `arg:"" optional:"" help:"Basics to toggle: water, eating, listened, mindfulness, steps, sleep."`
}

func (c *BasicsCmd) Run(ctx *Context) error {
	rec := ctx.TodayRecord()

	if len(c.Toggle) > 0 {
		for _, name := range c.Toggle {
			switch strings.ToLower(strings.TrimSpace(name)) {
			case "water":
				rec.Basics.Water = !rec.Basics.Water
			case "eating", "healthy-eating":
				rec.Basics.HealthyEating = !rec.Basics.HealthyEating
			case "listened", "listening":
				rec.Basics.Listened = !rec.Basics.Listened
			case "mindfulness":
				rec.Basics.Mindfulness = !rec.Basics.Mindfulness
			case "steps":
				rec.Basics.Steps10k = !rec.Basics.Steps10k
			case "sleep":
				rec.Basics.Sleep7h = !rec.Basics.Sleep7h
			default:
				return fmt.Errorf("unknown basic %q (water, eating, listened, mindfulness, steps, sleep)", name)
			}
		}
		ctx.SetTodayRecord(rec)
		ctx.Persist()
	}

	fmt.Println("Daily basics:")
	for _, row := range []struct {
		label string
		done  bool
	}{
		{"water", rec.Basics.Water},
		{"eating", rec.Basics.HealthyEating},
		{"listened", rec.Basics.Listened},
		{"mindfulness", rec.Basics.Mindfulness},
		{"steps", rec.Basics.Steps10k},
		{"sleep", rec.Basics.Sleep7h},
	} {
		status := "[ ]"
		if row.done {
			status = "[x]"
		}
		fmt.Printf("%s %s\n", status, row.label)
	}
	fmt.Printf("\n%d/6 done\n", rec.Basics.Count())

	if len(c.Toggle) > 0 {
		ctx.Flush()
	}
	return nil
}

type WaterCmd struct {
	Glasses int `arg:"" optional:"" default:"1" help:"Glasses to add."`
}

func (c *WaterCmd) Run(ctx *Context) error {
	if c.Glasses < 1 {
		return fmt.Errorf("glass count must be positive")
	}

	rec := ctx.TodayRecord()
	rec.WaterGlasses += c.Glasses
	if rec.WaterGlasses >= constants.WaterGoalGlasses {
		rec.Basics.Water = true
	}
	ctx.SetTodayRecord(rec)
	ctx.Persist()

	fmt.Printf("Water: %d/%d glasses", rec.WaterGlasses, constants.WaterGoalGlasses)
	if rec.Basics.Water {
		fmt.Print("  ✓ goal reached")
	}
	fmt.Println()
	ctx.Flush()
	return nil
}
