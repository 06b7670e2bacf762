package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jmdelaney/dayglow/internal/flow"
	"github.com/jmdelaney/dayglow/internal/models"
	"github.com/jmdelaney/dayglow/internal/points"
	"github.com/jmdelaney/dayglow/internal/tui"
)

type WorryCmd struct {
	Add     WorryAddCmd     `cmd:"" help:"Work through a new worry."`
	Reframe WorryReframeCmd `cmd:"" help:"Add a reframe to an existing worry."`
	Delete  WorryDeleteCmd  `cmd:"" help:"Delete a worry entry."`
	List    WorryListCmd    `cmd:"" help:"List worry entries."`
}

type WorryAddCmd struct{}

func (c *WorryAddCmd) Run(ctx *Context) error {
	machine := flow.NewWorry()
	wiz := tui.NewWorryWizard(machine)

	if _, err := tea.NewProgram(wiz).Run(); err != nil {
		return fmt.Errorf("failed to run worry workflow: %w", err)
	}

	if !wiz.Done {
		fmt.Println("Worry workflow abandoned; nothing saved.")
		return nil
	}

	entry := flow.FinishWorry(wiz.Draft(), uuid.New().String(), Timestamp())
	points.AddWorry(&ctx.Doc, ctx.Today(), entry, Timestamp())
	ctx.Persist()

	fmt.Printf("Worry recorded (%s). You earned some points for facing it.\n", shortID(entry.ID))
	ctx.Flush()
	return nil
}

type WorryReframeCmd struct {
	ID   string `arg:"" help:"Worry ID (prefix is enough)."`
	Text string `arg:"" help:"The reframe."`
	Day  string `help:"Day the worry was recorded (YYYY-MM-DD, default: today)." default:""`
}

func (c *WorryReframeCmd) Run(ctx *Context) error {
	day, err := resolveDay(c.Day, ctx)
	if err != nil {
		return err
	}

	worry, err := findWorry(ctx.Doc.Record(day), c.ID)
	if err != nil {
		return err
	}

	points.AddReframe(&ctx.Doc, day, worry.ID, c.Text, Timestamp())
	ctx.Persist()

	fmt.Printf("Reframed worry %s.\n", shortID(worry.ID))
	ctx.Flush()
	return nil
}

type WorryDeleteCmd struct {
	ID  string `arg:"" help:"Worry ID (prefix is enough)."`
	Day string `help:"Day the worry was recorded (YYYY-MM-DD, default: today)." default:""`
}

func (c *WorryDeleteCmd) Run(ctx *Context) error {
	day, err := resolveDay(c.Day, ctx)
	if err != nil {
		return err
	}

	worry, err := findWorry(ctx.Doc.Record(day), c.ID)
	if err != nil {
		return err
	}

	points.DeleteWorry(&ctx.Doc, day, worry.ID, Timestamp())
	ctx.Persist()

	fmt.Printf("Deleted worry %s and reversed its points.\n", shortID(worry.ID))
	ctx.Flush()
	return nil
}

type WorryListCmd struct {
	Day string `help:"Day to list (YYYY-MM-DD, default: today)." default:""`
	All bool   `help:"List worries across all days."`
}

func (c *WorryListCmd) Run(ctx *Context) error {
	if c.All {
		shown := 0
		for _, day := range sortedDayKeys(ctx.Doc) {
			rec := ctx.Doc.Record(day)
			if len(rec.Worries) == 0 {
				continue
			}
			fmt.Printf("%s:\n", FormatDay(day))
			printWorries(rec.Worries)
			shown += len(rec.Worries)
		}
		if shown == 0 {
			fmt.Println("No worries recorded.")
		}
		return nil
	}

	day, err := resolveDay(c.Day, ctx)
	if err != nil {
		return err
	}

	worries := ctx.Doc.Record(day).Worries
	if len(worries) == 0 {
		fmt.Printf("No worries recorded for %s.\n", FormatDay(day))
		return nil
	}
	printWorries(worries)
	return nil
}

func printWorries(worries []models.WorryEntry) {
	for _, w := range worries {
		marker := " "
		if w.HasReframe() {
			marker = "✓"
		}
		fmt.Printf("  [%s] %s  %s\n", marker, shortID(w.ID), w.Worry)
		if w.HasReframe() {
			fmt.Printf("        → %s\n", w.Reframe)
		}
	}
}

// findWorry matches a worry by ID prefix, failing on no match or an ambiguous
// one.
func findWorry(rec models.DailyRecord, idPrefix string) (models.WorryEntry, error) {
	var matches []models.WorryEntry
	for _, w := range rec.Worries {
		if strings.HasPrefix(w.ID, idPrefix) {
			matches = append(matches, w)
		}
	}
	switch len(matches) {
	case 0:
		return models.WorryEntry{}, fmt.Errorf("no worry found matching %q", idPrefix)
	case 1:
		return matches[0], nil
	default:
		return models.WorryEntry{}, fmt.Errorf("worry ID %q is ambiguous (%d matches)", idPrefix, len(matches))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
