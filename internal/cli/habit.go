package cli

import (
	"fmt"
	"strings"
)

type HabitCmd struct {
	Add  HabitAddCmd  `cmd:"" help:"Add a habit to your catalog."`
	Done HabitDoneCmd `cmd:"" help:"Mark a habit done for today."`
	List HabitListCmd `cmd:"" default:"1" help:"List habits and today's status."`
}

type HabitAddCmd struct {
	Name []string `arg:"" help:"Habit name."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	name := strings.TrimSpace(strings.Join(c.Name, " "))
	if name == "" {
		return fmt.Errorf("habit name cannot be empty")
	}

	if !ctx.Doc.AddHabit(name) {
		return fmt.Errorf("habit %q already exists", name)
	}
	ctx.Persist()

	fmt.Printf("Added habit: %s\n", name)
	ctx.Flush()
	return nil
}

type HabitDoneCmd struct {
	Name []string `arg:"" help:"Habit name (case-insensitive)."`
	Undo bool     `help:"Mark the habit as not done instead."`
}

func (c *HabitDoneCmd) Run(ctx *Context) error {
	name := strings.TrimSpace(strings.Join(c.Name, " "))

	var habit string
	for _, h := range ctx.Doc.Habits {
		if strings.EqualFold(h, name) {
			habit = h
			break
		}
	}
	if habit == "" {
		return fmt.Errorf("habit %q not found (add it with 'dayglow habit add')", name)
	}

	rec := ctx.TodayRecord()
	if c.Undo {
		for i, h := range rec.CompletedHabits {
			if h == habit {
				rec.CompletedHabits = append(rec.CompletedHabits[:i], rec.CompletedHabits[i+1:]...)
				break
			}
		}
	} else if !rec.HabitDone(habit) {
		rec.CompletedHabits = append(rec.CompletedHabits, habit)
	}
	ctx.SetTodayRecord(rec)
	ctx.Persist()

	if c.Undo {
		fmt.Printf("Unmarked habit: %s\n", habit)
	} else {
		fmt.Printf("Habit done: %s\n", habit)
	}
	ctx.Flush()
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	if len(ctx.Doc.Habits) == 0 {
		fmt.Println("No habits yet. Add one with 'dayglow habit add'.")
		return nil
	}

	rec := ctx.TodayRecord()
	chosen := make(map[string]bool, len(rec.ChosenHabits))
	for _, h := range rec.ChosenHabits {
		chosen[h] = true
	}

	for _, h := range ctx.Doc.Habits {
		status := "[ ]"
		if rec.HabitDone(h) {
			status = "[x]"
		}
		marker := ""
		if chosen[h] {
			marker = " (today)"
		}
		fmt.Printf("%s %s%s\n", status, h, marker)
	}
	return nil
}
