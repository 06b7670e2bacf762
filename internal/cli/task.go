package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jmdelaney/dayglow/internal/models"
)

type TaskCmd struct {
	Add  TaskAddCmd  `cmd:"" help:"Add a task to today's list."`
	Done TaskDoneCmd `cmd:"" help:"Mark a task done (or the main priority)."`
	List TaskListCmd `cmd:"" default:"1" help:"List today's tasks."`
}

type TaskAddCmd struct {
	Text []string `arg:"" help:"Task description."`
}

func (c *TaskAddCmd) Run(ctx *Context) error {
	text := strings.TrimSpace(strings.Join(c.Text, " "))
	if text == "" {
		return fmt.Errorf("task description cannot be empty")
	}

	rec := ctx.TodayRecord()
	rec.Tasks = append(rec.Tasks, models.TaskItem{Text: text})
	ctx.SetTodayRecord(rec)
	ctx.Persist()

	fmt.Printf("Added task: %s\n", text)
	ctx.Flush()
	return nil
}

type TaskDoneCmd struct {
	Which string `arg:"" help:"Task number from 'task list', or 'main' for the priority."`
	Undo  bool   `help:"Mark the task as not done instead."`
}

func (c *TaskDoneCmd) Run(ctx *Context) error {
	rec := ctx.TodayRecord()

	if strings.EqualFold(c.Which, "main") {
		if rec.MainPriority == "" {
			return fmt.Errorf("no main priority set for today (run 'dayglow morning' first)")
		}
		rec.CompletedMainTask = !c.Undo
		ctx.SetTodayRecord(rec)
		ctx.Persist()
		if c.Undo {
			fmt.Printf("Main priority reopened: %s\n", rec.MainPriority)
		} else {
			fmt.Printf("Main priority done: %s\n", rec.MainPriority)
		}
		ctx.Flush()
		return nil
	}

	n, err := strconv.Atoi(c.Which)
	if err != nil || n < 1 || n > len(rec.Tasks) {
		return fmt.Errorf("no task %q (use 'dayglow task list' to see numbers)", c.Which)
	}

	rec.Tasks[n-1].Done = !c.Undo
	ctx.SetTodayRecord(rec)
	ctx.Persist()

	if c.Undo {
		fmt.Printf("Reopened: %s\n", rec.Tasks[n-1].Text)
	} else {
		fmt.Printf("Done: %s\n", rec.Tasks[n-1].Text)
	}
	ctx.Flush()
	return nil
}

type TaskListCmd struct{}

func (c *TaskListCmd) Run(ctx *Context) error {
	rec := ctx.TodayRecord()

	if rec.MainPriority != "" {
		status := "[ ]"
		if rec.CompletedMainTask {
			status = "[x]"
		}
		fmt.Printf("%s main: %s\n", status, rec.MainPriority)
		if rec.FirstStep != "" && !rec.CompletedMainTask {
			fmt.Printf("         first step: %s\n", rec.FirstStep)
		}
	}

	if len(rec.Tasks) == 0 && rec.MainPriority == "" {
		fmt.Println("No tasks for today. Run 'dayglow morning' to plan your day.")
		return nil
	}

	for i, t := range rec.Tasks {
		status := "[ ]"
		if t.Done {
			status = "[x]"
		}
		fmt.Printf("%s %2d: %s\n", status, i+1, t.Text)
	}
	return nil
}
