package cli

import (
	"fmt"
	"strings"

	"github.com/jmdelaney/dayglow/internal/models"
)

type ConnectCmd struct {
	Add  ConnectAddCmd  `cmd:"" help:"Add someone to reach out to today."`
	Done ConnectDoneCmd `cmd:"" help:"Mark a connection as made."`
	List ConnectListCmd `cmd:"" default:"1" help:"List today's connections."`
}

type ConnectAddCmd struct {
	Name []string `arg:"" help:"Who to reach out to."`
}

func (c *ConnectAddCmd) Run(ctx *Context) error {
	name := strings.TrimSpace(strings.Join(c.Name, " "))
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}

	rec := ctx.TodayRecord()
	rec.Connections = append(rec.Connections, models.Connection{Name: name})
	ctx.SetTodayRecord(rec)
	ctx.Persist()

	fmt.Printf("Added connection: %s\n", name)
	ctx.Flush()
	return nil
}

type ConnectDoneCmd struct {
	Name []string `arg:"" help:"Name to mark as reached (case-insensitive)."`
	Undo bool     `help:"Mark the connection as not made instead."`
}

func (c *ConnectDoneCmd) Run(ctx *Context) error {
	name := strings.TrimSpace(strings.Join(c.Name, " "))
	rec := ctx.TodayRecord()

	for i, conn := range rec.Connections {
		if !strings.EqualFold(conn.Name, name) {
			continue
		}
		rec.Connections[i].Done = !c.Undo
		ctx.SetTodayRecord(rec)
		ctx.Persist()
		if c.Undo {
			fmt.Printf("Reopened connection: %s\n", conn.Name)
		} else {
			fmt.Printf("Reached out to %s.\n", conn.Name)
		}
		ctx.Flush()
		return nil
	}

	return fmt.Errorf("no connection %q for today", name)
}

type ConnectListCmd struct{}

func (c *ConnectListCmd) Run(ctx *Context) error {
	rec := ctx.TodayRecord()
	if len(rec.Connections) == 0 {
		fmt.Println("No connections planned for today.")
		return nil
	}

	for _, conn := range rec.Connections {
		status := "[ ]"
		if conn.Done {
			status = "[x]"
		}
		fmt.Printf("%s %s\n", status, conn.Name)
	}
	return nil
}
