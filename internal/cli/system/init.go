package system

import (
	"context"
	"fmt"
	"os"

	"github.com/jmdelaney/dayglow/internal/cli"
	"github.com/jmdelaney/dayglow/internal/storage"
)

type InitCmd struct {
	Force bool `help:"Delete the existing local store before initializing."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	path := ctx.Store.Local.Path()

	if c.Force {
		if err := ctx.Store.Local.Close(); err != nil {
			return fmt.Errorf("failed to close existing store: %w", err)
		}
		if err := os.Remove(path); err == nil {
			fmt.Printf("Deleted existing store at: %s\n", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to delete existing store: %w", err)
		}
	}

	if err := ctx.Store.Local.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized dayglow storage at: %s\n", path)

	if _, source := ctx.Store.Load(context.Background()); source == storage.SourceRemote {
		fmt.Println("Remote document found and mirrored locally.")
	}

	return nil
}
