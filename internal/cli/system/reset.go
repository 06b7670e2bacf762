package system

import (
	"fmt"

	"github.com/jmdelaney/dayglow/internal/cli"
)

// ResetCmd clears the local cache. The remote copy is never touched, so a
// logged-in user gets their document back on the next load.
type ResetCmd struct {
	Force bool `help:"Skip the confirmation prompt."`
}

func (c *ResetCmd) Run(ctx *cli.Context) error {
	if !c.Force {
		fmt.Printf("This clears the local store at %s.\n", ctx.Store.Local.Path())
		if ctx.Store.Remote != nil {
			fmt.Println("The remote copy is kept and will be re-mirrored on the next load.")
		} else {
			fmt.Println("No remote is configured; this data has no other copy.")
		}
		fmt.Print("Type 'yes' to continue: ")
		var answer string
		fmt.Scanln(&answer)
		if answer != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := ctx.Store.Clear(); err != nil {
		return fmt.Errorf("failed to clear local store: %w", err)
	}

	fmt.Println("Local store cleared.")
	return nil
}
