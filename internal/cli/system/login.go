package system

import (
	"errors"
	"fmt"

	"github.com/jmdelaney/dayglow/internal/cli"
	"github.com/jmdelaney/dayglow/internal/keyring"
	"github.com/jmdelaney/dayglow/internal/storage"
)

// LoginCmd stores the identity the remote document row is keyed by, and
// optionally the connection string of the remote database. Both live in the
// OS keyring; nothing secret touches the config directory.
type LoginCmd struct {
	UserID string `arg:"" help:"User identity the remote document is keyed by."`
	Dsn    string `help:"PostgreSQL connection string for the remote database." default:""`
}

func (c *LoginCmd) Run(ctx *cli.Context) error {
	if c.Dsn != "" {
		if !storage.IsPostgresConnString(c.Dsn) {
			return errors.New("connection string must be a valid PostgreSQL connection string")
		}
		if storage.HasEmbeddedCredentials(c.Dsn) {
			fmt.Println("⚠ Connection string contains embedded credentials.")
			fmt.Println("  It will be stored as-is in the encrypted OS keyring.")
			fmt.Println("  Prefer .pgpass or environment variables if you want passwords kept separate.")
		}
		if err := keyring.SetConnectionString(c.Dsn); err != nil {
			return fmt.Errorf("failed to store connection string: %w", err)
		}
		fmt.Println("✓ Connection string stored in OS keyring")
	}

	if err := keyring.SetIdentity(c.UserID); err != nil {
		return fmt.Errorf("failed to store identity: %w", err)
	}

	fmt.Printf("✓ Logged in as %s\n", c.UserID)
	fmt.Println("  Your document will sync on the next command.")
	return nil
}

// LogoutCmd removes the stored identity and connection string. The local
// cache is untouched; use 'dayglow reset' to clear it.
type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *cli.Context) error {
	removed := false

	if err := keyring.DeleteIdentity(); err == nil {
		removed = true
	} else if !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("failed to remove identity: %w", err)
	}

	if err := keyring.DeleteConnectionString(); err == nil {
		removed = true
	} else if !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("failed to remove connection string: %w", err)
	}

	if !removed {
		fmt.Println("Not logged in.")
		return nil
	}

	fmt.Println("✓ Logged out. Local data kept; run 'dayglow reset' to clear it.")
	return nil
}
