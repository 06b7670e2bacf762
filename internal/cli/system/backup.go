package system

import (
	"fmt"

	"github.com/jmdelaney/dayglow/internal/cli"
	"github.com/jmdelaney/dayglow/internal/storage"
)

// BackupCmd writes a consistent copy of the local SQLite store.
type BackupCmd struct{}

func (c *BackupCmd) Run(ctx *cli.Context) error {
	store, ok := ctx.Store.Local.(*storage.SQLiteStore)
	if !ok {
		return fmt.Errorf("backups are only supported with SQLite storage (not JSON)")
	}

	dest, err := store.Backup()
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}

	fmt.Printf("Backup written to: %s\n", dest)
	return nil
}
