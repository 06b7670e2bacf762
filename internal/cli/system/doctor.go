package system

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/jmdelaney/dayglow/internal/cli"
	"github.com/jmdelaney/dayglow/internal/constants"
	"github.com/jmdelaney/dayglow/internal/keyring"
	"github.com/jmdelaney/dayglow/internal/models"
	"github.com/jmdelaney/dayglow/internal/storage"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	if err := checkLocalStore(ctx); err != nil {
		fmt.Printf("❌ Local store: FAIL\n   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Local store: OK\n")
	}

	if ctx.Store.Remote == nil {
		fmt.Printf("⊘ Remote database: SKIPPED (not configured, run 'dayglow login')\n")
	} else if err := ctx.Store.Remote.Ping(context.Background()); err != nil {
		fmt.Printf("❌ Remote database: FAIL\n   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Remote database: OK\n")
	}

	if keyring.IsAvailable() {
		fmt.Printf("✓ OS keyring: OK\n")
	} else {
		fmt.Printf("⚠ OS keyring: WARNING\n   keyring unavailable; remote sync cannot be configured\n")
	}

	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	if err := checkDayKeys(ctx); err != nil {
		fmt.Printf("❌ Day keys: FAIL\n   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Day keys: OK\n")
	}

	if err := checkPointEvents(ctx); err != nil {
		fmt.Printf("⚠ Point events: WARNING\n   %v\n", err)
	} else {
		fmt.Printf("✓ Point events: OK\n")
	}

	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	if err := checkDuplicateProcess(); err != nil {
		fmt.Printf("⚠ Process check: WARNING\n   %v\n", err)
	} else {
		fmt.Printf("✓ Process check: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkLocalStore(ctx *cli.Context) error {
	_, err := ctx.Store.Local.Load()
	if err != nil && !errors.Is(err, storage.ErrNoDocument) && !errors.Is(err, storage.ErrNotInitialized) {
		return err
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	if _, ok := ctx.Store.Local.(*storage.SQLiteStore); !ok {
		// JSON stores have no backup machinery.
		return nil
	}

	backupDir := filepath.Join(filepath.Dir(ctx.Store.Local.Path()), constants.BackupDirName)
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("no backups found - create one with 'dayglow backup'")
		}
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(entries) == 0 {
		return fmt.Errorf("no backups found - create one with 'dayglow backup'")
	}
	return nil
}

// checkDayKeys verifies every daily record is keyed by a canonical date.
func checkDayKeys(ctx *cli.Context) error {
	for key := range ctx.Doc.DailyData {
		if _, err := models.ParseDayKey(key); err != nil {
			return fmt.Errorf("invalid day key %q (expected YYYY-MM-DD)", key)
		}
	}
	return nil
}

// checkPointEvents flags records whose tagged events no longer sum to the
// accumulator. Legacy records carry no events at all; that remainder is
// expected and not reported.
func checkPointEvents(ctx *cli.Context) error {
	for key, rec := range ctx.Doc.DailyData {
		if len(rec.PointEvents) == 0 {
			continue
		}
		sum := 0
		for _, ev := range rec.PointEvents {
			sum += ev.Delta
		}
		if sum != rec.Points {
			return fmt.Errorf("day %s: point events sum to %d but accumulator is %d", key, sum, rec.Points)
		}
	}
	return nil
}

func checkClockTimezone() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}

// checkDuplicateProcess warns when another dayglow process is running, since
// two writers race each other on the snapshot store.
func checkDuplicateProcess() error {
	procs, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("failed to list processes: %w", err)
	}

	for _, p := range procs {
		if p.Pid() == os.Getpid() {
			continue
		}
		if p.Executable() == constants.AppName {
			return fmt.Errorf("another %s process is running (pid %d)", constants.AppName, p.Pid())
		}
	}
	return nil
}
