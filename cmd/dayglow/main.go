package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/jmdelaney/dayglow/internal/cli"
	"github.com/jmdelaney/dayglow/internal/cli/system"
	"github.com/jmdelaney/dayglow/internal/constants"
	apperrors "github.com/jmdelaney/dayglow/internal/errors"
	"github.com/jmdelaney/dayglow/internal/keyring"
	"github.com/jmdelaney/dayglow/internal/logger"
	"github.com/jmdelaney/dayglow/internal/saver"
	"github.com/jmdelaney/dayglow/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Local store path (.db for SQLite, .json for a plain file)." type:"path" default:"~/.config/dayglow/dayglow.db"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init   system.InitCmd   `cmd:"" help:"Initialize dayglow storage."`
	Login  system.LoginCmd  `cmd:"" help:"Store your identity and remote connection in the OS keyring."`
	Logout system.LogoutCmd `cmd:"" help:"Remove stored identity and connection."`
	Doctor system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Reset  system.ResetCmd  `cmd:"" help:"Clear the local store."`
	Backup system.BackupCmd `cmd:"" help:"Create a backup of the local store."`

	Morning cli.MorningCmd `cmd:"" help:"Run the morning check-in."`
	Evening cli.EveningCmd `cmd:"" help:"Run the evening review."`
	Worry   cli.WorryCmd   `cmd:"" help:"Work through worries."`
	Focus   cli.FocusCmd   `cmd:"" help:"Run a focus timer."`

	Points  cli.PointsCmd  `cmd:"" help:"Show points, breakdown and streaks."`
	Task    cli.TaskCmd    `cmd:"" help:"Manage today's tasks."`
	Connect cli.ConnectCmd `cmd:"" help:"Manage today's connections."`
	Habit   cli.HabitCmd   `cmd:"" help:"Manage habits."`
	Basics  cli.BasicsCmd  `cmd:"" help:"Show or toggle daily basics."`
	Water   cli.WaterCmd   `cmd:"" help:"Log glasses of water."`
	Note    cli.NoteCmd    `cmd:"" help:"Manage sticky notes."`
	Blocks  cli.BlocksCmd  `cmd:"" help:"Manage today's time blocks."`
	Export  cli.ExportCmd  `cmd:"" help:"Export all data as JSON or CSV."`
	Tui     cli.TuiCmd     `cmd:"" help:"Show the full day view." default:"1"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Daily planning and habit companion"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		apperrors.Fatalf("failed to initialize logging: %v", err)
	}

	var local storage.Local
	if strings.HasSuffix(CLI.Config, ".json") {
		local = storage.NewJSONStore(CLI.Config)
	} else {
		local = storage.NewSQLiteStore(CLI.Config)
	}

	store := storage.NewTiered(local, openRemote(), remoteIdentity())
	defer store.Close()

	appCtx := &cli.Context{
		Store: store,
		Saver: saver.New(store),
		Debug: CLI.Debug,
	}
	appCtx.Doc, appCtx.Source = store.Load(context.Background())

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		apperrors.Fatal(err)
	}
}

// openRemote builds the remote tier from the environment or the OS keyring.
// Connection strings on the command line are not accepted: the environment
// and keyring keep credentials out of shell history.
func openRemote() storage.Remote {
	connStr := os.Getenv("DAYGLOW_DB_CONNECTION")
	if connStr == "" {
		var err error
		connStr, err = keyring.GetConnectionString()
		if err != nil {
			if !errors.Is(err, keyring.ErrNotFound) {
				logger.Warn("Keyring lookup failed, running offline", "error", err)
			}
			return nil
		}
	}

	if !storage.IsPostgresConnString(connStr) {
		logger.Warn("Stored connection string is not a PostgreSQL connection string, running offline")
		return nil
	}

	return storage.NewPostgresStore(connStr)
}

func remoteIdentity() string {
	if id := os.Getenv("DAYGLOW_USER"); id != "" {
		return id
	}
	id, err := keyring.GetIdentity()
	if err != nil {
		return ""
	}
	return id
}
