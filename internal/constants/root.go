package constants

const (
	AppName           = "dayglow"
	Version           = "v0.3.0"
	DefaultConfigPath = "~/.config/dayglow/dayglow.db"

	// Keyring entries
	KeyringConnectionUser = "database-connection"
	KeyringIdentityUser   = "user-identity"

	// DateFormat is the canonical day-key format (YYYY-MM-DD). Every read and
	// write of Document.DailyData must go through this format.
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time-of-day format used throughout the
	// application (HH:MM)
	TimeFormat = "15:04"

	// Local snapshot retention
	MaxSnapshots  = 30
	MaxBackups    = 14
	BackupDirName = "backups"
)
