package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jmdelaney/dayglow/internal/constants"
	"github.com/jmdelaney/dayglow/internal/models"
)

const sqliteSchemaVersion = 1

// SQLiteStore is the default local cache. Each save appends a full-document
// snapshot row; loads return the latest revision. Old revisions are pruned so
// the file stays bounded while still allowing recovery from a bad save.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := s.open(); err != nil {
		return err
	}

	return s.migrate()
}

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return fmt.Errorf("exec pragma %q: %w", pragma, err)
		}
	}

	s.db = db
	return nil
}

func (s *SQLiteStore) ensureOpen() error {
	if s.db != nil {
		return nil
	}
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return ErrNotInitialized
	}
	if err := s.open(); err != nil {
		return err
	}
	return s.migrate()
}

func (s *SQLiteStore) migrate() error {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}

	if version >= sqliteSchemaVersion {
		return nil
	}

	if version < 1 {
		const ddl = `
		CREATE TABLE IF NOT EXISTS snapshots (
			revision  INTEGER PRIMARY KEY AUTOINCREMENT,
			data      TEXT NOT NULL,
			saved_at  TEXT NOT NULL
		);`
		if _, err := s.db.Exec(ddl); err != nil {
			return fmt.Errorf("create snapshots table: %w", err)
		}
	}

	_, err := s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", sqliteSchemaVersion))
	return err
}

func (s *SQLiteStore) Load() (models.Document, error) {
	if err := s.ensureOpen(); err != nil {
		return models.Document{}, err
	}

	var data string
	err := s.db.QueryRow("SELECT data FROM snapshots ORDER BY revision DESC LIMIT 1").Scan(&data)
	if err == sql.ErrNoRows {
		return models.Document{}, ErrNoDocument
	}
	if err != nil {
		return models.Document{}, fmt.Errorf("read snapshot: %w", err)
	}

	var doc models.Document
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return models.Document{}, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	if doc.DailyData == nil {
		doc.DailyData = make(map[string]models.DailyRecord)
	}

	return doc, nil
}

func (s *SQLiteStore) Save(doc models.Document) error {
	if err := s.ensureOpen(); err != nil {
		if err == ErrNotInitialized {
			if err := s.Init(); err != nil {
				return err
			}
		} else {
			return err
		}
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := s.db.Exec("INSERT INTO snapshots (data, saved_at) VALUES (?, ?)", string(data), now); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	// Keep the newest MaxSnapshots revisions.
	_, err = s.db.Exec(`DELETE FROM snapshots WHERE revision NOT IN (
		SELECT revision FROM snapshots ORDER BY revision DESC LIMIT ?)`, constants.MaxSnapshots)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Clear() error {
	if err := s.ensureOpen(); err != nil {
		if err == ErrNotInitialized {
			return nil
		}
		return err
	}
	_, err := s.db.Exec("DELETE FROM snapshots")
	return err
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *SQLiteStore) Path() string {
	return s.path
}

// Backup writes a consistent copy of the database into the backups directory
// next to the store file and prunes old copies.
func (s *SQLiteStore) Backup() (string, error) {
	if err := s.ensureOpen(); err != nil {
		return "", err
	}

	backupDir := filepath.Join(filepath.Dir(s.path), constants.BackupDirName)
	if err := os.MkdirAll(backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	name := fmt.Sprintf("%s-%s.db", constants.AppName, time.Now().Format("20060102-150405"))
	dest := filepath.Join(backupDir, name)

	if _, err := s.db.Exec("VACUUM INTO ?", dest); err != nil {
		return "", fmt.Errorf("backup failed: %w", err)
	}

	if err := pruneBackups(backupDir); err != nil {
		return dest, err
	}

	return dest, nil
}

func pruneBackups(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), constants.AppName+"-") && strings.HasSuffix(e.Name(), ".db") {
			names = append(names, e.Name())
		}
	}
	if len(names) <= constants.MaxBackups {
		return nil
	}

	// Timestamped names sort chronologically.
	sort.Strings(names)
	for _, name := range names[:len(names)-constants.MaxBackups] {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			return err
		}
	}
	return nil
}
