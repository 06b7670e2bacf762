package storage

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/jmdelaney/dayglow/internal/constants"
	"github.com/jmdelaney/dayglow/internal/models"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s := NewSQLiteStore(filepath.Join(t.TempDir(), "dayglow.db"))
	if err := s.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	s := newTestSQLiteStore(t)

	doc := models.NewDocument()
	doc.SetRecord("2026-08-28", models.DailyRecord{MainPriority: "ship", Points: 20})

	if err := s.Save(doc); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	rec := loaded.Record("2026-08-28")
	if rec.MainPriority != "ship" || rec.Points != 20 {
		t.Errorf("record did not round-trip: %+v", rec)
	}
}

func TestSQLiteStoreLoadReturnsLatestRevision(t *testing.T) {
	s := newTestSQLiteStore(t)

	for i := 1; i <= 3; i++ {
		doc := models.NewDocument()
		doc.SetRecord("2026-08-28", models.DailyRecord{MainPriority: fmt.Sprintf("v%d", i)})
		if err := s.Save(doc); err != nil {
			t.Fatalf("save %d failed: %v", i, err)
		}
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got := loaded.Record("2026-08-28").MainPriority; got != "v3" {
		t.Errorf("loaded %q, want the latest revision v3", got)
	}
}

func TestSQLiteStorePrunesOldSnapshots(t *testing.T) {
	s := newTestSQLiteStore(t)

	for i := 0; i < constants.MaxSnapshots+10; i++ {
		if err := s.Save(models.NewDocument()); err != nil {
			t.Fatalf("save %d failed: %v", i, err)
		}
	}

	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM snapshots").Scan(&count); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != constants.MaxSnapshots {
		t.Errorf("snapshot count = %d, want %d", count, constants.MaxSnapshots)
	}
}

func TestSQLiteStoreLoadUninitialized(t *testing.T) {
	s := NewSQLiteStore(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := s.Load(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("expected ErrNotInitialized, got %v", err)
	}
}

func TestSQLiteStoreClear(t *testing.T) {
	s := newTestSQLiteStore(t)
	if err := s.Save(models.NewDocument()); err != nil {
		t.Fatal(err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if _, err := s.Load(); !errors.Is(err, ErrNoDocument) {
		t.Errorf("expected ErrNoDocument after clear, got %v", err)
	}
}

func TestSQLiteStoreBackup(t *testing.T) {
	s := newTestSQLiteStore(t)
	if err := s.Save(models.NewDocument()); err != nil {
		t.Fatal(err)
	}

	dest, err := s.Backup()
	if err != nil {
		t.Fatalf("backup failed: %v", err)
	}

	restored := NewSQLiteStore(dest)
	defer restored.Close()
	if _, err := restored.Load(); err != nil {
		t.Errorf("backup is not a loadable store: %v", err)
	}
}
