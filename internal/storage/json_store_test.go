package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmdelaney/dayglow/internal/models"
)

func newTestJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	return NewJSONStore(filepath.Join(t.TempDir(), "dayglow.json"))
}

func TestJSONStoreRoundTrip(t *testing.T) {
	s := newTestJSONStore(t)

	doc := models.NewDocument()
	doc.SetRecord("2026-08-28", models.DailyRecord{MainPriority: "ship", SleepQuality: 4})
	doc.Habits = []string{"run"}

	if err := s.Save(doc); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	rec := loaded.Record("2026-08-28")
	if rec.MainPriority != "ship" || rec.SleepQuality != 4 {
		t.Errorf("record did not round-trip: %+v", rec)
	}
	if len(loaded.Habits) != 1 || loaded.Habits[0] != "run" {
		t.Errorf("habits did not round-trip: %v", loaded.Habits)
	}
}

func TestJSONStoreLoadMissingFile(t *testing.T) {
	s := newTestJSONStore(t)
	if _, err := s.Load(); !errors.Is(err, ErrNoDocument) {
		t.Errorf("expected ErrNoDocument, got %v", err)
	}
}

func TestJSONStoreInitRefusesExisting(t *testing.T) {
	s := newTestJSONStore(t)
	if err := s.Init(); err != nil {
		t.Fatalf("first init failed: %v", err)
	}
	if err := s.Init(); err == nil {
		t.Error("second init should refuse to overwrite")
	}
}

func TestJSONStoreClear(t *testing.T) {
	s := newTestJSONStore(t)
	if err := s.Save(models.NewDocument()); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if _, err := s.Load(); !errors.Is(err, ErrNoDocument) {
		t.Errorf("expected ErrNoDocument after clear, got %v", err)
	}
	// Clearing an already-empty store is not an error.
	if err := s.Clear(); err != nil {
		t.Errorf("second clear failed: %v", err)
	}
}

func TestJSONStoreUpgradesLegacyFileOnLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")
	legacy := `{
		"dailyData": {
			"8/28/2026": {
				"mainPriority": "ship",
				"additionalTasks": ["email"],
				"completedTasks": [true],
				"eveningMood": 4
			}
		}
	}`
	if err := os.WriteFile(path, []byte(legacy), 0600); err != nil {
		t.Fatal(err)
	}

	doc, err := NewJSONStore(path).Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	rec := doc.Record("2026-08-28")
	if rec.MainPriority != "ship" {
		t.Errorf("legacy record not converted: %+v", rec)
	}
	if len(rec.Tasks) != 1 || !rec.Tasks[0].Done {
		t.Errorf("legacy tasks not paired: %+v", rec.Tasks)
	}
	if rec.EveningMood != "content" {
		t.Errorf("numeric evening mood = %q, want content", rec.EveningMood)
	}
}
