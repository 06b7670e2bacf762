package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmdelaney/dayglow/internal/migration"
	"github.com/jmdelaney/dayglow/internal/models"
)

// JSONStore is a plain-file local cache: the whole document serialized to one
// JSON file. Selected when the config path ends in .json.
type JSONStore struct {
	path string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.Save(models.NewDocument())
}

func (s *JSONStore) Load() (models.Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.Document{}, ErrNoDocument
		}
		return models.Document{}, fmt.Errorf("failed to read storage: %w", err)
	}

	// Files exported by the old app use the legacy layout; upgrade them on
	// read so the next save rewrites the canonical form.
	if migration.IsLegacy(data) {
		doc, err := migration.Convert(data)
		if err != nil {
			return models.Document{}, fmt.Errorf("failed to upgrade legacy storage: %w", err)
		}
		return doc, nil
	}

	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return models.Document{}, fmt.Errorf("failed to parse storage: %w", err)
	}

	if doc.DailyData == nil {
		doc.DailyData = make(map[string]models.DailyRecord)
	}

	return doc, nil
}

func (s *JSONStore) Save(doc models.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear storage: %w", err)
	}
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) Path() string {
	return s.path
}
