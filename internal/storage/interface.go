package storage

import (
	"context"
	"errors"

	"github.com/jmdelaney/dayglow/internal/models"
)

// Source identifies which tier a document was loaded from.
type Source string

const (
	SourceRemote Source = "remote"
	SourceLocal  Source = "local"
	SourceEmpty  Source = "empty"
)

var (
	// ErrNoDocument is returned by a local store when nothing has been
	// persisted yet.
	ErrNoDocument = errors.New("no document stored")
	// ErrNotInitialized is returned when the local store file has not been
	// created yet.
	ErrNotInitialized = errors.New("storage not initialized, run 'dayglow init' first")
)

// Local is a disk-backed cache holding one document.
type Local interface {
	Init() error
	Load() (models.Document, error)
	Save(models.Document) error
	// Clear erases the cached document. The remote copy is untouched.
	Clear() error
	Close() error
	Path() string
}

// Remote is a per-user upstream copy of the document.
type Remote interface {
	Load(ctx context.Context, userID string) (models.Document, error)
	Save(ctx context.Context, userID string, doc models.Document) error
	Ping(ctx context.Context) error
	Close() error
}
