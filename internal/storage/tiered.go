package storage

import (
	"context"
	"errors"

	"github.com/jmdelaney/dayglow/internal/logger"
	"github.com/jmdelaney/dayglow/internal/models"
)

// ErrOffline is returned by Save when no remote tier is configured. Callers
// use it only to flip the sync-status indicator; the local mirror has already
// been written.
var ErrOffline = errors.New("no remote configured")

// Tiered combines the remote per-user copy with the local cache. Loads fall
// back remote -> local -> empty; saves upsert the remote and always mirror
// locally. Clear erases only the local cache.
type Tiered struct {
	Local  Local
	Remote Remote
	UserID string
}

func NewTiered(local Local, remote Remote, userID string) *Tiered {
	return &Tiered{Local: local, Remote: remote, UserID: userID}
}

func (t *Tiered) hasRemote() bool {
	return t.Remote != nil && t.UserID != ""
}

// Load returns the freshest available document and where it came from. Every
// failure falls through to the next tier; an empty document is the floor, so
// Load never fails.
func (t *Tiered) Load(ctx context.Context) (models.Document, Source) {
	if t.hasRemote() {
		doc, err := t.Remote.Load(ctx, t.UserID)
		if err == nil {
			// Mirror the remote copy so the next offline start has it.
			if lerr := t.Local.Save(doc); lerr != nil {
				logger.Warn("Failed to mirror remote document locally", "error", lerr)
			}
			return doc, SourceRemote
		}
		if err != ErrNoDocument {
			logger.Warn("Remote load failed, falling back to local cache", "error", err)
		}
	}

	doc, err := t.Local.Load()
	if err == nil {
		return doc, SourceLocal
	}
	if err != ErrNoDocument && err != ErrNotInitialized {
		logger.Warn("Local load failed, starting empty", "error", err)
	}

	return models.NewDocument(), SourceEmpty
}

// Save mirrors the document locally and upserts the remote copy. The local
// write is best-effort and never masks the remote outcome; the returned
// error exists only so the caller can flip the sync-status indicator.
func (t *Tiered) Save(ctx context.Context, doc models.Document) error {
	if err := t.Local.Save(doc); err != nil {
		logger.Warn("Local mirror failed", "error", err)
	}

	if !t.hasRemote() {
		return ErrOffline
	}

	if err := t.Remote.Save(ctx, t.UserID, doc); err != nil {
		logger.Error("Remote save failed", "error", err)
		return err
	}

	return nil
}

// Clear erases the local cache only; the remote copy is untouched.
func (t *Tiered) Clear() error {
	return t.Local.Clear()
}

// Close releases both tiers.
func (t *Tiered) Close() error {
	var first error
	if t.Remote != nil {
		first = t.Remote.Close()
	}
	if err := t.Local.Close(); err != nil && first == nil {
		first = err
	}
	return first
}
