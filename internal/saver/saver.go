// Package saver coordinates document persistence behind the optimistic UI:
// callers enqueue the full current document and move on, and the saver keeps
// at most one save in flight, with the latest enqueued document superseding
// any earlier pending one. Because every save carries the whole document,
// coalescing never loses data.
package saver

import (
	"context"
	"errors"
	"sync"

	"github.com/jmdelaney/dayglow/internal/models"
	"github.com/jmdelaney/dayglow/internal/storage"
)

// Status summarizes the outcome of the most recently settled save attempt.
type Status string

const (
	StatusSynced  Status = "synced"
	StatusSyncing Status = "syncing"
	StatusError   Status = "error"
	StatusOffline Status = "offline"
)

// Sink is where coalesced documents are written.
type Sink interface {
	Save(ctx context.Context, doc models.Document) error
}

// Saver owns the pending-save slot and the sync-status indicator. A save
// failure flips the status; it never rolls back the in-memory document and
// never retries.
type Saver struct {
	sink Sink

	mu       sync.Mutex
	wg       sync.WaitGroup
	pending  *models.Document
	inflight bool
	status   Status
}

func New(sink Sink) *Saver {
	return &Saver{sink: sink, status: StatusSynced}
}

// Enqueue replaces any pending document with doc and starts the drain if
// idle. Returns immediately; the caller's in-memory state is already the
// source of truth.
func (s *Saver) Enqueue(doc models.Document) {
	s.mu.Lock()
	s.pending = &doc
	s.status = StatusSyncing
	if s.inflight {
		s.mu.Unlock()
		return
	}
	s.inflight = true
	s.wg.Add(1)
	s.mu.Unlock()

	go s.drain()
}

func (s *Saver) drain() {
	defer s.wg.Done()
	for {
		s.mu.Lock()
		doc := s.pending
		s.pending = nil
		if doc == nil {
			s.inflight = false
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		err := s.sink.Save(context.Background(), *doc)

		s.mu.Lock()
		// Only settle the status if no newer write superseded this one.
		if s.pending == nil {
			switch {
			case err == nil:
				s.status = StatusSynced
			case errors.Is(err, storage.ErrOffline):
				s.status = StatusOffline
			default:
				s.status = StatusError
			}
		}
		s.mu.Unlock()
	}
}

// Flush blocks until every enqueued save has settled. Used on process exit
// so a one-shot command does not race its own save.
func (s *Saver) Flush() {
	s.wg.Wait()
}

// Status returns the current sync status.
func (s *Saver) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}
