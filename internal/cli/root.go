package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/jmdelaney/dayglow/internal/models"
	"github.com/jmdelaney/dayglow/internal/saver"
	"github.com/jmdelaney/dayglow/internal/storage"
)

// Context carries the loaded document and the persistence machinery into
// every command. Commands mutate Doc in memory, call Persist, and finish
// with Flush; the saver handles the remote/local write behind the scenes.
type Context struct {
	Store  *storage.Tiered
	Saver  *saver.Saver
	Doc    models.Document
	Source storage.Source
	Debug  bool
}

// Today returns the canonical day key for the current date.
func (c *Context) Today() string {
	return models.Today()
}

// TodayRecord returns today's record (zero record if none yet).
func (c *Context) TodayRecord() models.DailyRecord {
	return c.Doc.Record(c.Today())
}

// SetTodayRecord merges a record back under today's key.
func (c *Context) SetTodayRecord(rec models.DailyRecord) {
	c.Doc.SetRecord(c.Today(), rec)
}

// Persist enqueues the current document. The in-memory copy is already the
// source of truth; the save settles in the background.
func (c *Context) Persist() {
	c.Saver.Enqueue(c.Doc)
}

// Flush waits for pending saves and prints the sync indicator. One-shot
// commands call this on the way out so the process does not exit with a save
// still in flight.
func (c *Context) Flush() {
	c.Saver.Flush()
	fmt.Println(StatusLine(c.Saver.Status()))
}

// StatusLine renders the four-valued sync indicator.
func StatusLine(s saver.Status) string {
	switch s {
	case saver.StatusSynced:
		return "✓ synced"
	case saver.StatusSyncing:
		return "… syncing"
	case saver.StatusOffline:
		return "⊘ offline (saved locally)"
	default:
		return "✗ sync error (saved locally)"
	}
}

// FormatDay renders a day key for display, falling back to the raw key if it
// does not parse.
func FormatDay(key string) string {
	t, err := models.ParseDayKey(key)
	if err != nil {
		return key
	}
	return t.Format("Mon Jan 2 2006")
}

// resolveDay normalizes a --day flag: empty means today, anything else must
// be a YYYY-MM-DD date.
func resolveDay(day string, c *Context) (string, error) {
	if day == "" {
		return c.Today(), nil
	}
	t, err := models.ParseDayKey(day)
	if err != nil {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", day)
	}
	return models.DayKey(t), nil
}

// sortedDayKeys returns the document's day keys oldest first.
func sortedDayKeys(doc models.Document) []string {
	keys := make([]string, 0, len(doc.DailyData))
	for k := range doc.DailyData {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Timestamp is the single clock used by commands so tests can pin it.
var Timestamp = time.Now
