package cli

import (
	"path/filepath"
	"testing"

	"github.com/jmdelaney/dayglow/internal/models"
	"github.com/jmdelaney/dayglow/internal/saver"
	"github.com/jmdelaney/dayglow/internal/storage"
)

func newTestContext(t *testing.T) *Context {
	t.Helper()
	store := storage.NewTiered(
		storage.NewJSONStore(filepath.Join(t.TempDir(), "dayglow.json")), nil, "")
	ctx := &Context{
		Store: store,
		Saver: saver.New(store),
		Doc:   models.NewDocument(),
	}
	t.Cleanup(func() { store.Close() })
	return ctx
}

func TestStatusLine(t *testing.T) {
	tests := []struct {
		status saver.Status
		want   string
	}{
		{saver.StatusSynced, "✓ synced"},
		{saver.StatusSyncing, "… syncing"},
		{saver.StatusOffline, "⊘ offline (saved locally)"},
		{saver.StatusError, "✗ sync error (saved locally)"},
	}
	for _, tt := range tests {
		if got := StatusLine(tt.status); got != tt.want {
			t.Errorf("StatusLine(%s) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestResolveDay(t *testing.T) {
	ctx := newTestContext(t)

	day, err := resolveDay("", ctx)
	if err != nil || day != ctx.Today() {
		t.Errorf("empty day should resolve to today, got %q (%v)", day, err)
	}

	day, err = resolveDay("2026-08-27", ctx)
	if err != nil || day != "2026-08-27" {
		t.Errorf("canonical day mishandled: %q (%v)", day, err)
	}

	if _, err := resolveDay("8/27/2026", ctx); err == nil {
		t.Error("non-canonical day should be rejected")
	}
}

func TestFormatDayFallsBackToRawKey(t *testing.T) {
	if got := FormatDay("not-a-date"); got != "not-a-date" {
		t.Errorf("FormatDay = %q", got)
	}
	if got := FormatDay("2026-08-28"); got != "Fri Aug 28 2026" {
		t.Errorf("FormatDay = %q", got)
	}
}

func TestTaskAddAndDone(t *testing.T) {
	ctx := newTestContext(t)

	add := &TaskAddCmd{Text: []string{"write", "report"}}
	if err := add.Run(ctx); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	rec := ctx.TodayRecord()
	if len(rec.Tasks) != 1 || rec.Tasks[0].Text != "write report" {
		t.Fatalf("tasks = %+v", rec.Tasks)
	}

	done := &TaskDoneCmd{Which: "1"}
	if err := done.Run(ctx); err != nil {
		t.Fatalf("done failed: %v", err)
	}
	if !ctx.TodayRecord().Tasks[0].Done {
		t.Error("task not marked done")
	}

	if err := (&TaskDoneCmd{Which: "5"}).Run(ctx); err == nil {
		t.Error("out-of-range task number should error")
	}
	if err := (&TaskDoneCmd{Which: "main"}).Run(ctx); err == nil {
		t.Error("marking main without a priority should error")
	}
}

func TestHabitAddRejectsDuplicates(t *testing.T) {
	ctx := newTestContext(t)

	if err := (&HabitAddCmd{Name: []string{"run"}}).Run(ctx); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := (&HabitAddCmd{Name: []string{"run"}}).Run(ctx); err == nil {
		t.Error("duplicate habit should be rejected")
	}
}

func TestWaterFlipsBasicAtGoal(t *testing.T) {
	ctx := newTestContext(t)

	if err := (&WaterCmd{Glasses: 7}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if ctx.TodayRecord().Basics.Water {
		t.Error("water basic flipped before the goal")
	}

	if err := (&WaterCmd{Glasses: 1}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	rec := ctx.TodayRecord()
	if rec.WaterGlasses != 8 || !rec.Basics.Water {
		t.Errorf("glasses=%d water=%v, want 8/true", rec.WaterGlasses, rec.Basics.Water)
	}
}

func TestFindWorryPrefixMatching(t *testing.T) {
	rec := models.DailyRecord{Worries: []models.WorryEntry{
		{ID: "abc-123", Worry: "a"},
		{ID: "abd-456", Worry: "b"},
	}}

	w, err := findWorry(rec, "abc")
	if err != nil || w.Worry != "a" {
		t.Errorf("unique prefix failed: %+v (%v)", w, err)
	}
	if _, err := findWorry(rec, "ab"); err == nil {
		t.Error("ambiguous prefix should error")
	}
	if _, err := findWorry(rec, "zzz"); err == nil {
		t.Error("missing prefix should error")
	}
}
