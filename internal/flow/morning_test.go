package flow

import (
	"fmt"
	"testing"

	"github.com/jmdelaney/dayglow/internal/models"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func TestMeetingBlocksDropsIncompleteRows(t *testing.T) {
	meetings := []models.Meeting{
		{Title: "standup", Start: "09:00", End: "09:15"},
		{Title: "", Start: "10:00", End: "11:00"},     // no title
		{Title: "1:1", Start: "bad", End: "11:00"},    // unparseable start
		{Title: "review", Start: "14:00", End: "nope"}, // unparseable end
		{Title: "planning", Start: "15:00", End: "16:00"},
	}

	blocks := MeetingBlocks("2026-08-28", meetings, sequentialIDs())
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}

	first := blocks[0]
	if first.Label != "standup" || first.Category != models.BlockCustom {
		t.Errorf("unexpected first block: %+v", first)
	}
	if first.Start.Hour() != 9 || first.Start.Minute() != 0 {
		t.Errorf("block start not anchored to meeting time: %s", first.Start)
	}
	if first.Start.Year() != 2026 || first.Start.Month() != 8 || first.Start.Day() != 28 {
		t.Errorf("block not anchored to the given day: %s", first.Start)
	}
	if err := first.Validate(); err != nil {
		t.Errorf("converted block should validate: %v", err)
	}
}

func TestMeetingBlocksBadDayKey(t *testing.T) {
	blocks := MeetingBlocks("August 28", []models.Meeting{{Title: "x", Start: "09:00", End: "10:00"}}, sequentialIDs())
	if blocks != nil {
		t.Errorf("unparseable day key should yield no blocks, got %d", len(blocks))
	}
}

func TestFinishMorningAppendsMeetingBlocks(t *testing.T) {
	draft := &models.DailyRecord{
		SleepQuality: 4,
		MorningMood:  "calm",
		MainPriority: "ship",
		Meetings: []models.Meeting{
			{Title: "standup", Start: "09:00", End: "09:15"},
		},
		TimeBlocks: []models.TimeBlock{{ID: "existing"}},
	}

	rec := FinishMorning(draft, "2026-08-28", sequentialIDs())
	if len(rec.TimeBlocks) != 2 {
		t.Fatalf("expected existing + converted block, got %d", len(rec.TimeBlocks))
	}
	if rec.TimeBlocks[0].ID != "existing" {
		t.Error("existing blocks must be preserved ahead of converted ones")
	}
	// The draft itself must not grow blocks; FinishMorning returns a copy.
	if len(draft.TimeBlocks) != 1 {
		t.Errorf("draft mutated: %d blocks", len(draft.TimeBlocks))
	}
}

func TestFinishMorningRecompletionDoesNotDuplicateBlocks(t *testing.T) {
	ids := sequentialIDs()
	first := FinishMorning(&models.DailyRecord{
		SleepQuality: 4,
		MorningMood:  "calm",
		MainPriority: "ship",
		Meetings: []models.Meeting{
			{Title: "standup", Start: "09:00", End: "09:15"},
		},
	}, "2026-08-28", ids)
	if len(first.TimeBlocks) != 1 {
		t.Fatalf("first completion should convert one block, got %d", len(first.TimeBlocks))
	}

	// Re-open the flow seeded from the saved record and complete it again,
	// adding one new meeting along the way.
	machine := NewMorning(first)
	machine.Draft.Meetings = append(machine.Draft.Meetings,
		models.Meeting{Title: "retro", Start: "16:00", End: "16:30"})
	second := FinishMorning(machine.Draft, "2026-08-28", ids)

	standups := 0
	for _, b := range second.TimeBlocks {
		if b.Label == "standup" {
			standups++
		}
	}
	if standups != 1 {
		t.Errorf("re-completion duplicated meeting blocks: %d copies of 'standup'", standups)
	}
	if len(second.TimeBlocks) != 2 {
		t.Errorf("expected standup + retro, got %d blocks", len(second.TimeBlocks))
	}
}
