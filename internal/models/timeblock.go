package models

import (
	"fmt"
	"time"

	"github.com/jmdelaney/dayglow/internal/constants"
)

// BlockCategory is the closed set of time-block categories.
type BlockCategory string

const (
	BlockPriority BlockCategory = "priority"
	BlockTask     BlockCategory = "task"
	BlockHabit    BlockCategory = "habit"
	BlockConnect  BlockCategory = "connect"
	BlockCustom   BlockCategory = "custom"
)

// TimeBlock is a labeled span of time within one calendar day. Overlaps
// between blocks are not detected or resolved.
type TimeBlock struct {
	ID       string        `json:"id"`
	Start    time.Time     `json:"start"`
	End      time.Time     `json:"end"`
	Category BlockCategory `json:"category"`
	Label    string        `json:"label"`
}

// Validate checks the block's invariants: a known category and an end after
// its start.
func (b TimeBlock) Validate() error {
	switch b.Category {
	case BlockPriority, BlockTask, BlockHabit, BlockConnect, BlockCustom:
	default:
		return fmt.Errorf("unknown block category: %q", b.Category)
	}
	if !b.End.After(b.Start) {
		return fmt.Errorf("block end %s must be after start %s",
			b.End.Format(constants.TimeFormat), b.Start.Format(constants.TimeFormat))
	}
	return nil
}
