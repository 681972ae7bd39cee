package domain

import "time"

// TimeBlock is one scheduled interval of a planned day. Blocks produced by
// the planner carry no ID; the repository assigns ids on save so that
// planning stays a pure preview.
type TimeBlock struct {
	ID     string
	UserID string

	Date      time.Time // midnight-anchored calendar day
	StartTime time.Time
	EndTime   time.Time // always after StartTime

	BlockType BlockType

	// TaskID/TaskTitle are set only for task-carrying blocks. A block's
	// duration may be shorter than the source task's estimate when the task
	// was truncated to fit remaining capacity.
	TaskID    string
	TaskTitle string

	CreatedAt time.Time
}

// DurationMin returns the block length in whole minutes.
func (b TimeBlock) DurationMin() int {
	return int(b.EndTime.Sub(b.StartTime) / time.Minute)
}
