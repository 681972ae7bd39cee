package contract

import (
	"time"

	"github.com/amorasol/weekplan/internal/domain"
)

// PlanWeekRequest asks for a planned week. WeekStart may be any day of the
// target week; it is normalized to that week's Monday.
type PlanWeekRequest struct {
	UserID    string
	WeekStart time.Time

	// Chronotype overrides the configured default when non-empty.
	Chronotype string
}

// WeekPlan is a planned week preview. Nothing is persisted until the caller
// explicitly saves it.
type WeekPlan struct {
	UserID    string
	WeekStart time.Time // the normalized Monday

	TimeBlocks []domain.TimeBlock

	// TotalHours counts task-carrying blocks only; buffer and rescue time is
	// reported separately. Both are rounded to one decimal.
	TotalHours  float64
	BufferHours float64
	RescueSlots int
}
