package testutil

import (
	"time"

	"github.com/amorasol/weekplan/internal/domain"
	"github.com/google/uuid"
)

// TestUser is the user id fixture tasks and blocks are keyed by.
const TestUser = "user-1"

// TaskOption mutates a task fixture before it is returned.
type TaskOption func(*domain.Task)

// NewTask builds a plannable task fixture: important, difficulty 3, one hour,
// status and kanban column both todo.
func NewTask(title string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	t := &domain.Task{
		ID:           uuid.NewString(),
		UserID:       TestUser,
		Title:        title,
		Difficulty:   3,
		EstimatedMin: 60,
		Priority:     domain.PriorityImportant,
		Status:       domain.TaskTodo,
		KanbanColumn: domain.ColumnTodo,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func WithPriority(p domain.Priority) TaskOption {
	return func(t *domain.Task) { t.Priority = p }
}

func WithDifficulty(d int) TaskOption {
	return func(t *domain.Task) { t.Difficulty = d }
}

func WithEstimate(min int) TaskOption {
	return func(t *domain.Task) { t.EstimatedMin = min }
}

func WithStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) { t.Status = s }
}

func WithColumn(c domain.KanbanColumn) TaskOption {
	return func(t *domain.Task) { t.KanbanColumn = c }
}

func WithDeadline(d time.Time) TaskOption {
	return func(t *domain.Task) { t.Deadline = &d }
}

func WithDependencies(ids ...string) TaskOption {
	return func(t *domain.Task) { t.Dependencies = ids }
}

func WithID(id string) TaskOption {
	return func(t *domain.Task) { t.ID = id }
}

// NewBlock builds a time block fixture on the given day.
func NewBlock(day time.Time, startHour, durationMin int, blockType domain.BlockType) domain.TimeBlock {
	date := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	start := date.Add(time.Duration(startHour) * time.Hour)
	return domain.TimeBlock{
		ID:        uuid.NewString(),
		UserID:    TestUser,
		Date:      date,
		StartTime: start,
		EndTime:   start.Add(time.Duration(durationMin) * time.Minute),
		BlockType: blockType,
	}
}
