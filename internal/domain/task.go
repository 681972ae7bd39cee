package domain

import "time"

// Task is the planning view of a backlog item. The scheduling engine treats
// tasks as immutable input; all mutation goes through the repository.
type Task struct {
	ID     string
	UserID string
	Title  string

	Difficulty   int // 1-5, drives placement tier
	EstimatedMin int // positive minutes, the single duration unit
	Priority     Priority

	Status       TaskStatus
	KanbanColumn KanbanColumn
	Deadline     *time.Time

	// Dependencies holds ids of tasks that must be scheduled earlier in the
	// week. May contain cycles; the orderer breaks them.
	Dependencies []string

	DeletedAt  *time.Time
	ArchivedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DifficultyTier buckets difficulty into the three placement tiers.
func (t Task) DifficultyTier() string {
	switch {
	case t.Difficulty >= 4:
		return "hard"
	case t.Difficulty == 3:
		return "medium"
	default:
		return "easy"
	}
}
