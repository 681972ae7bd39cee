package domain

type Priority string

const (
	PrioritySacred    Priority = "sacred"
	PriorityImportant Priority = "important"
	PriorityOptional  Priority = "optional"
)

// ValidPriorities is the canonical set of accepted priority strings.
var ValidPriorities = map[string]bool{
	"sacred": true, "important": true, "optional": true,
}

// PlanEligible reports whether tasks of this priority may enter weekly
// planning. Optional tasks are excluded at the store query, never scheduled.
func (p Priority) PlanEligible() bool {
	return p == PrioritySacred || p == PriorityImportant
}

type BlockType string

const (
	BlockSacred    BlockType = "sacred"
	BlockImportant BlockType = "important"
	BlockOptional  BlockType = "optional"
	BlockBuffer    BlockType = "buffer"
	BlockRescue    BlockType = "rescue"
)

// TaskCarrying reports whether blocks of this type reference a source task.
// Buffer and rescue blocks are task-free reserved intervals.
func (b BlockType) TaskCarrying() bool {
	return b != BlockBuffer && b != BlockRescue
}

type TaskStatus string

const (
	TaskInbox TaskStatus = "inbox"
	TaskTodo  TaskStatus = "todo"
	TaskDoing TaskStatus = "doing"
	TaskDone  TaskStatus = "done"
)

// KanbanColumn mirrors TaskStatus values but tracks board position
// independently; the eligibility query checks both.
type KanbanColumn string

const (
	ColumnInbox KanbanColumn = "inbox"
	ColumnTodo  KanbanColumn = "todo"
	ColumnDoing KanbanColumn = "doing"
	ColumnDone  KanbanColumn = "done"
)

type Chronotype string

const (
	ChronoBear    Chronotype = "bear"
	ChronoLion    Chronotype = "lion"
	ChronoWolf    Chronotype = "wolf"
	ChronoDolphin Chronotype = "dolphin"
)
