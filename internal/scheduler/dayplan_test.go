package scheduler

import (
	"testing"
	"time"

	"github.com/amorasol/weekplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func makeTask(id string, difficulty, estimatedMin int, priority domain.Priority) domain.Task {
	return domain.Task{
		ID:           id,
		Title:        "Task " + id,
		Difficulty:   difficulty,
		EstimatedMin: estimatedMin,
		Priority:     priority,
	}
}

func bearDay(tasks ...domain.Task) DayPlanRequest {
	return DayPlanRequest{
		Day:       monday,
		WorkHours: WorkHours{Start: "08:00", End: "18:00"},
		PeakHours: PeakHours("bear"),
		Tasks:     tasks,
	}
}

// at returns the given clock time on the test day.
func at(hhmm string) time.Time {
	min, err := parseClock(hhmm)
	if err != nil {
		panic(err)
	}
	return monday.Add(time.Duration(min) * time.Minute)
}

func TestPlanDay_InvalidWorkHours(t *testing.T) {
	tests := []struct {
		name  string
		hours WorkHours
	}{
		{"missing colon", WorkHours{Start: "0800", End: "18:00"}},
		{"non-numeric", WorkHours{Start: "08:00", End: "six pm"}},
		{"hour out of range", WorkHours{Start: "25:00", End: "26:00"}},
		{"minute out of range", WorkHours{Start: "08:61", End: "18:00"}},
		{"end before start", WorkHours{Start: "18:00", End: "08:00"}},
		{"end equals start", WorkHours{Start: "08:00", End: "08:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := bearDay(makeTask("t1", 3, 60, domain.PriorityImportant))
			req.WorkHours = tt.hours
			blocks, err := PlanDay(req)
			require.Error(t, err)
			assert.Nil(t, blocks, "a failed call must not produce partial output")
		})
	}
}

func TestPlanDay_EmptyTasks(t *testing.T) {
	blocks, err := PlanDay(bearDay())
	require.NoError(t, err)
	assert.Empty(t, blocks, "empty task list yields no blocks, not even a buffer")
}

func TestPlanDay_MinimumViableScenario(t *testing.T) {
	blocks, err := PlanDay(bearDay(makeTask("t1", 5, 60, domain.PrioritySacred)))
	require.NoError(t, err)
	require.Len(t, blocks, 2)

	task := blocks[0]
	assert.Equal(t, "t1", task.TaskID)
	assert.Equal(t, domain.BlockSacred, task.BlockType)
	assert.Equal(t, 60, task.DurationMin())

	inMorningPeak := !task.StartTime.Before(at("10:00")) && task.StartTime.Before(at("12:00"))
	inAfternoonPeak := !task.StartTime.Before(at("16:00")) && task.StartTime.Before(at("18:00"))
	assert.True(t, inMorningPeak || inAfternoonPeak,
		"difficulty-5 task should start inside a bear peak window, got %s", task.StartTime)

	buffer := blocks[1]
	assert.Equal(t, domain.BlockBuffer, buffer.BlockType)
	assert.Empty(t, buffer.TaskID)
}

func TestPlanDay_HardTaskJumpsToPeakWindow(t *testing.T) {
	// Cursor starts at 08:00, outside both bear windows: the 30-minute scan
	// should land exactly on the 10:00 window start.
	blocks, err := PlanDay(bearDay(makeTask("t1", 4, 90, domain.PriorityImportant)))
	require.NoError(t, err)
	require.NotEmpty(t, blocks)
	assert.Equal(t, at("10:00"), blocks[0].StartTime)
	assert.Equal(t, at("11:30"), blocks[0].EndTime)
}

func TestPlanDay_HardTaskAlreadyInPeakStaysPut(t *testing.T) {
	req := bearDay(makeTask("t1", 5, 60, domain.PrioritySacred))
	req.WorkHours = WorkHours{Start: "10:30", End: "18:00"}
	blocks, err := PlanDay(req)
	require.NoError(t, err)
	require.NotEmpty(t, blocks)
	assert.Equal(t, at("10:30"), blocks[0].StartTime, "cursor already inside a window must not move")
}

func TestPlanDay_UnreachablePeakPlacesAtCursor(t *testing.T) {
	// Evening-only peak windows that end before the work day starts.
	req := DayPlanRequest{
		Day:       monday,
		WorkHours: WorkHours{Start: "08:00", End: "10:00"},
		PeakHours: []PeakWindow{{Start: "19:00", End: "21:00"}},
		Tasks:     []domain.Task{makeTask("t1", 5, 60, domain.PrioritySacred)},
	}
	blocks, err := PlanDay(req)
	require.NoError(t, err)
	require.NotEmpty(t, blocks)
	assert.Equal(t, at("08:00"), blocks[0].StartTime, "peak preference is best-effort, never blocking")
}

func TestPlanDay_TierOrderBeatsInputOrder(t *testing.T) {
	blocks, err := PlanDay(bearDay(
		makeTask("easy", 1, 30, domain.PriorityImportant),
		makeTask("medium", 3, 30, domain.PriorityImportant),
		makeTask("hard", 5, 30, domain.PrioritySacred),
	))
	require.NoError(t, err)
	require.Len(t, blocks, 4)
	assert.Equal(t, "hard", blocks[0].TaskID)
	assert.Equal(t, "medium", blocks[1].TaskID)
	assert.Equal(t, "easy", blocks[2].TaskID)
	assert.Equal(t, domain.BlockBuffer, blocks[3].BlockType)
}

func TestPlanDay_DifficultyDescendingWithinTier(t *testing.T) {
	// Input order deliberately inverts difficulty inside both the hard and
	// the easy tier; placement must still be difficulty-descending.
	blocks, err := PlanDay(bearDay(
		makeTask("four", 4, 60, domain.PriorityImportant),
		makeTask("five", 5, 60, domain.PrioritySacred),
		makeTask("one", 1, 30, domain.PriorityImportant),
		makeTask("two", 2, 30, domain.PriorityImportant),
	))
	require.NoError(t, err)
	require.Len(t, blocks, 5)

	var ids []string
	for _, b := range blocks {
		if b.BlockType.TaskCarrying() {
			ids = append(ids, b.TaskID)
		}
	}
	assert.Equal(t, []string{"five", "four", "two", "one"}, ids)
	assert.Equal(t, at("10:00"), blocks[0].StartTime,
		"the hardest task claims the first peak window")
}

func TestPlanDay_StableWithinTier(t *testing.T) {
	blocks, err := PlanDay(bearDay(
		makeTask("first", 3, 30, domain.PriorityImportant),
		makeTask("second", 3, 30, domain.PriorityImportant),
		makeTask("third", 3, 30, domain.PriorityImportant),
	))
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(blocks), 3)
	assert.Equal(t, "first", blocks[0].TaskID)
	assert.Equal(t, "second", blocks[1].TaskID)
	assert.Equal(t, "third", blocks[2].TaskID)
}

func TestPlanDay_OversizeTaskTruncatedToCapacity(t *testing.T) {
	// 10h day, 20% buffer: 480 available minutes. Medium difficulty so the
	// cursor stays at 08:00 with no peak jump.
	blocks, err := PlanDay(bearDay(makeTask("big", 3, 1000, domain.PriorityImportant)))
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, 480, blocks[0].DurationMin(), "task truncated to available capacity")
	assert.Equal(t, at("08:00"), blocks[0].StartTime)
	assert.Equal(t, at("16:00"), blocks[0].EndTime)

	assert.Equal(t, domain.BlockBuffer, blocks[1].BlockType)
	assert.Equal(t, at("16:00"), blocks[1].StartTime)
	assert.Equal(t, at("18:00"), blocks[1].EndTime)
}

func TestPlanDay_TasksBeyondCapacitySilentlyDropped(t *testing.T) {
	blocks, err := PlanDay(bearDay(
		makeTask("a", 3, 300, domain.PriorityImportant),
		makeTask("b", 3, 300, domain.PriorityImportant),
		makeTask("c", 3, 300, domain.PriorityImportant),
	))
	require.NoError(t, err)

	var taskMin int
	var ids []string
	for _, b := range blocks {
		if b.BlockType.TaskCarrying() {
			taskMin += b.DurationMin()
			ids = append(ids, b.TaskID)
		}
	}
	assert.Equal(t, 480, taskMin)
	assert.Equal(t, []string{"a", "b"}, ids, "task c no longer fits and is dropped without error")
}

func TestPlanDay_BlockTypeMatchesPriority(t *testing.T) {
	blocks, err := PlanDay(bearDay(
		makeTask("s", 2, 30, domain.PrioritySacred),
		makeTask("i", 2, 30, domain.PriorityImportant),
	))
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(blocks), 2)
	assert.Equal(t, domain.BlockSacred, blocks[0].BlockType)
	assert.Equal(t, domain.BlockImportant, blocks[1].BlockType)
}

func TestPlanDay_Deterministic(t *testing.T) {
	req := bearDay(
		makeTask("a", 5, 90, domain.PrioritySacred),
		makeTask("b", 3, 45, domain.PriorityImportant),
		makeTask("c", 1, 120, domain.PriorityImportant),
	)
	first, err := PlanDay(req)
	require.NoError(t, err)
	second, err := PlanDay(req)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPlanDay_ZeroBufferPctDefaultsToTwenty(t *testing.T) {
	blocks, err := PlanDay(bearDay(makeTask("t1", 3, 600, domain.PriorityImportant)))
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, 480, blocks[0].DurationMin(), "default 20%% buffer leaves 480 of 600 minutes")
	assert.Equal(t, 120, blocks[1].DurationMin())
}

func TestPlanDay_CustomBufferPct(t *testing.T) {
	req := bearDay(makeTask("t1", 3, 600, domain.PriorityImportant))
	req.BufferPct = 10
	blocks, err := PlanDay(req)
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, 540, blocks[0].DurationMin())
	assert.Equal(t, 60, blocks[1].DurationMin())
}
