package scheduler

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/amorasol/weekplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPlanDay_Invariants property-tests the placement invariants over random
// task sets: non-overlap, monotonic starts, capacity bound, buffer-last.
func TestPlanDay_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	priorities := []domain.Priority{domain.PrioritySacred, domain.PriorityImportant}

	for trial := 0; trial < 200; trial++ {
		numTasks := rng.Intn(10) + 1
		tasks := make([]domain.Task, numTasks)
		for i := range tasks {
			tasks[i] = makeTask(
				fmt.Sprintf("t%d", i),
				rng.Intn(5)+1,      // difficulty 1-5
				rng.Intn(180)+15,   // 15-194 min
				priorities[rng.Intn(len(priorities))],
			)
		}

		blocks, err := PlanDay(bearDay(tasks...))
		require.NoError(t, err, "trial %d", trial)

		// Available capacity for an 08:00-18:00 day with a 20% buffer.
		const availableMin = 480

		taskMin := 0
		for j, b := range blocks {
			assert.True(t, b.EndTime.After(b.StartTime),
				"trial %d block %d: end must be after start", trial, j)

			if j > 0 {
				prev := blocks[j-1]
				assert.False(t, b.StartTime.Before(prev.EndTime),
					"trial %d block %d: overlaps previous block", trial, j)
			}

			if b.BlockType == domain.BlockBuffer {
				assert.Equal(t, len(blocks)-1, j,
					"trial %d: buffer block must be last", trial)
				assert.Empty(t, b.TaskID, "trial %d: buffer carries no task", trial)
				continue
			}
			taskMin += b.DurationMin()
		}

		assert.LessOrEqual(t, taskMin, availableMin,
			"trial %d: task minutes (%d) must not exceed available (%d)", trial, taskMin, availableMin)
	}
}

// TestPlanDay_Invariant_TruncationNeverInflates verifies that a placed block
// is never longer than its source task's estimate.
func TestPlanDay_Invariant_TruncationNeverInflates(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for trial := 0; trial < 100; trial++ {
		numTasks := rng.Intn(6) + 1
		estimates := make(map[string]int, numTasks)
		tasks := make([]domain.Task, numTasks)
		for i := range tasks {
			id := fmt.Sprintf("t%d", i)
			est := rng.Intn(400) + 10
			estimates[id] = est
			tasks[i] = makeTask(id, rng.Intn(5)+1, est, domain.PriorityImportant)
		}

		blocks, err := PlanDay(bearDay(tasks...))
		require.NoError(t, err, "trial %d", trial)

		for _, b := range blocks {
			if !b.BlockType.TaskCarrying() {
				continue
			}
			assert.LessOrEqual(t, b.DurationMin(), estimates[b.TaskID],
				"trial %d task %s: block longer than estimate", trial, b.TaskID)
		}
	}
}
