package scheduler

import (
	"fmt"
	"testing"

	"github.com/amorasol/weekplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func depTask(id string, deps ...string) domain.Task {
	t := makeTask(id, 3, 60, domain.PriorityImportant)
	t.Dependencies = deps
	return t
}

func orderedIndex(t *testing.T, tasks []domain.Task, id string) int {
	t.Helper()
	for i, task := range tasks {
		if task.ID == id {
			return i
		}
	}
	t.Fatalf("task %s not in output", id)
	return -1
}

func TestOrderByDependencies_SimpleChain(t *testing.T) {
	ordered := OrderByDependencies([]domain.Task{
		depTask("b", "a"),
		depTask("a"),
	})

	require.Len(t, ordered, 2)
	assert.Less(t, orderedIndex(t, ordered, "a"), orderedIndex(t, ordered, "b"))
}

func TestOrderByDependencies_DiamondGraph(t *testing.T) {
	ordered := OrderByDependencies([]domain.Task{
		depTask("d", "b", "c"),
		depTask("b", "a"),
		depTask("c", "a"),
		depTask("a"),
	})

	require.Len(t, ordered, 4)
	a := orderedIndex(t, ordered, "a")
	assert.Less(t, a, orderedIndex(t, ordered, "b"))
	assert.Less(t, a, orderedIndex(t, ordered, "c"))
	assert.Less(t, orderedIndex(t, ordered, "b"), orderedIndex(t, ordered, "d"))
	assert.Less(t, orderedIndex(t, ordered, "c"), orderedIndex(t, ordered, "d"))
}

func TestOrderByDependencies_CycleTerminates(t *testing.T) {
	ordered := OrderByDependencies([]domain.Task{
		depTask("a", "b"),
		depTask("b", "a"),
	})

	require.Len(t, ordered, 2, "both cycle members appear exactly once")
	seen := map[string]int{}
	for _, task := range ordered {
		seen[task.ID]++
	}
	assert.Equal(t, map[string]int{"a": 1, "b": 1}, seen)
}

func TestOrderByDependencies_SelfCycle(t *testing.T) {
	ordered := OrderByDependencies([]domain.Task{depTask("a", "a")})
	require.Len(t, ordered, 1)
	assert.Equal(t, "a", ordered[0].ID)
}

func TestOrderByDependencies_UnknownDependencyIgnored(t *testing.T) {
	ordered := OrderByDependencies([]domain.Task{
		depTask("a", "ghost"),
		depTask("b", "a"),
	})

	require.Len(t, ordered, 2)
	assert.Less(t, orderedIndex(t, ordered, "a"), orderedIndex(t, ordered, "b"))
}

func TestOrderByDependencies_OutputDropsDependencies(t *testing.T) {
	ordered := OrderByDependencies([]domain.Task{
		depTask("b", "a"),
		depTask("a"),
	})

	for _, task := range ordered {
		assert.Nil(t, task.Dependencies, "dependencies are consumed for ordering only")
	}
}

func TestOrderByDependencies_EmptyInput(t *testing.T) {
	assert.Empty(t, OrderByDependencies(nil))
}

func TestOrderByDependencies_DeepChainBoundedStack(t *testing.T) {
	// A long linear chain exercises the explicit stack rather than recursion.
	const n = 5000
	tasks := make([]domain.Task, n)
	for i := range tasks {
		id := fmt.Sprintf("t%d", i)
		if i == 0 {
			tasks[i] = depTask(id)
		} else {
			tasks[i] = depTask(id, fmt.Sprintf("t%d", i-1))
		}
	}
	// Present the chain tail-first so the walk descends the full depth.
	for i, j := 0, len(tasks)-1; i < j; i, j = i+1, j-1 {
		tasks[i], tasks[j] = tasks[j], tasks[i]
	}

	ordered := OrderByDependencies(tasks)
	require.Len(t, ordered, n)
	for i, task := range ordered {
		assert.Equal(t, fmt.Sprintf("t%d", i), task.ID)
	}
}
