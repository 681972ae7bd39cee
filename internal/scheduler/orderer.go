package scheduler

import "github.com/amorasol/weekplan/internal/domain"

type visitState int

const (
	unvisited visitState = iota
	visiting
	visited
)

// OrderByDependencies returns the tasks in a dependency-respecting order:
// when task B depends on task A and both are present, A comes first.
//
// The walk is an explicit-stack depth-first visit with a "visiting" marker.
// An edge back into a task still mid-visit is a cycle and is skipped rather
// than followed, so any input terminates; within a cycle the relative order
// is therefore only approximate, which is the accepted behavior. Edges to ids
// outside the input set are treated as already satisfied. Output tasks carry
// no Dependencies; the field is consumed for ordering only.
func OrderByDependencies(tasks []domain.Task) []domain.Task {
	byID := make(map[string]domain.Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}

	state := make(map[string]visitState, len(tasks))
	ordered := make([]domain.Task, 0, len(tasks))

	emit := func(id string) {
		t := byID[id]
		t.Dependencies = nil
		ordered = append(ordered, t)
	}

	type frame struct {
		id   string
		next int
	}

	for _, root := range tasks {
		if state[root.ID] != unvisited {
			continue
		}
		state[root.ID] = visiting
		stack := []frame{{id: root.ID}}
		for len(stack) > 0 {
			f := &stack[len(stack)-1]
			deps := byID[f.id].Dependencies

			descended := false
			for f.next < len(deps) {
				dep := deps[f.next]
				f.next++
				if _, ok := byID[dep]; !ok {
					continue // outside the set
				}
				if state[dep] == unvisited {
					state[dep] = visiting
					stack = append(stack, frame{id: dep})
					descended = true
					break
				}
				// visiting (cycle edge) or already visited: skip.
			}
			if descended {
				continue
			}

			state[f.id] = visited
			emit(f.id)
			stack = stack[:len(stack)-1]
		}
	}

	return ordered
}
