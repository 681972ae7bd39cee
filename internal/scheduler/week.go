package scheduler

import (
	"time"

	"github.com/amorasol/weekplan/internal/domain"
)

// MondayOf returns midnight on the Monday of t's ISO week, so callers may
// pass any day of the target week.
func MondayOf(t time.Time) time.Time {
	d := midnight(t)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// SplitAcrossDays splits an ordered task list into consecutive per-day shares.
// Day i takes ceil(remaining / (days-i)) tasks off the front of the pool, so
// later days naturally shrink as earlier days consume it. The arithmetic is
// order-sensitive and kept exactly as is for behavioral compatibility.
func SplitAcrossDays(tasks []domain.Task, days int) [][]domain.Task {
	shares := make([][]domain.Task, days)
	pool := tasks
	for i := 0; i < days; i++ {
		if len(pool) == 0 {
			break
		}
		n := (len(pool) + days - i - 1) / (days - i)
		shares[i] = pool[:n]
		pool = pool[n:]
	}
	return shares
}
