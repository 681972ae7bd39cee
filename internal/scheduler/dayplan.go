package scheduler

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/amorasol/weekplan/internal/domain"
)

const (
	// DefaultBufferPct is the share of the work day reserved as a trailing
	// task-free buffer when the request does not set one.
	DefaultBufferPct = 20

	// peakSeekStepMin / peakSeekLimitMin bound the forward scan for a peak
	// window. The 8-hour cap is a fixed heuristic, deliberately not derived
	// from the work-day length: changing it would change placement output.
	peakSeekStepMin  = 30
	peakSeekLimitMin = 8 * 60
)

// WorkHours is a day's working interval in "HH:mm" notation.
type WorkHours struct {
	Start string
	End   string
}

// DayPlanRequest carries everything PlanDay needs to fill one day.
type DayPlanRequest struct {
	Day       time.Time
	WorkHours WorkHours
	PeakHours []PeakWindow
	Tasks     []domain.Task

	// BufferPct defaults to DefaultBufferPct when zero.
	BufferPct int
}

// span is a half-open interval in minutes from midnight.
type span struct {
	start, end int
}

// PlanDay places tasks into a single day's grid. Hard tasks (difficulty 4-5)
// claim peak windows first, medium then easy tasks follow sequentially, and a
// buffer block closes the day. Tasks that exceed remaining capacity are
// truncated; tasks beyond capacity are dropped from the day without error.
// Work-hour validation failures are the only error path.
func PlanDay(req DayPlanRequest) ([]domain.TimeBlock, error) {
	startMin, err := parseClock(req.WorkHours.Start)
	if err != nil {
		return nil, fmt.Errorf("work hours start: %w", err)
	}
	endMin, err := parseClock(req.WorkHours.End)
	if err != nil {
		return nil, fmt.Errorf("work hours end: %w", err)
	}
	if endMin <= startMin {
		return nil, errors.New("work hours end must be after start")
	}

	bufferPct := req.BufferPct
	if bufferPct == 0 {
		bufferPct = DefaultBufferPct
	}
	totalMin := endMin - startMin
	bufferMin := totalMin * bufferPct / 100
	remaining := totalMin - bufferMin

	if len(req.Tasks) == 0 {
		return nil, nil
	}

	peaks := parseWindows(req.PeakHours)

	// Difficulty-descending across the whole list; input order survives only
	// among tasks of equal difficulty.
	ordered := make([]domain.Task, len(req.Tasks))
	copy(ordered, req.Tasks)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Difficulty > ordered[j].Difficulty
	})

	var hard, medium, easy []domain.Task
	for _, t := range ordered {
		switch {
		case t.Difficulty >= 4:
			hard = append(hard, t)
		case t.Difficulty == 3:
			medium = append(medium, t)
		default:
			easy = append(easy, t)
		}
	}

	day := midnight(req.Day)
	cursor := startMin
	var blocks []domain.TimeBlock

	place := func(t domain.Task) {
		dur := t.EstimatedMin
		if dur > remaining {
			dur = remaining
		}
		if dur <= 0 {
			return
		}
		blocks = append(blocks, domain.TimeBlock{
			UserID:    t.UserID,
			Date:      day,
			StartTime: day.Add(time.Duration(cursor) * time.Minute),
			EndTime:   day.Add(time.Duration(cursor+dur) * time.Minute),
			BlockType: domain.BlockType(t.Priority),
			TaskID:    t.ID,
			TaskTitle: t.Title,
		})
		cursor += dur
		remaining -= dur
	}

	// Hard tier: seek the next peak window in 30-minute steps. Preference is
	// best-effort; if no window is reachable the task goes at the cursor.
	for _, t := range hard {
		if remaining <= 0 {
			break
		}
		if !inAnyWindow(peaks, cursor) {
			if jump, ok := nextPeakSlot(peaks, cursor, endMin); ok {
				cursor = jump
			}
		}
		place(t)
	}
	for _, t := range medium {
		if remaining <= 0 {
			break
		}
		place(t)
	}
	for _, t := range easy {
		if remaining <= 0 {
			break
		}
		place(t)
	}

	if bufferMin > 0 && cursor < endMin {
		dur := bufferMin
		if endMin-cursor < dur {
			dur = endMin - cursor
		}
		blocks = append(blocks, domain.TimeBlock{
			Date:      day,
			StartTime: day.Add(time.Duration(cursor) * time.Minute),
			EndTime:   day.Add(time.Duration(cursor+dur) * time.Minute),
			BlockType: domain.BlockBuffer,
		})
	}

	return blocks, nil
}

// nextPeakSlot scans forward from the cursor in fixed steps for a minute that
// lands inside a peak window, stopping at the seek limit or day end.
func nextPeakSlot(peaks []span, from, dayEnd int) (int, bool) {
	for t := from + peakSeekStepMin; t <= from+peakSeekLimitMin && t < dayEnd; t += peakSeekStepMin {
		if inAnyWindow(peaks, t) {
			return t, true
		}
	}
	return 0, false
}

func inAnyWindow(peaks []span, minute int) bool {
	for _, p := range peaks {
		if minute >= p.start && minute < p.end {
			return true
		}
	}
	return false
}

// parseWindows converts peak windows to minute spans, dropping any that do
// not parse or are empty. Peak hours are advisory input, never an error.
func parseWindows(windows []PeakWindow) []span {
	var spans []span
	for _, w := range windows {
		start, err := parseClock(w.Start)
		if err != nil {
			continue
		}
		end, err := parseClock(w.End)
		if err != nil || end <= start {
			continue
		}
		spans = append(spans, span{start: start, end: end})
	}
	return spans
}

// parseClock parses "HH:mm" into minutes from midnight.
func parseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time format %q: expected HH:mm", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time format %q: expected HH:mm", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time format %q: expected HH:mm", s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid time values in %q", s)
	}
	return hour*60 + minute, nil
}

// midnight truncates a time to the start of its calendar day.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
