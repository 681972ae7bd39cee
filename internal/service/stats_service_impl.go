package service

import (
	"context"
	"fmt"
	"time"

	"github.com/amorasol/weekplan/internal/contract"
	"github.com/amorasol/weekplan/internal/domain"
	"github.com/amorasol/weekplan/internal/repository"
	"github.com/amorasol/weekplan/internal/scheduler"
)

// Documented capacity constants, not derived from any schedule.
const (
	statsMaxHours  = 20.0
	statsRescueMax = 2
)

type statsService struct {
	tasks  repository.TaskRepo
	blocks repository.TimeBlockRepo
}

func NewStatsService(tasks repository.TaskRepo, blocks repository.TimeBlockRepo) StatsService {
	return &statsService{tasks: tasks, blocks: blocks}
}

func (s *statsService) WeeklyStats(ctx context.Context, userID string, weekStart time.Time) (*contract.WeeklyStats, error) {
	monday := scheduler.MondayOf(weekStart)

	tasks, err := s.tasks.ListBlockedInWeek(ctx, userID, monday)
	if err != nil {
		return nil, fmt.Errorf("loading week's tasks: %w", err)
	}

	completed := 0
	for _, t := range tasks {
		if t.Status == domain.TaskDone {
			completed++
		}
	}

	blocks, err := s.blocks.ListForWeek(ctx, userID, monday)
	if err != nil {
		return nil, fmt.Errorf("loading week's time blocks: %w", err)
	}

	var productiveMin float64
	rescueUsed := 0
	for _, b := range blocks {
		switch b.BlockType {
		case domain.BlockRescue:
			rescueUsed++
		case domain.BlockBuffer:
			// reserved, not productive
		default:
			min := b.EndTime.Sub(b.StartTime).Minutes()
			if min < 0 {
				min = 0 // corrupt stored interval, count nothing
			}
			productiveMin += min
		}
	}

	return &contract.WeeklyStats{
		CompletedTasks: completed,
		TotalTasks:     len(tasks),
		SkippedTasks:   len(tasks) - completed,
		TotalHours:     round1(productiveMin / 60),
		MaxHours:       statsMaxHours,
		RescueUsed:     rescueUsed,
		RescueMax:      statsRescueMax,

		// The focus/energy journal is not wired to a data source; these stay
		// zero rather than being inferred from other fields.
		AvgFocusQuality: 0,
		AvgEnergyLevel:  0,
	}, nil
}
