package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/amorasol/weekplan/internal/contract"
	"github.com/amorasol/weekplan/internal/domain"
	"github.com/amorasol/weekplan/internal/repository"
	"github.com/amorasol/weekplan/internal/scheduler"
)

const (
	workDaysPerWeek = 5

	// The Friday rescue slot is a fixed catch-up reservation, appended to
	// every plan whether or not any tasks were scheduled.
	rescueDayOffset = 4
	rescueStart     = "16:00"
	rescueEnd       = "18:00"
)

// PlannerConfig carries the placement preferences injected into the planner.
// Chronotype defaults to bear until a per-user preferences source exists.
type PlannerConfig struct {
	Chronotype string
	WorkStart  string
	WorkEnd    string
	BufferPct  int
}

// DefaultPlannerConfig returns the stock configuration: bear chronotype,
// 08:00-18:00 work day, 20% buffer.
func DefaultPlannerConfig() PlannerConfig {
	return PlannerConfig{
		Chronotype: string(domain.ChronoBear),
		WorkStart:  "08:00",
		WorkEnd:    "18:00",
		BufferPct:  scheduler.DefaultBufferPct,
	}
}

type planService struct {
	tasks  repository.TaskRepo
	blocks repository.TimeBlockRepo
	cfg    PlannerConfig
}

func NewPlanService(tasks repository.TaskRepo, blocks repository.TimeBlockRepo, cfg PlannerConfig) PlanService {
	return &planService{tasks: tasks, blocks: blocks, cfg: cfg}
}

func (s *planService) PlanWeek(ctx context.Context, req contract.PlanWeekRequest) (*contract.WeekPlan, error) {
	monday := scheduler.MondayOf(req.WeekStart)

	eligible, err := s.tasks.ListEligibleForWeek(ctx, req.UserID, monday)
	if err != nil {
		return nil, fmt.Errorf("loading eligible tasks: %w", err)
	}

	ordered := scheduler.OrderByDependencies(eligible)
	shares := scheduler.SplitAcrossDays(ordered, workDaysPerWeek)

	chronotype := req.Chronotype
	if chronotype == "" {
		chronotype = s.cfg.Chronotype
	}
	peaks := scheduler.PeakHours(chronotype)

	var blocks []domain.TimeBlock
	var taskMin, bufferMin int
	for i, dayTasks := range shares {
		if len(dayTasks) == 0 {
			continue
		}
		day := monday.AddDate(0, 0, i)
		dayBlocks, err := scheduler.PlanDay(scheduler.DayPlanRequest{
			Day:       day,
			WorkHours: scheduler.WorkHours{Start: s.cfg.WorkStart, End: s.cfg.WorkEnd},
			PeakHours: peaks,
			Tasks:     dayTasks,
			BufferPct: s.cfg.BufferPct,
		})
		if err != nil {
			return nil, fmt.Errorf("planning %s: %w", day.Format("2006-01-02"), err)
		}
		for _, b := range dayBlocks {
			b.UserID = req.UserID
			blocks = append(blocks, b)
			if b.BlockType == domain.BlockBuffer {
				bufferMin += b.DurationMin()
			} else {
				taskMin += b.DurationMin()
			}
		}
	}

	blocks = append(blocks, rescueBlock(req.UserID, monday))

	return &contract.WeekPlan{
		UserID:      req.UserID,
		WeekStart:   monday,
		TimeBlocks:  blocks,
		TotalHours:  round1(float64(taskMin) / 60),
		BufferHours: round1(float64(bufferMin) / 60),
		RescueSlots: 1,
	}, nil
}

func (s *planService) SaveWeek(ctx context.Context, plan *contract.WeekPlan) error {
	if err := s.blocks.CreateBatch(ctx, plan.TimeBlocks); err != nil {
		return fmt.Errorf("saving week plan: %w", err)
	}
	return nil
}

func rescueBlock(userID string, monday time.Time) domain.TimeBlock {
	friday := monday.AddDate(0, 0, rescueDayOffset)
	return domain.TimeBlock{
		UserID:    userID,
		Date:      friday,
		StartTime: clockOn(friday, rescueStart),
		EndTime:   clockOn(friday, rescueEnd),
		BlockType: domain.BlockRescue,
	}
}

// clockOn anchors an "HH:mm" clock time on the given day. The inputs are
// package constants, so a parse failure is a programming error.
func clockOn(day time.Time, hhmm string) time.Time {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		panic(fmt.Sprintf("bad clock constant %q: %v", hhmm, err))
	}
	return day.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
