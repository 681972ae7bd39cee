package service

import (
	"context"
	"time"

	"github.com/amorasol/weekplan/internal/contract"
	"github.com/amorasol/weekplan/internal/domain"
)

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, userID, id string) (*domain.Task, error)
	List(ctx context.Context, userID string, includeDeleted bool) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	MarkDone(ctx context.Context, userID, id string) error
	Archive(ctx context.Context, userID, id string) error
	Delete(ctx context.Context, userID, id string) error
}

type PlanService interface {
	// PlanWeek computes a week preview without persisting anything.
	PlanWeek(ctx context.Context, req contract.PlanWeekRequest) (*contract.WeekPlan, error)

	// SaveWeek persists a confirmed preview as an insert-only batch.
	SaveWeek(ctx context.Context, plan *contract.WeekPlan) error
}

type StatsService interface {
	WeeklyStats(ctx context.Context, userID string, weekStart time.Time) (*contract.WeeklyStats, error)
}
