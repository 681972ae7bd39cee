package repository

import (
	"context"
	"time"

	"github.com/amorasol/weekplan/internal/domain"
)

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, userID, id string) (*domain.Task, error)
	List(ctx context.Context, userID string, includeDeleted bool) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	MarkDone(ctx context.Context, userID, id string) error
	Archive(ctx context.Context, userID, id string) error
	SoftDelete(ctx context.Context, userID, id string) error

	// ListEligibleForWeek returns the tasks eligible for planning the week
	// starting at weekStart (a Monday): sacred or important, status and
	// kanban column both todo, not soft-deleted or archived, and without a
	// time block dated inside that week. Ordered priority desc, difficulty
	// desc, deadline asc with nulls last.
	ListEligibleForWeek(ctx context.Context, userID string, weekStart time.Time) ([]domain.Task, error)

	// ListBlockedInWeek returns tasks owning at least one time block dated
	// inside the week, not soft-deleted or archived. Read side for stats.
	ListBlockedInWeek(ctx context.Context, userID string, weekStart time.Time) ([]domain.Task, error)
}

type TimeBlockRepo interface {
	// CreateBatch persists a planned week in one transaction, assigning ids
	// and creation timestamps. Insert-only: saving a plan never updates the
	// source tasks' status or column.
	CreateBatch(ctx context.Context, blocks []domain.TimeBlock) error
	ListForWeek(ctx context.Context, userID string, weekStart time.Time) ([]domain.TimeBlock, error)
	DeleteForWeek(ctx context.Context, userID string, weekStart time.Time) error
}
