package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amorasol/weekplan/internal/domain"
	"github.com/amorasol/weekplan/internal/repository"
	"github.com/google/uuid"
)

type taskService struct {
	tasks repository.TaskRepo
}

func NewTaskService(tasks repository.TaskRepo) TaskService {
	return &taskService{tasks: tasks}
}

func (s *taskService) Create(ctx context.Context, t *domain.Task) error {
	if t.Title == "" {
		return errors.New("task title is required")
	}
	if t.Difficulty < 1 || t.Difficulty > 5 {
		return fmt.Errorf("difficulty must be 1-5, got %d", t.Difficulty)
	}
	if t.EstimatedMin <= 0 {
		return fmt.Errorf("estimated duration must be positive, got %d", t.EstimatedMin)
	}
	if !domain.ValidPriorities[string(t.Priority)] {
		return fmt.Errorf("unknown priority %q", t.Priority)
	}

	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Status == "" {
		t.Status = domain.TaskTodo
	}
	if t.KanbanColumn == "" {
		t.KanbanColumn = domain.ColumnTodo
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	return s.tasks.Create(ctx, t)
}

func (s *taskService) GetByID(ctx context.Context, userID, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, userID, id)
}

func (s *taskService) List(ctx context.Context, userID string, includeDeleted bool) ([]*domain.Task, error) {
	return s.tasks.List(ctx, userID, includeDeleted)
}

func (s *taskService) Update(ctx context.Context, t *domain.Task) error {
	return s.tasks.Update(ctx, t)
}

func (s *taskService) MarkDone(ctx context.Context, userID, id string) error {
	return s.tasks.MarkDone(ctx, userID, id)
}

func (s *taskService) Archive(ctx context.Context, userID, id string) error {
	return s.tasks.Archive(ctx, userID, id)
}

func (s *taskService) Delete(ctx context.Context, userID, id string) error {
	return s.tasks.SoftDelete(ctx, userID, id)
}
