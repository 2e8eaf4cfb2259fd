package task

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/serviceflow/kanban-backend/internal/domain"
)

// GetTask returns a task with its column and comments, newest comment first.
// Workers may only open tasks assigned to them.
func (s *Service) GetTask(ctx context.Context, id uuid.UUID) (*TaskView, error) {
	caller, err := domain.CallerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("task.GetTask: %w", err)
	}

	if !domain.CanViewTask(caller.Role, t.IsAssignedTo(caller.ID)) {
		return nil, domain.ErrForbidden
	}

	view, err := s.view(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("task.GetTask: %w", err)
	}

	view.Comments, err = s.comments.ListByTask(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("task.GetTask list comments: %w", err)
	}
	return view, nil
}

// ListTasks returns the tasks visible to the caller ordered by position,
// optionally narrowed to one column.
func (s *Service) ListTasks(ctx context.Context, columnID *uuid.UUID) ([]domain.Task, error) {
	caller, err := domain.CallerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	filter := domain.TaskFilter{ColumnID: columnID}
	if !domain.CanViewAllTasks(caller.Role) {
		filter.AssignedToID = &caller.ID
	}

	tasks, err := s.tasks.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("task.ListTasks: %w", err)
	}
	return tasks, nil
}

func (s *Service) view(ctx context.Context, t *domain.Task) (*TaskView, error) {
	col, err := s.columns.GetByID(ctx, t.ColumnID)
	if err != nil {
		return nil, fmt.Errorf("get column: %w", err)
	}
	return &TaskView{Task: *t, Column: col}, nil
}
