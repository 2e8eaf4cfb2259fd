package task

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/serviceflow/kanban-backend/internal/domain"
)

// CreateTask appends a new task to the bottom of a column. The task takes
// the column's status.
func (s *Service) CreateTask(ctx context.Context, input CreateTaskInput) (*TaskView, error) {
	caller, err := domain.CallerFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if !domain.CanCreateTask(caller.Role) {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	col, err := s.resolveColumn(ctx, input.ColumnID)
	if err != nil {
		return nil, fmt.Errorf("task.CreateTask resolve column: %w", err)
	}

	now := time.Now()
	t := &domain.Task{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Priority:    input.priority(),
		Status:      col.Status,
		IsBlocked:   false,
		CreatedByID: caller.ID,
		ColumnID:    col.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.DueDate != nil {
		due, _ := parseDueDate(*input.DueDate)
		t.DueDate = &due
	}
	if input.AssignedToID != nil {
		assignee := uuid.MustParse(*input.AssignedToID)
		t.AssignedToID = &assignee
	}
	if col.Status == domain.TaskStatusDone {
		t.CompletedAt = &now
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.tasks.Create(txCtx, t); err != nil {
			return fmt.Errorf("create task: %w", err)
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     caller.ID,
			EntityType: domain.EntityTypeTask,
			EntityID:   t.ID,
			TaskID:     &t.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"title":    map[string]any{"new": t.Title},
				"columnId": map[string]any{"new": t.ColumnID},
				"priority": map[string]any{"new": t.Priority},
			},
		})
	})
	if err != nil {
		return nil, fmt.Errorf("task.CreateTask: %w", err)
	}

	s.log.InfoContext(ctx, "task created",
		slog.String("task_id", t.ID.String()),
		slog.String("column_id", col.ID.String()),
		slog.String("user_id", caller.ID.String()))

	s.warnIfAtLimit(ctx, col)

	return &TaskView{Task: *t, Column: col}, nil
}
