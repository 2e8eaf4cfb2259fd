package task

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/serviceflow/kanban-backend/internal/domain"
)

// UpdateTask applies a partial update. Admins and managers may change any
// field; workers may only move, block or unblock tasks assigned to them and
// anything else they send is ignored. Moving a task sets its status from the
// target column and keeps its position. An update that changes nothing
// writes nothing.
func (s *Service) UpdateTask(ctx context.Context, id uuid.UUID, input TaskUpdateInput) (*TaskView, error) {
	caller, err := domain.CallerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	current, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("task.UpdateTask: %w", err)
	}

	if !domain.CanEditTask(caller.Role, current.IsAssignedTo(caller.ID)) {
		return nil, domain.ErrForbidden
	}

	var upd taskUpdate = input
	if caller.Role == domain.UserRoleWorker {
		upd = input.ForWorker()
	}

	if err := upd.Validate(); err != nil {
		return nil, err
	}

	patch := upd.patch()

	var target *domain.Column
	if col := upd.targetColumn(); col.Set {
		target, err = s.resolveColumn(ctx, col.Value)
		if err != nil {
			return nil, fmt.Errorf("task.UpdateTask resolve column: %w", err)
		}
		patch.MoveTo(target, current, time.Now())
	}

	patch, changes := patch.Diff(current)
	if patch.IsEmpty() {
		return s.viewIn(ctx, current, target)
	}

	var updated *domain.Task
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = s.tasks.Update(txCtx, id, patch)
		if err != nil {
			return fmt.Errorf("update task: %w", err)
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     caller.ID,
			EntityType: domain.EntityTypeTask,
			EntityID:   id,
			TaskID:     &id,
			Action:     domain.AuditActionUpdate,
			Changes:    changes,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("task.UpdateTask: %w", err)
	}

	s.log.InfoContext(ctx, "task updated",
		slog.String("task_id", id.String()),
		slog.String("user_id", caller.ID.String()),
		slog.Int("fields", len(changes)))

	if patch.ColumnID.Set {
		s.warnIfAtLimit(ctx, target)
	}

	return s.viewIn(ctx, updated, target)
}

// MoveTask moves a task to another column. It follows the same rules as an
// update that carries only a column id.
func (s *Service) MoveTask(ctx context.Context, id uuid.UUID, columnID string) (*TaskView, error) {
	return s.UpdateTask(ctx, id, TaskUpdateInput{ColumnID: domain.Some(columnID)})
}

// viewIn builds the view, reusing col when it is the task's column.
func (s *Service) viewIn(ctx context.Context, t *domain.Task, col *domain.Column) (*TaskView, error) {
	if col != nil && col.ID == t.ColumnID {
		return &TaskView{Task: *t, Column: col}, nil
	}
	view, err := s.view(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("task.UpdateTask: %w", err)
	}
	return view, nil
}
