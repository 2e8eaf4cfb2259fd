package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/serviceflow/kanban-backend/internal/domain"
)

// DeleteTask removes a task and its comments. Earlier audit records of the
// task are kept.
func (s *Service) DeleteTask(ctx context.Context, id uuid.UUID) error {
	caller, err := domain.CallerFromCtx(ctx)
	if err != nil {
		return err
	}
	if !domain.CanDeleteTask(caller.Role) {
		return domain.ErrForbidden
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		t, err := s.tasks.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		if err := s.tasks.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete task: %w", err)
		}

		// The task row is gone, so the record cannot reference it.
		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     caller.ID,
			EntityType: domain.EntityTypeTask,
			EntityID:   id,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"title":    map[string]any{"old": t.Title},
				"columnId": map[string]any{"old": t.ColumnID},
			},
		})
	})
	if err != nil {
		return fmt.Errorf("task.DeleteTask: %w", err)
	}

	s.log.InfoContext(ctx, "task deleted",
		slog.String("task_id", id.String()),
		slog.String("user_id", caller.ID.String()))
	return nil
}
