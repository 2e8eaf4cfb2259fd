package task

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/serviceflow/kanban-backend/internal/config"
	"github.com/serviceflow/kanban-backend/internal/domain"
)

type taskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.TaskPatch) (*domain.Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CountInColumn(ctx context.Context, columnID uuid.UUID) (int, error)
}

type columnRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Column, error)
}

type commentRepo interface {
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]domain.Comment, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements task operations for the board.
type Service struct {
	log      *slog.Logger
	tasks    taskRepo
	columns  columnRepo
	comments commentRepo
	audit    auditLogger
	tx       txManager
	cfg      config.BoardConfig
}

// NewService creates a new task service instance.
func NewService(
	logger *slog.Logger,
	tasks taskRepo,
	columns columnRepo,
	comments commentRepo,
	audit auditLogger,
	tx txManager,
	cfg config.BoardConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "task"),
		tasks:    tasks,
		columns:  columns,
		comments: comments,
		audit:    audit,
		tx:       tx,
		cfg:      cfg,
	}
}

// resolveColumn loads the column named by a client-supplied id. Malformed
// ids are reported the same way as unknown ones.
func (s *Service) resolveColumn(ctx context.Context, raw string) (*domain.Column, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return s.columns.GetByID(ctx, id)
}

// warnIfAtLimit logs when col holds as many tasks as its WIP limit allows.
// The limit is advisory and never blocks a write.
func (s *Service) warnIfAtLimit(ctx context.Context, col *domain.Column) {
	if s.cfg.DisableWIPWarning || col.WIPLimit == nil {
		return
	}

	count, err := s.tasks.CountInColumn(ctx, col.ID)
	if err != nil {
		s.log.ErrorContext(ctx, "count tasks in column", slog.String("column_id", col.ID.String()), slog.String("error", err.Error()))
		return
	}

	if col.AtWIPLimit(count) {
		s.log.WarnContext(ctx, "column at wip limit",
			slog.String("column_id", col.ID.String()),
			slog.String("column", col.Name),
			slog.Int("count", count),
			slog.Int("wip_limit", *col.WIPLimit))
	}
}
