package column

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/serviceflow/kanban-backend/internal/domain"
)

type columnRepo interface {
	List(ctx context.Context) ([]domain.Column, error)
	Create(ctx context.Context, c *domain.Column) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements board column operations.
type Service struct {
	log     *slog.Logger
	columns columnRepo
	audit   auditLogger
	tx      txManager
}

// NewService creates a new column service instance.
func NewService(logger *slog.Logger, columns columnRepo, audit auditLogger, tx txManager) *Service {
	return &Service{
		log:     logger.With("service", "column"),
		columns: columns,
		audit:   audit,
		tx:      tx,
	}
}

var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// CreateColumnInput holds parameters for creating a column.
type CreateColumnInput struct {
	Name     string
	Status   string
	WIPLimit *int
	Color    *string
}

// Validate validates the create column input.
func (i CreateColumnInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if !domain.TaskStatus(i.Status).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid status"})
	}

	if i.WIPLimit != nil && *i.WIPLimit < 1 {
		errs = append(errs, domain.FieldError{Field: "wipLimit", Message: "must be at least 1"})
	}

	if i.Color != nil && !colorPattern.MatchString(*i.Color) {
		errs = append(errs, domain.FieldError{Field: "color", Message: "must be a #RRGGBB hex color"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListColumns returns every column ordered by position with its task count.
func (s *Service) ListColumns(ctx context.Context) ([]domain.Column, error) {
	if _, err := domain.CallerFromCtx(ctx); err != nil {
		return nil, err
	}

	columns, err := s.columns.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("column.ListColumns: %w", err)
	}
	return columns, nil
}

// CreateColumn appends a column to the right end of the board (admin only).
func (s *Service) CreateColumn(ctx context.Context, input CreateColumnInput) (*domain.Column, error) {
	caller, err := domain.CallerFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if !domain.CanManageColumns(caller.Role) {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	col := &domain.Column{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(input.Name),
		Status:    domain.TaskStatus(input.Status),
		WIPLimit:  input.WIPLimit,
		Color:     domain.DefaultColumnColor,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if input.Color != nil {
		col.Color = strings.ToUpper(*input.Color)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.columns.Create(txCtx, col); err != nil {
			return fmt.Errorf("create column: %w", err)
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     caller.ID,
			EntityType: domain.EntityTypeColumn,
			EntityID:   col.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"name":     map[string]any{"new": col.Name},
				"status":   map[string]any{"new": col.Status},
				"wipLimit": map[string]any{"new": col.WIPLimit},
			},
		})
	})
	if err != nil {
		return nil, fmt.Errorf("column.CreateColumn: %w", err)
	}

	s.log.InfoContext(ctx, "column created",
		slog.String("column_id", col.ID.String()),
		slog.String("name", col.Name),
		slog.Int("position", col.Position))

	return col, nil
}
