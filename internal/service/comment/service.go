package comment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/serviceflow/kanban-backend/internal/config"
	"github.com/serviceflow/kanban-backend/internal/domain"
)

type taskRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
}

type commentRepo interface {
	Create(ctx context.Context, c *domain.Comment) error
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]domain.Comment, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements task comments. Comments are append-only.
type Service struct {
	log      *slog.Logger
	tasks    taskRepo
	comments commentRepo
	audit    auditLogger
	tx       txManager
	cfg      config.BoardConfig
}

// NewService creates a new comment service instance.
func NewService(
	logger *slog.Logger,
	tasks taskRepo,
	comments commentRepo,
	audit auditLogger,
	tx txManager,
	cfg config.BoardConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "comment"),
		tasks:    tasks,
		comments: comments,
		audit:    audit,
		tx:       tx,
		cfg:      cfg,
	}
}

// AddComment appends a comment to a task the caller can see.
func (s *Service) AddComment(ctx context.Context, taskID uuid.UUID, content string) (*domain.Comment, error) {
	caller, err := s.authorize(ctx, taskID)
	if err != nil {
		return nil, err
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.NewValidationError("content", "required")
	}
	if utf8.RuneCountInString(content) > s.cfg.MaxCommentLength {
		return nil, domain.NewValidationError("content", fmt.Sprintf("must be at most %d characters", s.cfg.MaxCommentLength))
	}

	c := &domain.Comment{
		ID:        uuid.New(),
		Content:   content,
		TaskID:    taskID,
		AuthorID:  caller.ID,
		CreatedAt: time.Now(),
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.comments.Create(txCtx, c); err != nil {
			return fmt.Errorf("create comment: %w", err)
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     caller.ID,
			EntityType: domain.EntityTypeComment,
			EntityID:   c.ID,
			TaskID:     &taskID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"content": map[string]any{"new": c.Content},
			},
		})
	})
	if err != nil {
		return nil, fmt.Errorf("comment.AddComment: %w", err)
	}

	s.log.InfoContext(ctx, "comment added",
		slog.String("task_id", taskID.String()),
		slog.String("user_id", caller.ID.String()))

	return c, nil
}

// ListComments returns a task's comments, newest first.
func (s *Service) ListComments(ctx context.Context, taskID uuid.UUID) ([]domain.Comment, error) {
	if _, err := s.authorize(ctx, taskID); err != nil {
		return nil, err
	}

	comments, err := s.comments.ListByTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("comment.ListComments: %w", err)
	}
	return comments, nil
}

func (s *Service) authorize(ctx context.Context, taskID uuid.UUID) (domain.Caller, error) {
	caller, err := domain.CallerFromCtx(ctx)
	if err != nil {
		return domain.Caller{}, err
	}

	t, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return domain.Caller{}, fmt.Errorf("comment: get task: %w", err)
	}

	if !domain.CanViewTask(caller.Role, t.IsAssignedTo(caller.ID)) {
		return domain.Caller{}, domain.ErrForbidden
	}
	return caller, nil
}
