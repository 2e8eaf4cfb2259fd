package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/serviceflow/kanban-backend/internal/config"
	"github.com/serviceflow/kanban-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	ListWithStats(ctx context.Context) ([]domain.UserWithStats, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error)
}

// auditRepo defines the audit repository interface needed by user service.
type auditRepo interface {
	Log(ctx context.Context, record domain.AuditRecord) error
	List(ctx context.Context, limit, offset int) ([]domain.AuditEntry, error)
}

// passwordHasher hashes new users' passwords.
type passwordHasher interface {
	Hash(password string) (string, error)
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements user administration and the user directory.
type Service struct {
	log       *slog.Logger
	users     userRepo
	audit     auditRepo
	passwords passwordHasher
	tx        txManager
	cfg       config.BoardConfig
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	audit auditRepo,
	passwords passwordHasher,
	tx txManager,
	cfg config.BoardConfig,
) *Service {
	return &Service{
		log:       logger.With("service", "user"),
		users:     users,
		audit:     audit,
		passwords: passwords,
		tx:        tx,
		cfg:       cfg,
	}
}

// requireAdmin returns the caller if they may administer users.
func requireAdmin(ctx context.Context) (domain.Caller, error) {
	caller, err := domain.CallerFromCtx(ctx)
	if err != nil {
		return domain.Caller{}, err
	}
	if !domain.CanManageUsers(caller.Role) {
		return domain.Caller{}, domain.ErrForbidden
	}
	return caller, nil
}
