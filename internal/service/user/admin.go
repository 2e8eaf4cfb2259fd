package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/serviceflow/kanban-backend/internal/domain"
)

// ListUsers returns all users with their assigned task counts (admin only).
func (s *Service) ListUsers(ctx context.Context) ([]domain.UserWithStats, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	users, err := s.users.ListWithStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("user.ListUsers: %w", err)
	}
	return users, nil
}

// CreateUser registers a new user with a hashed password (admin only).
func (s *Service) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	caller, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.passwords.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("user.CreateUser hash password: %w", err)
	}

	now := time.Now()
	u := &domain.User{
		ID:           uuid.New(),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		Name:         strings.TrimSpace(input.Name),
		PasswordHash: hash,
		Role:         domain.UserRole(input.Role),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.users.Create(txCtx, u); err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     caller.ID,
			EntityType: domain.EntityTypeUser,
			EntityID:   u.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"email": map[string]any{"new": u.Email},
				"role":  map[string]any{"new": u.Role},
			},
		})
	})
	if err != nil {
		return nil, fmt.Errorf("user.CreateUser: %w", err)
	}

	s.log.InfoContext(ctx, "user created",
		slog.String("user_id", u.ID.String()),
		slog.String("role", u.Role.String()))

	return u, nil
}

// SetUserRole changes the role of a user (admin only). Admins cannot demote
// themselves.
func (s *Service) SetUserRole(ctx context.Context, targetUserID uuid.UUID, role domain.UserRole) (*domain.User, error) {
	caller, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	if !role.IsValid() {
		return nil, domain.NewValidationError("role", "must be one of ADMIN, MANAGER, WORKER")
	}

	if caller.ID == targetUserID && role != domain.UserRoleAdmin {
		return nil, domain.NewValidationError("role", "cannot demote yourself")
	}

	var user *domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		before, err := s.users.GetByID(txCtx, targetUserID)
		if err != nil {
			return err
		}

		if before.Role == role {
			user = before
			return nil
		}

		user, err = s.users.UpdateRole(txCtx, targetUserID, role)
		if err != nil {
			return fmt.Errorf("update role: %w", err)
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     caller.ID,
			EntityType: domain.EntityTypeUser,
			EntityID:   targetUserID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"role": map[string]any{"old": before.Role, "new": role},
			},
		})
	})
	if err != nil {
		return nil, fmt.Errorf("user.SetUserRole: %w", err)
	}

	s.log.InfoContext(ctx, "user role updated",
		slog.String("target_user_id", targetUserID.String()),
		slog.String("new_role", role.String()),
	)

	return user, nil
}

// ListAuditLog returns audit entries newest first (admin only). A
// non-positive limit falls back to the configured page size.
func (s *Service) ListAuditLog(ctx context.Context, limit, offset int) ([]domain.AuditEntry, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = s.cfg.AuditPageSize
	}
	if limit > 200 {
		limit = 200
	}
	if offset < 0 {
		offset = 0
	}

	entries, err := s.audit.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("user.ListAuditLog: %w", err)
	}
	return entries, nil
}
