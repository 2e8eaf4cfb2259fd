package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/serviceflow/kanban-backend/internal/domain"
)

// Me returns the authenticated user. A token whose user no longer exists is
// treated as unauthorized.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	caller, err := domain.CallerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Me: %w", err)
	}
	return user, nil
}
