package user

import (
	"context"
	"fmt"

	"github.com/serviceflow/kanban-backend/internal/domain"
)

// Directory returns every user's public summary ordered by name. Any
// authenticated caller may read it.
func (s *Service) Directory(ctx context.Context) ([]domain.UserSummary, error) {
	if _, err := domain.CallerFromCtx(ctx); err != nil {
		return nil, err
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("user.Directory: %w", err)
	}

	out := make([]domain.UserSummary, 0, len(users))
	for i := range users {
		out = append(out, users[i].Summary())
	}
	return out, nil
}
