package domain

import (
	"context"

	"github.com/google/uuid"

	"github.com/serviceflow/kanban-backend/pkg/ctxutil"
)

// Caller is the authenticated identity behind a request.
type Caller struct {
	ID   uuid.UUID
	Role UserRole
}

// CallerFromCtx reads the identity placed in the context by the auth
// middleware. It returns ErrUnauthorized when there is none.
func CallerFromCtx(ctx context.Context) (Caller, error) {
	id, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return Caller{}, ErrUnauthorized
	}
	return Caller{ID: id, Role: UserRole(ctxutil.UserRoleFromCtx(ctx))}, nil
}

// WithCaller stores c in the context.
func WithCaller(ctx context.Context, c Caller) context.Context {
	ctx = ctxutil.WithUserID(ctx, c.ID)
	return ctxutil.WithUserRole(ctx, c.Role.String())
}
