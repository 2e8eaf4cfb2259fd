// Package token implements the RefreshToken repository using PostgreSQL.
package token

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/serviceflow/kanban-backend/internal/adapter/postgres"
	"github.com/serviceflow/kanban-backend/internal/domain"
)

const table = "refresh_tokens"

var columns = []string{"id", "user_id", "token_hash", "expires_at", "created_at", "revoked_at"}

type row struct {
	ID        uuid.UUID  `db:"id"`
	UserID    uuid.UUID  `db:"user_id"`
	TokenHash string     `db:"token_hash"`
	ExpiresAt time.Time  `db:"expires_at"`
	CreatedAt time.Time  `db:"created_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}

// Repo provides refresh-token persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new token repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a new refresh token.
func (r *Repo) Create(ctx context.Context, t *domain.RefreshToken) error {
	query := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(t.ID, t.UserID, t.TokenHash, t.ExpiresAt, t.CreatedAt, t.RevokedAt)

	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), query); err != nil {
		return postgres.MapError(err, "refresh_token", t.ID)
	}
	return nil
}

// GetByHash returns an active (non-revoked, non-expired) refresh token.
// Revoked or expired tokens yield domain.ErrNotFound.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"token_hash": tokenHash, "revoked_at": nil}).
		Where("expires_at > now()")

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query); err != nil {
		return nil, postgres.MapError(err, "refresh_token", "by hash")
	}
	t := domain.RefreshToken(out)
	return &t, nil
}

// RevokeByID revokes a specific refresh token. Revoking twice is not an error.
func (r *Repo) RevokeByID(ctx context.Context, id uuid.UUID) error {
	query := postgres.Builder().
		Update(table).
		Set("revoked_at", sq.Expr("COALESCE(revoked_at, now())")).
		Where(sq.Eq{"id": id})

	_, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	return postgres.MapError(err, "refresh_token", id)
}

// RevokeAllByUser revokes every active refresh token of the user.
func (r *Repo) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	query := postgres.Builder().
		Update(table).
		Set("revoked_at", sq.Expr("now()")).
		Where(sq.Eq{"user_id": userID, "revoked_at": nil})

	_, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	return postgres.MapError(err, "refresh_tokens of user", userID)
}

// DeleteExpired removes expired or revoked tokens and returns how many went.
func (r *Repo) DeleteExpired(ctx context.Context) (int, error) {
	query := postgres.Builder().
		Delete(table).
		Where(sq.Or{sq.Expr("expires_at <= now()"), sq.NotEq{"revoked_at": nil}})

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return 0, postgres.MapError(err, "refresh_tokens", "expired")
	}
	return int(n), nil
}
