// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/serviceflow/kanban-backend/internal/adapter/postgres"
	"github.com/serviceflow/kanban-backend/internal/domain"
)

const table = "users"

var columns = []string{"id", "email", "name", "password_hash", "role", "created_at", "updated_at"}

type row struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type statsRow struct {
	row
	AssignedTaskCount int `db:"assigned_task_count"`
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts u. A taken email yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(u.ID, u.Email, u.Name, u.PasswordHash, u.Role.String(), u.CreatedAt, u.UpdatedAt)

	if _, err := postgres.Exec(ctx, q, query); err != nil {
		return postgres.MapError(err, "user", u.Email)
	}
	return nil
}

// GetByID returns the user with the given id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var out row
	query := postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"id": id})
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	u := out.toDomain()
	return &u, nil
}

// GetByEmail returns the user with the given email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var out row
	query := postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"email": email})
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query); err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	u := out.toDomain()
	return &u, nil
}

// GetByIDs returns the users matching ids in no particular order. Unknown ids
// are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}
	return r.list(ctx, postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"id": ids}))
}

// List returns every user ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.User, error) {
	return r.list(ctx, postgres.Builder().Select(columns...).From(table).OrderBy("name ASC"))
}

// ListWithStats returns every user with the number of tasks assigned to them,
// oldest account first.
func (r *Repo) ListWithStats(ctx context.Context) ([]domain.UserWithStats, error) {
	query := postgres.Builder().
		Select(prefixed("u")...).
		Column("COUNT(t.id) AS assigned_task_count").
		From(table + " u").
		LeftJoin("tasks t ON t.assigned_to_id = u.id").
		GroupBy("u.id").
		OrderBy("u.created_at ASC")

	var rows []statsRow
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query); err != nil {
		return nil, postgres.MapError(err, "users", "stats")
	}

	out := make([]domain.UserWithStats, len(rows))
	for i, rw := range rows {
		out[i] = domain.UserWithStats{User: rw.toDomain(), AssignedTaskCount: rw.AssignedTaskCount}
	}
	return out, nil
}

// UpdateRole changes the user's role and returns the updated row.
func (r *Repo) UpdateRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error) {
	query := postgres.Builder().
		Update(table).
		Set("role", role.String()).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	u := out.toDomain()
	return &u, nil
}

// UpdateRoleByEmail changes the role of the user with the given email.
func (r *Repo) UpdateRoleByEmail(ctx context.Context, email string, role domain.UserRole) (*domain.User, error) {
	query := postgres.Builder().
		Update(table).
		Set("role", role.String()).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"email": email}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query); err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	u := out.toDomain()
	return &u, nil
}

func (r *Repo) list(ctx context.Context, query sq.SelectBuilder) ([]domain.User, error) {
	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query); err != nil {
		return nil, postgres.MapError(err, "users", "list")
	}
	out := make([]domain.User, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

func (rw row) toDomain() domain.User {
	return domain.User{
		ID:           rw.ID,
		Email:        rw.Email,
		Name:         rw.Name,
		PasswordHash: rw.PasswordHash,
		Role:         domain.UserRole(rw.Role),
		CreatedAt:    rw.CreatedAt,
		UpdatedAt:    rw.UpdatedAt,
	}
}

func prefixed(alias string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}
