// Package column implements the board column repository using PostgreSQL.
package column

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/serviceflow/kanban-backend/internal/adapter/postgres"
	"github.com/serviceflow/kanban-backend/internal/domain"
)

const table = "board_columns"

var columns = []string{"id", "name", "position", "status", "wip_limit", "color", "created_at", "updated_at"}

const nextPosition = "(SELECT COALESCE(MAX(position), -1) + 1 FROM board_columns)"

type row struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Position  int       `db:"position"`
	Status    string    `db:"status"`
	WIPLimit  *int      `db:"wip_limit"`
	Color     string    `db:"color"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
	TaskCount int       `db:"task_count"`
}

// Repo provides column persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new column repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// List returns every column ordered by position with its current task count.
func (r *Repo) List(ctx context.Context) ([]domain.Column, error) {
	query := postgres.Builder().
		Select(columns...).
		Column("(SELECT COUNT(*) FROM tasks t WHERE t.column_id = board_columns.id) AS task_count").
		From(table).
		OrderBy("position ASC")

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query); err != nil {
		return nil, postgres.MapError(err, "columns", "list")
	}

	out := make([]domain.Column, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// GetByID returns a single column without its task count.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Column, error) {
	query := postgres.Builder().
		Select(columns...).
		Column("0 AS task_count").
		From(table).
		Where(sq.Eq{"id": id})

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query); err != nil {
		return nil, postgres.MapError(err, "column", id)
	}
	c := out.toDomain()
	return &c, nil
}

// Create inserts c after the last column and fills in its position.
func (r *Repo) Create(ctx context.Context, c *domain.Column) error {
	query := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(c.ID, c.Name, sq.Expr(nextPosition), c.Status.String(), c.WIPLimit, c.Color, c.CreatedAt, c.UpdatedAt).
		Suffix("RETURNING position")

	sql, args, err := query.ToSql()
	if err != nil {
		return postgres.MapError(err, "column", c.ID)
	}
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&c.Position); err != nil {
		return postgres.MapError(err, "column", c.ID)
	}
	return nil
}

func (rw row) toDomain() domain.Column {
	return domain.Column{
		ID:        rw.ID,
		Name:      rw.Name,
		Position:  rw.Position,
		Status:    domain.TaskStatus(rw.Status),
		WIPLimit:  rw.WIPLimit,
		Color:     rw.Color,
		CreatedAt: rw.CreatedAt,
		UpdatedAt: rw.UpdatedAt,
		TaskCount: rw.TaskCount,
	}
}
