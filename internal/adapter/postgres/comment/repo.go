// Package comment implements the Comment repository using PostgreSQL.
// Comments are append-only.
package comment

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/serviceflow/kanban-backend/internal/adapter/postgres"
	"github.com/serviceflow/kanban-backend/internal/domain"
)

const table = "comments"

var columns = []string{"id", "content", "task_id", "author_id", "created_at"}

type row struct {
	ID        uuid.UUID `db:"id"`
	Content   string    `db:"content"`
	TaskID    uuid.UUID `db:"task_id"`
	AuthorID  uuid.UUID `db:"author_id"`
	CreatedAt time.Time `db:"created_at"`
}

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new comment repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts c. An unknown task or author yields domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, c *domain.Comment) error {
	query := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(c.ID, c.Content, c.TaskID, c.AuthorID, c.CreatedAt)

	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), query); err != nil {
		return postgres.MapError(err, "comment", c.ID)
	}
	return nil
}

// ListByTask returns the task's comments, newest first.
func (r *Repo) ListByTask(ctx context.Context, taskID uuid.UUID) ([]domain.Comment, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"task_id": taskID}).
		OrderBy("created_at DESC")

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query); err != nil {
		return nil, postgres.MapError(err, "task comments", taskID)
	}

	out := make([]domain.Comment, len(rows))
	for i, rw := range rows {
		out[i] = domain.Comment(rw)
	}
	return out, nil
}
