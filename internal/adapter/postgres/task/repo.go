// Package task implements the Task repository using PostgreSQL.
package task

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/serviceflow/kanban-backend/internal/adapter/postgres"
	"github.com/serviceflow/kanban-backend/internal/domain"
)

const table = "tasks"

var columns = []string{
	"id", "title", "description", "priority", "status", "position", "due_date",
	"is_blocked", "block_reason", "assigned_to_id", "created_by_id", "column_id",
	"completed_at", "created_at", "updated_at",
}

type row struct {
	ID           uuid.UUID  `db:"id"`
	Title        string     `db:"title"`
	Description  *string    `db:"description"`
	Priority     string     `db:"priority"`
	Status       string     `db:"status"`
	Position     int        `db:"position"`
	DueDate      *time.Time `db:"due_date"`
	IsBlocked    bool       `db:"is_blocked"`
	BlockReason  *string    `db:"block_reason"`
	AssignedToID *uuid.UUID `db:"assigned_to_id"`
	CreatedByID  uuid.UUID  `db:"created_by_id"`
	ColumnID     uuid.UUID  `db:"column_id"`
	CompletedAt  *time.Time `db:"completed_at"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

type statsRow struct {
	Total      int `db:"total"`
	InProgress int `db:"in_progress"`
	Overdue    int `db:"overdue"`
	Completed  int `db:"completed"`
}

// Repo provides task persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new task repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts t at the end of its column and fills in its position.
// An unknown column or user yields domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, t *domain.Task) error {
	query := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			t.ID, t.Title, t.Description, t.Priority.String(), t.Status.String(),
			sq.Expr("(SELECT COALESCE(MAX(position), -1) + 1 FROM tasks WHERE column_id = ?)", t.ColumnID),
			t.DueDate, t.IsBlocked, t.BlockReason, t.AssignedToID, t.CreatedByID, t.ColumnID,
			t.CompletedAt, t.CreatedAt, t.UpdatedAt,
		).
		Suffix("RETURNING position")

	sql, args, err := query.ToSql()
	if err != nil {
		return postgres.MapError(err, "task", t.ID)
	}
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&t.Position); err != nil {
		return postgres.MapError(err, "task", t.ID)
	}
	return nil
}

// GetByID returns the task with the given id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	var out row
	query := postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"id": id})
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query); err != nil {
		return nil, postgres.MapError(err, "task", id)
	}
	t := out.toDomain()
	return &t, nil
}

// List returns the tasks matching filter ordered by position.
func (r *Repo) List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("position ASC", "created_at ASC")

	if filter.AssignedToID != nil {
		query = query.Where(sq.Eq{"assigned_to_id": *filter.AssignedToID})
	}
	if filter.ColumnID != nil {
		query = query.Where(sq.Eq{"column_id": *filter.ColumnID})
	}

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query); err != nil {
		return nil, postgres.MapError(err, "tasks", "list")
	}

	out := make([]domain.Task, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// Update applies patch to the task and returns the stored result. An empty
// patch only reads the task.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, patch domain.TaskPatch) (*domain.Task, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	query := postgres.Builder().Update(table)
	query = set(query, "title", patch.Title, identity[string])
	query = set(query, "description", patch.Description, identity[string])
	query = set(query, "priority", patch.Priority, text[domain.TaskPriority])
	query = set(query, "due_date", patch.DueDate, identity[time.Time])
	query = set(query, "assigned_to_id", patch.AssignedToID, identity[uuid.UUID])
	query = set(query, "column_id", patch.ColumnID, identity[uuid.UUID])
	query = set(query, "status", patch.Status, text[domain.TaskStatus])
	query = set(query, "is_blocked", patch.IsBlocked, identity[bool])
	query = set(query, "block_reason", patch.BlockReason, identity[string])
	query = set(query, "completed_at", patch.CompletedAt, identity[time.Time])
	query = query.
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query); err != nil {
		return nil, postgres.MapError(err, "task", id)
	}
	t := out.toDomain()
	return &t, nil
}

// Delete removes the task. Its comments go with it; audit rows keep the
// entity id but lose the task link.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query := postgres.Builder().Delete(table).Where(sq.Eq{"id": id})
	if err := postgres.ExecOne(ctx, postgres.QuerierFromCtx(ctx, r.db), query); err != nil {
		return postgres.MapError(err, "task", id)
	}
	return nil
}

// CountInColumn returns the number of tasks currently in the column.
func (r *Repo) CountInColumn(ctx context.Context, columnID uuid.UUID) (int, error) {
	query := postgres.Builder().Select("COUNT(*)").From(table).Where(sq.Eq{"column_id": columnID})

	var n int
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &n, query); err != nil {
		return 0, postgres.MapError(err, "column", columnID)
	}
	return n, nil
}

// Stats returns the dashboard counters, scoped to one assignee when
// assignedTo is set. A task is overdue when its due date is before now and
// it is not done.
func (r *Repo) Stats(ctx context.Context, assignedTo *uuid.UUID, now time.Time) (domain.TaskStats, error) {
	query := postgres.Builder().
		Select(
			"COUNT(*) AS total",
			"COUNT(*) FILTER (WHERE status = 'IN_PROGRESS') AS in_progress",
		).
		Column(sq.Expr("COUNT(*) FILTER (WHERE due_date < ? AND status <> 'DONE') AS overdue", now)).
		Column("COUNT(*) FILTER (WHERE status = 'DONE') AS completed").
		From(table)
	if assignedTo != nil {
		query = query.Where(sq.Eq{"assigned_to_id": *assignedTo})
	}

	var out statsRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query); err != nil {
		return domain.TaskStats{}, postgres.MapError(err, "tasks", "stats")
	}
	return domain.TaskStats(out), nil
}

func set[T any](b sq.UpdateBuilder, col string, o domain.Optional[T], conv func(T) any) sq.UpdateBuilder {
	if !o.Set {
		return b
	}
	if o.Null {
		return b.Set(col, nil)
	}
	return b.Set(col, conv(o.Value))
}

func identity[T any](v T) any { return v }

func text[T fmt.Stringer](v T) any { return v.String() }

func (rw row) toDomain() domain.Task {
	return domain.Task{
		ID:           rw.ID,
		Title:        rw.Title,
		Description:  rw.Description,
		Priority:     domain.TaskPriority(rw.Priority),
		Status:       domain.TaskStatus(rw.Status),
		Position:     rw.Position,
		DueDate:      rw.DueDate,
		IsBlocked:    rw.IsBlocked,
		BlockReason:  rw.BlockReason,
		AssignedToID: rw.AssignedToID,
		CreatedByID:  rw.CreatedByID,
		ColumnID:     rw.ColumnID,
		CompletedAt:  rw.CompletedAt,
		CreatedAt:    rw.CreatedAt,
		UpdatedAt:    rw.UpdatedAt,
	}
}
