// Package audit implements the append-only audit log using PostgreSQL.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/serviceflow/kanban-backend/internal/adapter/postgres"
	"github.com/serviceflow/kanban-backend/internal/domain"
)

const table = "audit_logs"

type row struct {
	ID         uuid.UUID  `db:"id"`
	Action     string     `db:"action"`
	Entity     string     `db:"entity"`
	EntityID   uuid.UUID  `db:"entity_id"`
	UserID     uuid.UUID  `db:"user_id"`
	TaskID     *uuid.UUID `db:"task_id"`
	Changes    []byte     `db:"changes"`
	CreatedAt  time.Time  `db:"created_at"`
	ActorName  string     `db:"actor_name"`
	ActorEmail string     `db:"actor_email"`
	ActorRole  string     `db:"actor_role"`
}

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Log appends record. Inside RunInTx it joins the caller's transaction.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	var changes []byte
	if len(record.Changes) > 0 {
		var err error
		if changes, err = json.Marshal(record.Changes); err != nil {
			return fmt.Errorf("audit_record %s marshal changes: %w", record.ID, err)
		}
	}

	query := postgres.Builder().
		Insert(table).
		Columns("id", "action", "entity", "entity_id", "user_id", "task_id", "changes", "created_at").
		Values(
			record.ID, record.Action.String(), record.EntityType.String(), record.EntityID,
			record.UserID, record.TaskID, changes, record.CreatedAt,
		)

	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), query); err != nil {
		return postgres.MapError(err, "audit_record", record.ID)
	}
	return nil
}

// List returns audit entries with their actors, newest first.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.AuditEntry, error) {
	return r.list(ctx, r.selectEntries().Limit(uint64(limit)).Offset(uint64(offset)))
}

// ListByEntity returns the history of one entity, newest first.
func (r *Repo) ListByEntity(ctx context.Context, entity domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditEntry, error) {
	query := r.selectEntries().
		Where(sq.Eq{"a.entity": entity.String(), "a.entity_id": entityID}).
		Limit(uint64(limit))
	return r.list(ctx, query)
}

func (r *Repo) selectEntries() sq.SelectBuilder {
	return postgres.Builder().
		Select(
			"a.id", "a.action", "a.entity", "a.entity_id", "a.user_id", "a.task_id", "a.changes", "a.created_at",
			"u.name AS actor_name", "u.email AS actor_email", "u.role AS actor_role",
		).
		From(table + " a").
		Join("users u ON u.id = a.user_id").
		OrderBy("a.created_at DESC", "a.id DESC")
}

func (r *Repo) list(ctx context.Context, query sq.SelectBuilder) ([]domain.AuditEntry, error) {
	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query); err != nil {
		return nil, postgres.MapError(err, "audit_records", "list")
	}

	out := make([]domain.AuditEntry, len(rows))
	for i, rw := range rows {
		entry, err := rw.toDomain()
		if err != nil {
			return nil, err
		}
		out[i] = entry
	}
	return out, nil
}

func (rw row) toDomain() (domain.AuditEntry, error) {
	entry := domain.AuditEntry{
		AuditRecord: domain.AuditRecord{
			ID:         rw.ID,
			UserID:     rw.UserID,
			EntityType: domain.EntityType(rw.Entity),
			EntityID:   rw.EntityID,
			TaskID:     rw.TaskID,
			Action:     domain.AuditAction(rw.Action),
			CreatedAt:  rw.CreatedAt,
		},
		Actor: domain.UserSummary{
			ID:    rw.UserID,
			Name:  rw.ActorName,
			Email: rw.ActorEmail,
			Role:  domain.UserRole(rw.ActorRole),
		},
	}

	if len(rw.Changes) > 0 {
		if err := json.Unmarshal(rw.Changes, &entry.Changes); err != nil {
			return domain.AuditEntry{}, fmt.Errorf("audit_record %s unmarshal changes: %w", rw.ID, err)
		}
	}
	return entry, nil
}
