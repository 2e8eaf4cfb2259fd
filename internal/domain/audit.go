package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditRecord logs a mutation event on a domain entity.
// TaskID links task-scoped records (tasks and their comments) and is
// cleared by the database when the task is deleted.
type AuditRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	EntityType EntityType
	EntityID   uuid.UUID
	TaskID     *uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}

// AuditEntry is an audit record joined with its actor for display.
type AuditEntry struct {
	AuditRecord
	Actor UserSummary
}
