package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultColumnColor is used when a column is created without a color.
const DefaultColumnColor = "#6B7280"

// Column is a workflow stage on the board.
type Column struct {
	ID        uuid.UUID
	Name      string
	Position  int
	Status    TaskStatus
	WIPLimit  *int
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
	TaskCount int // computed field, not stored in DB
}

// AtWIPLimit reports whether count tasks reach the advisory limit.
// Columns without a limit never do.
func (c *Column) AtWIPLimit(count int) bool {
	return c.WIPLimit != nil && count >= *c.WIPLimit
}

// Task is a unit of work placed in a column.
type Task struct {
	ID           uuid.UUID
	Title        string
	Description  *string
	Priority     TaskPriority
	Status       TaskStatus
	Position     int
	DueDate      *time.Time
	IsBlocked    bool
	BlockReason  *string
	AssignedToID *uuid.UUID
	CreatedByID  uuid.UUID
	ColumnID     uuid.UUID
	CompletedAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAssignedTo reports whether userID is the task's assignee.
func (t *Task) IsAssignedTo(userID uuid.UUID) bool {
	return t.AssignedToID != nil && *t.AssignedToID == userID
}

// IsOverdue reports whether the due date has passed and the task is not done.
func (t *Task) IsOverdue(now time.Time) bool {
	return t.DueDate != nil && t.DueDate.Before(now) && t.Status != TaskStatusDone
}

// TaskFilter narrows task listings. A nil AssignedToID lists every task.
type TaskFilter struct {
	AssignedToID *uuid.UUID
	ColumnID     *uuid.UUID
}

// TaskStats are the dashboard counters.
type TaskStats struct {
	Total      int
	InProgress int
	Overdue    int
	Completed  int
}

// Comment is an append-only note on a task.
type Comment struct {
	ID        uuid.UUID
	Content   string
	TaskID    uuid.UUID
	AuthorID  uuid.UUID
	CreatedAt time.Time
}
