package domain

import (
	"time"

	"github.com/google/uuid"
)

// TaskPatch is the only shape the task repository accepts for partial
// updates. Absent fields are left untouched, null fields are cleared.
type TaskPatch struct {
	Title        Optional[string]
	Description  Optional[string]
	Priority     Optional[TaskPriority]
	DueDate      Optional[time.Time]
	AssignedToID Optional[uuid.UUID]
	ColumnID     Optional[uuid.UUID]
	Status       Optional[TaskStatus]
	IsBlocked    Optional[bool]
	BlockReason  Optional[string]
	CompletedAt  Optional[time.Time]
}

// IsEmpty reports whether the patch would change nothing.
func (p TaskPatch) IsEmpty() bool {
	return !p.Title.Set && !p.Description.Set && !p.Priority.Set &&
		!p.DueDate.Set && !p.AssignedToID.Set && !p.ColumnID.Set &&
		!p.Status.Set && !p.IsBlocked.Set && !p.BlockReason.Set &&
		!p.CompletedAt.Set
}

// MoveTo points the patch at col. Column and status always change together;
// the position is kept.
func (p *TaskPatch) MoveTo(col *Column, current *Task, now time.Time) {
	p.ColumnID = Some(col.ID)
	p.Status = Some(col.Status)

	switch {
	case col.Status == TaskStatusDone && current.Status != TaskStatusDone:
		p.CompletedAt = Some(now)
	case col.Status != TaskStatusDone && current.CompletedAt != nil:
		p.CompletedAt = Null[time.Time]()
	}
}

// Diff drops every field that already matches t and returns the reduced
// patch together with an old/new map suitable for the audit log.
func (p TaskPatch) Diff(t *Task) (TaskPatch, map[string]any) {
	changes := make(map[string]any)
	out := TaskPatch{
		Title:        diffValue(changes, "title", p.Title, &t.Title),
		Description:  diffValue(changes, "description", p.Description, t.Description),
		Priority:     diffValue(changes, "priority", p.Priority, &t.Priority),
		DueDate:      diffTime(changes, "dueDate", p.DueDate, t.DueDate),
		AssignedToID: diffValue(changes, "assignedToId", p.AssignedToID, t.AssignedToID),
		ColumnID:     diffValue(changes, "columnId", p.ColumnID, &t.ColumnID),
		Status:       diffValue(changes, "status", p.Status, &t.Status),
		IsBlocked:    diffValue(changes, "isBlocked", p.IsBlocked, &t.IsBlocked),
		BlockReason:  diffValue(changes, "blockReason", p.BlockReason, t.BlockReason),
		CompletedAt:  diffTime(changes, "completedAt", p.CompletedAt, t.CompletedAt),
	}
	return out, changes
}

// Apply returns a copy of t with the patch applied.
func (p TaskPatch) Apply(t Task) Task {
	if p.Title.Set && !p.Title.Null {
		t.Title = p.Title.Value
	}
	if p.Description.Set {
		t.Description = p.Description.Ptr()
	}
	if p.Priority.Set && !p.Priority.Null {
		t.Priority = p.Priority.Value
	}
	if p.DueDate.Set {
		t.DueDate = p.DueDate.Ptr()
	}
	if p.AssignedToID.Set {
		t.AssignedToID = p.AssignedToID.Ptr()
	}
	if p.ColumnID.Set && !p.ColumnID.Null {
		t.ColumnID = p.ColumnID.Value
	}
	if p.Status.Set && !p.Status.Null {
		t.Status = p.Status.Value
	}
	if p.IsBlocked.Set && !p.IsBlocked.Null {
		t.IsBlocked = p.IsBlocked.Value
	}
	if p.BlockReason.Set {
		t.BlockReason = p.BlockReason.Ptr()
	}
	if p.CompletedAt.Set {
		t.CompletedAt = p.CompletedAt.Ptr()
	}
	return t
}

func diffValue[T comparable](changes map[string]any, key string, o Optional[T], current *T) Optional[T] {
	if !o.Set {
		return o
	}
	next := o.Ptr()
	if (next == nil && current == nil) || (next != nil && current != nil && *next == *current) {
		return Optional[T]{}
	}
	changes[key] = map[string]any{"old": current, "new": next}
	return o
}

func diffTime(changes map[string]any, key string, o Optional[time.Time], current *time.Time) Optional[time.Time] {
	if !o.Set {
		return o
	}
	next := o.Ptr()
	if (next == nil && current == nil) || (next != nil && current != nil && next.Equal(*current)) {
		return Optional[time.Time]{}
	}
	changes[key] = map[string]any{"old": current, "new": next}
	return o
}
