package task

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/serviceflow/kanban-backend/internal/domain"
)

const (
	maxTitleLength       = 255
	maxDescriptionLength = 10000
	maxBlockReasonLength = 1000

	mustBeString = "must be a string"
)

// CreateTaskInput holds parameters for creating a task.
type CreateTaskInput struct {
	Title        string
	Description  *string
	Priority     string
	DueDate      *string
	AssignedToID *string
	ColumnID     string
}

// Validate validates the create task input. Priority defaults to MEDIUM.
func (i CreateTaskInput) Validate() error {
	var errs []domain.FieldError

	errs = checkTitle(errs, i.Title)

	if i.Description != nil && len(*i.Description) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}

	if i.Priority != "" && !domain.TaskPriority(i.Priority).IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "must be one of LOW, MEDIUM, HIGH, URGENT"})
	}

	if i.DueDate != nil {
		if _, err := parseDueDate(*i.DueDate); err != nil {
			errs = append(errs, domain.FieldError{Field: "dueDate", Message: "invalid date"})
		}
	}

	if i.AssignedToID != nil {
		if _, err := uuid.Parse(*i.AssignedToID); err != nil {
			errs = append(errs, domain.FieldError{Field: "assignedToId", Message: "invalid id"})
		}
	}

	if i.ColumnID == "" {
		errs = append(errs, domain.FieldError{Field: "columnId", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i CreateTaskInput) priority() domain.TaskPriority {
	if i.Priority == "" {
		return domain.TaskPriorityMedium
	}
	return domain.TaskPriority(i.Priority)
}

// TaskUpdateInput is a partial update from an admin or manager. Absent fields
// are left alone, null fields are cleared where the field is nullable.
type TaskUpdateInput struct {
	Title        domain.Optional[string]
	Description  domain.Optional[string]
	Priority     domain.Optional[string]
	DueDate      domain.Optional[string]
	AssignedToID domain.Optional[string]
	ColumnID     domain.Optional[string]
	IsBlocked    domain.Optional[bool]
	BlockReason  domain.Optional[string]
}

// ForWorker projects the input onto the fields a worker may change.
// Everything else is dropped.
func (i TaskUpdateInput) ForWorker() WorkerTaskUpdate {
	return WorkerTaskUpdate{
		ColumnID:    i.ColumnID,
		IsBlocked:   i.IsBlocked,
		BlockReason: i.BlockReason,
	}
}

// Validate validates the update input.
func (i TaskUpdateInput) Validate() error {
	var errs []domain.FieldError

	switch {
	case i.Title.Invalid:
		errs = append(errs, domain.FieldError{Field: "title", Message: mustBeString})
	case i.Title.Set:
		if i.Title.Null {
			errs = append(errs, domain.FieldError{Field: "title", Message: "cannot be null"})
		} else {
			errs = checkTitle(errs, i.Title.Value)
		}
	}

	switch {
	case i.Description.Invalid:
		errs = append(errs, domain.FieldError{Field: "description", Message: mustBeString})
	case i.Description.Set && !i.Description.Null && len(i.Description.Value) > maxDescriptionLength:
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}

	switch {
	case i.Priority.Invalid:
		errs = append(errs, domain.FieldError{Field: "priority", Message: mustBeString})
	case i.Priority.Set:
		if i.Priority.Null {
			errs = append(errs, domain.FieldError{Field: "priority", Message: "cannot be null"})
		} else if !domain.TaskPriority(i.Priority.Value).IsValid() {
			errs = append(errs, domain.FieldError{Field: "priority", Message: "must be one of LOW, MEDIUM, HIGH, URGENT"})
		}
	}

	switch {
	case i.DueDate.Invalid:
		errs = append(errs, domain.FieldError{Field: "dueDate", Message: mustBeString})
	case i.DueDate.Set && !i.DueDate.Null:
		if _, err := parseDueDate(i.DueDate.Value); err != nil {
			errs = append(errs, domain.FieldError{Field: "dueDate", Message: "invalid date"})
		}
	}

	switch {
	case i.AssignedToID.Invalid:
		errs = append(errs, domain.FieldError{Field: "assignedToId", Message: mustBeString})
	case i.AssignedToID.Set && !i.AssignedToID.Null:
		if _, err := uuid.Parse(i.AssignedToID.Value); err != nil {
			errs = append(errs, domain.FieldError{Field: "assignedToId", Message: "invalid id"})
		}
	}

	errs = i.ForWorker().check(errs)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i TaskUpdateInput) patch() domain.TaskPatch {
	p := i.ForWorker().patch()

	if i.Title.Set {
		p.Title = domain.Some(strings.TrimSpace(i.Title.Value))
	}
	p.Description = i.Description
	if i.Priority.Set {
		p.Priority = domain.Some(domain.TaskPriority(i.Priority.Value))
	}
	p.DueDate = mapOptional(i.DueDate, func(v string) time.Time {
		t, _ := parseDueDate(v)
		return t
	})
	p.AssignedToID = mapOptional(i.AssignedToID, uuid.MustParse)
	return p
}

func (i TaskUpdateInput) targetColumn() domain.Optional[string] { return i.ColumnID }

// WorkerTaskUpdate is the only update shape a worker can submit: moving the
// task and flagging it as blocked.
type WorkerTaskUpdate struct {
	ColumnID    domain.Optional[string]
	IsBlocked   domain.Optional[bool]
	BlockReason domain.Optional[string]
}

// Validate validates the worker update.
func (w WorkerTaskUpdate) Validate() error {
	if errs := w.check(nil); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (w WorkerTaskUpdate) check(errs []domain.FieldError) []domain.FieldError {
	switch {
	case w.ColumnID.Invalid:
		errs = append(errs, domain.FieldError{Field: "columnId", Message: mustBeString})
	case w.ColumnID.Null:
		errs = append(errs, domain.FieldError{Field: "columnId", Message: "cannot be null"})
	case w.ColumnID.Set && w.ColumnID.Value == "":
		errs = append(errs, domain.FieldError{Field: "columnId", Message: "required"})
	}

	switch {
	case w.IsBlocked.Invalid:
		errs = append(errs, domain.FieldError{Field: "isBlocked", Message: "must be a boolean"})
	case w.IsBlocked.Null:
		errs = append(errs, domain.FieldError{Field: "isBlocked", Message: "cannot be null"})
	}

	switch {
	case w.BlockReason.Invalid:
		errs = append(errs, domain.FieldError{Field: "blockReason", Message: mustBeString})
	case w.BlockReason.Set && !w.BlockReason.Null && len(w.BlockReason.Value) > maxBlockReasonLength:
		errs = append(errs, domain.FieldError{Field: "blockReason", Message: "too long"})
	}

	return errs
}

func (w WorkerTaskUpdate) patch() domain.TaskPatch {
	return domain.TaskPatch{
		IsBlocked:   w.IsBlocked,
		BlockReason: w.BlockReason,
	}
}

func (w WorkerTaskUpdate) targetColumn() domain.Optional[string] { return w.ColumnID }

// taskUpdate is satisfied by both update shapes. The column is resolved by
// the service, so it is kept out of the patch.
type taskUpdate interface {
	Validate() error
	patch() domain.TaskPatch
	targetColumn() domain.Optional[string]
}

func checkTitle(errs []domain.FieldError, title string) []domain.FieldError {
	title = strings.TrimSpace(title)
	if title == "" {
		return append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > maxTitleLength {
		return append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	return errs
}

// parseDueDate accepts a calendar date or a full RFC 3339 timestamp.
func parseDueDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func mapOptional[T, U any](o domain.Optional[T], fn func(T) U) domain.Optional[U] {
	switch {
	case !o.Set:
		return domain.Optional[U]{}
	case o.Null:
		return domain.Null[U]()
	}
	return domain.Some(fn(o.Value))
}
