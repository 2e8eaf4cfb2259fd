// Package boardclient is a client for the kanban board API. It keeps a local
// snapshot of the board and applies drag-and-drop moves optimistically,
// rolling back when the server rejects them.
package boardclient

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

var (
	// ErrUnknownTask is returned when the dragged task is not on the board.
	ErrUnknownTask = errors.New("boardclient: unknown task")
	// ErrUnknownTarget is returned when the drop target is neither a column
	// nor a task on the board.
	ErrUnknownTarget = errors.New("boardclient: unknown drop target")
)

// Column is one board column as returned by GET /board.
type Column struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Position   int       `json:"position"`
	Status     string    `json:"status"`
	WIPLimit   *int      `json:"wipLimit"`
	Color      string    `json:"color"`
	TaskCount  int       `json:"taskCount"`
	AtWIPLimit bool      `json:"atWipLimit"`
}

// Task is the client's view of a task.
type Task struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Priority     string     `json:"priority"`
	Status       string     `json:"status"`
	ColumnID     uuid.UUID  `json:"columnId"`
	AssignedToID *uuid.UUID `json:"assignedToId"`
	IsBlocked    bool       `json:"isBlocked"`
	BlockReason  *string    `json:"blockReason"`
}

// Patch is a partial task update. Only set fields are sent.
type Patch struct {
	ColumnID *uuid.UUID `json:"columnId,omitempty"`
}

// TaskPatcher sends a partial update for a task and returns the server's copy.
type TaskPatcher interface {
	PatchTask(ctx context.Context, id uuid.UUID, patch Patch) (*Task, error)
}

// MoveCommand describes a drop: the dragged task and whatever it was dropped
// over, either a column or another task.
type MoveCommand struct {
	TaskID uuid.UUID
	OverID uuid.UUID
}

// Board is a local snapshot of the kanban board. It is safe for concurrent
// use; moves are applied one at a time.
type Board struct {
	moveMu sync.Mutex

	mu      sync.RWMutex
	columns []Column
	tasks   []Task
}

// NewBoard creates a board from columns and tasks.
func NewBoard(columns []Column, tasks []Task) *Board {
	b := &Board{}
	b.replace(columns, tasks)
	return b
}

// Replace swaps the snapshot for freshly loaded data.
func (b *Board) Replace(columns []Column, tasks []Task) {
	b.moveMu.Lock()
	defer b.moveMu.Unlock()
	b.replace(columns, tasks)
}

func (b *Board) replace(columns []Column, tasks []Task) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.columns = append([]Column(nil), columns...)
	b.tasks = append([]Task(nil), tasks...)
}

// Columns returns a copy of the columns in board order.
func (b *Board) Columns() []Column {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]Column(nil), b.columns...)
}

// Tasks returns the tasks currently shown in the column.
func (b *Board) Tasks(columnID uuid.UUID) []Task {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var out []Task
	for _, t := range b.tasks {
		if t.ColumnID == columnID {
			out = append(out, t)
		}
	}
	return out
}

// Task returns the task with the given id.
func (b *Board) Task(id uuid.UUID) (Task, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if i := b.taskIndex(id); i >= 0 {
		return b.tasks[i], true
	}
	return Task{}, false
}

// Move applies a drop. A drop onto the task's own column is a no-op and no
// request is made. Otherwise the task is moved locally first, then the
// change is sent through p; on failure the board is restored to its state
// before the move and the error is returned. It reports whether the task
// moved.
func (b *Board) Move(ctx context.Context, p TaskPatcher, cmd MoveCommand) (bool, error) {
	b.moveMu.Lock()
	defer b.moveMu.Unlock()

	b.mu.Lock()
	ti := b.taskIndex(cmd.TaskID)
	if ti < 0 {
		b.mu.Unlock()
		return false, ErrUnknownTask
	}
	target, ok := b.resolveTarget(cmd.OverID)
	if !ok {
		b.mu.Unlock()
		return false, ErrUnknownTarget
	}
	if b.tasks[ti].ColumnID == target.ID {
		b.mu.Unlock()
		return false, nil
	}

	snapshot := append([]Task(nil), b.tasks...)
	b.tasks[ti].ColumnID = target.ID
	b.tasks[ti].Status = target.Status
	b.mu.Unlock()

	updated, err := p.PatchTask(ctx, cmd.TaskID, Patch{ColumnID: &target.ID})

	b.mu.Lock()
	defer b.mu.Unlock()
	if err != nil {
		b.tasks = snapshot
		return false, fmt.Errorf("boardclient: move task %s: %w", cmd.TaskID, err)
	}
	if updated != nil {
		if i := b.taskIndex(cmd.TaskID); i >= 0 {
			b.tasks[i] = *updated
		}
	}
	return true, nil
}

// resolveTarget maps a drop target onto a column. Callers hold mu.
func (b *Board) resolveTarget(overID uuid.UUID) (Column, bool) {
	columnID := overID
	if i := b.taskIndex(overID); i >= 0 {
		columnID = b.tasks[i].ColumnID
	}
	for _, c := range b.columns {
		if c.ID == columnID {
			return c, true
		}
	}
	return Column{}, false
}

func (b *Board) taskIndex(id uuid.UUID) int {
	for i := range b.tasks {
		if b.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
