package task

import "github.com/serviceflow/kanban-backend/internal/domain"

// TaskView is a task together with the column it sits in. Comments are only
// filled by GetTask.
type TaskView struct {
	Task     domain.Task
	Column   *domain.Column
	Comments []domain.Comment
}
