package rest

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/serviceflow/kanban-backend/internal/domain"
	"github.com/serviceflow/kanban-backend/internal/transport/dataloader"
)

type userSummaryResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type columnResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Position  int       `json:"position"`
	Status    string    `json:"status"`
	WIPLimit  *int      `json:"wipLimit"`
	Color     string    `json:"color"`
	TaskCount int       `json:"taskCount"`
}

type taskResponse struct {
	ID           uuid.UUID            `json:"id"`
	Title        string               `json:"title"`
	Description  *string              `json:"description"`
	Priority     string               `json:"priority"`
	Status       string               `json:"status"`
	Position     int                  `json:"position"`
	DueDate      *time.Time           `json:"dueDate"`
	IsBlocked    bool                 `json:"isBlocked"`
	BlockReason  *string              `json:"blockReason"`
	AssignedToID *uuid.UUID           `json:"assignedToId"`
	AssignedTo   *userSummaryResponse `json:"assignedTo"`
	CreatedByID  uuid.UUID            `json:"createdById"`
	CreatedBy    *userSummaryResponse `json:"createdBy"`
	ColumnID     uuid.UUID            `json:"columnId"`
	Column       *columnResponse      `json:"column,omitempty"`
	CompletedAt  *time.Time           `json:"completedAt"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
	Comments     []commentResponse    `json:"comments,omitempty"`
}

type commentResponse struct {
	ID        uuid.UUID            `json:"id"`
	Content   string               `json:"content"`
	TaskID    uuid.UUID            `json:"taskId"`
	AuthorID  uuid.UUID            `json:"authorId"`
	Author    *userSummaryResponse `json:"author"`
	CreatedAt time.Time            `json:"createdAt"`
}

func toUserSummary(u domain.UserSummary) userSummaryResponse {
	return userSummaryResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role.String()}
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt,
	}
}

func toColumnResponse(c *domain.Column) *columnResponse {
	if c == nil {
		return nil
	}
	return &columnResponse{
		ID:        c.ID,
		Name:      c.Name,
		Position:  c.Position,
		Status:    c.Status.String(),
		WIPLimit:  c.WIPLimit,
		Color:     c.Color,
		TaskCount: c.TaskCount,
	}
}

func lookup(users map[uuid.UUID]domain.UserSummary, id *uuid.UUID) *userSummaryResponse {
	if id == nil {
		return nil
	}
	u, ok := users[*id]
	if !ok {
		return nil
	}
	resp := toUserSummary(u)
	return &resp
}

func toTaskResponse(t *domain.Task, users map[uuid.UUID]domain.UserSummary) taskResponse {
	return taskResponse{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		Priority:     t.Priority.String(),
		Status:       t.Status.String(),
		Position:     t.Position,
		DueDate:      t.DueDate,
		IsBlocked:    t.IsBlocked,
		BlockReason:  t.BlockReason,
		AssignedToID: t.AssignedToID,
		AssignedTo:   lookup(users, t.AssignedToID),
		CreatedByID:  t.CreatedByID,
		CreatedBy:    lookup(users, &t.CreatedByID),
		ColumnID:     t.ColumnID,
		CompletedAt:  t.CompletedAt,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func toCommentResponse(c *domain.Comment, users map[uuid.UUID]domain.UserSummary) commentResponse {
	return commentResponse{
		ID:        c.ID,
		Content:   c.Content,
		TaskID:    c.TaskID,
		AuthorID:  c.AuthorID,
		Author:    lookup(users, &c.AuthorID),
		CreatedAt: c.CreatedAt,
	}
}

// taskUserIDs collects every user a set of tasks refers to.
func taskUserIDs(tasks []domain.Task) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(tasks)*2)
	for i := range tasks {
		ids = append(ids, tasks[i].CreatedByID)
		if tasks[i].AssignedToID != nil {
			ids = append(ids, *tasks[i].AssignedToID)
		}
	}
	return ids
}

// renderTasks resolves assignees and creators through the request loaders.
// When withColumns is set each task also carries its column.
func renderTasks(ctx context.Context, tasks []domain.Task, withColumns bool) ([]taskResponse, error) {
	users, err := dataloader.LoadUsers(ctx, taskUserIDs(tasks))
	if err != nil {
		return nil, err
	}

	var columns map[uuid.UUID]*domain.Column
	if withColumns {
		ids := make([]uuid.UUID, 0, len(tasks))
		for i := range tasks {
			ids = append(ids, tasks[i].ColumnID)
		}
		if columns, err = dataloader.LoadColumns(ctx, ids); err != nil {
			return nil, err
		}
	}

	out := make([]taskResponse, 0, len(tasks))
	for i := range tasks {
		resp := toTaskResponse(&tasks[i], users)
		if withColumns {
			resp.Column = toColumnResponse(columns[tasks[i].ColumnID])
		}
		out = append(out, resp)
	}
	return out, nil
}

func renderComments(ctx context.Context, comments []domain.Comment) ([]commentResponse, error) {
	ids := make([]uuid.UUID, 0, len(comments))
	for i := range comments {
		ids = append(ids, comments[i].AuthorID)
	}
	users, err := dataloader.LoadUsers(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]commentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, toCommentResponse(&comments[i], users))
	}
	return out, nil
}
