package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/serviceflow/kanban-backend/internal/domain"
	"github.com/serviceflow/kanban-backend/internal/service/task"
)

type taskService interface {
	ListTasks(ctx context.Context, columnID *uuid.UUID) ([]domain.Task, error)
	GetTask(ctx context.Context, id uuid.UUID) (*task.TaskView, error)
	CreateTask(ctx context.Context, input task.CreateTaskInput) (*task.TaskView, error)
	UpdateTask(ctx context.Context, id uuid.UUID, input task.TaskUpdateInput) (*task.TaskView, error)
	MoveTask(ctx context.Context, id uuid.UUID, columnID string) (*task.TaskView, error)
	DeleteTask(ctx context.Context, id uuid.UUID) error
}

type commentService interface {
	ListComments(ctx context.Context, taskID uuid.UUID) ([]domain.Comment, error)
	AddComment(ctx context.Context, taskID uuid.UUID, content string) (*domain.Comment, error)
}

// TaskHandler serves task and comment endpoints.
type TaskHandler struct {
	tasks    taskService
	comments commentService
	log      *slog.Logger
}

// NewTaskHandler creates a TaskHandler.
func NewTaskHandler(tasks taskService, comments commentService, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		tasks:    tasks,
		comments: comments,
		log:      logger.With("handler", "task"),
	}
}

type createTaskRequest struct {
	Title        string  `json:"title"`
	Description  *string `json:"description"`
	Priority     string  `json:"priority"`
	DueDate      *string `json:"dueDate"`
	AssignedToID *string `json:"assignedToId"`
	ColumnID     string  `json:"columnId"`
}

type updateTaskRequest struct {
	Title        domain.Optional[string] `json:"title"`
	Description  domain.Optional[string] `json:"description"`
	Priority     domain.Optional[string] `json:"priority"`
	DueDate      domain.Optional[string] `json:"dueDate"`
	AssignedToID domain.Optional[string] `json:"assignedToId"`
	ColumnID     domain.Optional[string] `json:"columnId"`
	IsBlocked    domain.Optional[bool]   `json:"isBlocked"`
	BlockReason  domain.Optional[string] `json:"blockReason"`
}

type moveTaskRequest struct {
	ColumnID string `json:"columnId"`
}

type addCommentRequest struct {
	Content string `json:"content"`
}

// List handles GET /tasks?columnId=. Workers only see their own tasks.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	var columnID *uuid.UUID
	if v := r.URL.Query().Get("columnId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("columnId", "invalid id"))
			return
		}
		columnID = &id
	}

	tasks, err := h.tasks.ListTasks(r.Context(), columnID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp, err := renderTasks(r.Context(), tasks, true)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create handles POST /tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.tasks.CreateTask(r.Context(), task.CreateTaskInput{
		Title:        req.Title,
		Description:  req.Description,
		Priority:     req.Priority,
		DueDate:      req.DueDate,
		AssignedToID: req.AssignedToID,
		ColumnID:     req.ColumnID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.writeView(w, r, http.StatusCreated, view)
}

// Get handles GET /tasks/{id}. The response includes comments.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	view, err := h.tasks.GetTask(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.writeView(w, r, http.StatusOK, view)
}

// Update handles PATCH /tasks/{id}. Absent keys are left unchanged and null
// clears nullable fields.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateTaskRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.tasks.UpdateTask(r.Context(), id, task.TaskUpdateInput{
		Title:        req.Title,
		Description:  req.Description,
		Priority:     req.Priority,
		DueDate:      req.DueDate,
		AssignedToID: req.AssignedToID,
		ColumnID:     req.ColumnID,
		IsBlocked:    req.IsBlocked,
		BlockReason:  req.BlockReason,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.writeView(w, r, http.StatusOK, view)
}

// Move handles POST /tasks/{id}/move.
func (h *TaskHandler) Move(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req moveTaskRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.tasks.MoveTask(r.Context(), id, req.ColumnID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.writeView(w, r, http.StatusOK, view)
}

// Delete handles DELETE /tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.tasks.DeleteTask(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListComments handles GET /tasks/{id}/comments.
func (h *TaskHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	comments, err := h.comments.ListComments(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp, err := renderComments(r.Context(), comments)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// AddComment handles POST /tasks/{id}/comments.
func (h *TaskHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req addCommentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	comment, err := h.comments.AddComment(r.Context(), id, req.Content)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp, err := renderComments(r.Context(), []domain.Comment{*comment})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp[0])
}

func (h *TaskHandler) writeView(w http.ResponseWriter, r *http.Request, status int, view *task.TaskView) {
	tasks, err := renderTasks(r.Context(), []domain.Task{view.Task}, false)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	resp := tasks[0]
	resp.Column = toColumnResponse(view.Column)

	if len(view.Comments) > 0 {
		if resp.Comments, err = renderComments(r.Context(), view.Comments); err != nil {
			handleError(h.log, w, r, err)
			return
		}
	}

	writeJSON(w, status, resp)
}
