package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/serviceflow/kanban-backend/internal/domain"
	"github.com/serviceflow/kanban-backend/internal/service/user"
)

type userService interface {
	ListUsers(ctx context.Context) ([]domain.UserWithStats, error)
	CreateUser(ctx context.Context, input user.CreateUserInput) (*domain.User, error)
	SetUserRole(ctx context.Context, targetUserID uuid.UUID, role domain.UserRole) (*domain.User, error)
	ListAuditLog(ctx context.Context, limit, offset int) ([]domain.AuditEntry, error)
	Directory(ctx context.Context) ([]domain.UserSummary, error)
}

// AdminHandler serves user administration and audit endpoints. The service
// rejects callers without the admin role on everything except Directory.
type AdminHandler struct {
	users userService
	log   *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(users userService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{users: users, log: logger.With("handler", "admin")}
}

type createUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type setRoleRequest struct {
	Role string `json:"role"`
}

type adminUserResponse struct {
	userResponse
	AssignedTaskCount int `json:"assignedTaskCount"`
}

type auditResponse struct {
	ID         uuid.UUID           `json:"id"`
	Action     string              `json:"action"`
	EntityType string              `json:"entityType"`
	EntityID   uuid.UUID           `json:"entityId"`
	TaskID     *uuid.UUID          `json:"taskId"`
	Changes    map[string]any      `json:"changes"`
	User       userSummaryResponse `json:"user"`
	CreatedAt  time.Time           `json:"createdAt"`
}

// ListUsers handles GET /admin/users.
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]adminUserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, adminUserResponse{
			userResponse:      toUserResponse(&users[i].User),
			AssignedTaskCount: users[i].AssignedTaskCount,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// CreateUser handles POST /admin/users.
func (h *AdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.users.CreateUser(r.Context(), user.CreateUserInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUserResponse(u))
}

// SetRole handles PATCH /admin/users/{id}/role.
func (h *AdminHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req setRoleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.users.SetUserRole(r.Context(), id, domain.UserRole(req.Role))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// Audit handles GET /admin/audit?limit=&offset=.
func (h *AdminHandler) Audit(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entries, err := h.users.ListAuditLog(r.Context(), limit, offset)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]auditResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, auditResponse{
			ID:         e.ID,
			Action:     e.Action.String(),
			EntityType: e.EntityType.String(),
			EntityID:   e.EntityID,
			TaskID:     e.TaskID,
			Changes:    e.Changes,
			User:       toUserSummary(e.Actor),
			CreatedAt:  e.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Directory handles GET /users, the assignment picker list.
func (h *AdminHandler) Directory(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.Directory(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]userSummaryResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, toUserSummary(u))
	}
	writeJSON(w, http.StatusOK, resp)
}
