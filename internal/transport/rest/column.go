package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/serviceflow/kanban-backend/internal/domain"
	"github.com/serviceflow/kanban-backend/internal/service/column"
)

type columnService interface {
	ListColumns(ctx context.Context) ([]domain.Column, error)
	CreateColumn(ctx context.Context, input column.CreateColumnInput) (*domain.Column, error)
}

// ColumnHandler serves column endpoints.
type ColumnHandler struct {
	svc columnService
	log *slog.Logger
}

// NewColumnHandler creates a ColumnHandler.
func NewColumnHandler(svc columnService, logger *slog.Logger) *ColumnHandler {
	return &ColumnHandler{svc: svc, log: logger.With("handler", "column")}
}

type createColumnRequest struct {
	Name     string  `json:"name"`
	Status   string  `json:"status"`
	WIPLimit *int    `json:"wipLimit"`
	Color    *string `json:"color"`
}

// List handles GET /columns.
func (h *ColumnHandler) List(w http.ResponseWriter, r *http.Request) {
	columns, err := h.svc.ListColumns(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]*columnResponse, 0, len(columns))
	for i := range columns {
		resp = append(resp, toColumnResponse(&columns[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create handles POST /columns. Admin only.
func (h *ColumnHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createColumnRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	col, err := h.svc.CreateColumn(r.Context(), column.CreateColumnInput{
		Name:     req.Name,
		Status:   req.Status,
		WIPLimit: req.WIPLimit,
		Color:    req.Color,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toColumnResponse(col))
}
