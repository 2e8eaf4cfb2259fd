package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/serviceflow/kanban-backend/internal/domain"
	"github.com/serviceflow/kanban-backend/internal/service/board"
)

type boardService interface {
	GetBoard(ctx context.Context) (*board.Board, error)
	GetStats(ctx context.Context) (domain.TaskStats, error)
}

// BoardHandler serves the kanban board and dashboard endpoints.
type BoardHandler struct {
	svc boardService
	log *slog.Logger
}

// NewBoardHandler creates a BoardHandler.
func NewBoardHandler(svc boardService, logger *slog.Logger) *BoardHandler {
	return &BoardHandler{svc: svc, log: logger.With("handler", "board")}
}

type boardColumnResponse struct {
	columnResponse
	AtWIPLimit bool           `json:"atWipLimit"`
	Tasks      []taskResponse `json:"tasks"`
}

type boardResponse struct {
	Columns []boardColumnResponse `json:"columns"`
	Users   []userSummaryResponse `json:"users"`
}

type statsResponse struct {
	Total      int `json:"total"`
	InProgress int `json:"inProgress"`
	Overdue    int `json:"overdue"`
	Completed  int `json:"completed"`
}

// Board handles GET /board.
func (h *BoardHandler) Board(w http.ResponseWriter, r *http.Request) {
	b, err := h.svc.GetBoard(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var all []domain.Task
	for _, cv := range b.Columns {
		all = append(all, cv.Tasks...)
	}
	rendered, err := renderTasks(r.Context(), all, false)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := boardResponse{
		Columns: make([]boardColumnResponse, 0, len(b.Columns)),
		Users:   make([]userSummaryResponse, 0, len(b.Users)),
	}
	offset := 0
	for _, cv := range b.Columns {
		col := *toColumnResponse(&cv.Column)
		col.TaskCount = cv.TaskCount
		resp.Columns = append(resp.Columns, boardColumnResponse{
			columnResponse: col,
			AtWIPLimit:     cv.AtWIPLimit,
			Tasks:          rendered[offset : offset+len(cv.Tasks)],
		})
		offset += len(cv.Tasks)
	}
	for _, u := range b.Users {
		resp.Users = append(resp.Users, toUserSummary(u))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Stats handles GET /dashboard/stats.
func (h *BoardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetStats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, statsResponse{
		Total:      stats.Total,
		InProgress: stats.InProgress,
		Overdue:    stats.Overdue,
		Completed:  stats.Completed,
	})
}
