package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/serviceflow/kanban-backend/internal/config"
	"github.com/serviceflow/kanban-backend/internal/transport/dataloader"
	"github.com/serviceflow/kanban-backend/internal/transport/middleware"
	"github.com/serviceflow/kanban-backend/internal/transport/rest"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, string, error)
}

// handlers groups everything the router serves.
type handlers struct {
	Health  *rest.HealthHandler
	Auth    *rest.AuthHandler
	Tasks   *rest.TaskHandler
	Columns *rest.ColumnHandler
	Board   *rest.BoardHandler
	Admin   *rest.AdminHandler
}

// newRouter mounts every endpoint on a ServeMux and wraps it in the shared
// middleware chain. Logger runs after Auth so request records carry the caller.
func newRouter(
	logger *slog.Logger,
	cfg *config.Config,
	h handlers,
	validator tokenValidator,
	loaders *dataloader.Repos,
	limiter *middleware.RateLimiter,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	limited := limiter.Limit(cfg.RateLimit.LoginPerMinute)
	mux.Handle("POST /auth/login", limited(http.HandlerFunc(h.Auth.Login)))
	mux.Handle("POST /auth/refresh", limited(http.HandlerFunc(h.Auth.Refresh)))

	protected := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, middleware.RequireCaller(fn))
	}

	protected("POST /auth/logout", h.Auth.Logout)
	protected("GET /auth/me", h.Auth.Me)

	protected("GET /tasks", h.Tasks.List)
	protected("POST /tasks", h.Tasks.Create)
	protected("GET /tasks/{id}", h.Tasks.Get)
	protected("PATCH /tasks/{id}", h.Tasks.Update)
	protected("DELETE /tasks/{id}", h.Tasks.Delete)
	protected("POST /tasks/{id}/move", h.Tasks.Move)
	protected("GET /tasks/{id}/comments", h.Tasks.ListComments)
	protected("POST /tasks/{id}/comments", h.Tasks.AddComment)

	protected("GET /columns", h.Columns.List)
	protected("POST /columns", h.Columns.Create)

	protected("GET /board", h.Board.Board)
	protected("GET /dashboard/stats", h.Board.Stats)

	protected("GET /users", h.Admin.Directory)
	protected("GET /admin/users", h.Admin.ListUsers)
	protected("POST /admin/users", h.Admin.CreateUser)
	protected("PATCH /admin/users/{id}/role", h.Admin.SetRole)
	protected("GET /admin/audit", h.Admin.Audit)

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CORS(cfg.CORS),
		middleware.Auth(validator),
		middleware.Logger(logger),
		middleware.Middleware(dataloader.Middleware(loaders)),
	)(mux)
}
