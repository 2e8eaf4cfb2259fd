package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/serviceflow/kanban-backend/internal/adapter/postgres"
	auditrepo "github.com/serviceflow/kanban-backend/internal/adapter/postgres/audit"
	columnrepo "github.com/serviceflow/kanban-backend/internal/adapter/postgres/column"
	commentrepo "github.com/serviceflow/kanban-backend/internal/adapter/postgres/comment"
	taskrepo "github.com/serviceflow/kanban-backend/internal/adapter/postgres/task"
	tokenrepo "github.com/serviceflow/kanban-backend/internal/adapter/postgres/token"
	userrepo "github.com/serviceflow/kanban-backend/internal/adapter/postgres/user"
	authpkg "github.com/serviceflow/kanban-backend/internal/auth"
	"github.com/serviceflow/kanban-backend/internal/config"
	authsvc "github.com/serviceflow/kanban-backend/internal/service/auth"
	boardsvc "github.com/serviceflow/kanban-backend/internal/service/board"
	columnsvc "github.com/serviceflow/kanban-backend/internal/service/column"
	commentsvc "github.com/serviceflow/kanban-backend/internal/service/comment"
	tasksvc "github.com/serviceflow/kanban-backend/internal/service/task"
	usersvc "github.com/serviceflow/kanban-backend/internal/service/user"
	"github.com/serviceflow/kanban-backend/internal/transport/dataloader"
	"github.com/serviceflow/kanban-backend/internal/transport/middleware"
	"github.com/serviceflow/kanban-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, applies migrations when enabled and serves HTTP until ctx is
// cancelled, then shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if !cfg.Database.SkipAutoMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			return err
		}
	}

	txm := postgres.NewTxManager(pool)

	// Repositories.
	users := userrepo.New(pool)
	columns := columnrepo.New(pool)
	tasks := taskrepo.New(pool)
	comments := commentrepo.New(pool)
	audits := auditrepo.New(pool)
	tokens := tokenrepo.New(pool)

	// Services.
	jwtMgr := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	passwords := authpkg.NewPasswordHasher(cfg.Auth.BcryptCost)

	authService := authsvc.NewService(logger, users, tokens, jwtMgr, passwords, cfg.Auth)
	taskService := tasksvc.NewService(logger, tasks, columns, comments, audits, txm, cfg.Board)
	columnService := columnsvc.NewService(logger, columns, audits, txm)
	commentService := commentsvc.NewService(logger, tasks, comments, audits, txm, cfg.Board)
	boardService := boardsvc.NewService(logger, columns, tasks, users)
	userService := usersvc.NewService(logger, users, audits, passwords, txm, cfg.Board)

	// Transport.
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := newRouter(logger, cfg, handlers{
		Health:  rest.NewHealthHandler(pool, BuildVersion()),
		Auth:    rest.NewAuthHandler(authService, logger),
		Tasks:   rest.NewTaskHandler(taskService, commentService, logger),
		Columns: rest.NewColumnHandler(columnService, logger),
		Board:   rest.NewBoardHandler(boardService, logger),
		Admin:   rest.NewAdminHandler(userService, logger),
	}, authService, &dataloader.Repos{User: users, Column: columns}, limiter)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
