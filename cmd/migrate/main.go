// Command migrate applies or inspects the embedded database migrations.
//
// Usage:
//
//	migrate [up|status]
//
// Reads the same configuration as the server (CONFIG_PATH or environment).
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/serviceflow/kanban-backend/internal/adapter/postgres"
	"github.com/serviceflow/kanban-backend/internal/app"
	"github.com/serviceflow/kanban-backend/internal/config"
)

func main() {
	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	switch cmd {
	case "up":
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			logger.Error("migrate up", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("database is up to date")

	case "status":
		provider, closeDB, err := postgres.NewMigrator(pool)
		if err != nil {
			logger.Error("create migrator", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer func() { _ = closeDB() }()

		statuses, err := provider.Status(ctx)
		if err != nil {
			logger.Error("migration status", slog.String("error", err.Error()))
			os.Exit(1)
		}
		for _, s := range statuses {
			applied := "pending"
			if !s.AppliedAt.IsZero() {
				applied = s.AppliedAt.Format(time.RFC3339)
			}
			fmt.Printf("%05d  %-8s  %s  %s\n", s.Source.Version, s.State, applied, s.Source.Path)
		}

	default:
		fmt.Fprintf(os.Stderr, "Usage: migrate [up|status]\nunknown command %q\n", cmd)
		os.Exit(2)
	}
}
