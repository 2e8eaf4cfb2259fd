// Command seeder loads the demo board: admin, manager and two workers (all
// with the same password), the five standard columns, six tasks and a comment.
//
// Flags:
//
//	--reset   empty every table first (also SEEDER_RESET=true)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/serviceflow/kanban-backend/internal/adapter/postgres"
	"github.com/serviceflow/kanban-backend/internal/adapter/postgres/column"
	"github.com/serviceflow/kanban-backend/internal/adapter/postgres/comment"
	"github.com/serviceflow/kanban-backend/internal/adapter/postgres/task"
	"github.com/serviceflow/kanban-backend/internal/adapter/postgres/user"
	"github.com/serviceflow/kanban-backend/internal/app"
	"github.com/serviceflow/kanban-backend/internal/auth"
	"github.com/serviceflow/kanban-backend/internal/config"
	"github.com/serviceflow/kanban-backend/internal/seeder"
)

func main() {
	resetFlag := flag.Bool("reset", false, "empty every table before seeding")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}
	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig()
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if *resetFlag {
		seederCfg.Reset = true
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if !appCfg.Database.SkipAutoMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			logger.Error("migrate", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	s := seeder.New(logger,
		seeder.Repos{
			Users:    user.New(pool),
			Columns:  column.New(pool),
			Tasks:    task.New(pool),
			Comments: comment.New(pool),
		},
		postgres.NewTxManager(pool),
		auth.NewPasswordHasher(seederCfg.BcryptCost),
		postgres.NewBoardResetter(pool),
		*seederCfg,
	)

	if _, err := s.Run(ctx); err != nil {
		logger.Error("seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Println("Demo credentials (password from SEEDER_PASSWORD, default password123):")
	for _, l := range seeder.DemoLogins() {
		fmt.Println("  " + l)
	}
}
