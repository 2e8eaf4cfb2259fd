// Command cleanup-tokens deletes expired and revoked refresh tokens.
//
// Usage:
//
//	cleanup-tokens
//
// Reads the same configuration as the server (CONFIG_PATH or environment).
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/serviceflow/kanban-backend/internal/adapter/postgres"
	"github.com/serviceflow/kanban-backend/internal/adapter/postgres/token"
	"github.com/serviceflow/kanban-backend/internal/adapter/postgres/user"
	"github.com/serviceflow/kanban-backend/internal/app"
	authpkg "github.com/serviceflow/kanban-backend/internal/auth"
	"github.com/serviceflow/kanban-backend/internal/config"
	authsvc "github.com/serviceflow/kanban-backend/internal/service/auth"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	svc := authsvc.NewService(
		logger,
		user.New(pool),
		token.New(pool),
		authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		authpkg.NewPasswordHasher(cfg.Auth.BcryptCost),
		cfg.Auth,
	)

	n, err := svc.CleanupExpiredTokens(ctx)
	if err != nil {
		log.Fatalf("cleanup tokens: %v", err)
	}

	fmt.Printf("Deleted %d expired/revoked refresh tokens.\n", n)
}
