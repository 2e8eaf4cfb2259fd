// Command promote sets a user's role by email address.
// It is used to bootstrap the first admin user.
//
// Usage:
//
//	promote --email=user@example.com [--role=ADMIN]
//
// Reads the same configuration as the server (CONFIG_PATH or environment).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/serviceflow/kanban-backend/internal/adapter/postgres"
	"github.com/serviceflow/kanban-backend/internal/adapter/postgres/user"
	"github.com/serviceflow/kanban-backend/internal/config"
	"github.com/serviceflow/kanban-backend/internal/domain"
)

func main() {
	email := flag.String("email", "", "email of the user to update")
	roleFlag := flag.String("role", string(domain.UserRoleAdmin), "new role: ADMIN, MANAGER or WORKER")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --email=user@example.com [--role=ADMIN]")
		os.Exit(1)
	}

	role := domain.UserRole(strings.ToUpper(*roleFlag))
	if !role.IsValid() {
		fmt.Fprintf(os.Stderr, "Unknown role %q.\n", *roleFlag)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	u, err := user.New(pool).UpdateRoleByEmail(ctx, strings.ToLower(strings.TrimSpace(*email)), role)
	if errors.Is(err, domain.ErrNotFound) {
		fmt.Printf("No user found with email %q.\n", *email)
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("update role: %v", err)
	}

	fmt.Printf("User %q is now %s.\n", u.Email, u.Role)
}
