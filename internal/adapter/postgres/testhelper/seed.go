package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/serviceflow/kanban-backend/internal/domain"
)

func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with the given role and a placeholder password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "user-" + suffix + "@serviceflow.test",
		Name:         "User " + suffix,
		PasswordHash: "$2a$10$placeholderplaceholderplaceholderplaceholderpla",
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.Name, user.PasswordHash, user.Role.String(), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return user
}

// SeedColumn inserts a column after every existing one.
func SeedColumn(t *testing.T, pool *pgxpool.Pool, status domain.TaskStatus, wipLimit *int) domain.Column {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	col := domain.Column{
		ID:        uuid.New(),
		Name:      "Column " + uniqueSuffix(),
		Status:    status,
		WIPLimit:  wipLimit,
		Color:     domain.DefaultColumnColor,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO board_columns (id, name, position, status, wip_limit, color, created_at, updated_at)
		 VALUES ($1, $2, (SELECT COALESCE(MAX(position), -1) + 1 FROM board_columns), $3, $4, $5, $6, $7)
		 RETURNING position`,
		col.ID, col.Name, col.Status.String(), col.WIPLimit, col.Color, col.CreatedAt, col.UpdatedAt,
	).Scan(&col.Position)
	if err != nil {
		t.Fatalf("testhelper: SeedColumn: %v", err)
	}
	return col
}

// SeedTask inserts a task in col created by creator and optionally assigned.
func SeedTask(t *testing.T, pool *pgxpool.Pool, col domain.Column, creator uuid.UUID, assignee *uuid.UUID) domain.Task {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	task := domain.Task{
		ID:           uuid.New(),
		Title:        "Task " + uniqueSuffix(),
		Priority:     domain.TaskPriorityMedium,
		Status:       col.Status,
		AssignedToID: assignee,
		CreatedByID:  creator,
		ColumnID:     col.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO tasks (id, title, priority, status, position, assigned_to_id, created_by_id, column_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, (SELECT COALESCE(MAX(position), -1) + 1 FROM tasks WHERE column_id = $7), $5, $6, $7, $8, $9)
		 RETURNING position`,
		task.ID, task.Title, task.Priority.String(), task.Status.String(), task.AssignedToID, task.CreatedByID, task.ColumnID, task.CreatedAt, task.UpdatedAt,
	).Scan(&task.Position)
	if err != nil {
		t.Fatalf("testhelper: SeedTask: %v", err)
	}
	return task
}
