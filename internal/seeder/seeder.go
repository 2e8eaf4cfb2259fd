// Package seeder loads the demo board: four users, the five standard
// manufacturing columns, a handful of tasks and a comment.
package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/serviceflow/kanban-backend/internal/domain"
)

type userRepo interface {
	Create(ctx context.Context, u *domain.User) error
}

type columnRepo interface {
	Create(ctx context.Context, c *domain.Column) error
}

type taskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
}

type commentRepo interface {
	Create(ctx context.Context, c *domain.Comment) error
}

type passwordHasher interface {
	Hash(password string) (string, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Resetter empties every board table before seeding.
type Resetter interface {
	Reset(ctx context.Context) error
}

// Repos bundles the repositories the seeder writes to.
type Repos struct {
	Users    userRepo
	Columns  columnRepo
	Tasks    taskRepo
	Comments commentRepo
}

// Result counts what was inserted.
type Result struct {
	Users    int
	Columns  int
	Tasks    int
	Comments int
}

// Seeder inserts the demo data set in a single transaction.
type Seeder struct {
	log       *slog.Logger
	repos     Repos
	tx        txManager
	passwords passwordHasher
	reset     Resetter
	cfg       Config
	now       func() time.Time
}

// New creates a Seeder. reset may be nil when cfg.Reset is false.
func New(logger *slog.Logger, repos Repos, tx txManager, passwords passwordHasher, reset Resetter, cfg Config) *Seeder {
	return &Seeder{
		log:       logger.With("component", "seeder"),
		repos:     repos,
		tx:        tx,
		passwords: passwords,
		reset:     reset,
		cfg:       cfg,
		now:       time.Now,
	}
}

type seedUser struct {
	key, email, name string
	role             domain.UserRole
}

type seedColumn struct {
	key, name string
	status    domain.TaskStatus
	wipLimit  int
	color     string
}

type seedTask struct {
	title, description string
	priority           domain.TaskPriority
	column             string
	assignee, creator  string
	dueInDays          int
	completedDaysAgo   int
}

var demoUsers = []seedUser{
	{"admin", "admin@serviceflow.com", "Admin User", domain.UserRoleAdmin},
	{"manager", "manager@serviceflow.com", "Manager User", domain.UserRoleManager},
	{"worker1", "worker1@serviceflow.com", "Worker One", domain.UserRoleWorker},
	{"worker2", "worker2@serviceflow.com", "Worker Two", domain.UserRoleWorker},
}

var demoColumns = []seedColumn{
	{"backlog", "Backlog", domain.TaskStatusBacklog, 0, "#6B7280"},
	{"todo", "To Do", domain.TaskStatusTodo, 5, "#3B82F6"},
	{"in_progress", "In Progress", domain.TaskStatusInProgress, 3, "#F59E0B"},
	{"review", "Review", domain.TaskStatusReview, 2, "#8B5CF6"},
	{"done", "Done", domain.TaskStatusDone, 0, "#10B981"},
}

var demoTasks = []seedTask{
	{"Setup production line monitoring", "Install sensors on production line A", domain.TaskPriorityHigh, "todo", "worker1", "manager", 3, 0},
	{"Quality check machinery", "Perform monthly quality inspection", domain.TaskPriorityMedium, "in_progress", "worker2", "manager", 5, 0},
	{"Repair conveyor belt", "Fix damaged section of conveyor belt in zone B", domain.TaskPriorityUrgent, "todo", "worker1", "manager", 1, 0},
	{"Update inventory system", "Migrate to new inventory tracking software", domain.TaskPriorityLow, "backlog", "", "manager", 0, 0},
	{"Safety training session", "Conduct quarterly safety training for all workers", domain.TaskPriorityMedium, "review", "worker2", "admin", 7, 0},
	{"Calibrate measurement tools", "Annual calibration of precision measurement equipment", domain.TaskPriorityHigh, "done", "worker1", "manager", 0, 2},
}

const (
	demoCommentTask   = "Setup production line monitoring"
	demoCommentAuthor = "worker1"
	demoComment       = "Started working on sensor installation"
)

// Run inserts the demo data. With cfg.Reset set every board table is
// emptied first, in the same transaction.
func (s *Seeder) Run(ctx context.Context) (Result, error) {
	hash, err := s.passwords.Hash(s.cfg.Password)
	if err != nil {
		return Result{}, fmt.Errorf("seeder: hash password: %w", err)
	}

	var res Result
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		res = Result{}

		if s.cfg.Reset {
			if s.reset == nil {
				return errors.New("seeder: reset requested without a resetter")
			}
			if err := s.reset.Reset(ctx); err != nil {
				return fmt.Errorf("seeder: reset: %w", err)
			}
			s.log.InfoContext(ctx, "board tables emptied")
		}

		now := s.now().UTC()

		users := make(map[string]uuid.UUID, len(demoUsers))
		for _, su := range demoUsers {
			u := &domain.User{
				ID:           uuid.New(),
				Email:        su.email,
				Name:         su.name,
				PasswordHash: hash,
				Role:         su.role,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			if err := s.repos.Users.Create(ctx, u); err != nil {
				return fmt.Errorf("seeder: user %s: %w", su.email, err)
			}
			users[su.key] = u.ID
			res.Users++
		}

		columns := make(map[string]*domain.Column, len(demoColumns))
		for _, sc := range demoColumns {
			c := &domain.Column{
				ID:        uuid.New(),
				Name:      sc.name,
				Status:    sc.status,
				Color:     sc.color,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if sc.wipLimit > 0 {
				limit := sc.wipLimit
				c.WIPLimit = &limit
			}
			if err := s.repos.Columns.Create(ctx, c); err != nil {
				return fmt.Errorf("seeder: column %s: %w", sc.name, err)
			}
			columns[sc.key] = c
			res.Columns++
		}

		tasks := make(map[string]uuid.UUID, len(demoTasks))
		for _, st := range demoTasks {
			col := columns[st.column]
			description := st.description
			t := &domain.Task{
				ID:          uuid.New(),
				Title:       st.title,
				Description: &description,
				Priority:    st.priority,
				Status:      col.Status,
				CreatedByID: users[st.creator],
				ColumnID:    col.ID,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if st.assignee != "" {
				id := users[st.assignee]
				t.AssignedToID = &id
			}
			if st.dueInDays > 0 {
				due := now.AddDate(0, 0, st.dueInDays)
				t.DueDate = &due
			}
			if st.completedDaysAgo > 0 {
				done := now.AddDate(0, 0, -st.completedDaysAgo)
				t.CompletedAt = &done
			}
			if err := s.repos.Tasks.Create(ctx, t); err != nil {
				return fmt.Errorf("seeder: task %q: %w", st.title, err)
			}
			tasks[st.title] = t.ID
			res.Tasks++
		}

		comment := &domain.Comment{
			ID:        uuid.New(),
			Content:   demoComment,
			TaskID:    tasks[demoCommentTask],
			AuthorID:  users[demoCommentAuthor],
			CreatedAt: now,
		}
		if err := s.repos.Comments.Create(ctx, comment); err != nil {
			return fmt.Errorf("seeder: comment: %w", err)
		}
		res.Comments++

		return nil
	})
	if err != nil {
		return Result{}, err
	}

	s.log.InfoContext(ctx, "demo data seeded",
		slog.Int("users", res.Users),
		slog.Int("columns", res.Columns),
		slog.Int("tasks", res.Tasks),
		slog.Int("comments", res.Comments),
	)
	return res, nil
}

// DemoLogins lists the seeded accounts for printing after a run.
func DemoLogins() []string {
	out := make([]string, 0, len(demoUsers))
	for _, u := range demoUsers {
		out = append(out, fmt.Sprintf("%s: %s", u.role, u.email))
	}
	return out
}
