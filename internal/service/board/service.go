package board

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/serviceflow/kanban-backend/internal/domain"
)

type columnRepo interface {
	List(ctx context.Context) ([]domain.Column, error)
}

type taskRepo interface {
	List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error)
	Stats(ctx context.Context, assignedTo *uuid.UUID, now time.Time) (domain.TaskStats, error)
}

type userRepo interface {
	List(ctx context.Context) ([]domain.User, error)
}

// Service assembles the board view and dashboard counters.
type Service struct {
	log     *slog.Logger
	columns columnRepo
	tasks   taskRepo
	users   userRepo
}

// NewService creates a new board service instance.
func NewService(logger *slog.Logger, columns columnRepo, tasks taskRepo, users userRepo) *Service {
	return &Service{
		log:     logger.With("service", "board"),
		columns: columns,
		tasks:   tasks,
		users:   users,
	}
}

// ColumnView is one column of the board with the tasks the caller can see.
// TaskCount and AtWIPLimit describe the whole column regardless of who is
// looking at it.
type ColumnView struct {
	Column     domain.Column
	Tasks      []domain.Task
	TaskCount  int
	AtWIPLimit bool
}

// Board is the kanban view model.
type Board struct {
	Columns []ColumnView
	Users   []domain.UserSummary
}

// GetBoard returns every column ordered by position with the caller's
// visible tasks grouped under it, plus the user directory for assignment.
func (s *Service) GetBoard(ctx context.Context) (*Board, error) {
	caller, err := domain.CallerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	filter := domain.TaskFilter{}
	if !domain.CanViewAllTasks(caller.Role) {
		filter.AssignedToID = &caller.ID
	}

	var (
		columns []domain.Column
		tasks   []domain.Task
		users   []domain.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		columns, err = s.columns.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		tasks, err = s.tasks.List(gctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		users, err = s.users.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("board.GetBoard: %w", err)
	}

	byColumn := make(map[uuid.UUID][]domain.Task, len(columns))
	for _, t := range tasks {
		byColumn[t.ColumnID] = append(byColumn[t.ColumnID], t)
	}

	board := &Board{
		Columns: make([]ColumnView, 0, len(columns)),
		Users:   make([]domain.UserSummary, 0, len(users)),
	}
	for _, c := range columns {
		colTasks := byColumn[c.ID]
		if colTasks == nil {
			colTasks = []domain.Task{}
		}
		board.Columns = append(board.Columns, ColumnView{
			Column:     c,
			Tasks:      colTasks,
			TaskCount:  c.TaskCount,
			AtWIPLimit: c.AtWIPLimit(c.TaskCount),
		})
	}
	for i := range users {
		board.Users = append(board.Users, users[i].Summary())
	}

	return board, nil
}

// GetStats returns the dashboard counters, limited to the caller's own
// tasks for workers.
func (s *Service) GetStats(ctx context.Context) (domain.TaskStats, error) {
	caller, err := domain.CallerFromCtx(ctx)
	if err != nil {
		return domain.TaskStats{}, err
	}

	var assignedTo *uuid.UUID
	if !domain.CanViewAllTasks(caller.Role) {
		assignedTo = &caller.ID
	}

	stats, err := s.tasks.Stats(ctx, assignedTo, time.Now())
	if err != nil {
		return domain.TaskStats{}, fmt.Errorf("board.GetStats: %w", err)
	}
	return stats, nil
}
