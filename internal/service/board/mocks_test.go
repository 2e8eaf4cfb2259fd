package board

import (
	"context"
	"github.com/google/uuid"
	"github.com/serviceflow/kanban-backend/internal/domain"
	"sync"
	"time"
)

var _ columnRepo = &columnRepoMock{}

type columnRepoMock struct {
	ListFunc func(ctx context.Context) ([]domain.Column, error)

	calls struct {
		List []struct {
			Ctx context.Context
		}
	}
	lockList sync.RWMutex
}

func (mock *columnRepoMock) List(ctx context.Context) ([]domain.Column, error) {
	if mock.ListFunc == nil {
		panic("columnRepoMock.ListFunc: method is nil but columnRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *columnRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ taskRepo = &taskRepoMock{}

type taskRepoMock struct {
	ListFunc  func(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error)
	StatsFunc func(ctx context.Context, assignedTo *uuid.UUID, now time.Time) (domain.TaskStats, error)

	calls struct {
		List []struct {
			Ctx    context.Context
			Filter domain.TaskFilter
		}
		Stats []struct {
			Ctx        context.Context
			AssignedTo *uuid.UUID
			Now        time.Time
		}
	}
	lockList  sync.RWMutex
	lockStats sync.RWMutex
}

func (mock *taskRepoMock) List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	if mock.ListFunc == nil {
		panic("taskRepoMock.ListFunc: method is nil but taskRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.TaskFilter
	}{
		Ctx:    ctx,
		Filter: filter,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *taskRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.TaskFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *taskRepoMock) Stats(ctx context.Context, assignedTo *uuid.UUID, now time.Time) (domain.TaskStats, error) {
	if mock.StatsFunc == nil {
		panic("taskRepoMock.StatsFunc: method is nil but taskRepo.Stats was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		AssignedTo *uuid.UUID
		Now        time.Time
	}{
		Ctx:        ctx,
		AssignedTo: assignedTo,
		Now:        now,
	}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx, assignedTo, now)
}

func (mock *taskRepoMock) StatsCalls() []struct {
	Ctx        context.Context
	AssignedTo *uuid.UUID
	Now        time.Time
} {
	mock.lockStats.RLock()
	calls := mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	ListFunc func(ctx context.Context) ([]domain.User, error)

	calls struct {
		List []struct {
			Ctx context.Context
		}
	}
	lockList sync.RWMutex
}

func (mock *userRepoMock) List(ctx context.Context) ([]domain.User, error) {
	if mock.ListFunc == nil {
		panic("userRepoMock.ListFunc: method is nil but userRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *userRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
