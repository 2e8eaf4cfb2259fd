package task

import (
	"context"
	"github.com/google/uuid"
	"github.com/serviceflow/kanban-backend/internal/domain"
	"sync"
)

var _ taskRepo = &taskRepoMock{}

type taskRepoMock struct {
	CreateFunc        func(ctx context.Context, t *domain.Task) error
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	ListFunc          func(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error)
	UpdateFunc        func(ctx context.Context, id uuid.UUID, patch domain.TaskPatch) (*domain.Task, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
	CountInColumnFunc func(ctx context.Context, columnID uuid.UUID) (int, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			T   *domain.Task
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Filter domain.TaskFilter
		}
		Update []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Patch domain.TaskPatch
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		CountInColumn []struct {
			Ctx      context.Context
			ColumnID uuid.UUID
		}
	}
	lockCreate        sync.RWMutex
	lockGetByID       sync.RWMutex
	lockList          sync.RWMutex
	lockUpdate        sync.RWMutex
	lockDelete        sync.RWMutex
	lockCountInColumn sync.RWMutex
}

func (mock *taskRepoMock) Create(ctx context.Context, t *domain.Task) error {
	if mock.CreateFunc == nil {
		panic("taskRepoMock.CreateFunc: method is nil but taskRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   *domain.Task
	}{
		Ctx: ctx,
		T:   t,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *taskRepoMock) CreateCalls() []struct {
	Ctx context.Context
	T   *domain.Task
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *taskRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if mock.GetByIDFunc == nil {
		panic("taskRepoMock.GetByIDFunc: method is nil but taskRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *taskRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
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

func (mock *taskRepoMock) Update(ctx context.Context, id uuid.UUID, patch domain.TaskPatch) (*domain.Task, error) {
	if mock.UpdateFunc == nil {
		panic("taskRepoMock.UpdateFunc: method is nil but taskRepo.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Patch domain.TaskPatch
	}{
		Ctx:   ctx,
		ID:    id,
		Patch: patch,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, patch)
}

func (mock *taskRepoMock) UpdateCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Patch domain.TaskPatch
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *taskRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("taskRepoMock.DeleteFunc: method is nil but taskRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *taskRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *taskRepoMock) CountInColumn(ctx context.Context, columnID uuid.UUID) (int, error) {
	if mock.CountInColumnFunc == nil {
		panic("taskRepoMock.CountInColumnFunc: method is nil but taskRepo.CountInColumn was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ColumnID uuid.UUID
	}{
		Ctx:      ctx,
		ColumnID: columnID,
	}
	mock.lockCountInColumn.Lock()
	mock.calls.CountInColumn = append(mock.calls.CountInColumn, callInfo)
	mock.lockCountInColumn.Unlock()
	return mock.CountInColumnFunc(ctx, columnID)
}

func (mock *taskRepoMock) CountInColumnCalls() []struct {
	Ctx      context.Context
	ColumnID uuid.UUID
} {
	mock.lockCountInColumn.RLock()
	calls := mock.calls.CountInColumn
	mock.lockCountInColumn.RUnlock()
	return calls
}

var _ columnRepo = &columnRepoMock{}

type columnRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Column, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *columnRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Column, error) {
	if mock.GetByIDFunc == nil {
		panic("columnRepoMock.GetByIDFunc: method is nil but columnRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *columnRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

var _ commentRepo = &commentRepoMock{}

type commentRepoMock struct {
	ListByTaskFunc func(ctx context.Context, taskID uuid.UUID) ([]domain.Comment, error)

	calls struct {
		ListByTask []struct {
			Ctx    context.Context
			TaskID uuid.UUID
		}
	}
	lockListByTask sync.RWMutex
}

func (mock *commentRepoMock) ListByTask(ctx context.Context, taskID uuid.UUID) ([]domain.Comment, error) {
	if mock.ListByTaskFunc == nil {
		panic("commentRepoMock.ListByTaskFunc: method is nil but commentRepo.ListByTask was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TaskID uuid.UUID
	}{
		Ctx:    ctx,
		TaskID: taskID,
	}
	mock.lockListByTask.Lock()
	mock.calls.ListByTask = append(mock.calls.ListByTask, callInfo)
	mock.lockListByTask.Unlock()
	return mock.ListByTaskFunc(ctx, taskID)
}

func (mock *commentRepoMock) ListByTaskCalls() []struct {
	Ctx    context.Context
	TaskID uuid.UUID
} {
	mock.lockListByTask.RLock()
	calls := mock.calls.ListByTask
	mock.lockListByTask.RUnlock()
	return calls
}

var _ auditLogger = &auditLoggerMock{}

type auditLoggerMock struct {
	LogFunc func(ctx context.Context, record domain.AuditRecord) error

	calls struct {
		Log []struct {
			Ctx    context.Context
			Record domain.AuditRecord
		}
	}
	lockLog sync.RWMutex
}

func (mock *auditLoggerMock) Log(ctx context.Context, record domain.AuditRecord) error {
	if mock.LogFunc == nil {
		panic("auditLoggerMock.LogFunc: method is nil but auditLogger.Log was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Record domain.AuditRecord
	}{
		Ctx:    ctx,
		Record: record,
	}
	mock.lockLog.Lock()
	mock.calls.Log = append(mock.calls.Log, callInfo)
	mock.lockLog.Unlock()
	return mock.LogFunc(ctx, record)
}

func (mock *auditLoggerMock) LogCalls() []struct {
	Ctx    context.Context
	Record domain.AuditRecord
} {
	mock.lockLog.RLock()
	calls := mock.calls.Log
	mock.lockLog.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{
		Ctx: ctx,
		Fn:  fn,
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
