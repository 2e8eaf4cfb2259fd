package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/serviceflow/kanban-backend/internal/domain"
	"github.com/serviceflow/kanban-backend/internal/service/auth"
	"github.com/serviceflow/kanban-backend/internal/service/board"
	"github.com/serviceflow/kanban-backend/internal/service/column"
	"github.com/serviceflow/kanban-backend/internal/service/task"
	"github.com/serviceflow/kanban-backend/internal/service/user"
	"sync"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	LoginFunc   func(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	RefreshFunc func(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error)
	LogoutFunc  func(ctx context.Context) error
	MeFunc      func(ctx context.Context) (*domain.User, error)

	calls struct {
		Login []struct {
			Ctx   context.Context
			Input auth.LoginInput
		}
		Refresh []struct {
			Ctx   context.Context
			Input auth.RefreshInput
		}
		Logout []struct {
			Ctx context.Context
		}
		Me []struct {
			Ctx context.Context
		}
	}
	lockLogin   sync.RWMutex
	lockRefresh sync.RWMutex
	lockLogout  sync.RWMutex
	lockMe      sync.RWMutex
}

func (mock *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error) {
	if mock.LoginFunc == nil {
		panic("authServiceMock.LoginFunc: method is nil but authService.Login was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.LoginInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, callInfo)
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, input)
}

func (mock *authServiceMock) LoginCalls() []struct {
	Ctx   context.Context
	Input auth.LoginInput
} {
	mock.lockLogin.RLock()
	calls := mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}

func (mock *authServiceMock) Refresh(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error) {
	if mock.RefreshFunc == nil {
		panic("authServiceMock.RefreshFunc: method is nil but authService.Refresh was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.RefreshInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockRefresh.Lock()
	mock.calls.Refresh = append(mock.calls.Refresh, callInfo)
	mock.lockRefresh.Unlock()
	return mock.RefreshFunc(ctx, input)
}

func (mock *authServiceMock) RefreshCalls() []struct {
	Ctx   context.Context
	Input auth.RefreshInput
} {
	mock.lockRefresh.RLock()
	calls := mock.calls.Refresh
	mock.lockRefresh.RUnlock()
	return calls
}

func (mock *authServiceMock) Logout(ctx context.Context) error {
	if mock.LogoutFunc == nil {
		panic("authServiceMock.LogoutFunc: method is nil but authService.Logout was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockLogout.Lock()
	mock.calls.Logout = append(mock.calls.Logout, callInfo)
	mock.lockLogout.Unlock()
	return mock.LogoutFunc(ctx)
}

func (mock *authServiceMock) LogoutCalls() []struct {
	Ctx context.Context
} {
	mock.lockLogout.RLock()
	calls := mock.calls.Logout
	mock.lockLogout.RUnlock()
	return calls
}

func (mock *authServiceMock) Me(ctx context.Context) (*domain.User, error) {
	if mock.MeFunc == nil {
		panic("authServiceMock.MeFunc: method is nil but authService.Me was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockMe.Lock()
	mock.calls.Me = append(mock.calls.Me, callInfo)
	mock.lockMe.Unlock()
	return mock.MeFunc(ctx)
}

func (mock *authServiceMock) MeCalls() []struct {
	Ctx context.Context
} {
	mock.lockMe.RLock()
	calls := mock.calls.Me
	mock.lockMe.RUnlock()
	return calls
}

var _ taskService = &taskServiceMock{}

type taskServiceMock struct {
	ListTasksFunc  func(ctx context.Context, columnID *uuid.UUID) ([]domain.Task, error)
	GetTaskFunc    func(ctx context.Context, id uuid.UUID) (*task.TaskView, error)
	CreateTaskFunc func(ctx context.Context, input task.CreateTaskInput) (*task.TaskView, error)
	UpdateTaskFunc func(ctx context.Context, id uuid.UUID, input task.TaskUpdateInput) (*task.TaskView, error)
	MoveTaskFunc   func(ctx context.Context, id uuid.UUID, columnID string) (*task.TaskView, error)
	DeleteTaskFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		ListTasks []struct {
			Ctx      context.Context
			ColumnID *uuid.UUID
		}
		GetTask []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		CreateTask []struct {
			Ctx   context.Context
			Input task.CreateTaskInput
		}
		UpdateTask []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input task.TaskUpdateInput
		}
		MoveTask []struct {
			Ctx      context.Context
			ID       uuid.UUID
			ColumnID string
		}
		DeleteTask []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockListTasks  sync.RWMutex
	lockGetTask    sync.RWMutex
	lockCreateTask sync.RWMutex
	lockUpdateTask sync.RWMutex
	lockMoveTask   sync.RWMutex
	lockDeleteTask sync.RWMutex
}

func (mock *taskServiceMock) ListTasks(ctx context.Context, columnID *uuid.UUID) ([]domain.Task, error) {
	if mock.ListTasksFunc == nil {
		panic("taskServiceMock.ListTasksFunc: method is nil but taskService.ListTasks was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ColumnID *uuid.UUID
	}{
		Ctx:      ctx,
		ColumnID: columnID,
	}
	mock.lockListTasks.Lock()
	mock.calls.ListTasks = append(mock.calls.ListTasks, callInfo)
	mock.lockListTasks.Unlock()
	return mock.ListTasksFunc(ctx, columnID)
}

func (mock *taskServiceMock) ListTasksCalls() []struct {
	Ctx      context.Context
	ColumnID *uuid.UUID
} {
	mock.lockListTasks.RLock()
	calls := mock.calls.ListTasks
	mock.lockListTasks.RUnlock()
	return calls
}

func (mock *taskServiceMock) GetTask(ctx context.Context, id uuid.UUID) (*task.TaskView, error) {
	if mock.GetTaskFunc == nil {
		panic("taskServiceMock.GetTaskFunc: method is nil but taskService.GetTask was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetTask.Lock()
	mock.calls.GetTask = append(mock.calls.GetTask, callInfo)
	mock.lockGetTask.Unlock()
	return mock.GetTaskFunc(ctx, id)
}

func (mock *taskServiceMock) GetTaskCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetTask.RLock()
	calls := mock.calls.GetTask
	mock.lockGetTask.RUnlock()
	return calls
}

func (mock *taskServiceMock) CreateTask(ctx context.Context, input task.CreateTaskInput) (*task.TaskView, error) {
	if mock.CreateTaskFunc == nil {
		panic("taskServiceMock.CreateTaskFunc: method is nil but taskService.CreateTask was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input task.CreateTaskInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateTask.Lock()
	mock.calls.CreateTask = append(mock.calls.CreateTask, callInfo)
	mock.lockCreateTask.Unlock()
	return mock.CreateTaskFunc(ctx, input)
}

func (mock *taskServiceMock) CreateTaskCalls() []struct {
	Ctx   context.Context
	Input task.CreateTaskInput
} {
	mock.lockCreateTask.RLock()
	calls := mock.calls.CreateTask
	mock.lockCreateTask.RUnlock()
	return calls
}

func (mock *taskServiceMock) UpdateTask(ctx context.Context, id uuid.UUID, input task.TaskUpdateInput) (*task.TaskView, error) {
	if mock.UpdateTaskFunc == nil {
		panic("taskServiceMock.UpdateTaskFunc: method is nil but taskService.UpdateTask was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input task.TaskUpdateInput
	}{
		Ctx:   ctx,
		ID:    id,
		Input: input,
	}
	mock.lockUpdateTask.Lock()
	mock.calls.UpdateTask = append(mock.calls.UpdateTask, callInfo)
	mock.lockUpdateTask.Unlock()
	return mock.UpdateTaskFunc(ctx, id, input)
}

func (mock *taskServiceMock) UpdateTaskCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input task.TaskUpdateInput
} {
	mock.lockUpdateTask.RLock()
	calls := mock.calls.UpdateTask
	mock.lockUpdateTask.RUnlock()
	return calls
}

func (mock *taskServiceMock) MoveTask(ctx context.Context, id uuid.UUID, columnID string) (*task.TaskView, error) {
	if mock.MoveTaskFunc == nil {
		panic("taskServiceMock.MoveTaskFunc: method is nil but taskService.MoveTask was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ID       uuid.UUID
		ColumnID string
	}{
		Ctx:      ctx,
		ID:       id,
		ColumnID: columnID,
	}
	mock.lockMoveTask.Lock()
	mock.calls.MoveTask = append(mock.calls.MoveTask, callInfo)
	mock.lockMoveTask.Unlock()
	return mock.MoveTaskFunc(ctx, id, columnID)
}

func (mock *taskServiceMock) MoveTaskCalls() []struct {
	Ctx      context.Context
	ID       uuid.UUID
	ColumnID string
} {
	mock.lockMoveTask.RLock()
	calls := mock.calls.MoveTask
	mock.lockMoveTask.RUnlock()
	return calls
}

func (mock *taskServiceMock) DeleteTask(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteTaskFunc == nil {
		panic("taskServiceMock.DeleteTaskFunc: method is nil but taskService.DeleteTask was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDeleteTask.Lock()
	mock.calls.DeleteTask = append(mock.calls.DeleteTask, callInfo)
	mock.lockDeleteTask.Unlock()
	return mock.DeleteTaskFunc(ctx, id)
}

func (mock *taskServiceMock) DeleteTaskCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDeleteTask.RLock()
	calls := mock.calls.DeleteTask
	mock.lockDeleteTask.RUnlock()
	return calls
}

var _ commentService = &commentServiceMock{}

type commentServiceMock struct {
	ListCommentsFunc func(ctx context.Context, taskID uuid.UUID) ([]domain.Comment, error)
	AddCommentFunc   func(ctx context.Context, taskID uuid.UUID, content string) (*domain.Comment, error)

	calls struct {
		ListComments []struct {
			Ctx    context.Context
			TaskID uuid.UUID
		}
		AddComment []struct {
			Ctx     context.Context
			TaskID  uuid.UUID
			Content string
		}
	}
	lockListComments sync.RWMutex
	lockAddComment   sync.RWMutex
}

func (mock *commentServiceMock) ListComments(ctx context.Context, taskID uuid.UUID) ([]domain.Comment, error) {
	if mock.ListCommentsFunc == nil {
		panic("commentServiceMock.ListCommentsFunc: method is nil but commentService.ListComments was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TaskID uuid.UUID
	}{
		Ctx:    ctx,
		TaskID: taskID,
	}
	mock.lockListComments.Lock()
	mock.calls.ListComments = append(mock.calls.ListComments, callInfo)
	mock.lockListComments.Unlock()
	return mock.ListCommentsFunc(ctx, taskID)
}

func (mock *commentServiceMock) ListCommentsCalls() []struct {
	Ctx    context.Context
	TaskID uuid.UUID
} {
	mock.lockListComments.RLock()
	calls := mock.calls.ListComments
	mock.lockListComments.RUnlock()
	return calls
}

func (mock *commentServiceMock) AddComment(ctx context.Context, taskID uuid.UUID, content string) (*domain.Comment, error) {
	if mock.AddCommentFunc == nil {
		panic("commentServiceMock.AddCommentFunc: method is nil but commentService.AddComment was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TaskID  uuid.UUID
		Content string
	}{
		Ctx:     ctx,
		TaskID:  taskID,
		Content: content,
	}
	mock.lockAddComment.Lock()
	mock.calls.AddComment = append(mock.calls.AddComment, callInfo)
	mock.lockAddComment.Unlock()
	return mock.AddCommentFunc(ctx, taskID, content)
}

func (mock *commentServiceMock) AddCommentCalls() []struct {
	Ctx     context.Context
	TaskID  uuid.UUID
	Content string
} {
	mock.lockAddComment.RLock()
	calls := mock.calls.AddComment
	mock.lockAddComment.RUnlock()
	return calls
}

var _ columnService = &columnServiceMock{}

type columnServiceMock struct {
	ListColumnsFunc  func(ctx context.Context) ([]domain.Column, error)
	CreateColumnFunc func(ctx context.Context, input column.CreateColumnInput) (*domain.Column, error)

	calls struct {
		ListColumns []struct {
			Ctx context.Context
		}
		CreateColumn []struct {
			Ctx   context.Context
			Input column.CreateColumnInput
		}
	}
	lockListColumns  sync.RWMutex
	lockCreateColumn sync.RWMutex
}

func (mock *columnServiceMock) ListColumns(ctx context.Context) ([]domain.Column, error) {
	if mock.ListColumnsFunc == nil {
		panic("columnServiceMock.ListColumnsFunc: method is nil but columnService.ListColumns was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListColumns.Lock()
	mock.calls.ListColumns = append(mock.calls.ListColumns, callInfo)
	mock.lockListColumns.Unlock()
	return mock.ListColumnsFunc(ctx)
}

func (mock *columnServiceMock) ListColumnsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListColumns.RLock()
	calls := mock.calls.ListColumns
	mock.lockListColumns.RUnlock()
	return calls
}

func (mock *columnServiceMock) CreateColumn(ctx context.Context, input column.CreateColumnInput) (*domain.Column, error) {
	if mock.CreateColumnFunc == nil {
		panic("columnServiceMock.CreateColumnFunc: method is nil but columnService.CreateColumn was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input column.CreateColumnInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateColumn.Lock()
	mock.calls.CreateColumn = append(mock.calls.CreateColumn, callInfo)
	mock.lockCreateColumn.Unlock()
	return mock.CreateColumnFunc(ctx, input)
}

func (mock *columnServiceMock) CreateColumnCalls() []struct {
	Ctx   context.Context
	Input column.CreateColumnInput
} {
	mock.lockCreateColumn.RLock()
	calls := mock.calls.CreateColumn
	mock.lockCreateColumn.RUnlock()
	return calls
}

var _ boardService = &boardServiceMock{}

type boardServiceMock struct {
	GetBoardFunc func(ctx context.Context) (*board.Board, error)
	GetStatsFunc func(ctx context.Context) (domain.TaskStats, error)

	calls struct {
		GetBoard []struct {
			Ctx context.Context
		}
		GetStats []struct {
			Ctx context.Context
		}
	}
	lockGetBoard sync.RWMutex
	lockGetStats sync.RWMutex
}

func (mock *boardServiceMock) GetBoard(ctx context.Context) (*board.Board, error) {
	if mock.GetBoardFunc == nil {
		panic("boardServiceMock.GetBoardFunc: method is nil but boardService.GetBoard was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGetBoard.Lock()
	mock.calls.GetBoard = append(mock.calls.GetBoard, callInfo)
	mock.lockGetBoard.Unlock()
	return mock.GetBoardFunc(ctx)
}

func (mock *boardServiceMock) GetBoardCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetBoard.RLock()
	calls := mock.calls.GetBoard
	mock.lockGetBoard.RUnlock()
	return calls
}

func (mock *boardServiceMock) GetStats(ctx context.Context) (domain.TaskStats, error) {
	if mock.GetStatsFunc == nil {
		panic("boardServiceMock.GetStatsFunc: method is nil but boardService.GetStats was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGetStats.Lock()
	mock.calls.GetStats = append(mock.calls.GetStats, callInfo)
	mock.lockGetStats.Unlock()
	return mock.GetStatsFunc(ctx)
}

func (mock *boardServiceMock) GetStatsCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetStats.RLock()
	calls := mock.calls.GetStats
	mock.lockGetStats.RUnlock()
	return calls
}

var _ userService = &userServiceMock{}

type userServiceMock struct {
	ListUsersFunc    func(ctx context.Context) ([]domain.UserWithStats, error)
	CreateUserFunc   func(ctx context.Context, input user.CreateUserInput) (*domain.User, error)
	SetUserRoleFunc  func(ctx context.Context, targetUserID uuid.UUID, role domain.UserRole) (*domain.User, error)
	ListAuditLogFunc func(ctx context.Context, limit int, offset int) ([]domain.AuditEntry, error)
	DirectoryFunc    func(ctx context.Context) ([]domain.UserSummary, error)

	calls struct {
		ListUsers []struct {
			Ctx context.Context
		}
		CreateUser []struct {
			Ctx   context.Context
			Input user.CreateUserInput
		}
		SetUserRole []struct {
			Ctx          context.Context
			TargetUserID uuid.UUID
			Role         domain.UserRole
		}
		ListAuditLog []struct {
			Ctx    context.Context
			Limit  int
			Offset int
		}
		Directory []struct {
			Ctx context.Context
		}
	}
	lockListUsers    sync.RWMutex
	lockCreateUser   sync.RWMutex
	lockSetUserRole  sync.RWMutex
	lockListAuditLog sync.RWMutex
	lockDirectory    sync.RWMutex
}

func (mock *userServiceMock) ListUsers(ctx context.Context) ([]domain.UserWithStats, error) {
	if mock.ListUsersFunc == nil {
		panic("userServiceMock.ListUsersFunc: method is nil but userService.ListUsers was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListUsers.Lock()
	mock.calls.ListUsers = append(mock.calls.ListUsers, callInfo)
	mock.lockListUsers.Unlock()
	return mock.ListUsersFunc(ctx)
}

func (mock *userServiceMock) ListUsersCalls() []struct {
	Ctx context.Context
} {
	mock.lockListUsers.RLock()
	calls := mock.calls.ListUsers
	mock.lockListUsers.RUnlock()
	return calls
}

func (mock *userServiceMock) CreateUser(ctx context.Context, input user.CreateUserInput) (*domain.User, error) {
	if mock.CreateUserFunc == nil {
		panic("userServiceMock.CreateUserFunc: method is nil but userService.CreateUser was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.CreateUserInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateUser.Lock()
	mock.calls.CreateUser = append(mock.calls.CreateUser, callInfo)
	mock.lockCreateUser.Unlock()
	return mock.CreateUserFunc(ctx, input)
}

func (mock *userServiceMock) CreateUserCalls() []struct {
	Ctx   context.Context
	Input user.CreateUserInput
} {
	mock.lockCreateUser.RLock()
	calls := mock.calls.CreateUser
	mock.lockCreateUser.RUnlock()
	return calls
}

func (mock *userServiceMock) SetUserRole(ctx context.Context, targetUserID uuid.UUID, role domain.UserRole) (*domain.User, error) {
	if mock.SetUserRoleFunc == nil {
		panic("userServiceMock.SetUserRoleFunc: method is nil but userService.SetUserRole was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		TargetUserID uuid.UUID
		Role         domain.UserRole
	}{
		Ctx:          ctx,
		TargetUserID: targetUserID,
		Role:         role,
	}
	mock.lockSetUserRole.Lock()
	mock.calls.SetUserRole = append(mock.calls.SetUserRole, callInfo)
	mock.lockSetUserRole.Unlock()
	return mock.SetUserRoleFunc(ctx, targetUserID, role)
}

func (mock *userServiceMock) SetUserRoleCalls() []struct {
	Ctx          context.Context
	TargetUserID uuid.UUID
	Role         domain.UserRole
} {
	mock.lockSetUserRole.RLock()
	calls := mock.calls.SetUserRole
	mock.lockSetUserRole.RUnlock()
	return calls
}

func (mock *userServiceMock) ListAuditLog(ctx context.Context, limit int, offset int) ([]domain.AuditEntry, error) {
	if mock.ListAuditLogFunc == nil {
		panic("userServiceMock.ListAuditLogFunc: method is nil but userService.ListAuditLog was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Limit  int
		Offset int
	}{
		Ctx:    ctx,
		Limit:  limit,
		Offset: offset,
	}
	mock.lockListAuditLog.Lock()
	mock.calls.ListAuditLog = append(mock.calls.ListAuditLog, callInfo)
	mock.lockListAuditLog.Unlock()
	return mock.ListAuditLogFunc(ctx, limit, offset)
}

func (mock *userServiceMock) ListAuditLogCalls() []struct {
	Ctx    context.Context
	Limit  int
	Offset int
} {
	mock.lockListAuditLog.RLock()
	calls := mock.calls.ListAuditLog
	mock.lockListAuditLog.RUnlock()
	return calls
}

func (mock *userServiceMock) Directory(ctx context.Context) ([]domain.UserSummary, error) {
	if mock.DirectoryFunc == nil {
		panic("userServiceMock.DirectoryFunc: method is nil but userService.Directory was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockDirectory.Lock()
	mock.calls.Directory = append(mock.calls.Directory, callInfo)
	mock.lockDirectory.Unlock()
	return mock.DirectoryFunc(ctx)
}

func (mock *userServiceMock) DirectoryCalls() []struct {
	Ctx context.Context
} {
	mock.lockDirectory.RLock()
	calls := mock.calls.Directory
	mock.lockDirectory.RUnlock()
	return calls
}
