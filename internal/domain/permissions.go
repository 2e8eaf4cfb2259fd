package domain

// Permission rules are pure functions of the caller's role and, where it
// matters, whether the caller is the task's assignee. Unknown roles are
// denied everything.

// CanCreateTask reports whether role may create tasks.
func CanCreateTask(role UserRole) bool {
	return role == UserRoleAdmin || role == UserRoleManager
}

// CanEditTask reports whether role may edit a task. Workers may only edit
// tasks assigned to them, and only through the worker update shape.
func CanEditTask(role UserRole, isAssignedToCaller bool) bool {
	switch role {
	case UserRoleAdmin, UserRoleManager:
		return true
	case UserRoleWorker:
		return isAssignedToCaller
	}
	return false
}

// CanDeleteTask reports whether role may delete tasks.
func CanDeleteTask(role UserRole) bool {
	return role == UserRoleAdmin || role == UserRoleManager
}

// CanManageUsers reports whether role may administer users and read the audit log.
func CanManageUsers(role UserRole) bool {
	return role == UserRoleAdmin
}

// CanViewAllTasks reports whether role sees every task rather than only its own.
func CanViewAllTasks(role UserRole) bool {
	return role == UserRoleAdmin || role == UserRoleManager
}

// CanViewTask reports whether role may open a single task.
func CanViewTask(role UserRole, isAssignedToCaller bool) bool {
	return CanViewAllTasks(role) || (role == UserRoleWorker && isAssignedToCaller)
}

// CanManageColumns reports whether role may create board columns.
func CanManageColumns(role UserRole) bool {
	return role == UserRoleAdmin
}
