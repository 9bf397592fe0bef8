package auth

import "banarts/internal/models"

const (
	PermContentRead   = "content:read"
	PermContentWrite  = "content:write"
	PermContentDelete = "content:delete"
	PermUsersManage   = "users:manage"
	PermDashboardView = "dashboard:view"
)

// Permissions maps each role to what it may do.
var Permissions = map[models.UserRole][]string{
	models.UserRoleAdmin: {
		PermContentRead,
		PermContentWrite,
		PermContentDelete,
		PermUsersManage,
		PermDashboardView,
	},
	models.UserRoleUser: {
		PermContentRead,
		PermContentWrite,
	},
}

func HasPermission(role models.UserRole, permission string) bool {
	for _, p := range Permissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}
