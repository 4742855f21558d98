package helper

import (
	"restaurant_manager/constants"
	"restaurant_manager/model"
)

// Authorize is the single role gate every staff mutation goes through.
// The superadmin bypass is checked before the role list.
func Authorize(user *model.User, roles ...string) bool {
	if user == nil {
		return false
	}
	if user.IsSuperAdmin {
		return true
	}
	for _, role := range roles {
		if user.Role == role {
			return true
		}
	}
	return false
}

// rolePermissions is the module/action matrix for non-superadmin identities.
// Unspecified combinations deny.
var rolePermissions = map[string]map[string][]string{
	constants.ROLE_ADMIN: {
		"users":    {"view", "create", "update", "delete"},
		"menu":     {"view", "create", "update", "delete"},
		"tables":   {"view", "create", "update", "delete"},
		"orders":   {"view", "update"},
		"billing":  {"view", "pay"},
		"feedback": {"view"},
	},
	constants.ROLE_MANAGER: {
		"menu":     {"view", "create", "update"},
		"tables":   {"view", "create", "update"},
		"orders":   {"view", "update"},
		"billing":  {"view"},
		"feedback": {"view"},
	},
	constants.ROLE_WAITER: {
		"tables": {"view", "update"},
		"orders": {"view", "update"},
	},
	constants.ROLE_KITCHEN: {
		"orders": {"view", "update"},
	},
	constants.ROLE_CASHIER: {
		"orders":  {"view", "update"},
		"billing": {"view", "pay"},
	},
	constants.ROLE_STAFF: {
		"tables": {"view"},
		"orders": {"view"},
	},
}

// CheckPermission answers module/action-level checks. Superadmins pass
// unconditionally; everyone else goes through the matrix.
func CheckPermission(user *model.User, module, action string) bool {
	if user == nil {
		return false
	}
	if user.IsSuperAdmin {
		return true
	}
	actions, ok := rolePermissions[user.Role][module]
	if !ok {
		return false
	}
	for _, a := range actions {
		if a == action {
			return true
		}
	}
	return false
}
