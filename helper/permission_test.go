package helper

import (
	"testing"

	"restaurant_manager/constants"
	"restaurant_manager/model"
)

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name  string
		user  *model.User
		roles []string
		want  bool
	}{
		{
			name: "nil user denied",
			want: false,
		},
		{
			name:  "role in list",
			user:  &model.User{Role: constants.ROLE_WAITER},
			roles: []string{constants.ROLE_WAITER, constants.ROLE_KITCHEN},
			want:  true,
		},
		{
			name:  "role not in list",
			user:  &model.User{Role: constants.ROLE_CASHIER},
			roles: []string{constants.ROLE_WAITER, constants.ROLE_KITCHEN},
			want:  false,
		},
		{
			name:  "superadmin bypasses any list",
			user:  &model.User{Role: constants.ROLE_SUPERADMIN, IsSuperAdmin: true},
			roles: []string{constants.ROLE_KITCHEN},
			want:  true,
		},
		{
			name: "superadmin bypasses empty list",
			user: &model.User{Role: constants.ROLE_SUPERADMIN, IsSuperAdmin: true},
			want: true,
		},
		{
			name:  "empty list denies everyone else",
			user:  &model.User{Role: constants.ROLE_ADMIN},
			roles: nil,
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Authorize(tt.user, tt.roles...); got != tt.want {
				t.Errorf("Authorize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckPermission(t *testing.T) {
	tests := []struct {
		name   string
		user   *model.User
		module string
		action string
		want   bool
	}{
		{"nil user", nil, "orders", "view", false},
		{"kitchen can update orders", &model.User{Role: constants.ROLE_KITCHEN}, "orders", "update", true},
		{"kitchen cannot touch billing", &model.User{Role: constants.ROLE_KITCHEN}, "billing", "view", false},
		{"cashier can pay", &model.User{Role: constants.ROLE_CASHIER}, "billing", "pay", true},
		{"cashier can update orders", &model.User{Role: constants.ROLE_CASHIER}, "orders", "update", true},
		{"cashier cannot manage tables", &model.User{Role: constants.ROLE_CASHIER}, "tables", "update", false},
		{"manager cannot delete menu", &model.User{Role: constants.ROLE_MANAGER}, "menu", "delete", false},
		{"admin can delete users", &model.User{Role: constants.ROLE_ADMIN}, "users", "delete", true},
		{"unknown module denies", &model.User{Role: constants.ROLE_ADMIN}, "payroll", "view", false},
		{"unknown role denies", &model.User{Role: "intern"}, "orders", "view", false},
		{"superadmin passes everything", &model.User{IsSuperAdmin: true}, "payroll", "burn", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckPermission(tt.user, tt.module, tt.action); got != tt.want {
				t.Errorf("CheckPermission(%q, %q) = %v, want %v", tt.module, tt.action, got, tt.want)
			}
		})
	}
}
