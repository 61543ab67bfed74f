package domain

import "time"

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleAgent   = "agent"
)

const (
	UserActive   = "active"
	UserInactive = "inactive"
)

// BuiltinSuperID is the fixed id of the built-in super admin account.
const BuiltinSuperID int64 = 1

// AdminUser is a back-office operator account. There is no real credential
// store: the built-in admin/admin pair and the demo password rule in the
// auth handler are the whole authentication model.
type AdminUser struct {
	ID          int64     `json:"id,string"`
	Realname    string    `json:"realname"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	Permissions []string  `json:"permissions"`
	Status      string    `json:"status"`
	LastLogin   time.Time `json:"last_login"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ValidRole(s string) bool {
	switch s {
	case RoleAdmin, RoleManager, RoleAgent:
		return true
	}
	return false
}

// BuiltinSuperAdmin returns the always-present super admin account.
func BuiltinSuperAdmin() AdminUser {
	return AdminUser{
		ID:          BuiltinSuperID,
		Realname:    "Administrator",
		Username:    "admin",
		Email:       "admin@tripdesk.local",
		Role:        RoleAdmin,
		Permissions: []string{"*"},
		Status:      UserActive,
	}
}
