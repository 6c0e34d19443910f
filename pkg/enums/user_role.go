package enums

import "fmt"

// UserRole represents a system-wide permissions role.
type UserRole string

const (
	UserRoleUser       UserRole = "user"
	UserRoleAdmin      UserRole = "admin"
	UserRoleSuperadmin UserRole = "superadmin"
)

var validUserRoles = []UserRole{
	UserRoleUser,
	UserRoleAdmin,
	UserRoleSuperadmin,
}

// String implements fmt.Stringer.
func (r UserRole) String() string {
	return string(r)
}

// IsValid reports whether the value is a known UserRole.
func (r UserRole) IsValid() bool {
	for _, candidate := range validUserRoles {
		if candidate == r {
			return true
		}
	}
	return false
}

// CanManageInventory reports whether the role may create or mutate tanks,
// inventory rows, and stock transactions.
func (r UserRole) CanManageInventory() bool {
	return r == UserRoleAdmin || r == UserRoleSuperadmin
}

// CanManageUsers reports whether the role may administer user accounts.
func (r UserRole) CanManageUsers() bool {
	return r == UserRoleSuperadmin
}

// ParseUserRole converts raw input into a UserRole.
func ParseUserRole(value string) (UserRole, error) {
	for _, candidate := range validUserRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid user role %q", value)
}
