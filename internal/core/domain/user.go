package domain

import "github.com/google/uuid"

type Role string

const (
	RoleOwner      Role = "owner"
	RoleManager    Role = "manager"
	RoleSupervisor Role = "supervisor"
	RoleCashier    Role = "cashier"
)

// privilege order: owner > manager > supervisor > cashier
var roleLevels = map[Role]int{
	RoleOwner:      4,
	RoleManager:    3,
	RoleSupervisor: 2,
	RoleCashier:    1,
}

// HasPermission reports whether role meets the lowest level among required.
// Used only for feature visibility; core commands trust the caller.
func HasPermission(role Role, required ...Role) bool {
	level, ok := roleLevels[role]
	if !ok || len(required) == 0 {
		return false
	}

	min := roleLevels[required[0]]
	for _, r := range required[1:] {
		if roleLevels[r] < min {
			min = roleLevels[r]
		}
	}

	return level >= min
}

type User struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Role  Role      `json:"role"`
}
