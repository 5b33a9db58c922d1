package user

type Role string

const (
	RoleUser        Role = "user"
	RoleMaintenance Role = "maintenance"
	RoleAdmin       Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleMaintenance, RoleAdmin:
		return true
	default:
		return false
	}
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// ReceivesEquipmentAlerts reports whether the role is told about damaged returns.
func (r Role) ReceivesEquipmentAlerts() bool {
	return r == RoleAdmin || r == RoleMaintenance
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
