package shared

import (
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the authenticated caller of a command.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == user.RoleAdmin
}
