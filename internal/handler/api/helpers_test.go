//go:build unit

package api_test

import (
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/user"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// asActor stands in for RequireAuth: the header X-Test-Role picks the role and
// a missing header leaves the request unauthenticated.
func asActor(id uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetHeader("X-Test-Role")
		if role == "" {
			c.Next()
			return
		}
		c.Set("user_id", id)
		c.Set("user_role", user.Role(role))
		c.Next()
	}
}

func actorWith(id uuid.UUID, role user.Role) shared.Actor {
	return shared.Actor{ID: id, Role: role}
}
