//go:build unit

package jwt

import (
	"testing"
	"time"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	userID := uuid.New()

	t.Run("round trip keeps user and role", func(t *testing.T) {
		svc := NewService("secret", time.Hour)

		token, err := svc.GenerateToken(userID, user.RoleMaintenance)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "maintenance", claims.Role)
	})

	t.Run("expired token", func(t *testing.T) {
		svc := NewService("secret", time.Minute)
		issuedAt := time.Now().Add(-time.Hour)
		svc.now = func() time.Time { return issuedAt }
		token, err := svc.GenerateToken(userID, user.RoleUser)
		require.NoError(t, err)

		svc.now = time.Now
		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("foreign signature", func(t *testing.T) {
		token, err := NewService("other", time.Hour).GenerateToken(userID, user.RoleAdmin)
		require.NoError(t, err)

		_, err = NewService("secret", time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
