//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/user"
	reqdto "github.com/benjietrozo-hub/labmate-guardian-sub000/internal/handler/dto/request"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra/memstore"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/clock"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/errs"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/jwt"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthCommands(t *testing.T) {
	ctx := context.Background()
	jwtService := jwt.NewService("test-secret-key-for-commands", time.Hour)

	setup := func(t *testing.T) (commands.AuthCommands, *user.User) {
		t.Helper()
		auth := commands.NewAuthCommands(memstore.New(), jwtService, clock.NewMockClock(testNow))
		u, err := auth.Register(ctx, commands.RegisterInput{
			Email:       "Admin@Example.com",
			DisplayName: "Lab Admin",
			Password:    "password123",
			Role:        "admin",
		})
		require.NoError(t, err)
		return auth, u
	}

	t.Run("login issues a token for the stored role", func(t *testing.T) {
		auth, u := setup(t)

		result, err := auth.Login(ctx, reqdto.LoginRequest{Email: "admin@example.com", Password: "password123"})
		require.NoError(t, err)

		assert.Equal(t, u.ID(), result.User.ID())
		claims, err := jwtService.ValidateToken(result.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, u.ID(), claims.UserID)
		assert.Equal(t, "admin", claims.Role)
	})

	tests := []struct {
		name  string
		email string
		pass  string
	}{
		{name: "wrong password", email: "admin@example.com", pass: "password124"},
		{name: "unknown email", email: "nobody@example.com", pass: "password123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth, _ := setup(t)

			_, err := auth.Login(ctx, reqdto.LoginRequest{Email: tt.email, Password: tt.pass})
			assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
		})
	}

	t.Run("register rejects duplicates and bad input", func(t *testing.T) {
		auth, _ := setup(t)

		_, err := auth.Register(ctx, commands.RegisterInput{Email: "admin@example.com", DisplayName: "Again", Password: "password123"})
		assert.ErrorIs(t, err, errs.ErrConflict)

		_, err = auth.Register(ctx, commands.RegisterInput{Email: "new@example.com", DisplayName: "New", Password: "short"})
		assert.ErrorIs(t, err, errs.ErrValidation)

		_, err = auth.Register(ctx, commands.RegisterInput{Email: "new@example.com", DisplayName: "New", Password: "password123", Role: "root"})
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}
