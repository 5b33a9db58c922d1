package converter

import (
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/user"
	sqlc "github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra/sqlc/generated"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/pgconv"
)

func UserToInfra(u *user.User) sqlc.CreateUserParams {
	return sqlc.CreateUserParams{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		DisplayName:  u.DisplayName(),
		Role:         u.Role().String(),
		IsActive:     u.IsActive(),
		CreatedAt:    pgconv.TimeToPgtype(u.CreatedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(u.UpdatedAt()),
	}
}

// UserFromInfra trusts stored values; they were validated on the way in.
func UserFromInfra(row sqlc.Users) *user.User {
	email, _ := user.NewEmail(row.Email)
	return user.Reconstruct(
		row.ID,
		email,
		row.DisplayName,
		row.PasswordHash,
		user.Role(row.Role),
		pgconv.TimePtrFromPgtype(row.LastLogin),
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
