package response

import (
	"time"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/user"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	DisplayName string     `json:"display_name"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"is_active"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	User        *UserResponse `json:"user"`
}

func FromUser(u *user.User) *UserResponse {
	return &UserResponse{
		ID:          u.ID(),
		Email:       u.Email().Value(),
		DisplayName: u.DisplayName(),
		Role:        u.Role().String(),
		IsActive:    u.IsActive(),
		LastLogin:   u.LastLogin(),
	}
}

func FromUserView(v *queries.UserView) (*UserResponse, error) {
	var out UserResponse
	if err := copier.Copy(&out, v); err != nil {
		return nil, err
	}
	return &out, nil
}
