package commands

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth.go -package=commandsmock

import (
	"context"
	"log/slog"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/user"
	reqdto "github.com/benjietrozo-hub/labmate-guardian-sub000/internal/handler/dto/request"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/clock"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/errs"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/jwt"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/password"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/shared"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.WithKind(errs.New("user inactive"), errs.ErrForbidden)
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	User        *user.User
	AccessToken string
}

type RegisterInput struct {
	Email       string
	DisplayName string
	Password    string
	Role        string
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	// Register creates an account. It is used by operators, not exposed over HTTP.
	Register(ctx context.Context, in RegisterInput) (*user.User, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
		clock:      clk,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	u, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	accessToken, err := a.jwtService.GenerateToken(u.ID(), u.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, u.ID())
	})
	if err != nil {
		// login succeeded, only the last_login stamp is missing
		slog.Warn("failed to update last login", "user_id", u.ID(), "error", err.Error())
	}

	return &LoginResult{
		User:        u,
		AccessToken: accessToken,
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials user.Credentials) (*user.User, error) {
	var u *user.User
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		u, err = tx.Users().FindByEmail(ctx, credentials.Email())
		return err
	})
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration
		return nil, ErrInvalidCredentials
	}

	if !u.IsActive() {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(u.PasswordHash(), credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (*user.User, error) {
	credentials, err := user.NewCredentials(in.Email, in.Password)
	if err != nil {
		return nil, errs.WithKind(err, errs.ErrValidation)
	}
	role := user.RoleUser
	if in.Role != "" {
		if role, err = user.NewRole(in.Role); err != nil {
			return nil, errs.WithKind(err, errs.ErrValidation)
		}
	}

	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return nil, errs.Wrap(err, "hash password")
	}
	u, err := user.NewUser(credentials.Email(), in.DisplayName, hash, role, a.clock.Now())
	if err != nil {
		return nil, errs.WithKind(err, errs.ErrValidation)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, u)
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}
