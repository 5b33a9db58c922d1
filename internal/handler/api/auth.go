package api

import (
	"net/http"

	reqdto "github.com/benjietrozo-hub/labmate-guardian-sub000/internal/handler/dto/request"
	resdto "github.com/benjietrozo-hub/labmate-guardian-sub000/internal/handler/dto/response"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/handler/httperr"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/config"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/cookie"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/errs"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/commands"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds commands.AuthCommands
	q    queries.UserQueries
	cfg  config.Config
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.UserQueries, cfg config.Config) *AuthHandler {
	return &AuthHandler{cmds: cmds, q: q, cfg: cfg}
}

// @Summary User login
// @Description Login with email and password. The token is returned and also set as an HttpOnly cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
		case errs.Is(err, commands.ErrInvalidCredentials), errs.Is(err, commands.ErrAuthenticationFailed):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
		default:
			httperr.Abort(c, err)
		}
		return
	}

	cookie.SetAccessToken(c, h.cfg.Cookie, result.AccessToken, h.cfg.JWT.Duration)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.AccessToken,
		User:        resdto.FromUser(result.User),
	})
}

// @Summary User logout
// @Description Clears the access token cookie
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessToken(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	view, err := h.q.GetCurrentUser(c.Request.Context(), actor.ID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromUserView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
