package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/user"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/handler/api"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/handler/middleware"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers is filled in by fx from the handler module's providers.
type Handlers struct {
	fx.In

	Auth           *api.AuthHandler
	Reservation    *api.ReservationHandler
	Resource       *api.ResourceHandler
	Waitlist       *api.WaitlistHandler
	Borrow         *api.BorrowHandler
	Audit          *api.AuditHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	authMw := h.AuthMiddleware
	admin := []gin.HandlerFunc{authMw.RequireRoleAtLeast(user.RoleAdmin)}
	staff := []gin.HandlerFunc{authMw.RequireRoleAtLeast(user.RoleMaintenance)}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMw.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		resources := apiGroup.Group("/resources")
		resources.Use(authMw.RequireAuth())
		addRoutes(resources, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Resource.List},
			{Method: http.MethodPost, Path: "", Handler: h.Resource.Create, Mw: admin},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Resource.Get},
			{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Resource.Availability},
			{Method: http.MethodPost, Path: "/:id/restock", Handler: h.Resource.Restock, Mw: admin},
		})

		// ownership and admin checks for reservations live in the commands
		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMw.RequireAuth())
		addRoutes(reservations, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
			{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Reservation.Transition},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservation.Purge, Mw: admin},
		})

		waitlist := apiGroup.Group("/waitlist")
		waitlist.Use(authMw.RequireAuth())
		addRoutes(waitlist, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Waitlist.Join},
			{Method: http.MethodGet, Path: "", Handler: h.Waitlist.List},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Waitlist.Cancel},
			{Method: http.MethodPost, Path: "/:id/fulfill", Handler: h.Waitlist.Fulfill, Mw: admin},
		})

		borrows := apiGroup.Group("/borrows")
		borrows.Use(authMw.RequireAuth())
		addRoutes(borrows, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Borrow.Issue, Mw: admin},
			{Method: http.MethodGet, Path: "", Handler: h.Borrow.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Borrow.Get},
			{Method: http.MethodPost, Path: "/:id/return", Handler: h.Borrow.Return, Mw: admin},
		})

		audit := apiGroup.Group("")
		audit.Use(authMw.RequireAuth())
		addRoutes(audit, []route{
			{Method: http.MethodGet, Path: "/maintenance/tickets", Handler: h.Audit.ListTickets, Mw: staff},
			{Method: http.MethodGet, Path: "/activity-logs", Handler: h.Audit.ListActivity, Mw: admin},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
