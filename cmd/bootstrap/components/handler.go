package components

import (
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/handler"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/handler/api"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewResourceHandler,
		api.NewReservationHandler,
		api.NewWaitlistHandler,
		api.NewBorrowHandler,
		api.NewAuditHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
