package bootstrap

import (
	"log/slog"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/handler/middleware"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).GetSlogLogger()
}
