package components

import (
	"context"
	"log/slog"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/notification"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra/notifier"
	sqlc "github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra/sqlc/generated"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/clock"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/config"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/shared"

	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		NewNotificationGateway,
		NewDispatcher,
		func(d *notifier.Dispatcher) shared.Notifier { return d },
	),
)

// NewNotificationGateway picks the delivery backend from NOTIFY_GATEWAY.
func NewNotificationGateway(cfg config.Config, q *sqlc.Queries, db sqlc.DBTX, clk clock.Clock) notification.Gateway {
	switch cfg.Notify.Gateway {
	case "log":
		return notifier.NewLogGateway()
	case "outbox":
		return notifier.NewOutboxGateway(q, db, clk)
	default:
		slog.Warn("unknown notification gateway, falling back to outbox", "gateway", cfg.Notify.Gateway)
		return notifier.NewOutboxGateway(q, db, clk)
	}
}

func NewDispatcher(lc fx.Lifecycle, gateway notification.Gateway, cfg config.Config) *notifier.Dispatcher {
	d := notifier.NewDispatcher(gateway, cfg.Notify)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			d.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return d.Stop(ctx)
		},
	})
	return d
}
