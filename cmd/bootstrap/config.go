package bootstrap

import (
	"time"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/reservation"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewEngineLocation,
		NewReservationPolicy,
	),
)

func NewEngineLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Engine.Location()
}

func NewReservationPolicy(cfg config.Config, loc *time.Location) reservation.Policy {
	return reservation.Policy{
		AutoApprove: cfg.Engine.AutoApprove,
		Location:    loc,
	}
}
