package bootstrap

import (
	"github.com/benjietrozo-hub/labmate-guardian-sub000/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// CoreModule builds everything below the HTTP layer. The CLI subcommands that
// do not serve traffic start only this.
var CoreModule = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.NotifierModule,
	components.UseCaseModule,
)

var Module = fx.Options(
	CoreModule,
	components.HandlerModule,
)
