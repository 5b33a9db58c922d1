package components

import (
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/clock"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/commands"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewReservationCommands,
		commands.NewWaitlistCommands,
		commands.NewResourceCommands,
		commands.NewBorrowCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewResourceQueries,
		queries.NewReservationQueries,
		queries.NewWaitlistQueries,
		queries.NewBorrowQueries,
		queries.NewMaintenanceQueries,
		queries.NewActivityLogQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
