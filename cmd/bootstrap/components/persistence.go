package components

import (
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra/readstore"
	sqlc "github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra/sqlc/generated"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra/uow"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Resource
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ResourceReadQueries)),
		),
		fx.Annotate(
			readstore.NewResourceReadStore,
			fx.As(new(queries.ResourceReadStore)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationReadQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		// Waiting list
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.WaitlistReadQueries)),
		),
		fx.Annotate(
			readstore.NewWaitlistReadStore,
			fx.As(new(queries.WaitlistReadStore)),
		),
		// Borrow
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BorrowReadQueries)),
		),
		fx.Annotate(
			readstore.NewBorrowReadStore,
			fx.As(new(queries.BorrowReadStore)),
		),
		// Maintenance
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.MaintenanceReadQueries)),
		),
		fx.Annotate(
			readstore.NewMaintenanceReadStore,
			fx.As(new(queries.MaintenanceReadStore)),
		),
		// Activity log
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ActivityLogReadQueries)),
		),
		fx.Annotate(
			readstore.NewActivityLogReadStore,
			fx.As(new(queries.ActivityLogReadStore)),
		),
	),
)

// Repositories are bound per transaction inside the unit of work.
var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
