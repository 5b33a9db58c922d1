package repository

import (
	"context"
	"time"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/availability"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/reservation"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra/repository/converter"
	sqlc "github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra/sqlc/generated"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) error
	GetReservationForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
	UpdateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationParams) error
	DeleteReservation(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	ListApprovedOverlapping(ctx context.Context, db sqlc.DBTX, arg sqlc.ListApprovedOverlappingParams) ([]sqlc.ListApprovedOverlappingRow, error)
}

type ReservationRepository struct {
	queries ReservationQueries
	db      sqlc.DBTX
	loc     *time.Location
}

// NewReservationRepository binds the repository to db. loc is the engine time zone
// used to restore reservation dates.
func NewReservationRepository(queries ReservationQueries, db sqlc.DBTX, loc *time.Location) *ReservationRepository {
	if loc == nil {
		loc = time.UTC
	}
	return &ReservationRepository{
		queries: queries,
		db:      db,
		loc:     loc,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	params, err := converter.ReservationToInfra(res)
	if err != nil {
		return infra.WrapRepoErr("invalid reservation", err, infra.KindConflict)
	}
	if err := r.queries.CreateReservation(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) LockByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}
	return converter.ReservationFromInfra(row, r.loc), nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	if err := r.queries.UpdateReservation(ctx, r.db, converter.ReservationUpdateToInfra(res)); err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteReservation(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	return nil
}

func (r *ReservationRepository) ListApprovedOverlapping(ctx context.Context, resourceID uuid.UUID, window availability.Interval) ([]availability.Commitment, error) {
	rows, err := r.queries.ListApprovedOverlapping(ctx, r.db, sqlc.ListApprovedOverlappingParams{
		ResourceID:  resourceID,
		WindowEnd:   pgconv.TimeToPgtype(window.End),
		WindowStart: pgconv.TimeToPgtype(window.Start),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list approved reservations", err)
	}
	return converter.CommitmentsFromInfra(rows), nil
}
