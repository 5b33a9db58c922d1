package readstore

import (
	"context"
	"time"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra"
	sqlc "github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra/sqlc/generated"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/pgconv"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationReadQueries interface {
	GetReservationViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationViewByIDRow, error)
	ListReservationsByRequester(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByRequesterParams) ([]sqlc.ListReservationsByRequesterRow, error)
}

type ReservationReadStore struct {
	queries ReservationReadQueries
	db      sqlc.DBTX
	loc     *time.Location
}

func NewReservationReadStore(queries ReservationReadQueries, db sqlc.DBTX, loc *time.Location) *ReservationReadStore {
	if loc == nil {
		loc = time.UTC
	}
	return &ReservationReadStore{
		queries: queries,
		db:      db,
		loc:     loc,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return &queries.ReservationView{
		ID:              row.ID,
		ResourceID:      row.ResourceID,
		ResourceName:    row.ResourceName,
		RequesterID:     row.RequesterID,
		RequesterEmail:  row.RequesterEmail,
		Date:            pgconv.DateFromPgtype(row.ReservationDate, r.loc),
		Start:           pgconv.TimeFromPgtype(row.StartAt).In(r.loc),
		End:             pgconv.TimeFromPgtype(row.EndAt).In(r.loc),
		Quantity:        int(row.Quantity),
		Status:          row.Status,
		Purpose:         row.Purpose,
		Notes:           row.Notes,
		ApprovedBy:      pgconv.UUIDPtrFromPgtype(row.ApprovedBy),
		ApprovedAt:      pgconv.TimePtrFromPgtype(row.ApprovedAt),
		RejectionReason: pgconv.StringPtrFromPgtype(row.RejectionReason),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *ReservationReadStore) ListByRequester(ctx context.Context, requesterID uuid.UUID, filter queries.ReservationFilter, after *queries.Keyset, limit int32) ([]*queries.ReservationListItem, error) {
	afterAt, afterID := keysetParams(after)
	rows, err := r.queries.ListReservationsByRequester(ctx, r.db, sqlc.ListReservationsByRequesterParams{
		RequesterID:    requesterID,
		Status:         pgconv.OptionalStringToPgtype(filter.Status),
		AfterCreatedAt: afterAt,
		AfterID:        afterID,
		LimitCount:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}

	items := make([]*queries.ReservationListItem, len(rows))
	for i, row := range rows {
		items[i] = &queries.ReservationListItem{
			ID:           row.ID,
			ResourceID:   row.ResourceID,
			ResourceName: row.ResourceName,
			Date:         pgconv.DateFromPgtype(row.ReservationDate, r.loc),
			Start:        pgconv.TimeFromPgtype(row.StartAt).In(r.loc),
			End:          pgconv.TimeFromPgtype(row.EndAt).In(r.loc),
			Quantity:     int(row.Quantity),
			Status:       row.Status,
			CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return items, nil
}
