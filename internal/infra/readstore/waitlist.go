package readstore

import (
	"context"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra"
	sqlc "github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra/sqlc/generated"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/pgconv"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/queries"
)

type WaitlistReadQueries interface {
	ListWaitingList(ctx context.Context, db sqlc.DBTX, arg sqlc.ListWaitingListParams) ([]sqlc.WaitingListEntries, error)
}

type WaitlistReadStore struct {
	queries WaitlistReadQueries
	db      sqlc.DBTX
}

func NewWaitlistReadStore(queries WaitlistReadQueries, db sqlc.DBTX) *WaitlistReadStore {
	return &WaitlistReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *WaitlistReadStore) List(ctx context.Context, filter queries.WaitlistFilter, after *queries.Keyset, limit int32) ([]*queries.WaitlistEntryView, error) {
	afterAt, afterID := keysetParams(after)
	rows, err := r.queries.ListWaitingList(ctx, r.db, sqlc.ListWaitingListParams{
		ResourceID:     pgconv.UUIDPtrToPgtype(filter.ResourceID),
		RequesterID:    pgconv.UUIDPtrToPgtype(filter.RequesterID),
		Status:         pgconv.OptionalStringToPgtype(filter.Status),
		AfterCreatedAt: afterAt,
		AfterID:        afterID,
		LimitCount:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list waiting list", err)
	}

	views := make([]*queries.WaitlistEntryView, len(rows))
	for i, row := range rows {
		views[i] = &queries.WaitlistEntryView{
			ID:             row.ID,
			ResourceID:     row.ResourceID,
			RequesterID:    row.RequesterID,
			Quantity:       int(row.Quantity),
			PreferredStart: pgconv.TimePtrFromPgtype(row.PreferredStart),
			PreferredEnd:   pgconv.TimePtrFromPgtype(row.PreferredEnd),
			Priority:       row.Priority,
			Status:         row.Status,
			NotifiedAt:     pgconv.TimePtrFromPgtype(row.NotifiedAt),
			FulfilledAt:    pgconv.TimePtrFromPgtype(row.FulfilledAt),
			ReservationID:  pgconv.UUIDPtrFromPgtype(row.ReservationID),
			CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return views, nil
}
