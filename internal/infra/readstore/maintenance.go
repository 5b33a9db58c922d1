package readstore

import (
	"context"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra"
	sqlc "github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra/sqlc/generated"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/pgconv"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/queries"
)

type MaintenanceReadQueries interface {
	ListMaintenanceTickets(ctx context.Context, db sqlc.DBTX, arg sqlc.ListMaintenanceTicketsParams) ([]sqlc.MaintenanceTickets, error)
}

type MaintenanceReadStore struct {
	queries MaintenanceReadQueries
	db      sqlc.DBTX
}

func NewMaintenanceReadStore(queries MaintenanceReadQueries, db sqlc.DBTX) *MaintenanceReadStore {
	return &MaintenanceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *MaintenanceReadStore) List(ctx context.Context, status string, after *queries.Keyset, limit int32) ([]*queries.MaintenanceTicketView, error) {
	afterAt, afterID := keysetParams(after)
	rows, err := r.queries.ListMaintenanceTickets(ctx, r.db, sqlc.ListMaintenanceTicketsParams{
		Status:         pgconv.OptionalStringToPgtype(status),
		AfterCreatedAt: afterAt,
		AfterID:        afterID,
		LimitCount:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list maintenance tickets", err)
	}

	views := make([]*queries.MaintenanceTicketView, len(rows))
	for i, row := range rows {
		views[i] = &queries.MaintenanceTicketView{
			ID:              row.ID,
			ResourceID:      row.ResourceID,
			BorrowRecordID:  row.BorrowRecordID,
			ItemName:        row.ItemName,
			ConditionStatus: row.ConditionStatus,
			Description:     row.Description,
			ReportedBy:      row.ReportedBy,
			Status:          row.Status,
			CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return views, nil
}
