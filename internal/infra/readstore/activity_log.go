package readstore

import (
	"context"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra"
	sqlc "github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra/sqlc/generated"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/pgconv"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/queries"
)

type ActivityLogReadQueries interface {
	ListActivityLogs(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActivityLogsParams) ([]sqlc.ActivityLogs, error)
}

type ActivityLogReadStore struct {
	queries ActivityLogReadQueries
	db      sqlc.DBTX
}

func NewActivityLogReadStore(queries ActivityLogReadQueries, db sqlc.DBTX) *ActivityLogReadStore {
	return &ActivityLogReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ActivityLogReadStore) List(ctx context.Context, filter queries.ActivityLogFilter, after *queries.Keyset, limit int32) ([]*queries.ActivityLogView, error) {
	afterAt, afterID := keysetParams(after)
	rows, err := r.queries.ListActivityLogs(ctx, r.db, sqlc.ListActivityLogsParams{
		EntityType:     pgconv.OptionalStringToPgtype(filter.EntityType),
		EntityID:       pgconv.UUIDPtrToPgtype(filter.EntityID),
		AfterCreatedAt: afterAt,
		AfterID:        afterID,
		LimitCount:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list activity logs", err)
	}

	views := make([]*queries.ActivityLogView, len(rows))
	for i, row := range rows {
		views[i] = &queries.ActivityLogView{
			ID:         row.ID,
			ActorID:    pgconv.UUIDPtrFromPgtype(row.ActorID),
			EntityType: row.EntityType,
			EntityID:   row.EntityID,
			Action:     row.Action,
			Before:     row.BeforeState,
			After:      row.AfterState,
			Details:    row.Details,
			CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return views, nil
}
