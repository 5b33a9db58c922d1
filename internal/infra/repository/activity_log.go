package repository

import (
	"context"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/activitylog"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra/repository/converter"
	sqlc "github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra/sqlc/generated"
)

type ActivityLogQueries interface {
	CreateActivityLog(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateActivityLogParams) error
}

type ActivityLogRepository struct {
	queries ActivityLogQueries
	db      sqlc.DBTX
}

func NewActivityLogRepository(queries ActivityLogQueries, db sqlc.DBTX) *ActivityLogRepository {
	return &ActivityLogRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ActivityLogRepository) Append(ctx context.Context, e *activitylog.Entry) error {
	if err := r.queries.CreateActivityLog(ctx, r.db, converter.ActivityLogToInfra(e)); err != nil {
		return infra.WrapRepoErr("failed to append activity log", err)
	}
	return nil
}
