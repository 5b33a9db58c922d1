package repository

import (
	"context"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/resource"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra/repository/converter"
	sqlc "github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra/sqlc/generated"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ResourceQueries interface {
	CreateResource(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateResourceParams) error
	GetResourceForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Resources, error)
	UpdateResourceStock(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateResourceStockParams) error
}

type ResourceRepository struct {
	queries ResourceQueries
	db      sqlc.DBTX
}

func NewResourceRepository(queries ResourceQueries, db sqlc.DBTX) *ResourceRepository {
	return &ResourceRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ResourceRepository) Create(ctx context.Context, res *resource.Resource) error {
	params, err := converter.ResourceToInfra(res)
	if err != nil {
		return infra.WrapRepoErr("invalid resource", err, infra.KindConflict)
	}
	if err := r.queries.CreateResource(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create resource", err)
	}
	return nil
}

func (r *ResourceRepository) LockByID(ctx context.Context, id uuid.UUID) (*resource.Resource, error) {
	row, err := r.queries.GetResourceForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock resource", err)
	}
	return converter.ResourceFromInfra(row), nil
}

func (r *ResourceRepository) UpdateStock(ctx context.Context, res *resource.Resource) error {
	stock, err := converter.Int32(res.TotalStock(), "total_stock")
	if err != nil {
		return infra.WrapRepoErr("invalid resource", err, infra.KindConflict)
	}
	err = r.queries.UpdateResourceStock(ctx, r.db, sqlc.UpdateResourceStockParams{
		ID:         res.ID(),
		TotalStock: stock,
		UpdatedAt:  pgconv.TimeToPgtype(res.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update resource stock", err)
	}
	return nil
}
