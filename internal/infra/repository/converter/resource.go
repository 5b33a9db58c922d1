package converter

import (
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/resource"
	sqlc "github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra/sqlc/generated"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/pgconv"
)

func ResourceToInfra(r *resource.Resource) (sqlc.CreateResourceParams, error) {
	stock, err := Int32(r.TotalStock(), "total_stock")
	if err != nil {
		return sqlc.CreateResourceParams{}, err
	}
	return sqlc.CreateResourceParams{
		ID:         r.ID(),
		Name:       r.Name(),
		Category:   r.Category(),
		TotalStock: stock,
		CreatedAt:  pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:  pgconv.TimeToPgtype(r.UpdatedAt()),
	}, nil
}

func ResourceFromInfra(row sqlc.Resources) *resource.Resource {
	return resource.Reconstruct(
		row.ID,
		row.Name,
		row.Category,
		int(row.TotalStock),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
