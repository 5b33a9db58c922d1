package readstore

import (
	"context"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/availability"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra/repository/converter"
	sqlc "github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra/sqlc/generated"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/pgconv"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ResourceReadQueries interface {
	GetResourceByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Resources, error)
	ListResources(ctx context.Context, db sqlc.DBTX, arg sqlc.ListResourcesParams) ([]sqlc.Resources, error)
	ListApprovedOverlapping(ctx context.Context, db sqlc.DBTX, arg sqlc.ListApprovedOverlappingParams) ([]sqlc.ListApprovedOverlappingRow, error)
}

type txBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

type ResourceReadStore struct {
	queries ResourceReadQueries
	db      sqlc.DBTX
}

func NewResourceReadStore(queries ResourceReadQueries, db sqlc.DBTX) *ResourceReadStore {
	return &ResourceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ResourceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ResourceView, error) {
	return r.findByID(ctx, r.db, id)
}

func (r *ResourceReadStore) findByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*queries.ResourceView, error) {
	row, err := r.queries.GetResourceByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find resource by ID", err)
	}
	return toResourceView(row), nil
}

func (r *ResourceReadStore) List(ctx context.Context, filter queries.ResourceFilter, after *queries.Keyset, limit int32) ([]*queries.ResourceView, error) {
	afterAt, afterID := keysetParams(after)
	rows, err := r.queries.ListResources(ctx, r.db, sqlc.ListResourcesParams{
		Category:       pgconv.OptionalStringToPgtype(filter.Category),
		AfterCreatedAt: afterAt,
		AfterID:        afterID,
		LimitCount:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list resources", err)
	}

	result := make([]*queries.ResourceView, len(rows))
	for i, row := range rows {
		result[i] = toResourceView(row)
	}
	return result, nil
}

// FindWithCommitments reads inside a repeatable-read, read-only transaction when the
// store is backed by a pool, so stock and reservations come from one snapshot.
func (r *ResourceReadStore) FindWithCommitments(ctx context.Context, id uuid.UUID, window availability.Interval) (*queries.ResourceView, []availability.Commitment, error) {
	var (
		view      *queries.ResourceView
		committed []availability.Commitment
	)
	read := func(db sqlc.DBTX) error {
		var err error
		view, err = r.findByID(ctx, db, id)
		if err != nil {
			return err
		}
		rows, err := r.queries.ListApprovedOverlapping(ctx, db, sqlc.ListApprovedOverlappingParams{
			ResourceID:  id,
			WindowEnd:   pgconv.TimeToPgtype(window.End),
			WindowStart: pgconv.TimeToPgtype(window.Start),
		})
		if err != nil {
			return infra.WrapRepoErr("failed to list approved reservations", err)
		}
		committed = converter.CommitmentsFromInfra(rows)
		return nil
	}

	b, ok := r.db.(txBeginner)
	if !ok {
		if err := read(r.db); err != nil {
			return nil, nil, err
		}
		return view, committed, nil
	}
	err := pgx.BeginTxFunc(ctx, b, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}, func(tx pgx.Tx) error {
		return read(tx)
	})
	if err != nil {
		return nil, nil, err
	}
	return view, committed, nil
}

func toResourceView(row sqlc.Resources) *queries.ResourceView {
	return &queries.ResourceView{
		ID:         row.ID,
		Name:       row.Name,
		Category:   row.Category,
		TotalStock: int(row.TotalStock),
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:  pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
