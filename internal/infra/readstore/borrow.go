package readstore

import (
	"context"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra"
	sqlc "github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra/sqlc/generated"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/pgconv"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/queries"

	"github.com/google/uuid"
)

type BorrowReadQueries interface {
	GetBorrowRecordByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.BorrowRecords, error)
	ListBorrowRecords(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBorrowRecordsParams) ([]sqlc.BorrowRecords, error)
}

type BorrowReadStore struct {
	queries BorrowReadQueries
	db      sqlc.DBTX
}

func NewBorrowReadStore(queries BorrowReadQueries, db sqlc.DBTX) *BorrowReadStore {
	return &BorrowReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BorrowReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BorrowView, error) {
	row, err := r.queries.GetBorrowRecordByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("borrow record not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find borrow record by ID", err)
	}
	return toBorrowView(row), nil
}

func (r *BorrowReadStore) List(ctx context.Context, filter queries.BorrowFilter, after *queries.Keyset, limit int32) ([]*queries.BorrowView, error) {
	afterAt, afterID := keysetParams(after)
	rows, err := r.queries.ListBorrowRecords(ctx, r.db, sqlc.ListBorrowRecordsParams{
		Status:         pgconv.OptionalStringToPgtype(filter.Status),
		BorrowerID:     pgconv.UUIDPtrToPgtype(filter.BorrowerID),
		AfterCreatedAt: afterAt,
		AfterID:        afterID,
		LimitCount:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list borrow records", err)
	}

	views := make([]*queries.BorrowView, len(rows))
	for i, row := range rows {
		views[i] = toBorrowView(row)
	}
	return views, nil
}

func toBorrowView(row sqlc.BorrowRecords) *queries.BorrowView {
	return &queries.BorrowView{
		ID:                 row.ID,
		ResourceID:         row.ResourceID,
		ItemName:           row.ItemName,
		Quantity:           int(row.Quantity),
		BorrowerID:         row.BorrowerID,
		BorrowerContact:    row.BorrowerContact,
		BorrowDate:         pgconv.TimeFromPgtype(row.BorrowDate),
		ExpectedReturnDate: pgconv.TimeFromPgtype(row.ExpectedReturnDate),
		ActualReturnDate:   pgconv.TimePtrFromPgtype(row.ActualReturnDate),
		Status:             row.Status,
		ReturnCondition:    pgconv.StringPtrFromPgtype(row.ReturnCondition),
		ReturnNotes:        row.ReturnNotes,
		ApprovedBy:         row.ApprovedBy,
		ReturnedBy:         pgconv.UUIDPtrFromPgtype(row.ReturnedBy),
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
