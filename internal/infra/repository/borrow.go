package repository

import (
	"context"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/borrow"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/maintenance"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra/repository/converter"
	sqlc "github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra/sqlc/generated"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BorrowQueries interface {
	CreateBorrowRecord(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBorrowRecordParams) error
	GetBorrowRecordForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.BorrowRecords, error)
	UpdateBorrowRecord(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBorrowRecordParams) error
}

type BorrowRepository struct {
	queries BorrowQueries
	db      sqlc.DBTX
}

func NewBorrowRepository(queries BorrowQueries, db sqlc.DBTX) *BorrowRepository {
	return &BorrowRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BorrowRepository) Create(ctx context.Context, rec *borrow.Record) error {
	params, err := converter.BorrowToInfra(rec)
	if err != nil {
		return infra.WrapRepoErr("invalid borrow record", err, infra.KindConflict)
	}
	if err := r.queries.CreateBorrowRecord(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create borrow record", err)
	}
	return nil
}

func (r *BorrowRepository) LockByID(ctx context.Context, id uuid.UUID) (*borrow.Record, error) {
	row, err := r.queries.GetBorrowRecordForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("borrow record not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock borrow record", err)
	}
	return converter.BorrowFromInfra(row), nil
}

func (r *BorrowRepository) Update(ctx context.Context, rec *borrow.Record) error {
	if err := r.queries.UpdateBorrowRecord(ctx, r.db, converter.BorrowUpdateToInfra(rec)); err != nil {
		return infra.WrapRepoErr("failed to update borrow record", err)
	}
	return nil
}

type MaintenanceQueries interface {
	CreateMaintenanceTicket(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateMaintenanceTicketParams) error
}

type MaintenanceRepository struct {
	queries MaintenanceQueries
	db      sqlc.DBTX
}

func NewMaintenanceRepository(queries MaintenanceQueries, db sqlc.DBTX) *MaintenanceRepository {
	return &MaintenanceRepository{
		queries: queries,
		db:      db,
	}
}

func (r *MaintenanceRepository) Create(ctx context.Context, t *maintenance.Ticket) error {
	if err := r.queries.CreateMaintenanceTicket(ctx, r.db, converter.MaintenanceTicketToInfra(t)); err != nil {
		return infra.WrapRepoErr("failed to create maintenance ticket", err)
	}
	return nil
}
