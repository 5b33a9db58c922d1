package repository

import (
	"context"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/waitlist"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra/repository/converter"
	sqlc "github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra/sqlc/generated"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type WaitingListQueries interface {
	CreateWaitingListEntry(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateWaitingListEntryParams) error
	GetWaitingListEntryForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.WaitingListEntries, error)
	ListActiveWaitingEntriesForUpdate(ctx context.Context, db sqlc.DBTX, resourceID uuid.UUID) ([]sqlc.WaitingListEntries, error)
	HasActiveWaitingListEntry(ctx context.Context, db sqlc.DBTX, arg sqlc.HasActiveWaitingListEntryParams) (bool, error)
	UpdateWaitingListEntry(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateWaitingListEntryParams) error
}

type WaitingListRepository struct {
	queries WaitingListQueries
	db      sqlc.DBTX
}

func NewWaitingListRepository(queries WaitingListQueries, db sqlc.DBTX) *WaitingListRepository {
	return &WaitingListRepository{
		queries: queries,
		db:      db,
	}
}

func (r *WaitingListRepository) Create(ctx context.Context, e *waitlist.Entry) error {
	params, err := converter.WaitlistEntryToInfra(e)
	if err != nil {
		return infra.WrapRepoErr("invalid waiting list entry", err, infra.KindConflict)
	}
	if err := r.queries.CreateWaitingListEntry(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create waiting list entry", err)
	}
	return nil
}

func (r *WaitingListRepository) LockByID(ctx context.Context, id uuid.UUID) (*waitlist.Entry, error) {
	row, err := r.queries.GetWaitingListEntryForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("waiting list entry not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock waiting list entry", err)
	}
	return converter.WaitlistEntryFromInfra(row), nil
}

// ListActiveByResource locks every waiting or notified entry of the resource, oldest first.
func (r *WaitingListRepository) ListActiveByResource(ctx context.Context, resourceID uuid.UUID) ([]*waitlist.Entry, error) {
	rows, err := r.queries.ListActiveWaitingEntriesForUpdate(ctx, r.db, resourceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list waiting entries", err)
	}
	entries := make([]*waitlist.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, converter.WaitlistEntryFromInfra(row))
	}
	return entries, nil
}

func (r *WaitingListRepository) HasActive(ctx context.Context, resourceID, requesterID uuid.UUID) (bool, error) {
	ok, err := r.queries.HasActiveWaitingListEntry(ctx, r.db, sqlc.HasActiveWaitingListEntryParams{
		ResourceID:  resourceID,
		RequesterID: requesterID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check waiting list", err)
	}
	return ok, nil
}

func (r *WaitingListRepository) Update(ctx context.Context, e *waitlist.Entry) error {
	if err := r.queries.UpdateWaitingListEntry(ctx, r.db, converter.WaitlistEntryUpdateToInfra(e)); err != nil {
		return infra.WrapRepoErr("failed to update waiting list entry", err)
	}
	return nil
}
