//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/availability"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/borrow"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/notification"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/reservation"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra/memstore"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/errs"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/commands"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fixture) borrows() commands.BorrowCommands {
	return commands.NewBorrowCommands(f.store, f.notifier, f.clock)
}

func (f *fixture) seedBorrow(qty int) *borrow.Record {
	rec := builder.NewBorrowBuilder().With(func(b *builder.BorrowBuilder) {
		b.ResourceID = f.resource.ID()
		b.ItemName = f.resource.Name()
		b.Quantity = qty
		b.BorrowerID = f.requester.ID
		b.ApprovedBy = f.admin.ID
	}).BuildDomain()
	f.store.SeedBorrow(rec)
	return rec
}

func TestIssueBorrow(t *testing.T) {
	ctx := context.Background()
	issue := func(f *fixture, qty int) commands.IssueBorrowInput {
		return commands.IssueBorrowInput{
			ResourceID:      f.resource.ID(),
			BorrowerID:      f.requester.ID,
			BorrowerContact: "student@example.com",
			Quantity:        qty,
			ExpectedReturn:  testNow.Add(7 * 24 * time.Hour),
		}
	}

	t.Run("takes units out of stock", func(t *testing.T) {
		f := newFixture(t, 3)

		rec, err := f.borrows().Issue(ctx, f.admin, issue(f, 2))
		require.NoError(t, err)

		assert.Equal(t, borrow.StatusBorrowed, rec.Status())
		assert.Equal(t, f.resource.Name(), rec.ItemName())
		assert.Equal(t, f.admin.ID, rec.ApprovedBy())
		assert.Equal(t, 1, f.stock(t))
		assert.Equal(t, []notification.Kind{notification.KindBorrowIssued}, f.notifier.to(f.requester.ID))
	})

	t.Run("units promised to approved reservations stay in stock", func(t *testing.T) {
		f := newFixture(t, 2)
		f.seedReservation(reservation.StatusApproved, hours(9, 11), 2)

		_, err := f.borrows().Issue(ctx, f.admin, issue(f, 2))

		require.ErrorIs(t, err, errs.ErrConflict)
		var conflict *availability.CapacityConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, f.resource.ID(), conflict.ResourceID)
		assert.Equal(t, 2, f.stock(t))
		assert.Empty(t, f.store.ActivityLogs())
		f.approvedLoadWithinStock(t)
	})

	t.Run("units beyond the approved load can be issued", func(t *testing.T) {
		f := newFixture(t, 3)
		f.seedReservation(reservation.StatusApproved, hours(9, 11), 2)
		f.seedReservation(reservation.StatusPending, hours(9, 11), 1)

		_, err := f.borrows().Issue(ctx, f.admin, issue(f, 1))
		require.NoError(t, err)

		assert.Equal(t, 2, f.stock(t))
		f.approvedLoadWithinStock(t)
	})

	tests := []struct {
		name    string
		admin   bool
		qty     int
		wantErr error
	}{
		{name: "not enough stock", admin: true, qty: 4, wantErr: errs.ErrConflict},
		{name: "zero quantity", admin: true, qty: 0, wantErr: errs.ErrValidation},
		{name: "not an administrator", admin: false, qty: 1, wantErr: errs.ErrForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 3)
			actor := f.requester
			if tt.admin {
				actor = f.admin
			}

			_, err := f.borrows().Issue(ctx, actor, issue(f, tt.qty))

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 3, f.stock(t))
			assert.Empty(t, f.notifier.sent())
		})
	}
}

func TestProcessReturn(t *testing.T) {
	ctx := context.Background()

	t.Run("good condition replenishes stock", func(t *testing.T) {
		f := newFixture(t, 1)
		rec := f.seedBorrow(2)

		got, err := f.borrows().ProcessReturn(ctx, f.admin, rec.ID(), commands.ProcessReturnInput{Condition: "good"})
		require.NoError(t, err)

		assert.Equal(t, borrow.StatusReturned, got.Status())
		require.NotNil(t, got.ReturnedBy())
		assert.Equal(t, f.admin.ID, *got.ReturnedBy())
		assert.Equal(t, 3, f.stock(t))
		assert.Empty(t, f.store.Tickets())
		assert.Equal(t, []notification.Kind{notification.KindBorrowReturned}, f.notifier.to(f.requester.ID))
		assert.Empty(t, f.notifier.to(f.maintenance.ID))

		logs := f.store.ActivityLogs()
		require.Len(t, logs, 1)
		assert.Equal(t, commands.ActionReturned, logs[0].Action)
		assert.JSONEq(t, `{"status":"borrowed"}`, string(logs[0].Before))
	})

	t.Run("damaged item goes to maintenance", func(t *testing.T) {
		f := newFixture(t, 1)
		rec := f.seedBorrow(1)

		_, err := f.borrows().ProcessReturn(ctx, f.admin, rec.ID(), commands.ProcessReturnInput{
			Condition: "damaged",
			Notes:     "cracked objective lens",
		})
		require.NoError(t, err)

		tickets := f.store.Tickets()
		require.Len(t, tickets, 1)
		assert.Equal(t, borrow.ConditionDamaged, tickets[0].ConditionStatus)
		assert.Equal(t, rec.ID(), tickets[0].BorrowRecordID)
		assert.Contains(t, tickets[0].Description, "cracked objective lens")
		assert.Equal(t, 1, f.stock(t))

		assert.Equal(t, []notification.Kind{notification.KindBorrowReturned}, f.notifier.to(f.requester.ID))
		assert.Equal(t, []notification.Kind{notification.KindEquipmentNeedsAttention}, f.notifier.to(f.admin.ID))
		assert.Equal(t, []notification.Kind{notification.KindEquipmentNeedsAttention}, f.notifier.to(f.maintenance.ID))
		assert.Empty(t, f.notifier.to(f.other.ID))
	})

	t.Run("second return is rejected as is", func(t *testing.T) {
		f := newFixture(t, 1)
		rec := f.seedBorrow(1)
		_, err := f.borrows().ProcessReturn(ctx, f.admin, rec.ID(), commands.ProcessReturnInput{Condition: "good"})
		require.NoError(t, err)

		_, err = f.borrows().ProcessReturn(ctx, f.admin, rec.ID(), commands.ProcessReturnInput{Condition: "good"})

		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.NotErrorIs(t, err, errs.ErrReturnProcessing)
		assert.Equal(t, 2, f.stock(t))
	})

	preconditions := []struct {
		name    string
		id      func(rec *borrow.Record) uuid.UUID
		cond    string
		admin   bool
		wantErr error
	}{
		{name: "unknown condition", id: (*borrow.Record).ID, cond: "lost", admin: true, wantErr: errs.ErrValidation},
		{name: "unknown record", id: func(*borrow.Record) uuid.UUID { return uuid.New() }, cond: "good", admin: true, wantErr: errs.ErrNotFound},
		{name: "not an administrator", id: (*borrow.Record).ID, cond: "good", admin: false, wantErr: errs.ErrForbidden},
	}
	for _, tt := range preconditions {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 1)
			rec := f.seedBorrow(1)
			actor := f.requester
			if tt.admin {
				actor = f.admin
			}

			_, err := f.borrows().ProcessReturn(ctx, actor, tt.id(rec), commands.ProcessReturnInput{Condition: tt.cond})

			assert.ErrorIs(t, err, tt.wantErr)
			assert.NotErrorIs(t, err, errs.ErrReturnProcessing)
		})
	}
}

func TestProcessReturnIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	injected := errors.New("connection reset")

	tests := []struct {
		name      string
		failOp    string
		condition string
	}{
		{name: "record update fails", failOp: memstore.OpBorrowUpdate, condition: "good"},
		{name: "stock update fails", failOp: memstore.OpResourceUpdateStock, condition: "good"},
		{name: "ticket insert fails", failOp: memstore.OpMaintenanceCreate, condition: "damaged"},
		{name: "audit append fails", failOp: memstore.OpActivityLogAppend, condition: "needs_repair"},
		{name: "staff lookup fails", failOp: memstore.OpUserListByRoles, condition: "damaged"},
		{name: "record lock fails", failOp: memstore.OpBorrowLock, condition: "good"},
		{name: "commit fails", failOp: memstore.OpCommit, condition: "good"},
		{name: "commit fails after maintenance", failOp: memstore.OpCommit, condition: "damaged"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 1)
			rec := f.seedBorrow(1)
			f.store.FailNext(tt.failOp, injected)

			_, err := f.borrows().ProcessReturn(ctx, f.admin, rec.ID(), commands.ProcessReturnInput{Condition: tt.condition})

			require.ErrorIs(t, err, errs.ErrReturnProcessing)
			assert.ErrorIs(t, err, injected)
			var rpe *borrow.ReturnProcessingError
			require.ErrorAs(t, err, &rpe)
			assert.Equal(t, rec.ID(), rpe.BorrowID)

			stored, ok := f.store.Borrow(rec.ID())
			require.True(t, ok)
			assert.Equal(t, borrow.StatusBorrowed, stored.Status())
			assert.Nil(t, stored.ReturnCondition())
			assert.Equal(t, 1, f.stock(t))
			assert.Empty(t, f.store.Tickets())
			assert.Empty(t, f.store.ActivityLogs())
			assert.Empty(t, f.notifier.sent())
		})
	}
}
