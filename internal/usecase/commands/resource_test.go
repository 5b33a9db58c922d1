//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/activitylog"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/notification"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/reservation"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/waitlist"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/errs"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fixture) resources() commands.ResourceCommands {
	return commands.NewResourceCommands(f.store, f.notifier, f.clock, f.policy)
}

func TestCreateResource(t *testing.T) {
	ctx := context.Background()

	t.Run("admin creates", func(t *testing.T) {
		f := newFixture(t, 1)

		res, err := f.resources().Create(ctx, f.admin, commands.CreateResourceInput{
			Name:       "Centrifuge",
			Category:   "lab",
			TotalStock: 4,
		})
		require.NoError(t, err)

		stored, ok := f.store.Resource(res.ID())
		require.True(t, ok)
		assert.Equal(t, 4, stored.TotalStock())

		logs := f.store.ActivityLogs()
		require.Len(t, logs, 1)
		assert.Equal(t, activitylog.EntityResource, logs[0].EntityType)
		assert.JSONEq(t, `{"total_stock":4}`, string(logs[0].After))
	})

	t.Run("negative stock", func(t *testing.T) {
		f := newFixture(t, 1)
		_, err := f.resources().Create(ctx, f.admin, commands.CreateResourceInput{Name: "Centrifuge", Category: "lab", TotalStock: -1})
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("requires an administrator", func(t *testing.T) {
		f := newFixture(t, 1)
		_, err := f.resources().Create(ctx, f.requester, commands.CreateResourceInput{Name: "Centrifuge", Category: "lab", TotalStock: 1})
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestSignalRestock(t *testing.T) {
	ctx := context.Background()

	t.Run("new units go to the waiting list", func(t *testing.T) {
		f := newFixture(t, 1)
		f.seedReservation(reservation.StatusApproved, hours(9, 11), 1)
		preferred := hours(9, 10)
		e := f.seedEntry(t, 1, &preferred, false)
		trigger := hours(8, 12)

		res, err := f.resources().SignalRestock(ctx, f.admin, f.resource.ID(), 1, &trigger)
		require.NoError(t, err)
		assert.Equal(t, 2, res.TotalStock())
		assert.Equal(t, 2, f.stock(t))

		stored, ok := f.store.WaitlistEntry(e.ID())
		require.True(t, ok)
		assert.Equal(t, waitlist.StatusNotified, stored.Status())
		assert.Equal(t, []notification.Kind{notification.KindWaitlistSlotAvailable}, f.notifier.to(f.requester.ID))
	})

	t.Run("no room leaves entries waiting", func(t *testing.T) {
		f := newFixture(t, 1)
		f.seedReservation(reservation.StatusApproved, hours(9, 11), 1)
		preferred := hours(9, 10)
		e := f.seedEntry(t, 2, &preferred, false)
		trigger := hours(8, 12)

		_, err := f.resources().SignalRestock(ctx, f.admin, f.resource.ID(), 1, &trigger)
		require.NoError(t, err)

		stored, ok := f.store.WaitlistEntry(e.ID())
		require.True(t, ok)
		assert.Equal(t, waitlist.StatusWaiting, stored.Status())
		assert.Empty(t, f.notifier.sent())
	})

	t.Run("zero delta only rescans", func(t *testing.T) {
		f := newFixture(t, 1)
		e := f.seedEntry(t, 1, nil, false)

		_, err := f.resources().SignalRestock(ctx, f.admin, f.resource.ID(), 0, nil)
		require.NoError(t, err)

		assert.Equal(t, 1, f.stock(t))
		stored, ok := f.store.WaitlistEntry(e.ID())
		require.True(t, ok)
		assert.Equal(t, waitlist.StatusNotified, stored.Status())
	})

	t.Run("repeated rescans keep earlier promises", func(t *testing.T) {
		f := newFixture(t, 1)
		first := f.seedEntry(t, 1, nil, false)
		second, err := waitlist.NewEntry(f.resource.ID(), f.other.ID, 1, nil, waitlist.PriorityMedium, testNow)
		require.NoError(t, err)
		f.store.SeedWaitlistEntry(second)

		for range 2 {
			_, err := f.resources().SignalRestock(ctx, f.admin, f.resource.ID(), 0, nil)
			require.NoError(t, err)
		}

		stored, ok := f.store.WaitlistEntry(first.ID())
		require.True(t, ok)
		assert.Equal(t, waitlist.StatusNotified, stored.Status())
		stored, ok = f.store.WaitlistEntry(second.ID())
		require.True(t, ok)
		assert.Equal(t, waitlist.StatusWaiting, stored.Status())
		assert.Empty(t, f.notifier.to(f.other.ID))
	})

	t.Run("negative delta", func(t *testing.T) {
		f := newFixture(t, 1)
		_, err := f.resources().SignalRestock(ctx, f.admin, f.resource.ID(), -1, nil)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}
