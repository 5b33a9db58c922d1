//go:build unit

package memstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/resource"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra/memstore"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/errs"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResource(t *testing.T, stock int) *resource.Resource {
	t.Helper()
	r, err := resource.NewResource("Microscope A", "optics", stock, time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return r
}

func TestWithin(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 2, 8, 0, 0, 0, time.UTC)

	t.Run("committed writes replace the live state", func(t *testing.T) {
		store := memstore.New()
		r := newResource(t, 2)
		store.SeedResource(r)

		err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			locked, err := tx.Resources().LockByID(ctx, r.ID())
			require.NoError(t, err)
			require.NoError(t, locked.AdjustStock(3, now))
			return tx.Resources().UpdateStock(ctx, locked)
		})
		require.NoError(t, err)

		got, ok := store.Resource(r.ID())
		require.True(t, ok)
		assert.Equal(t, 5, got.TotalStock())
	})

	t.Run("an error discards every write", func(t *testing.T) {
		store := memstore.New()
		r := newResource(t, 2)
		store.SeedResource(r)
		boom := errors.New("boom")

		err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			locked, err := tx.Resources().LockByID(ctx, r.ID())
			require.NoError(t, err)
			require.NoError(t, locked.AdjustStock(3, now))
			require.NoError(t, tx.Resources().UpdateStock(ctx, locked))
			return boom
		})
		assert.ErrorIs(t, err, boom)

		got, _ := store.Resource(r.ID())
		assert.Equal(t, 2, got.TotalStock())
	})

	t.Run("FailNext fires once", func(t *testing.T) {
		store := memstore.New()
		r := newResource(t, 2)
		store.SeedResource(r)
		injected := errors.New("disk full")
		store.FailNext(memstore.OpResourceUpdateStock, injected)

		update := func(ctx context.Context, tx shared.Tx) error {
			locked, err := tx.Resources().LockByID(ctx, r.ID())
			if err != nil {
				return err
			}
			return tx.Resources().UpdateStock(ctx, locked)
		}
		assert.ErrorIs(t, store.Within(ctx, update), injected)
		assert.NoError(t, store.Within(ctx, update))
	})

	t.Run("failed commit discards every write", func(t *testing.T) {
		store := memstore.New()
		r := newResource(t, 2)
		store.SeedResource(r)
		injected := errors.New("serialization failure")
		store.FailNext(memstore.OpCommit, injected)

		err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			locked, err := tx.Resources().LockByID(ctx, r.ID())
			require.NoError(t, err)
			require.NoError(t, locked.AdjustStock(3, now))
			return tx.Resources().UpdateStock(ctx, locked)
		})
		assert.ErrorIs(t, err, injected)

		got, _ := store.Resource(r.ID())
		assert.Equal(t, 2, got.TotalStock())
	})

	t.Run("missing rows are not found", func(t *testing.T) {
		store := memstore.New()
		err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			_, err := tx.Reservations().LockByID(ctx, uuid.New())
			return err
		})
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("cancelled context does not start", func(t *testing.T) {
		store := memstore.New()
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		called := false
		err := store.Within(cctx, func(context.Context, shared.Tx) error {
			called = true
			return nil
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called)
	})
}
