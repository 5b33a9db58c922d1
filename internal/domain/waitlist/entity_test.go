//go:build unit

package waitlist_test

import (
	"testing"
	"time"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/availability"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/waitlist"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	bad := availability.Interval{Start: now, End: now}

	tests := []struct {
		name      string
		quantity  int
		preferred *availability.Interval
		priority  waitlist.Priority
		errIs     error
	}{
		{name: "valid", quantity: 1, priority: waitlist.PriorityHigh},
		{name: "zero quantity", quantity: 0, priority: waitlist.PriorityHigh, errIs: errs.ErrValidation},
		{name: "empty preferred window", quantity: 1, preferred: &bad, priority: waitlist.PriorityLow, errIs: errs.ErrValidation},
		{name: "unknown priority", quantity: 1, priority: "urgent", errIs: errs.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := waitlist.NewEntry(uuid.New(), uuid.New(), tt.quantity, tt.preferred, tt.priority, now)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, waitlist.StatusWaiting, e.Status())
		})
	}
}

func TestParsePriority(t *testing.T) {
	p, err := waitlist.ParsePriority("")
	require.NoError(t, err)
	assert.Equal(t, waitlist.PriorityMedium, p)

	_, err = waitlist.ParsePriority("urgent")
	require.ErrorIs(t, err, errs.ErrValidation)
}

func TestEntryLifecycle(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	newEntry := func(t *testing.T) *waitlist.Entry {
		e, err := waitlist.NewEntry(uuid.New(), uuid.New(), 1, nil, waitlist.PriorityMedium, now)
		require.NoError(t, err)
		return e
	}

	t.Run("fulfil requires notification first", func(t *testing.T) {
		e := newEntry(t)
		require.ErrorIs(t, e.Fulfill(uuid.New(), now), errs.ErrInvalidState)

		require.NoError(t, e.MarkNotified(now))
		resID := uuid.New()
		require.NoError(t, e.Fulfill(resID, now.Add(time.Hour)))
		assert.Equal(t, waitlist.StatusFulfilled, e.Status())
		assert.Equal(t, resID, *e.ReservationID())
		assert.Equal(t, now.Add(time.Hour), *e.FulfilledAt())
	})

	t.Run("cancel from waiting or notified", func(t *testing.T) {
		waiting := newEntry(t)
		require.NoError(t, waiting.Cancel(now))
		assert.Equal(t, waitlist.StatusCancelled, waiting.Status())
		require.ErrorIs(t, waiting.Cancel(now), errs.ErrInvalidState)

		notified := newEntry(t)
		require.NoError(t, notified.MarkNotified(now))
		require.NoError(t, notified.Cancel(now))
	})

	t.Run("notify only from waiting", func(t *testing.T) {
		e := newEntry(t)
		require.NoError(t, e.MarkNotified(now))
		require.ErrorIs(t, e.MarkNotified(now), errs.ErrInvalidState)
	})
}
