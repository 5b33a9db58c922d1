//go:build unit

package availability_test

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/availability"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemainingCapacity(t *testing.T) {
	committed := []availability.Commitment{
		{Interval: window(t, 9, 11), Quantity: 2},
		{Interval: window(t, 13, 15), Quantity: 1},
	}

	tests := []struct {
		name   string
		window availability.Interval
		want   int
	}{
		{name: "overlaps first booking", window: window(t, 10, 12), want: 1},
		{name: "overlaps both bookings", window: window(t, 10, 14), want: 0},
		{name: "between bookings", window: window(t, 11, 13), want: 3},
		{name: "no bookings", window: window(t, 16, 17), want: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, availability.RemainingCapacity(3, committed, tt.window))
		})
	}

	t.Run("stock reduced below commitments goes negative", func(t *testing.T) {
		assert.Equal(t, -1, availability.RemainingCapacity(1, committed, window(t, 9, 10)))
	})
}

func TestAdmissible(t *testing.T) {
	resourceID := uuid.New()
	committed := []availability.Commitment{{Interval: window(t, 9, 11), Quantity: 2}}

	t.Run("fits", func(t *testing.T) {
		require.NoError(t, availability.Admissible(resourceID, 3, committed, window(t, 10, 12), 1))
	})

	t.Run("zero quantity is invalid input", func(t *testing.T) {
		err := availability.Admissible(resourceID, 3, nil, window(t, 10, 12), 0)
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("negative quantity is invalid input", func(t *testing.T) {
		err := availability.Admissible(resourceID, 3, nil, window(t, 10, 12), -2)
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("exhausted capacity is a conflict with context", func(t *testing.T) {
		w := window(t, 10, 12)
		err := availability.Admissible(resourceID, 2, committed, w, 1)
		require.ErrorIs(t, err, errs.ErrConflict)

		var conflict *availability.CapacityConflictError
		require.True(t, errors.As(err, &conflict))
		assert.Equal(t, resourceID, conflict.ResourceID)
		assert.Equal(t, w, conflict.Window)
		assert.Equal(t, 1, conflict.Requested)
		assert.Equal(t, 0, conflict.Remaining)
	})
}

// Accepting requests one by one through Admissible never lets the approved
// quantity covering any instant exceed the stock.
func TestAdmissibleKeepsInstantLoadWithinStock(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	resourceID := uuid.New()

	for round := 0; round < 200; round++ {
		stock := rng.Intn(5)
		var accepted []availability.Commitment

		for i := 0; i < 30; i++ {
			startMin := rng.Intn(12 * 60)
			length := 15 + rng.Intn(4*60)
			w := availability.Interval{
				Start: day.Add(time.Duration(startMin) * time.Minute),
				End:   day.Add(time.Duration(startMin+length) * time.Minute),
			}
			q := rng.Intn(4)
			if err := availability.Admissible(resourceID, stock, accepted, w, q); err == nil {
				accepted = append(accepted, availability.Commitment{Interval: w, Quantity: q})
			}
		}

		for minute := 0; minute < 17*60; minute++ {
			instant := availability.Interval{
				Start: day.Add(time.Duration(minute) * time.Minute),
				End:   day.Add(time.Duration(minute+1) * time.Minute),
			}
			load := stock - availability.RemainingCapacity(stock, accepted, instant)
			require.LessOrEqualf(t, load, stock, "round %d minute %d", round, minute)
		}
	}
}

func TestPeakLoad(t *testing.T) {
	tests := []struct {
		name      string
		committed []availability.Commitment
		want      int
	}{
		{name: "nothing committed", want: 0},
		{
			name: "disjoint windows",
			committed: []availability.Commitment{
				{Interval: window(t, 9, 11), Quantity: 2},
				{Interval: window(t, 11, 13), Quantity: 1},
			},
			want: 2,
		},
		{
			name: "nested windows add up",
			committed: []availability.Commitment{
				{Interval: window(t, 9, 15), Quantity: 1},
				{Interval: window(t, 10, 11), Quantity: 2},
				{Interval: window(t, 12, 13), Quantity: 1},
			},
			want: 3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, availability.PeakLoad(tt.committed))
		})
	}
}

func TestWithdrawable(t *testing.T) {
	resourceID := uuid.New()
	committed := []availability.Commitment{
		{Interval: window(t, 9, 11), Quantity: 2},
		{Interval: window(t, 14, 16), Quantity: 1},
	}

	t.Run("units not needed by any commitment", func(t *testing.T) {
		require.NoError(t, availability.Withdrawable(resourceID, 3, committed, window(t, 8, 17), 1))
	})

	t.Run("commitments outside the span are ignored", func(t *testing.T) {
		require.NoError(t, availability.Withdrawable(resourceID, 2, committed, window(t, 12, 17), 1))
	})

	t.Run("taking a committed unit is a conflict", func(t *testing.T) {
		span := window(t, 8, 17)
		err := availability.Withdrawable(resourceID, 2, committed, span, 1)
		require.ErrorIs(t, err, errs.ErrConflict)

		var conflict *availability.CapacityConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, span, conflict.Window)
		assert.Equal(t, 0, conflict.Remaining)
	})

	t.Run("zero quantity is invalid input", func(t *testing.T) {
		err := availability.Withdrawable(resourceID, 3, nil, window(t, 8, 17), 0)
		require.ErrorIs(t, err, errs.ErrValidation)
	})
}
