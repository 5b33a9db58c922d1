//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/reservation"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/errs"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReservationBuilder)
	errIs  error
}

func TestNew(t *testing.T) {
	t.Run("pending by default", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		r, err := b.BuildNew()
		require.NoError(t, err)

		assert.Equal(t, reservation.StatusPending, r.Status())
		assert.Nil(t, r.ApprovedBy())
		assert.Nil(t, r.ApprovedAt())
		assert.Nil(t, r.RejectionReason())
		assert.Equal(t, b.Start, r.Window().Start)
		assert.Equal(t, b.End, r.Window().End)
		assert.Equal(t, b.Date, r.Date())
	})

	t.Run("auto approve policy approves on creation", func(t *testing.T) {
		b := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.AutoApprove = true })
		r, err := b.BuildNew()
		require.NoError(t, err)

		assert.Equal(t, reservation.StatusApproved, r.Status())
		assert.Nil(t, r.ApprovedBy(), "system approval has no approver")
		require.NotNil(t, r.ApprovedAt())
		assert.Equal(t, b.Now, *r.ApprovedAt())
	})

	t.Run("input validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero quantity",
				mutate: func(b *builder.ReservationBuilder) { b.Quantity = 0 },
				errIs:  errs.ErrValidation,
			},
			{
				name:   "negative quantity",
				mutate: func(b *builder.ReservationBuilder) { b.Quantity = -1 },
				errIs:  errs.ErrValidation,
			},
			{
				name:   "end equals start",
				mutate: func(b *builder.ReservationBuilder) { b.End = b.Start },
				errIs:  errs.ErrValidation,
			},
			{
				name:   "end before start",
				mutate: func(b *builder.ReservationBuilder) { b.Start, b.End = b.End, b.Start },
				errIs:  errs.ErrValidation,
			},
			{
				name:   "window spills into next day",
				mutate: func(b *builder.ReservationBuilder) { b.End = b.Date.Add(25 * time.Hour) },
				errIs:  errs.ErrValidation,
			},
			{
				name:   "missing resource",
				mutate: func(b *builder.ReservationBuilder) { b.ResourceID = uuid.Nil },
				errIs:  errs.ErrValidation,
			},
			{
				name:   "blank purpose",
				mutate: func(b *builder.ReservationBuilder) { b.Purpose = "  " },
				errIs:  errs.ErrValidation,
			},
			{
				name:   "window ending at midnight",
				mutate: func(b *builder.ReservationBuilder) { b.End = b.Date.Add(24 * time.Hour) },
			},
		})
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewReservationBuilder().With(c.mutate).BuildNew()
			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
				return
			}
			require.Nil(t, actual)
			require.ErrorIs(t, err, c.errIs)
		})
	}
}

func TestTransitionGraph(t *testing.T) {
	allowed := map[reservation.Status][]reservation.Status{
		reservation.StatusPending:  {reservation.StatusApproved, reservation.StatusRejected, reservation.StatusCancelled},
		reservation.StatusApproved: {reservation.StatusCancelled, reservation.StatusCompleted},
	}

	for _, from := range reservation.AllStatuses() {
		for _, to := range reservation.AllStatuses() {
			want := false
			for _, s := range allowed[from] {
				if s == to {
					want = true
				}
			}

			t.Run(string(from)+"->"+string(to), func(t *testing.T) {
				r := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.Status = from }).BuildDomain()

				err := r.Transition(to, uuid.New(), nil, time.Now())
				if want {
					require.NoError(t, err)
					assert.Equal(t, to, r.Status())
					return
				}
				require.ErrorIs(t, err, errs.ErrInvalidTransition)
				var te *reservation.TransitionError
				require.ErrorAs(t, err, &te)
				assert.Equal(t, from, te.From)
				assert.Equal(t, to, te.To)
				assert.Equal(t, from, r.Status(), "failed transition must not change status")
			})
		}
	}

	for _, s := range []reservation.Status{reservation.StatusRejected, reservation.StatusCancelled, reservation.StatusCompleted} {
		assert.True(t, s.IsTerminal(), s)
	}
	assert.False(t, reservation.StatusPending.IsTerminal())
	assert.False(t, reservation.StatusApproved.IsTerminal())
}

func TestTransitionStamps(t *testing.T) {
	admin := uuid.New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("approve stamps approver and time", func(t *testing.T) {
		r := builder.NewReservationBuilder().BuildDomain()

		require.NoError(t, r.Transition(reservation.StatusApproved, admin, nil, now))
		require.NotNil(t, r.ApprovedBy())
		assert.Equal(t, admin, *r.ApprovedBy())
		assert.Equal(t, now, *r.ApprovedAt())
		assert.Equal(t, now, r.UpdatedAt())
	})

	t.Run("reject always records a reason", func(t *testing.T) {
		r := builder.NewReservationBuilder().BuildDomain()

		require.NoError(t, r.Transition(reservation.StatusRejected, admin, nil, now))
		require.NotNil(t, r.RejectionReason())
		assert.Equal(t, "", *r.RejectionReason())
	})

	t.Run("reject keeps the given reason", func(t *testing.T) {
		r := builder.NewReservationBuilder().BuildDomain()

		reason := " lab closed for cleaning "
		require.NoError(t, r.Transition(reservation.StatusRejected, admin, &reason, now))
		assert.Equal(t, "lab closed for cleaning", *r.RejectionReason())
	})

	t.Run("only leaving approved frees capacity", func(t *testing.T) {
		assert.True(t, reservation.FreesCapacity(reservation.StatusApproved, reservation.StatusCancelled))
		assert.True(t, reservation.FreesCapacity(reservation.StatusApproved, reservation.StatusCompleted))
		assert.False(t, reservation.FreesCapacity(reservation.StatusPending, reservation.StatusCancelled))
	})

	t.Run("pending to completed is not an edge", func(t *testing.T) {
		r := builder.NewReservationBuilder().BuildDomain()
		require.ErrorIs(t, r.Transition(reservation.StatusCompleted, admin, nil, now), errs.ErrInvalidTransition)
	})
}
