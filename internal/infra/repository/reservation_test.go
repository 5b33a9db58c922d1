//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/availability"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/reservation"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra"
	sqlc "github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra/sqlc/generated"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/errs"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/pgconv"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReservationQueries struct {
	mock.Mock
}

func (m *MockReservationQueries) CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockReservationQueries) GetReservationForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Reservations), args.Error(1)
}

func (m *MockReservationQueries) UpdateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockReservationQueries) DeleteReservation(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationQueries) ListApprovedOverlapping(ctx context.Context, db sqlc.DBTX, arg sqlc.ListApprovedOverlappingParams) ([]sqlc.ListApprovedOverlappingRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.ListApprovedOverlappingRow), args.Error(1)
}

func ts(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func TestReservationRepository_LockByID(t *testing.T) {
	manila, err := time.LoadLocation("Asia/Manila")
	require.NoError(t, err)

	id := uuid.New()
	approver := uuid.New()
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, manila)
	row := sqlc.Reservations{
		ID:              id,
		ResourceID:      uuid.New(),
		RequesterID:     uuid.New(),
		ReservationDate: pgconv.DateToPgtype(time.Date(2025, 3, 10, 0, 0, 0, 0, manila)),
		StartAt:         ts(start.UTC()),
		EndAt:           ts(start.Add(2 * time.Hour).UTC()),
		Quantity:        3,
		Status:          "approved",
		Purpose:         "titration lab",
		ApprovedBy:      pgtype.UUID{Bytes: approver, Valid: true},
		ApprovedAt:      ts(start.Add(-24 * time.Hour)),
		CreatedAt:       ts(start.Add(-48 * time.Hour)),
		UpdatedAt:       ts(start.Add(-24 * time.Hour)),
	}

	t.Run("restores the date in the engine time zone", func(t *testing.T) {
		q := new(MockReservationQueries)
		q.On("GetReservationForUpdate", mock.Anything, mock.Anything, id).Return(row, nil)

		r, err := NewReservationRepository(q, nil, manila).LockByID(context.Background(), id)
		require.NoError(t, err)

		assert.True(t, r.Date().Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, manila)))
		assert.True(t, r.Window().Start.Equal(start))
		assert.Equal(t, reservation.StatusApproved, r.Status())
		assert.Equal(t, 3, r.Quantity())
		require.NotNil(t, r.ApprovedBy())
		assert.Equal(t, approver, *r.ApprovedBy())
		assert.Nil(t, r.RejectionReason())
	})

	t.Run("no rows is not found", func(t *testing.T) {
		q := new(MockReservationQueries)
		q.On("GetReservationForUpdate", mock.Anything, mock.Anything, id).Return(sqlc.Reservations{}, pgx.ErrNoRows)

		_, err := NewReservationRepository(q, nil, manila).LockByID(context.Background(), id)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestReservationRepository_Delete(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name     string
		affected int64
		dbErr    error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "deleted", affected: 1},
		{name: "missing row", affected: 0, wantKind: infra.KindNotFound},
		{name: "database error", dbErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockReservationQueries)
			q.On("DeleteReservation", mock.Anything, mock.Anything, id).Return(tt.affected, tt.dbErr)

			err := NewReservationRepository(q, nil, time.UTC).Delete(context.Background(), id)
			if tt.wantKind == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, infra.IsKind(err, tt.wantKind))
		})
	}
}

func TestReservationRepository_ListApprovedOverlapping(t *testing.T) {
	resourceID := uuid.New()
	base := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	window := availability.Interval{Start: base, End: base.Add(4 * time.Hour)}

	q := new(MockReservationQueries)
	q.On("ListApprovedOverlapping", mock.Anything, mock.Anything, sqlc.ListApprovedOverlappingParams{
		ResourceID:  resourceID,
		WindowEnd:   ts(window.End),
		WindowStart: ts(window.Start),
	}).Return([]sqlc.ListApprovedOverlappingRow{
		{StartAt: ts(base), EndAt: ts(base.Add(time.Hour)), Quantity: 2},
		{StartAt: ts(base.Add(3 * time.Hour)), EndAt: ts(base.Add(5 * time.Hour)), Quantity: 1},
	}, nil)

	got, err := NewReservationRepository(q, nil, time.UTC).ListApprovedOverlapping(context.Background(), resourceID, window)
	require.NoError(t, err)

	want := []availability.Commitment{
		{Interval: availability.Interval{Start: base, End: base.Add(time.Hour)}, Quantity: 2},
		{Interval: availability.Interval{Start: base.Add(3 * time.Hour), End: base.Add(5 * time.Hour)}, Quantity: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("commitments mismatch (-want +got):\n%s", diff)
	}
	q.AssertExpectations(t)
}
