//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/availability"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra"
	sqlc "github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra/sqlc/generated"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockResourceReadQueries struct {
	mock.Mock
}

func (m *MockResourceReadQueries) GetResourceByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Resources, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Resources), args.Error(1)
}

func (m *MockResourceReadQueries) ListResources(ctx context.Context, db sqlc.DBTX, arg sqlc.ListResourcesParams) ([]sqlc.Resources, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.Resources), args.Error(1)
}

func (m *MockResourceReadQueries) ListApprovedOverlapping(ctx context.Context, db sqlc.DBTX, arg sqlc.ListApprovedOverlappingParams) ([]sqlc.ListApprovedOverlappingRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.ListApprovedOverlappingRow), args.Error(1)
}

func tstz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func TestResourceReadStore_FindByID(t *testing.T) {
	id := uuid.New()

	t.Run("not found", func(t *testing.T) {
		q := new(MockResourceReadQueries)
		q.On("GetResourceByID", mock.Anything, mock.Anything, id).Return(sqlc.Resources{}, pgx.ErrNoRows)

		_, err := NewResourceReadStore(q, nil).FindByID(context.Background(), id)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("database error", func(t *testing.T) {
		q := new(MockResourceReadQueries)
		q.On("GetResourceByID", mock.Anything, mock.Anything, id).Return(sqlc.Resources{}, assert.AnError)

		_, err := NewResourceReadStore(q, nil).FindByID(context.Background(), id)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestResourceReadStore_List(t *testing.T) {
	after := &queries.Keyset{CreatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), ID: uuid.New()}
	q := new(MockResourceReadQueries)
	q.On("ListResources", mock.Anything, mock.Anything, sqlc.ListResourcesParams{
		Category:       pgtype.Text{String: "glassware", Valid: true},
		AfterCreatedAt: tstz(after.CreatedAt),
		AfterID:        pgtype.UUID{Bytes: after.ID, Valid: true},
		LimitCount:     21,
	}).Return([]sqlc.Resources{{ID: uuid.New(), Name: "Beaker 250ml", Category: "glassware", TotalStock: 12}}, nil)

	got, err := NewResourceReadStore(q, nil).List(context.Background(), queries.ResourceFilter{Category: "glassware"}, after, 21)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 12, got[0].TotalStock)
	q.AssertExpectations(t)
}

func TestResourceReadStore_FindWithCommitments(t *testing.T) {
	id := uuid.New()
	base := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	window := availability.Interval{Start: base, End: base.Add(8 * time.Hour)}

	q := new(MockResourceReadQueries)
	q.On("GetResourceByID", mock.Anything, mock.Anything, id).
		Return(sqlc.Resources{ID: id, Name: "Microscope A", TotalStock: 2}, nil)
	q.On("ListApprovedOverlapping", mock.Anything, mock.Anything, mock.AnythingOfType("sqlc.ListApprovedOverlappingParams")).
		Return([]sqlc.ListApprovedOverlappingRow{
			{StartAt: tstz(base.Add(time.Hour)), EndAt: tstz(base.Add(3 * time.Hour)), Quantity: 1},
		}, nil)

	view, committed, err := NewResourceReadStore(q, nil).FindWithCommitments(context.Background(), id, window)
	require.NoError(t, err)
	assert.Equal(t, "Microscope A", view.Name)
	require.Len(t, committed, 1)
	assert.Equal(t, 1, committed[0].Quantity)
	assert.True(t, committed[0].Interval.Start.Equal(base.Add(time.Hour)))
}
