//go:build unit

package queries

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	at := time.Date(2025, 3, 10, 9, 30, 0, 123456000, time.UTC)
	id := uuid.New()

	gotAt, gotID, err := DecodeAfterCursor(EncodeAfterCursor(at, id))
	require.NoError(t, err)
	assert.True(t, at.Equal(gotAt))
	assert.Equal(t, id, gotID)

	_, _, err = DecodeAfterCursor("")
	assert.Error(t, err)
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, 20, ValidateLimit(0))
	assert.Equal(t, 5, ValidateLimit(5))
	assert.Equal(t, MaxListLimit, ValidateLimit(MaxListLimit+1))
}

type stubMaintenanceStore struct {
	rows      []*MaintenanceTicketView
	gotAfter  *Keyset
	gotLimit  int32
	gotStatus string
}

func (s *stubMaintenanceStore) List(_ context.Context, status string, after *Keyset, limit int32) ([]*MaintenanceTicketView, error) {
	s.gotStatus, s.gotAfter, s.gotLimit = status, after, limit
	if int(limit) < len(s.rows) {
		return s.rows[:limit], nil
	}
	return s.rows, nil
}

func TestPaging(t *testing.T) {
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	rows := make([]*MaintenanceTicketView, 5)
	for i := range rows {
		rows[i] = &MaintenanceTicketView{ID: uuid.New(), CreatedAt: base.Add(-time.Duration(i) * time.Minute)}
	}

	t.Run("lookahead row yields a next cursor", func(t *testing.T) {
		store := &stubMaintenanceStore{rows: rows}
		got, next, err := NewMaintenanceQueries(store).List(context.Background(), "pending", nil, 2)
		require.NoError(t, err)

		assert.Len(t, got, 2)
		assert.Equal(t, int32(3), store.gotLimit)
		assert.Nil(t, store.gotAfter)
		assert.Equal(t, "pending", store.gotStatus)
		require.NotNil(t, next)

		at, id, err := DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.True(t, rows[1].CreatedAt.Equal(at))
		assert.Equal(t, rows[1].ID, id)
	})

	t.Run("last page has no cursor", func(t *testing.T) {
		store := &stubMaintenanceStore{rows: rows}
		got, next, err := NewMaintenanceQueries(store).List(context.Background(), "", nil, 10)
		require.NoError(t, err)
		assert.Len(t, got, 5)
		assert.Nil(t, next)
	})

	t.Run("cursor is decoded into a keyset", func(t *testing.T) {
		store := &stubMaintenanceStore{rows: rows}
		cursor := &Cursor{After: EncodeAfterCursor(rows[1].CreatedAt, rows[1].ID)}
		_, _, err := NewMaintenanceQueries(store).List(context.Background(), "", cursor, 2)
		require.NoError(t, err)
		require.NotNil(t, store.gotAfter)
		assert.Equal(t, rows[1].ID, store.gotAfter.ID)
	})

	t.Run("garbage cursor is rejected", func(t *testing.T) {
		store := &stubMaintenanceStore{rows: rows}
		_, _, err := NewMaintenanceQueries(store).List(context.Background(), "", &Cursor{After: "not-a-cursor"}, 2)
		assert.ErrorIs(t, err, ErrInvalidCursor)
	})
}
