package queries

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type ActivityLogView struct {
	ID         uuid.UUID       `json:"id"`
	ActorID    *uuid.UUID      `json:"actor_id,omitempty"`
	EntityType string          `json:"entity_type"`
	EntityID   uuid.UUID       `json:"entity_id"`
	Action     string          `json:"action"`
	Before     json.RawMessage `json:"before_state"`
	After      json.RawMessage `json:"after_state"`
	Details    json.RawMessage `json:"details"`
	CreatedAt  time.Time       `json:"created_at"`
}

type ActivityLogFilter struct {
	EntityType string
	EntityID   *uuid.UUID
}

type ActivityLogReadStore interface {
	List(ctx context.Context, filter ActivityLogFilter, after *Keyset, limit int32) ([]*ActivityLogView, error)
}

type ActivityLogQueries interface {
	List(ctx context.Context, filter ActivityLogFilter, cursor *Cursor, limit int) ([]*ActivityLogView, *Cursor, error)
}

type activityLogQueriesImpl struct {
	store ActivityLogReadStore
}

func NewActivityLogQueries(store ActivityLogReadStore) ActivityLogQueries {
	return &activityLogQueriesImpl{store: store}
}

func (q *activityLogQueriesImpl) List(ctx context.Context, filter ActivityLogFilter, cursor *Cursor, limit int) ([]*ActivityLogView, *Cursor, error) {
	after, err := decodeCursor(cursor)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.List(ctx, filter, after, lookaheadLimit(limit))
	if err != nil {
		return nil, nil, err
	}
	rows, next := page(rows, ValidateLimit(limit), func(l *ActivityLogView) (time.Time, uuid.UUID) {
		return l.CreatedAt, l.ID
	})
	return rows, next, nil
}
