package queries

//go:generate mockgen -source=waitlist.go -destination=../../../tests/mock/queries/waitlist.go -package=queriesmock

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type WaitlistEntryView struct {
	ID             uuid.UUID  `json:"id"`
	ResourceID     uuid.UUID  `json:"resource_id"`
	RequesterID    uuid.UUID  `json:"requester_id"`
	Quantity       int        `json:"quantity"`
	PreferredStart *time.Time `json:"preferred_start,omitempty"`
	PreferredEnd   *time.Time `json:"preferred_end,omitempty"`
	Priority       string     `json:"priority"`
	Status         string     `json:"status"`
	NotifiedAt     *time.Time `json:"notified_at,omitempty"`
	FulfilledAt    *time.Time `json:"fulfilled_at,omitempty"`
	ReservationID  *uuid.UUID `json:"reservation_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// WaitlistFilter narrows the listing. Nil ids do not filter.
type WaitlistFilter struct {
	ResourceID  *uuid.UUID
	RequesterID *uuid.UUID
	Status      string
}

type WaitlistReadStore interface {
	List(ctx context.Context, filter WaitlistFilter, after *Keyset, limit int32) ([]*WaitlistEntryView, error)
}

type WaitlistQueries interface {
	List(ctx context.Context, filter WaitlistFilter, cursor *Cursor, limit int) ([]*WaitlistEntryView, *Cursor, error)
}

type waitlistQueriesImpl struct {
	store WaitlistReadStore
}

func NewWaitlistQueries(store WaitlistReadStore) WaitlistQueries {
	return &waitlistQueriesImpl{store: store}
}

func (q *waitlistQueriesImpl) List(ctx context.Context, filter WaitlistFilter, cursor *Cursor, limit int) ([]*WaitlistEntryView, *Cursor, error) {
	after, err := decodeCursor(cursor)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.List(ctx, filter, after, lookaheadLimit(limit))
	if err != nil {
		return nil, nil, err
	}
	rows, next := page(rows, ValidateLimit(limit), func(e *WaitlistEntryView) (time.Time, uuid.UUID) {
		return e.CreatedAt, e.ID
	})
	return rows, next, nil
}
