package queries

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/reservation.go -package=queriesmock

import (
	"context"
	"time"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationView struct {
	ID              uuid.UUID  `json:"id"`
	ResourceID      uuid.UUID  `json:"resource_id"`
	ResourceName    string     `json:"resource_name"`
	RequesterID     uuid.UUID  `json:"requester_id"`
	RequesterEmail  string     `json:"requester_email"`
	Date            time.Time  `json:"date"`
	Start           time.Time  `json:"start"`
	End             time.Time  `json:"end"`
	Quantity        int        `json:"quantity"`
	Status          string     `json:"status"`
	Purpose         string     `json:"purpose"`
	Notes           string     `json:"notes"`
	ApprovedBy      *uuid.UUID `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type ReservationListItem struct {
	ID           uuid.UUID `json:"id"`
	ResourceID   uuid.UUID `json:"resource_id"`
	ResourceName string    `json:"resource_name"`
	Date         time.Time `json:"date"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	Quantity     int       `json:"quantity"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type ReservationFilter struct {
	Status string
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByRequester(ctx context.Context, requesterID uuid.UUID, filter ReservationFilter, after *Keyset, limit int32) ([]*ReservationListItem, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ReservationView, error)
	ListByRequester(ctx context.Context, requesterID uuid.UUID, filter ReservationFilter, cursor *Cursor, limit int) ([]*ReservationListItem, *Cursor, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

// GetByID returns the reservation to its requester or to an admin.
func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ReservationView, error) {
	r, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	if r.RequesterID != actor.ID && !actor.IsAdmin() {
		return nil, ErrReservationAccess
	}
	return r, nil
}

func (q *reservationQueriesImpl) ListByRequester(ctx context.Context, requesterID uuid.UUID, filter ReservationFilter, cursor *Cursor, limit int) ([]*ReservationListItem, *Cursor, error) {
	after, err := decodeCursor(cursor)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.ListByRequester(ctx, requesterID, filter, after, lookaheadLimit(limit))
	if err != nil {
		return nil, nil, err
	}
	rows, next := page(rows, ValidateLimit(limit), func(r *ReservationListItem) (time.Time, uuid.UUID) {
		return r.CreatedAt, r.ID
	})
	return rows, next, nil
}
