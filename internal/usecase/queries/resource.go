package queries

//go:generate mockgen -source=resource.go -destination=../../../tests/mock/queries/resource.go -package=queriesmock

import (
	"context"
	"time"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/availability"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra"

	"github.com/google/uuid"
)

type ResourceView struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	TotalStock int       `json:"total_stock"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type BookedSlot struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Quantity int       `json:"quantity"`
}

// AvailabilityView reports capacity for one window. Remaining may be negative after a
// stock reduction; Available is false whenever Remaining <= 0.
type AvailabilityView struct {
	ResourceID   uuid.UUID    `json:"resource_id"`
	ResourceName string       `json:"resource_name"`
	TotalStock   int          `json:"total_stock"`
	WindowStart  time.Time    `json:"window_start"`
	WindowEnd    time.Time    `json:"window_end"`
	Reserved     int          `json:"reserved"`
	Remaining    int          `json:"remaining"`
	Available    bool         `json:"available"`
	Booked       []BookedSlot `json:"booked"`
}

type ResourceFilter struct {
	Category string
}

type ResourceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ResourceView, error)
	List(ctx context.Context, filter ResourceFilter, after *Keyset, limit int32) ([]*ResourceView, error)
	// FindWithCommitments reads the resource and its approved reservations overlapping
	// window from one snapshot.
	FindWithCommitments(ctx context.Context, id uuid.UUID, window availability.Interval) (*ResourceView, []availability.Commitment, error)
}

type ResourceQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ResourceView, error)
	List(ctx context.Context, filter ResourceFilter, cursor *Cursor, limit int) ([]*ResourceView, *Cursor, error)
	Availability(ctx context.Context, id uuid.UUID, window availability.Interval) (*AvailabilityView, error)
}

type resourceQueriesImpl struct {
	store ResourceReadStore
}

func NewResourceQueries(store ResourceReadStore) ResourceQueries {
	return &resourceQueriesImpl{store: store}
}

func (q *resourceQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ResourceView, error) {
	r, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}
	return r, nil
}

func (q *resourceQueriesImpl) List(ctx context.Context, filter ResourceFilter, cursor *Cursor, limit int) ([]*ResourceView, *Cursor, error) {
	after, err := decodeCursor(cursor)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.List(ctx, filter, after, lookaheadLimit(limit))
	if err != nil {
		return nil, nil, err
	}
	rows, next := page(rows, ValidateLimit(limit), func(r *ResourceView) (time.Time, uuid.UUID) {
		return r.CreatedAt, r.ID
	})
	return rows, next, nil
}

func (q *resourceQueriesImpl) Availability(ctx context.Context, id uuid.UUID, window availability.Interval) (*AvailabilityView, error) {
	r, committed, err := q.store.FindWithCommitments(ctx, id, window)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}

	remaining := availability.RemainingCapacity(r.TotalStock, committed, window)
	view := &AvailabilityView{
		ResourceID:   r.ID,
		ResourceName: r.Name,
		TotalStock:   r.TotalStock,
		WindowStart:  window.Start,
		WindowEnd:    window.End,
		Reserved:     r.TotalStock - remaining,
		Remaining:    remaining,
		Available:    remaining > 0,
		Booked:       make([]BookedSlot, 0, len(committed)),
	}
	for _, c := range committed {
		if !c.Interval.Overlaps(window) {
			continue
		}
		view.Booked = append(view.Booked, BookedSlot{Start: c.Interval.Start, End: c.Interval.End, Quantity: c.Quantity})
	}
	return view, nil
}
