package waitlist

import (
	"time"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/availability"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/errs"

	"github.com/google/uuid"
)

type Entry struct {
	id            uuid.UUID
	resourceID    uuid.UUID
	requesterID   uuid.UUID
	quantity      int
	preferred     *availability.Interval
	priority      Priority
	status        Status
	notifiedAt    *time.Time
	fulfilledAt   *time.Time
	reservationID *uuid.UUID
	createdAt     time.Time
	updatedAt     time.Time
}

func NewEntry(
	resourceID, requesterID uuid.UUID,
	quantity int,
	preferred *availability.Interval,
	priority Priority,
	now time.Time,
) (*Entry, error) {
	if resourceID == uuid.Nil {
		return nil, errs.Validationf("resource is required")
	}
	if requesterID == uuid.Nil {
		return nil, errs.Validationf("requester is required")
	}
	if quantity <= 0 {
		return nil, errs.Validationf("quantity must be at least 1, got %d", quantity)
	}
	if preferred != nil {
		if _, err := availability.NewInterval(preferred.Start, preferred.End); err != nil {
			return nil, err
		}
	}
	if !priority.IsValid() {
		return nil, errs.Validationf("unknown priority %q", priority)
	}

	return &Entry{
		id:          uuid.New(),
		resourceID:  resourceID,
		requesterID: requesterID,
		quantity:    quantity,
		preferred:   preferred,
		priority:    priority,
		status:      StatusWaiting,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func (e *Entry) MarkNotified(now time.Time) error {
	if e.status != StatusWaiting {
		return errs.InvalidStatef("waiting list entry %s is %s, only waiting entries can be notified", e.id, e.status)
	}
	e.status = StatusNotified
	e.notifiedAt = &now
	e.updatedAt = now
	return nil
}

func (e *Entry) Fulfill(reservationID uuid.UUID, now time.Time) error {
	if e.status != StatusNotified {
		return errs.InvalidStatef("waiting list entry %s is %s, only notified entries can be fulfilled", e.id, e.status)
	}
	e.status = StatusFulfilled
	e.fulfilledAt = &now
	e.reservationID = &reservationID
	e.updatedAt = now
	return nil
}

func (e *Entry) Cancel(now time.Time) error {
	if !e.status.IsActive() {
		return errs.InvalidStatef("waiting list entry %s is already %s", e.id, e.status)
	}
	e.status = StatusCancelled
	e.updatedAt = now
	return nil
}

// EvaluationWindow is the window the entry is matched against.
func (e *Entry) EvaluationWindow(trigger availability.Interval) availability.Interval {
	if e.preferred != nil {
		return *e.preferred
	}
	return trigger
}

func (e *Entry) ID() uuid.UUID                     { return e.id }
func (e *Entry) ResourceID() uuid.UUID             { return e.resourceID }
func (e *Entry) RequesterID() uuid.UUID            { return e.requesterID }
func (e *Entry) Quantity() int                     { return e.quantity }
func (e *Entry) Preferred() *availability.Interval { return e.preferred }
func (e *Entry) Priority() Priority                { return e.priority }
func (e *Entry) Status() Status                    { return e.status }
func (e *Entry) NotifiedAt() *time.Time            { return e.notifiedAt }
func (e *Entry) FulfilledAt() *time.Time           { return e.fulfilledAt }
func (e *Entry) ReservationID() *uuid.UUID         { return e.reservationID }
func (e *Entry) CreatedAt() time.Time              { return e.createdAt }
func (e *Entry) UpdatedAt() time.Time              { return e.updatedAt }

type Snapshot struct {
	ID            uuid.UUID
	ResourceID    uuid.UUID
	RequesterID   uuid.UUID
	Quantity      int
	Preferred     *availability.Interval
	Priority      Priority
	Status        Status
	NotifiedAt    *time.Time
	FulfilledAt   *time.Time
	ReservationID *uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func Reconstruct(s Snapshot) *Entry {
	return &Entry{
		id:            s.ID,
		resourceID:    s.ResourceID,
		requesterID:   s.RequesterID,
		quantity:      s.Quantity,
		preferred:     s.Preferred,
		priority:      s.Priority,
		status:        s.Status,
		notifiedAt:    s.NotifiedAt,
		fulfilledAt:   s.FulfilledAt,
		reservationID: s.ReservationID,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
	}
}

func (e *Entry) Snapshot() Snapshot {
	return Snapshot{
		ID:            e.id,
		ResourceID:    e.resourceID,
		RequesterID:   e.requesterID,
		Quantity:      e.quantity,
		Preferred:     e.preferred,
		Priority:      e.priority,
		Status:        e.status,
		NotifiedAt:    e.notifiedAt,
		FulfilledAt:   e.fulfilledAt,
		ReservationID: e.reservationID,
		CreatedAt:     e.createdAt,
		UpdatedAt:     e.updatedAt,
	}
}
