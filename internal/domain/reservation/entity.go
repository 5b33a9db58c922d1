package reservation

import (
	"strings"
	"time"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/availability"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	MaxPurposeLength = 500
	MaxNotesLength   = 2000
)

// Policy is the engine configuration consulted once per Create call.
type Policy struct {
	AutoApprove bool
	Location    *time.Location
}

func (p Policy) location() *time.Location {
	if p.Location == nil {
		return time.UTC
	}
	return p.Location
}

type NewParams struct {
	ResourceID  uuid.UUID
	RequesterID uuid.UUID
	Date        time.Time
	Window      availability.Interval
	Quantity    int
	Purpose     string
	Notes       string
}

type Reservation struct {
	id              uuid.UUID
	resourceID      uuid.UUID
	requesterID     uuid.UUID
	date            time.Time
	window          availability.Interval
	quantity        int
	status          Status
	purpose         string
	notes           string
	approvedBy      *uuid.UUID
	approvedAt      *time.Time
	rejectionReason *string
	createdAt       time.Time
	updatedAt       time.Time
}

// New validates p and returns a pending reservation, or an approved one when the
// policy auto-approves. Auto-approved reservations carry no approver.
func New(p NewParams, policy Policy, now time.Time) (*Reservation, error) {
	if err := p.validate(policy.location()); err != nil {
		return nil, err
	}

	r := &Reservation{
		id:          uuid.New(),
		resourceID:  p.ResourceID,
		requesterID: p.RequesterID,
		date:        availability.TruncateDay(p.Date, policy.location()),
		window:      p.Window,
		quantity:    p.Quantity,
		status:      StatusPending,
		purpose:     strings.TrimSpace(p.Purpose),
		notes:       strings.TrimSpace(p.Notes),
		createdAt:   now,
		updatedAt:   now,
	}
	if policy.AutoApprove {
		r.status = StatusApproved
		r.approvedAt = &now
	}
	return r, nil
}

func (p NewParams) validate(loc *time.Location) error {
	if p.ResourceID == uuid.Nil {
		return errs.Validationf("resource is required")
	}
	if p.RequesterID == uuid.Nil {
		return errs.Validationf("requester is required")
	}
	if p.Quantity <= 0 {
		return errs.Validationf("quantity must be at least 1, got %d", p.Quantity)
	}
	if _, err := availability.NewInterval(p.Window.Start, p.Window.End); err != nil {
		return err
	}
	if p.Date.IsZero() {
		return errs.Validationf("date is required")
	}
	if !availability.DayWindow(p.Date, loc).Contains(p.Window) {
		return errs.Validationf("window %s must fall on %s", p.Window, p.Date.In(loc).Format(time.DateOnly))
	}
	purpose := strings.TrimSpace(p.Purpose)
	if purpose == "" {
		return errs.Validationf("purpose is required")
	}
	if len(purpose) > MaxPurposeLength {
		return errs.Validationf("purpose is too long (max %d characters)", MaxPurposeLength)
	}
	if len(p.Notes) > MaxNotesLength {
		return errs.Validationf("notes are too long (max %d characters)", MaxNotesLength)
	}
	return nil
}

// Transition moves the reservation along one edge of the status graph.
// reason is only recorded on rejection, where it is always set.
func (r *Reservation) Transition(to Status, actorID uuid.UUID, reason *string, now time.Time) error {
	if !to.IsValid() {
		return errs.Validationf("unknown reservation status %q", to)
	}
	if !CanTransition(r.status, to) {
		return &TransitionError{ReservationID: r.id, From: r.status, To: to}
	}

	switch to {
	case StatusApproved:
		r.approvedBy = &actorID
		r.approvedAt = &now
		r.rejectionReason = nil
	case StatusRejected:
		text := ""
		if reason != nil {
			text = strings.TrimSpace(*reason)
		}
		r.approvedBy = &actorID
		r.approvedAt = &now
		r.rejectionReason = &text
	}

	r.status = to
	r.updatedAt = now
	return nil
}

// Commitment is the capacity this reservation holds while approved.
func (r *Reservation) Commitment() availability.Commitment {
	return availability.Commitment{Interval: r.window, Quantity: r.quantity}
}

func (r *Reservation) IsTerminal() bool {
	return r.status.IsTerminal()
}

func (r *Reservation) ID() uuid.UUID                 { return r.id }
func (r *Reservation) ResourceID() uuid.UUID         { return r.resourceID }
func (r *Reservation) RequesterID() uuid.UUID        { return r.requesterID }
func (r *Reservation) Date() time.Time               { return r.date }
func (r *Reservation) Window() availability.Interval { return r.window }
func (r *Reservation) Quantity() int                 { return r.quantity }
func (r *Reservation) Status() Status                { return r.status }
func (r *Reservation) Purpose() string               { return r.purpose }
func (r *Reservation) Notes() string                 { return r.notes }
func (r *Reservation) ApprovedBy() *uuid.UUID        { return r.approvedBy }
func (r *Reservation) ApprovedAt() *time.Time        { return r.approvedAt }
func (r *Reservation) RejectionReason() *string      { return r.rejectionReason }
func (r *Reservation) CreatedAt() time.Time          { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time          { return r.updatedAt }

type Snapshot struct {
	ID              uuid.UUID
	ResourceID      uuid.UUID
	RequesterID     uuid.UUID
	Date            time.Time
	Window          availability.Interval
	Quantity        int
	Status          Status
	Purpose         string
	Notes           string
	ApprovedBy      *uuid.UUID
	ApprovedAt      *time.Time
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func Reconstruct(s Snapshot) *Reservation {
	return &Reservation{
		id:              s.ID,
		resourceID:      s.ResourceID,
		requesterID:     s.RequesterID,
		date:            s.Date,
		window:          s.Window,
		quantity:        s.Quantity,
		status:          s.Status,
		purpose:         s.Purpose,
		notes:           s.Notes,
		approvedBy:      s.ApprovedBy,
		approvedAt:      s.ApprovedAt,
		rejectionReason: s.RejectionReason,
		createdAt:       s.CreatedAt,
		updatedAt:       s.UpdatedAt,
	}
}

func (r *Reservation) Snapshot() Snapshot {
	return Snapshot{
		ID:              r.id,
		ResourceID:      r.resourceID,
		RequesterID:     r.requesterID,
		Date:            r.date,
		Window:          r.window,
		Quantity:        r.quantity,
		Status:          r.status,
		Purpose:         r.purpose,
		Notes:           r.notes,
		ApprovedBy:      r.approvedBy,
		ApprovedAt:      r.approvedAt,
		RejectionReason: r.rejectionReason,
		CreatedAt:       r.createdAt,
		UpdatedAt:       r.updatedAt,
	}
}
