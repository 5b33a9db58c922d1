//go:build unit || e2e

package builder

import (
	"time"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/availability"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/reservation"
	reqdto "github.com/benjietrozo-hub/labmate-guardian-sub000/internal/handler/dto/request"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID          uuid.UUID
	ResourceID  uuid.UUID
	RequesterID uuid.UUID
	Date        time.Time
	Start       time.Time
	End         time.Time
	Quantity    int
	Purpose     string
	Notes       string
	Status      reservation.Status
	AutoApprove bool
	Now         time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:          uuid.New(),
		ResourceID:  uuid.New(),
		RequesterID: uuid.New(),
		Date:        date,
		Start:       date.Add(9 * time.Hour),
		End:         date.Add(11 * time.Hour),
		Quantity:    1,
		Purpose:     "Cell imaging",
		Status:      reservation.StatusPending,
		Now:         time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC),
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

// Between sets the window as hours on Date.
func (r *ReservationBuilder) Between(fromHour, toHour int) *ReservationBuilder {
	r.Start = r.Date.Add(time.Duration(fromHour) * time.Hour)
	r.End = r.Date.Add(time.Duration(toHour) * time.Hour)
	return r
}

func (r *ReservationBuilder) Window() availability.Interval {
	return availability.Interval{Start: r.Start, End: r.End}
}

// BuildNew runs the fields through reservation.New, so Status is ignored.
func (r *ReservationBuilder) BuildNew() (*reservation.Reservation, error) {
	return reservation.New(reservation.NewParams{
		ResourceID:  r.ResourceID,
		RequesterID: r.RequesterID,
		Date:        r.Date,
		Window:      r.Window(),
		Quantity:    r.Quantity,
		Purpose:     r.Purpose,
		Notes:       r.Notes,
	}, reservation.Policy{AutoApprove: r.AutoApprove, Location: time.UTC}, r.Now)
}

// BuildDomain returns the reservation as if it had been stored in Status.
func (r *ReservationBuilder) BuildDomain() *reservation.Reservation {
	s := reservation.Snapshot{
		ID:          r.ID,
		ResourceID:  r.ResourceID,
		RequesterID: r.RequesterID,
		Date:        r.Date,
		Window:      r.Window(),
		Quantity:    r.Quantity,
		Status:      r.Status,
		Purpose:     r.Purpose,
		Notes:       r.Notes,
		CreatedAt:   r.Now,
		UpdatedAt:   r.Now,
	}
	if r.Status == reservation.StatusApproved || r.Status == reservation.StatusCompleted {
		approver := uuid.New()
		s.ApprovedBy = &approver
		s.ApprovedAt = &r.Now
	}
	return reservation.Reconstruct(s)
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:             r.ID,
		ResourceID:     r.ResourceID,
		ResourceName:   "Microscope A",
		RequesterID:    r.RequesterID,
		RequesterEmail: "test@example.com",
		Date:           r.Date,
		Start:          r.Start,
		End:            r.End,
		Quantity:       r.Quantity,
		Status:         r.Status.String(),
		Purpose:        r.Purpose,
		Notes:          r.Notes,
		CreatedAt:      r.Now,
		UpdatedAt:      r.Now,
	}
}

func (r *ReservationBuilder) BuildRequest() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		ResourceID: r.ResourceID,
		Date:       r.Date.Format(time.DateOnly),
		StartTime:  r.Start.Format("15:04"),
		EndTime:    r.End.Format("15:04"),
		Quantity:   r.Quantity,
		Purpose:    r.Purpose,
	}
}
