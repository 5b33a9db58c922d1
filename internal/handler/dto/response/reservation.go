package response

import (
	"time"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/reservation"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID              uuid.UUID  `json:"id"`
	ResourceID      uuid.UUID  `json:"resource_id"`
	ResourceName    string     `json:"resource_name,omitempty"`
	RequesterID     uuid.UUID  `json:"requester_id"`
	RequesterEmail  string     `json:"requester_email,omitempty"`
	Date            string     `json:"date" copier:"-"`
	Start           time.Time  `json:"start"`
	End             time.Time  `json:"end"`
	Quantity        int        `json:"quantity"`
	Status          string     `json:"status"`
	Purpose         string     `json:"purpose"`
	Notes           string     `json:"notes,omitempty"`
	ApprovedBy      *uuid.UUID `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type ReservationListResponse struct {
	ID           uuid.UUID `json:"id"`
	ResourceID   uuid.UUID `json:"resource_id"`
	ResourceName string    `json:"resource_name"`
	Date         string    `json:"date" copier:"-"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	Quantity     int       `json:"quantity"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromReservation(r *reservation.Reservation) (*ReservationResponse, error) {
	s := r.Snapshot()
	var out ReservationResponse
	if err := copier.Copy(&out, s); err != nil {
		return nil, err
	}
	out.Date = s.Date.Format(time.DateOnly)
	out.Start = s.Window.Start
	out.End = s.Window.End
	out.Status = s.Status.String()
	return &out, nil
}

func FromReservationView(v *queries.ReservationView) (*ReservationResponse, error) {
	var out ReservationResponse
	if err := copier.Copy(&out, v); err != nil {
		return nil, err
	}
	out.Date = v.Date.Format(time.DateOnly)
	return &out, nil
}

func FromReservationList(items []*queries.ReservationListItem) ([]ReservationListResponse, error) {
	return mapAll(items, func(d *ReservationListResponse, s *queries.ReservationListItem) {
		d.Date = s.Date.Format(time.DateOnly)
	})
}
