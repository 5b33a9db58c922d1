package request

import (
	"time"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/availability"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/patch"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	ResourceID uuid.UUID `json:"resource_id" binding:"required"`
	Date       string    `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime  string    `json:"start_time" binding:"required"`
	EndTime    string    `json:"end_time" binding:"required"`
	Quantity   int       `json:"quantity" binding:"required,min=1"`
	Purpose    string    `json:"purpose" binding:"required,max=500"`
	Notes      *string   `json:"notes,omitempty" binding:"omitempty,max=2000"`
}

func (r CreateReservationRequest) Window(loc *time.Location) (time.Time, availability.Interval, error) {
	return ParseWindow(r.Date, r.StartTime, r.EndTime, loc)
}

func (r CreateReservationRequest) GetNotes() string {
	return patch.TrimmedOrEmpty(r.Notes)
}

type TransitionReservationRequest struct {
	Status string  `json:"status" binding:"required,oneof=approved rejected cancelled completed"`
	Reason *string `json:"reason,omitempty" binding:"omitempty,max=500"`
}
