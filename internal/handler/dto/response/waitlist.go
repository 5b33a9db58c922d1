package response

import (
	"time"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/waitlist"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type WaitlistEntryResponse struct {
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

func FromWaitlistEntry(e *waitlist.Entry) (*WaitlistEntryResponse, error) {
	s := e.Snapshot()
	var out WaitlistEntryResponse
	if err := copier.Copy(&out, s); err != nil {
		return nil, err
	}
	if s.Preferred != nil {
		start, end := s.Preferred.Start, s.Preferred.End
		out.PreferredStart = &start
		out.PreferredEnd = &end
	}
	out.Priority = string(s.Priority)
	out.Status = string(s.Status)
	return &out, nil
}

func FromWaitlistViews(items []*queries.WaitlistEntryView) ([]WaitlistEntryResponse, error) {
	return mapAll[*queries.WaitlistEntryView, WaitlistEntryResponse](items, nil)
}
