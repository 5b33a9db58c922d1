package activitylog

import (
	"time"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/borrow"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/reservation"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/waitlist"

	"github.com/google/uuid"
)

// ReservationState is the audited shape of a reservation.
type ReservationState struct {
	Status          reservation.Status `json:"status"`
	Quantity        int                `json:"quantity"`
	Start           time.Time          `json:"start"`
	End             time.Time          `json:"end"`
	ApprovedBy      *uuid.UUID         `json:"approved_by,omitempty"`
	RejectionReason *string            `json:"rejection_reason,omitempty"`
}

func ReservationStateOf(r *reservation.Reservation) ReservationState {
	return ReservationState{
		Status:          r.Status(),
		Quantity:        r.Quantity(),
		Start:           r.Window().Start,
		End:             r.Window().End,
		ApprovedBy:      r.ApprovedBy(),
		RejectionReason: r.RejectionReason(),
	}
}

type BorrowState struct {
	Status          borrow.Status     `json:"status"`
	ReturnCondition *borrow.Condition `json:"return_condition,omitempty"`
	ActualReturn    *time.Time        `json:"actual_return_date,omitempty"`
	ReturnedBy      *uuid.UUID        `json:"returned_by,omitempty"`
}

func BorrowStateOf(r *borrow.Record) BorrowState {
	return BorrowState{
		Status:          r.Status(),
		ReturnCondition: r.ReturnCondition(),
		ActualReturn:    r.ActualReturn(),
		ReturnedBy:      r.ReturnedBy(),
	}
}

// ReturnDetails is the structured payload of a processed return.
type ReturnDetails struct {
	Item      string           `json:"item"`
	Quantity  int              `json:"quantity"`
	Borrower  uuid.UUID        `json:"borrower"`
	Condition borrow.Condition `json:"condition"`
	Notes     string           `json:"notes"`
}

func ReturnDetailsOf(r *borrow.Record) ReturnDetails {
	d := ReturnDetails{
		Item:     r.ItemName(),
		Quantity: r.Quantity(),
		Borrower: r.BorrowerID(),
		Notes:    r.ReturnNotes(),
	}
	if c := r.ReturnCondition(); c != nil {
		d.Condition = *c
	}
	return d
}

type WaitlistState struct {
	Status        waitlist.Status   `json:"status"`
	Priority      waitlist.Priority `json:"priority"`
	ReservationID *uuid.UUID        `json:"reservation_id,omitempty"`
}

func WaitlistStateOf(e *waitlist.Entry) WaitlistState {
	return WaitlistState{
		Status:        e.Status(),
		Priority:      e.Priority(),
		ReservationID: e.ReservationID(),
	}
}

type StockState struct {
	TotalStock int `json:"total_stock"`
}
