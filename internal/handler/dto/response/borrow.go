package response

import (
	"time"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/borrow"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BorrowResponse struct {
	ID                 uuid.UUID  `json:"id"`
	ResourceID         uuid.UUID  `json:"resource_id"`
	ItemName           string     `json:"item_name"`
	Quantity           int        `json:"quantity"`
	BorrowerID         uuid.UUID  `json:"borrower_id"`
	BorrowerContact    string     `json:"borrower_contact,omitempty"`
	BorrowDate         time.Time  `json:"borrow_date"`
	ExpectedReturnDate time.Time  `json:"expected_return_date"`
	ActualReturnDate   *time.Time `json:"actual_return_date,omitempty"`
	Status             string     `json:"status"`
	ReturnCondition    *string    `json:"return_condition,omitempty"`
	ReturnNotes        string     `json:"return_notes,omitempty"`
	ApprovedBy         uuid.UUID  `json:"approved_by"`
	ReturnedBy         *uuid.UUID `json:"returned_by,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

func FromBorrow(r *borrow.Record) (*BorrowResponse, error) {
	s := r.Snapshot()
	var out BorrowResponse
	if err := copier.Copy(&out, s); err != nil {
		return nil, err
	}
	out.ExpectedReturnDate = s.ExpectedReturn
	out.ActualReturnDate = s.ActualReturn
	out.Status = string(s.Status)
	out.ReturnCondition = nil
	if s.ReturnCondition != nil {
		c := string(*s.ReturnCondition)
		out.ReturnCondition = &c
	}
	return &out, nil
}

func FromBorrowView(v *queries.BorrowView) (*BorrowResponse, error) {
	var out BorrowResponse
	if err := copier.Copy(&out, v); err != nil {
		return nil, err
	}
	return &out, nil
}

func FromBorrowViews(items []*queries.BorrowView) ([]BorrowResponse, error) {
	return mapAll[*queries.BorrowView, BorrowResponse](items, nil)
}
