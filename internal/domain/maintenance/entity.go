package maintenance

import (
	"fmt"
	"time"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/borrow"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/errs"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
)

// Ticket tracks an item taken out of the pool after a non-good return.
type Ticket struct {
	ID              uuid.UUID
	ResourceID      uuid.UUID
	BorrowRecordID  uuid.UUID
	ItemName        string
	ConditionStatus borrow.Condition
	Description     string
	ReportedBy      uuid.UUID
	Status          Status
	CreatedAt       time.Time
}

// FromReturn opens a pending ticket for a record returned in a condition that needs repair.
func FromReturn(rec *borrow.Record, now time.Time) (*Ticket, error) {
	cond := rec.ReturnCondition()
	if rec.Status() != borrow.StatusReturned || cond == nil {
		return nil, errs.InvalidStatef("borrow record %s has not been returned", rec.ID())
	}
	if !cond.NeedsMaintenance() {
		return nil, errs.Validationf("condition %s does not need maintenance", *cond)
	}

	description := fmt.Sprintf("Returned %s (x%d) in %s condition", rec.ItemName(), rec.Quantity(), *cond)
	if rec.ReturnNotes() != "" {
		description += ": " + rec.ReturnNotes()
	}

	var reporter uuid.UUID
	if by := rec.ReturnedBy(); by != nil {
		reporter = *by
	}

	return &Ticket{
		ID:              uuid.New(),
		ResourceID:      rec.ResourceID(),
		BorrowRecordID:  rec.ID(),
		ItemName:        rec.ItemName(),
		ConditionStatus: *cond,
		Description:     description,
		ReportedBy:      reporter,
		Status:          StatusPending,
		CreatedAt:       now,
	}, nil
}
