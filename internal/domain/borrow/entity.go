package borrow

import (
	"strings"
	"time"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxNotesLength = 2000

type Record struct {
	id              uuid.UUID
	resourceID      uuid.UUID
	itemName        string
	quantity        int
	borrowerID      uuid.UUID
	borrowerContact string
	borrowDate      time.Time
	expectedReturn  time.Time
	actualReturn    *time.Time
	status          Status
	returnCondition *Condition
	returnNotes     string
	approvedBy      uuid.UUID
	returnedBy      *uuid.UUID
	createdAt       time.Time
	updatedAt       time.Time
}

type IssueParams struct {
	ResourceID      uuid.UUID
	ItemName        string
	Quantity        int
	BorrowerID      uuid.UUID
	BorrowerContact string
	ExpectedReturn  time.Time
	ApprovedBy      uuid.UUID
}

func Issue(p IssueParams, now time.Time) (*Record, error) {
	if p.ResourceID == uuid.Nil {
		return nil, errs.Validationf("resource is required")
	}
	if p.BorrowerID == uuid.Nil {
		return nil, errs.Validationf("borrower is required")
	}
	if p.Quantity <= 0 {
		return nil, errs.Validationf("quantity must be at least 1, got %d", p.Quantity)
	}
	if p.ExpectedReturn.IsZero() || !p.ExpectedReturn.After(now) {
		return nil, errs.Validationf("expected return must be in the future")
	}

	return &Record{
		id:              uuid.New(),
		resourceID:      p.ResourceID,
		itemName:        strings.TrimSpace(p.ItemName),
		quantity:        p.Quantity,
		borrowerID:      p.BorrowerID,
		borrowerContact: strings.TrimSpace(p.BorrowerContact),
		borrowDate:      now,
		expectedReturn:  p.ExpectedReturn,
		status:          StatusBorrowed,
		approvedBy:      p.ApprovedBy,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// Return closes the record. A record is returned exactly once.
func (r *Record) Return(condition Condition, notes string, actorID uuid.UUID, now time.Time) error {
	if !condition.IsValid() {
		return errs.Validationf("unknown return condition %q", condition)
	}
	if len(notes) > MaxNotesLength {
		return errs.Validationf("return notes are too long (max %d characters)", MaxNotesLength)
	}
	if r.status != StatusBorrowed {
		return errs.InvalidStatef("borrow record %s is already %s", r.id, r.status)
	}

	r.status = StatusReturned
	r.returnCondition = &condition
	r.returnNotes = strings.TrimSpace(notes)
	r.actualReturn = &now
	r.returnedBy = &actorID
	r.updatedAt = now
	return nil
}

func (r *Record) IsOverdue(now time.Time) bool {
	return r.status == StatusBorrowed && now.After(r.expectedReturn)
}

func (r *Record) ID() uuid.UUID               { return r.id }
func (r *Record) ResourceID() uuid.UUID       { return r.resourceID }
func (r *Record) ItemName() string            { return r.itemName }
func (r *Record) Quantity() int               { return r.quantity }
func (r *Record) BorrowerID() uuid.UUID       { return r.borrowerID }
func (r *Record) BorrowerContact() string     { return r.borrowerContact }
func (r *Record) BorrowDate() time.Time       { return r.borrowDate }
func (r *Record) ExpectedReturn() time.Time   { return r.expectedReturn }
func (r *Record) ActualReturn() *time.Time    { return r.actualReturn }
func (r *Record) Status() Status              { return r.status }
func (r *Record) ReturnCondition() *Condition { return r.returnCondition }
func (r *Record) ReturnNotes() string         { return r.returnNotes }
func (r *Record) ApprovedBy() uuid.UUID       { return r.approvedBy }
func (r *Record) ReturnedBy() *uuid.UUID      { return r.returnedBy }
func (r *Record) CreatedAt() time.Time        { return r.createdAt }
func (r *Record) UpdatedAt() time.Time        { return r.updatedAt }

type Snapshot struct {
	ID              uuid.UUID
	ResourceID      uuid.UUID
	ItemName        string
	Quantity        int
	BorrowerID      uuid.UUID
	BorrowerContact string
	BorrowDate      time.Time
	ExpectedReturn  time.Time
	ActualReturn    *time.Time
	Status          Status
	ReturnCondition *Condition
	ReturnNotes     string
	ApprovedBy      uuid.UUID
	ReturnedBy      *uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func Reconstruct(s Snapshot) *Record {
	return &Record{
		id:              s.ID,
		resourceID:      s.ResourceID,
		itemName:        s.ItemName,
		quantity:        s.Quantity,
		borrowerID:      s.BorrowerID,
		borrowerContact: s.BorrowerContact,
		borrowDate:      s.BorrowDate,
		expectedReturn:  s.ExpectedReturn,
		actualReturn:    s.ActualReturn,
		status:          s.Status,
		returnCondition: s.ReturnCondition,
		returnNotes:     s.ReturnNotes,
		approvedBy:      s.ApprovedBy,
		returnedBy:      s.ReturnedBy,
		createdAt:       s.CreatedAt,
		updatedAt:       s.UpdatedAt,
	}
}

func (r *Record) Snapshot() Snapshot {
	return Snapshot{
		ID:              r.id,
		ResourceID:      r.resourceID,
		ItemName:        r.itemName,
		Quantity:        r.quantity,
		BorrowerID:      r.borrowerID,
		BorrowerContact: r.borrowerContact,
		BorrowDate:      r.borrowDate,
		ExpectedReturn:  r.expectedReturn,
		ActualReturn:    r.actualReturn,
		Status:          r.status,
		ReturnCondition: r.returnCondition,
		ReturnNotes:     r.returnNotes,
		ApprovedBy:      r.approvedBy,
		ReturnedBy:      r.returnedBy,
		CreatedAt:       r.createdAt,
		UpdatedAt:       r.updatedAt,
	}
}
