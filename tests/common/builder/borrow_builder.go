//go:build unit || e2e

package builder

import (
	"time"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/borrow"

	"github.com/google/uuid"
)

type BorrowBuilder struct {
	ID             uuid.UUID
	ResourceID     uuid.UUID
	ItemName       string
	Quantity       int
	BorrowerID     uuid.UUID
	Contact        string
	BorrowDate     time.Time
	ExpectedReturn time.Time
	ApprovedBy     uuid.UUID
}

func NewBorrowBuilder() *BorrowBuilder {
	borrowed := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	return &BorrowBuilder{
		ID:             uuid.New(),
		ResourceID:     uuid.New(),
		ItemName:       "Microscope A",
		Quantity:       1,
		BorrowerID:     uuid.New(),
		Contact:        "student@example.com",
		BorrowDate:     borrowed,
		ExpectedReturn: borrowed.AddDate(0, 0, 7),
		ApprovedBy:     uuid.New(),
	}
}

func (b *BorrowBuilder) With(mutate func(*BorrowBuilder)) *BorrowBuilder {
	mutate(b)
	return b
}

// BuildDomain returns an open borrow record.
func (b *BorrowBuilder) BuildDomain() *borrow.Record {
	return borrow.Reconstruct(borrow.Snapshot{
		ID:              b.ID,
		ResourceID:      b.ResourceID,
		ItemName:        b.ItemName,
		Quantity:        b.Quantity,
		BorrowerID:      b.BorrowerID,
		BorrowerContact: b.Contact,
		BorrowDate:      b.BorrowDate,
		ExpectedReturn:  b.ExpectedReturn,
		Status:          borrow.StatusBorrowed,
		ApprovedBy:      b.ApprovedBy,
		CreatedAt:       b.BorrowDate,
		UpdatedAt:       b.BorrowDate,
	})
}
