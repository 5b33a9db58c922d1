package request

import (
	"time"

	"github.com/google/uuid"
)

type IssueBorrowRequest struct {
	ResourceID      uuid.UUID `json:"resource_id" binding:"required"`
	BorrowerID      uuid.UUID `json:"borrower_id" binding:"required"`
	BorrowerContact string    `json:"borrower_contact" binding:"max=200"`
	Quantity        int       `json:"quantity" binding:"required,min=1"`
	ExpectedReturn  time.Time `json:"expected_return_date" binding:"required"`
}

type ReturnBorrowRequest struct {
	Condition string `json:"condition" binding:"required,oneof=good damaged needs_repair"`
	Notes     string `json:"notes" binding:"max=2000"`
}
