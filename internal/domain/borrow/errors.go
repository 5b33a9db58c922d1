package borrow

import (
	"fmt"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/errs"

	"github.com/google/uuid"
)

// ReturnProcessingError reports that a return was rolled back as a whole.
type ReturnProcessingError struct {
	BorrowID uuid.UUID
	Cause    error
}

func (e *ReturnProcessingError) Error() string {
	return fmt.Sprintf("return of borrow record %s did not take effect: %v", e.BorrowID, e.Cause)
}

func (e *ReturnProcessingError) Unwrap() error {
	return e.Cause
}

func (e *ReturnProcessingError) Is(target error) bool {
	return target == errs.ErrReturnProcessing
}
