package reservation

import (
	"fmt"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/errs"

	"github.com/google/uuid"
)

type TransitionError struct {
	ReservationID uuid.UUID
	From          Status
	To            Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("reservation %s cannot move from %s to %s", e.ReservationID, e.From, e.To)
}

func (e *TransitionError) Is(target error) bool {
	return target == errs.ErrInvalidTransition
}
