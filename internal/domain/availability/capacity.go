package availability

import (
	"fmt"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/errs"

	"github.com/google/uuid"
)

// Commitment is quantity held against a resource over an interval.
type Commitment struct {
	Interval Interval
	Quantity int
}

// RemainingCapacity is totalStock minus every commitment overlapping window.
// The result is negative when stock was reduced below what is already committed.
func RemainingCapacity(totalStock int, committed []Commitment, window Interval) int {
	used := 0
	for _, c := range committed {
		if Overlaps(c.Interval, window) {
			used += c.Quantity
		}
	}
	return totalStock - used
}

type CapacityConflictError struct {
	ResourceID uuid.UUID
	Window     Interval
	Requested  int
	Remaining  int
}

func (e *CapacityConflictError) Error() string {
	remaining := e.Remaining
	if remaining < 0 {
		remaining = 0
	}
	return fmt.Sprintf("resource %s has %d unit(s) left in %s, %d requested",
		e.ResourceID, remaining, e.Window, e.Requested)
}

func (e *CapacityConflictError) Is(target error) bool {
	return target == errs.ErrConflict
}

// Admissible checks that quantity more units fit into window.
func Admissible(resourceID uuid.UUID, totalStock int, committed []Commitment, window Interval, quantity int) error {
	if quantity <= 0 {
		return errs.Validationf("quantity must be at least 1, got %d", quantity)
	}
	remaining := RemainingCapacity(totalStock, committed, window)
	if remaining < quantity {
		return &CapacityConflictError{
			ResourceID: resourceID,
			Window:     window,
			Requested:  quantity,
			Remaining:  remaining,
		}
	}
	return nil
}

// PeakLoad is the largest quantity committed at any single instant. Load only
// rises where a commitment starts, so those are the only instants checked.
func PeakLoad(committed []Commitment) int {
	peak := 0
	for _, c := range committed {
		load := 0
		for _, o := range committed {
			if !c.Interval.Start.Before(o.Interval.Start) && c.Interval.Start.Before(o.Interval.End) {
				load += o.Quantity
			}
		}
		peak = max(peak, load)
	}
	return peak
}

// Withdrawable checks that quantity units can leave stock for good without
// dropping below what committed still needs at any instant of span.
func Withdrawable(resourceID uuid.UUID, totalStock int, committed []Commitment, span Interval, quantity int) error {
	if quantity <= 0 {
		return errs.Validationf("quantity must be at least 1, got %d", quantity)
	}
	var inSpan []Commitment
	for _, c := range committed {
		if Overlaps(c.Interval, span) {
			inSpan = append(inSpan, c)
		}
	}
	remaining := totalStock - PeakLoad(inSpan)
	if remaining < quantity {
		return &CapacityConflictError{
			ResourceID: resourceID,
			Window:     span,
			Requested:  quantity,
			Remaining:  remaining,
		}
	}
	return nil
}
