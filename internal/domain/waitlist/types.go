package waitlist

import (
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/errs"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

func (p Priority) IsValid() bool {
	return p.rank() > 0
}

func ParsePriority(s string) (Priority, error) {
	if s == "" {
		return PriorityMedium, nil
	}
	p := Priority(s)
	if !p.IsValid() {
		return "", errs.Validationf("unknown priority %q", s)
	}
	return p, nil
}

type Status string

const (
	StatusWaiting   Status = "waiting"
	StatusNotified  Status = "notified"
	StatusFulfilled Status = "fulfilled"
	StatusCancelled Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusNotified, StatusFulfilled, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsActive reports whether the entry still occupies the requester's slot for the resource.
func (s Status) IsActive() bool {
	return s == StatusWaiting || s == StatusNotified
}
