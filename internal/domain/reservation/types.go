package reservation

import (
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/errs"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

var allStatuses = []Status{StatusPending, StatusApproved, StatusRejected, StatusCancelled, StatusCompleted}

func AllStatuses() []Status {
	return append([]Status(nil), allStatuses...)
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return len(edges[s]) == 0 && s.IsValid()
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", errs.Validationf("unknown reservation status %q", s)
	}
	return status, nil
}

// edges is the complete transition graph. Statuses without outgoing edges are terminal.
var edges = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusRejected, StatusCancelled},
	StatusApproved: {StatusCancelled, StatusCompleted},
}

func CanTransition(from, to Status) bool {
	for _, next := range edges[from] {
		if next == to {
			return true
		}
	}
	return false
}

// FreesCapacity reports whether moving from -> to releases approved units.
func FreesCapacity(from, to Status) bool {
	return from == StatusApproved && (to == StatusCancelled || to == StatusCompleted)
}
