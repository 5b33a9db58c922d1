package notification

import (
	"context"

	"github.com/google/uuid"
)

type Kind string

const (
	KindReservationSubmitted     Kind = "reservation_submitted"
	KindReservationPendingReview Kind = "reservation_pending_review"
	KindReservationStatusChanged Kind = "reservation_status_changed"
	KindWaitlistSlotAvailable    Kind = "waitlist_slot_available"
	KindWaitlistFulfilled        Kind = "waitlist_fulfilled"
	KindBorrowIssued             Kind = "borrow_issued"
	KindBorrowReturned           Kind = "borrow_returned"
	KindEquipmentNeedsAttention  Kind = "equipment_needs_attention"
)

// Intent is a message the engine wants delivered. Delivery is best-effort.
type Intent struct {
	RecipientID uuid.UUID
	Kind        Kind
	Payload     map[string]any
}

func New(recipient uuid.UUID, kind Kind, payload map[string]any) Intent {
	return Intent{RecipientID: recipient, Kind: kind, Payload: payload}
}

// Fanout builds the same intent for every recipient, skipping duplicates.
func Fanout(recipients []uuid.UUID, kind Kind, payload map[string]any) []Intent {
	seen := make(map[uuid.UUID]struct{}, len(recipients))
	intents := make([]Intent, 0, len(recipients))
	for _, id := range recipients {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		intents = append(intents, New(id, kind, payload))
	}
	return intents
}

type Gateway interface {
	Deliver(ctx context.Context, intent Intent) error
}
