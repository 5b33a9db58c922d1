package activitylog

import (
	"encoding/json"
	"time"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/errs"

	"github.com/google/uuid"
)

type EntityType string

const (
	EntityResource     EntityType = "resource"
	EntityReservation  EntityType = "reservation"
	EntityWaitingList  EntityType = "waiting_list_entry"
	EntityBorrowRecord EntityType = "borrow_record"
)

// Entry is an append-only audit record. Before, After and Details hold JSON documents.
type Entry struct {
	ID         uuid.UUID
	ActorID    *uuid.UUID
	EntityType EntityType
	EntityID   uuid.UUID
	Action     string
	Before     json.RawMessage
	After      json.RawMessage
	Details    json.RawMessage
	CreatedAt  time.Time
}

// Record marshals before, after and details. Nil values are stored as empty documents.
func Record(
	actorID *uuid.UUID,
	entityType EntityType,
	entityID uuid.UUID,
	action string,
	before, after, details any,
	now time.Time,
) (*Entry, error) {
	b, err := marshal(before)
	if err != nil {
		return nil, errs.Wrap(err, "marshal before state")
	}
	a, err := marshal(after)
	if err != nil {
		return nil, errs.Wrap(err, "marshal after state")
	}
	d, err := marshal(details)
	if err != nil {
		return nil, errs.Wrap(err, "marshal details")
	}

	return &Entry{
		ID:         uuid.New(),
		ActorID:    actorID,
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		Before:     b,
		After:      a,
		Details:    d,
		CreatedAt:  now,
	}, nil
}

func marshal(v any) (json.RawMessage, error) {
	if v == nil {
		return json.RawMessage("{}"), nil
	}
	return json.Marshal(v)
}
