package commands

import (
	"context"
	"time"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/activitylog"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/notification"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/errs"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

// Activity log actions.
const (
	ActionCreated       = "created"
	ActionStatusChanged = "status_changed"
	ActionPurged        = "purged"
	ActionJoined        = "joined"
	ActionNotified      = "notified"
	ActionFulfilled     = "fulfilled"
	ActionCancelled     = "cancelled"
	ActionRestocked     = "restocked"
	ActionIssued        = "issued"
	ActionReturned      = "returned"
)

func requireAdmin(actor shared.Actor, action string) error {
	if !actor.IsAdmin() {
		return errs.Forbiddenf("only administrators can %s", action)
	}
	return nil
}

type activity struct {
	entityType activitylog.EntityType
	entityID   uuid.UUID
	action     string
	before     any
	after      any
	details    any
}

func appendActivity(ctx context.Context, tx shared.Tx, actorID *uuid.UUID, a activity, now time.Time) error {
	entry, err := activitylog.Record(actorID, a.entityType, a.entityID, a.action, a.before, a.after, a.details, now)
	if err != nil {
		return err
	}
	return tx.ActivityLogs().Append(ctx, entry)
}

// outbox collects intents while a transaction runs. They are handed to the
// notifier only after commit, so a rolled back or retried attempt sends nothing.
type outbox struct {
	intents []notification.Intent
}

func (o *outbox) reset() {
	o.intents = o.intents[:0]
}

func (o *outbox) add(intents ...notification.Intent) {
	o.intents = append(o.intents, intents...)
}

func (o *outbox) flush(ctx context.Context, n shared.Notifier) {
	if n == nil || len(o.intents) == 0 {
		return
	}
	n.Notify(ctx, o.intents...)
}

func ptr[T any](v T) *T {
	return &v
}
