package commands

import (
	"context"
	"time"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/activitylog"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/availability"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/notification"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/resource"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/waitlist"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

// notifyWaiting runs the waiting list matcher for res after capacity in trigger
// was freed. The caller must hold the resource lock.
func notifyWaiting(
	ctx context.Context,
	tx shared.Tx,
	res *resource.Resource,
	trigger availability.Interval,
	actorID *uuid.UUID,
	now time.Time,
) ([]notification.Intent, error) {
	candidates, err := tx.WaitingList().ListActiveByResource(ctx, res.ID())
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	// Preferred windows may reach outside the trigger, so load every approved
	// reservation that could touch any window evaluated below.
	span := trigger
	for _, e := range candidates {
		w := e.EvaluationWindow(trigger)
		if w.Start.Before(span.Start) {
			span.Start = w.Start
		}
		if w.End.After(span.End) {
			span.End = w.End
		}
	}
	approved, err := tx.Reservations().ListApprovedOverlapping(ctx, res.ID(), span)
	if err != nil {
		return nil, err
	}

	notified := waitlist.Match(res.TotalStock(), approved, trigger, candidates, now)

	var intents []notification.Intent
	for _, e := range notified {
		if err := tx.WaitingList().Update(ctx, e); err != nil {
			return nil, err
		}
		err := appendActivity(ctx, tx, actorID, activity{
			entityType: activitylog.EntityWaitingList,
			entityID:   e.ID(),
			action:     ActionNotified,
			before:     activitylog.WaitlistState{Status: waitlist.StatusWaiting, Priority: e.Priority()},
			after:      activitylog.WaitlistStateOf(e),
		}, now)
		if err != nil {
			return nil, err
		}

		w := e.EvaluationWindow(trigger)
		intents = append(intents, notification.New(e.RequesterID(), notification.KindWaitlistSlotAvailable, map[string]any{
			"entry_id":      e.ID().String(),
			"resource_id":   res.ID().String(),
			"resource_name": res.Name(),
			"quantity":      e.Quantity(),
			"window_start":  w.Start,
			"window_end":    w.End,
		}))
	}
	return intents, nil
}
