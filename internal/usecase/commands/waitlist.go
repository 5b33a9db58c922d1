package commands

//go:generate mockgen -source=waitlist.go -destination=../../../tests/mock/commands/waitlist.go -package=commandsmock

import (
	"context"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/activitylog"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/availability"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/notification"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/reservation"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/waitlist"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/clock"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/errs"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

const fulfilledPurpose = "Allocated from the waiting list"

type JoinWaitlistInput struct {
	ResourceID uuid.UUID
	Quantity   int
	Preferred  *availability.Interval
	Priority   string
}

type WaitlistCommands interface {
	Join(ctx context.Context, actor shared.Actor, in JoinWaitlistInput) (*waitlist.Entry, error)
	Cancel(ctx context.Context, actor shared.Actor, id uuid.UUID) (*waitlist.Entry, error)
	// Fulfill turns a notified entry into an approved reservation. window overrides
	// the entry's preferred window and is required when the entry has none.
	Fulfill(ctx context.Context, actor shared.Actor, id uuid.UUID, window *availability.Interval) (*reservation.Reservation, error)
}

type waitlistCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier shared.Notifier
	clock    clock.Clock
	policy   reservation.Policy
}

func NewWaitlistCommands(
	uow shared.UnitOfWork,
	notifier shared.Notifier,
	clk clock.Clock,
	policy reservation.Policy,
) WaitlistCommands {
	return &waitlistCommandsImpl{
		uow:      uow,
		notifier: notifier,
		clock:    clk,
		policy:   policy,
	}
}

func (c *waitlistCommandsImpl) Join(ctx context.Context, actor shared.Actor, in JoinWaitlistInput) (*waitlist.Entry, error) {
	priority, err := waitlist.ParsePriority(in.Priority)
	if err != nil {
		return nil, err
	}
	now := c.clock.Now()

	e, err := waitlist.NewEntry(in.ResourceID, actor.ID, in.Quantity, in.Preferred, priority, now)
	if err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Resources().LockByID(ctx, e.ResourceID())
		if err != nil {
			return errs.Wrap(err, "lock resource")
		}
		if e.Quantity() > res.TotalStock() {
			return errs.Validationf("%s has only %d unit(s) in stock, %d requested", res.Name(), res.TotalStock(), e.Quantity())
		}

		active, err := tx.WaitingList().HasActive(ctx, res.ID(), actor.ID)
		if err != nil {
			return errs.Wrap(err, "check waiting list")
		}
		if active {
			return errs.Conflictf("already on the waiting list for %s", res.Name())
		}

		if err := tx.WaitingList().Create(ctx, e); err != nil {
			return errs.Wrap(err, "create waiting list entry")
		}
		return appendActivity(ctx, tx, &actor.ID, activity{
			entityType: activitylog.EntityWaitingList,
			entityID:   e.ID(),
			action:     ActionJoined,
			after:      activitylog.WaitlistStateOf(e),
		}, now)
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (c *waitlistCommandsImpl) Cancel(ctx context.Context, actor shared.Actor, id uuid.UUID) (*waitlist.Entry, error) {
	now := c.clock.Now()

	var e *waitlist.Entry
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		e, err = tx.WaitingList().LockByID(ctx, id)
		if err != nil {
			return errs.Wrap(err, "lock waiting list entry")
		}
		if !actor.IsAdmin() && e.RequesterID() != actor.ID {
			return errs.Forbiddenf("waiting list entry %s belongs to another user", e.ID())
		}

		before := activitylog.WaitlistStateOf(e)
		if err := e.Cancel(now); err != nil {
			return err
		}
		if err := tx.WaitingList().Update(ctx, e); err != nil {
			return errs.Wrap(err, "update waiting list entry")
		}
		return appendActivity(ctx, tx, &actor.ID, activity{
			entityType: activitylog.EntityWaitingList,
			entityID:   e.ID(),
			action:     ActionCancelled,
			before:     before,
			after:      activitylog.WaitlistStateOf(e),
		}, now)
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (c *waitlistCommandsImpl) Fulfill(
	ctx context.Context,
	actor shared.Actor,
	id uuid.UUID,
	window *availability.Interval,
) (*reservation.Reservation, error) {
	if err := requireAdmin(actor, "fulfil waiting list entries"); err != nil {
		return nil, err
	}
	now := c.clock.Now()

	var (
		out outbox
		r   *reservation.Reservation
	)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		out.reset()

		e, err := tx.WaitingList().LockByID(ctx, id)
		if err != nil {
			return errs.Wrap(err, "lock waiting list entry")
		}
		if e.Status() != waitlist.StatusNotified {
			return errs.InvalidStatef("waiting list entry %s is %s, only notified entries can be fulfilled", e.ID(), e.Status())
		}

		w := window
		if w == nil {
			w = e.Preferred()
		}
		if w == nil {
			return errs.Validationf("a window is required for entries without a preferred window")
		}

		res, err := tx.Resources().LockByID(ctx, e.ResourceID())
		if err != nil {
			return errs.Wrap(err, "lock resource")
		}

		// The allocation is approved by the administrator below, never auto-approved.
		policy := reservation.Policy{Location: c.policy.Location}
		r, err = reservation.New(reservation.NewParams{
			ResourceID:  e.ResourceID(),
			RequesterID: e.RequesterID(),
			Date:        availability.TruncateDay(w.Start, policy.Location),
			Window:      *w,
			Quantity:    e.Quantity(),
			Purpose:     fulfilledPurpose,
		}, policy, now)
		if err != nil {
			return err
		}

		approved, err := tx.Reservations().ListApprovedOverlapping(ctx, res.ID(), r.Window())
		if err != nil {
			return errs.Wrap(err, "list approved reservations")
		}
		if err := availability.Admissible(res.ID(), res.TotalStock(), approved, r.Window(), r.Quantity()); err != nil {
			return err
		}
		if err := r.Transition(reservation.StatusApproved, actor.ID, nil, now); err != nil {
			return err
		}
		if err := tx.Reservations().Create(ctx, r); err != nil {
			return errs.Wrap(err, "create reservation")
		}

		before := activitylog.WaitlistStateOf(e)
		if err := e.Fulfill(r.ID(), now); err != nil {
			return err
		}
		if err := tx.WaitingList().Update(ctx, e); err != nil {
			return errs.Wrap(err, "update waiting list entry")
		}

		err = appendActivity(ctx, tx, &actor.ID, activity{
			entityType: activitylog.EntityReservation,
			entityID:   r.ID(),
			action:     ActionCreated,
			after:      activitylog.ReservationStateOf(r),
			details:    map[string]string{"waiting_list_entry_id": e.ID().String()},
		}, now)
		if err != nil {
			return err
		}
		err = appendActivity(ctx, tx, &actor.ID, activity{
			entityType: activitylog.EntityWaitingList,
			entityID:   e.ID(),
			action:     ActionFulfilled,
			before:     before,
			after:      activitylog.WaitlistStateOf(e),
		}, now)
		if err != nil {
			return err
		}

		payload := reservationPayload(r, res.Name())
		payload["entry_id"] = e.ID().String()
		out.add(notification.New(e.RequesterID(), notification.KindWaitlistFulfilled, payload))
		return nil
	})
	if err != nil {
		return nil, err
	}

	out.flush(ctx, c.notifier)
	return r, nil
}
