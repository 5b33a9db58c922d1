package commands

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation.go -package=commandsmock

import (
	"context"
	"time"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/activitylog"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/availability"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/notification"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/reservation"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/user"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/clock"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/errs"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReservationInput struct {
	ResourceID uuid.UUID
	Date       time.Time
	Window     availability.Interval
	Quantity   int
	Purpose    string
	Notes      string
}

type ReservationCommands interface {
	Create(ctx context.Context, actor shared.Actor, in CreateReservationInput) (*reservation.Reservation, error)
	Transition(ctx context.Context, actor shared.Actor, id uuid.UUID, to reservation.Status, reason *string) (*reservation.Reservation, error)
	Purge(ctx context.Context, actor shared.Actor, id uuid.UUID) error
}

type reservationCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier shared.Notifier
	clock    clock.Clock
	policy   reservation.Policy
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	notifier shared.Notifier,
	clk clock.Clock,
	policy reservation.Policy,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:      uow,
		notifier: notifier,
		clock:    clk,
		policy:   policy,
	}
}

func (c *reservationCommandsImpl) Create(ctx context.Context, actor shared.Actor, in CreateReservationInput) (*reservation.Reservation, error) {
	policy := c.policy
	now := c.clock.Now()

	r, err := reservation.New(reservation.NewParams{
		ResourceID:  in.ResourceID,
		RequesterID: actor.ID,
		Date:        in.Date,
		Window:      in.Window,
		Quantity:    in.Quantity,
		Purpose:     in.Purpose,
		Notes:       in.Notes,
	}, policy, now)
	if err != nil {
		return nil, err
	}

	var out outbox
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		out.reset()

		res, err := tx.Resources().LockByID(ctx, r.ResourceID())
		if err != nil {
			return errs.Wrap(err, "lock resource")
		}
		approved, err := tx.Reservations().ListApprovedOverlapping(ctx, res.ID(), r.Window())
		if err != nil {
			return errs.Wrap(err, "list approved reservations")
		}
		if err := availability.Admissible(res.ID(), res.TotalStock(), approved, r.Window(), r.Quantity()); err != nil {
			return err
		}

		if err := tx.Reservations().Create(ctx, r); err != nil {
			return errs.Wrap(err, "create reservation")
		}
		err = appendActivity(ctx, tx, &actor.ID, activity{
			entityType: activitylog.EntityReservation,
			entityID:   r.ID(),
			action:     ActionCreated,
			after:      activitylog.ReservationStateOf(r),
		}, now)
		if err != nil {
			return err
		}

		payload := reservationPayload(r, res.Name())
		out.add(notification.New(r.RequesterID(), notification.KindReservationSubmitted, payload))
		if r.Status() == reservation.StatusPending {
			admins, err := tx.Users().ListIDsByRoles(ctx, user.RoleAdmin)
			if err != nil {
				return errs.Wrap(err, "list administrators")
			}
			out.add(notification.Fanout(admins, notification.KindReservationPendingReview, payload)...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out.flush(ctx, c.notifier)
	return r, nil
}

func (c *reservationCommandsImpl) Transition(
	ctx context.Context,
	actor shared.Actor,
	id uuid.UUID,
	to reservation.Status,
	reason *string,
) (*reservation.Reservation, error) {
	if !to.IsValid() {
		return nil, errs.Validationf("unknown reservation status %q", to)
	}
	if to == reservation.StatusPending {
		return nil, errs.Validationf("reservations cannot be moved back to pending")
	}
	now := c.clock.Now()

	var (
		out outbox
		r   *reservation.Reservation
	)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		out.reset()

		var err error
		r, err = tx.Reservations().LockByID(ctx, id)
		if err != nil {
			return errs.Wrap(err, "lock reservation")
		}
		if err := authorizeTransition(actor, r, to); err != nil {
			return err
		}

		res, err := tx.Resources().LockByID(ctx, r.ResourceID())
		if err != nil {
			return errs.Wrap(err, "lock resource")
		}

		from := r.Status()
		before := activitylog.ReservationStateOf(r)
		if err := r.Transition(to, actor.ID, reason, now); err != nil {
			return err
		}

		if to == reservation.StatusApproved {
			approved, err := tx.Reservations().ListApprovedOverlapping(ctx, res.ID(), r.Window())
			if err != nil {
				return errs.Wrap(err, "list approved reservations")
			}
			if err := availability.Admissible(res.ID(), res.TotalStock(), approved, r.Window(), r.Quantity()); err != nil {
				return err
			}
		}

		if err := tx.Reservations().Update(ctx, r); err != nil {
			return errs.Wrap(err, "update reservation")
		}
		err = appendActivity(ctx, tx, &actor.ID, activity{
			entityType: activitylog.EntityReservation,
			entityID:   r.ID(),
			action:     ActionStatusChanged,
			before:     before,
			after:      activitylog.ReservationStateOf(r),
		}, now)
		if err != nil {
			return err
		}

		payload := reservationPayload(r, res.Name())
		payload["previous_status"] = from.String()
		if why := r.RejectionReason(); why != nil && to == reservation.StatusRejected {
			payload["reason"] = *why
		}
		out.add(notification.New(r.RequesterID(), notification.KindReservationStatusChanged, payload))

		if reservation.FreesCapacity(from, to) {
			intents, err := notifyWaiting(ctx, tx, res, r.Window(), &actor.ID, now)
			if err != nil {
				return errs.Wrap(err, "match waiting list")
			}
			out.add(intents...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out.flush(ctx, c.notifier)
	return r, nil
}

func (c *reservationCommandsImpl) Purge(ctx context.Context, actor shared.Actor, id uuid.UUID) error {
	if err := requireAdmin(actor, "purge reservations"); err != nil {
		return err
	}
	now := c.clock.Now()

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Reservations().LockByID(ctx, id)
		if err != nil {
			return errs.Wrap(err, "lock reservation")
		}
		if !r.IsTerminal() {
			return errs.InvalidStatef("reservation %s is %s, only finished reservations can be purged", r.ID(), r.Status())
		}
		if err := tx.Reservations().Delete(ctx, r.ID()); err != nil {
			return errs.Wrap(err, "delete reservation")
		}
		return appendActivity(ctx, tx, &actor.ID, activity{
			entityType: activitylog.EntityReservation,
			entityID:   r.ID(),
			action:     ActionPurged,
			before:     activitylog.ReservationStateOf(r),
		}, now)
	})
}

// authorizeTransition checks who may move r to the target status. Requesters may
// only cancel their own reservations; every other move is an administrator's.
func authorizeTransition(actor shared.Actor, r *reservation.Reservation, to reservation.Status) error {
	if actor.IsAdmin() {
		return nil
	}
	if to == reservation.StatusCancelled && r.RequesterID() == actor.ID {
		return nil
	}
	if to == reservation.StatusCancelled {
		return errs.Forbiddenf("reservation %s belongs to another user", r.ID())
	}
	return errs.Forbiddenf("only administrators can mark reservations %s", to)
}

func reservationPayload(r *reservation.Reservation, resourceName string) map[string]any {
	return map[string]any{
		"reservation_id": r.ID().String(),
		"resource_id":    r.ResourceID().String(),
		"resource_name":  resourceName,
		"status":         r.Status().String(),
		"quantity":       r.Quantity(),
		"start":          r.Window().Start,
		"end":            r.Window().End,
	}
}
