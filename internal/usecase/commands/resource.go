package commands

//go:generate mockgen -source=resource.go -destination=../../../tests/mock/commands/resource.go -package=commandsmock

import (
	"context"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/activitylog"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/availability"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/reservation"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/resource"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/clock"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/errs"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateResourceInput struct {
	Name       string
	Category   string
	TotalStock int
}

type ResourceCommands interface {
	Create(ctx context.Context, actor shared.Actor, in CreateResourceInput) (*resource.Resource, error)
	// SignalRestock adds delta units to the resource and offers the capacity in
	// window to the waiting list. A nil window means the current day.
	SignalRestock(ctx context.Context, actor shared.Actor, id uuid.UUID, delta int, window *availability.Interval) (*resource.Resource, error)
}

type resourceCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier shared.Notifier
	clock    clock.Clock
	policy   reservation.Policy
}

func NewResourceCommands(
	uow shared.UnitOfWork,
	notifier shared.Notifier,
	clk clock.Clock,
	policy reservation.Policy,
) ResourceCommands {
	return &resourceCommandsImpl{
		uow:      uow,
		notifier: notifier,
		clock:    clk,
		policy:   policy,
	}
}

func (c *resourceCommandsImpl) Create(ctx context.Context, actor shared.Actor, in CreateResourceInput) (*resource.Resource, error) {
	if err := requireAdmin(actor, "create resources"); err != nil {
		return nil, err
	}
	now := c.clock.Now()

	res, err := resource.NewResource(in.Name, in.Category, in.TotalStock, now)
	if err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Resources().Create(ctx, res); err != nil {
			return errs.Wrap(err, "create resource")
		}
		return appendActivity(ctx, tx, &actor.ID, activity{
			entityType: activitylog.EntityResource,
			entityID:   res.ID(),
			action:     ActionCreated,
			after:      activitylog.StockState{TotalStock: res.TotalStock()},
		}, now)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (c *resourceCommandsImpl) SignalRestock(
	ctx context.Context,
	actor shared.Actor,
	id uuid.UUID,
	delta int,
	window *availability.Interval,
) (*resource.Resource, error) {
	if err := requireAdmin(actor, "restock resources"); err != nil {
		return nil, err
	}
	if delta < 0 {
		return nil, errs.Validationf("restock delta must not be negative, got %d", delta)
	}
	now := c.clock.Now()

	trigger := availability.DayWindow(now, c.policy.Location)
	if window != nil {
		w, err := availability.NewInterval(window.Start, window.End)
		if err != nil {
			return nil, err
		}
		trigger = w
	}

	var (
		out outbox
		res *resource.Resource
	)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		out.reset()

		var err error
		res, err = tx.Resources().LockByID(ctx, id)
		if err != nil {
			return errs.Wrap(err, "lock resource")
		}

		if delta > 0 {
			before := activitylog.StockState{TotalStock: res.TotalStock()}
			if err := res.AdjustStock(delta, now); err != nil {
				return err
			}
			if err := tx.Resources().UpdateStock(ctx, res); err != nil {
				return errs.Wrap(err, "update stock")
			}
			err := appendActivity(ctx, tx, &actor.ID, activity{
				entityType: activitylog.EntityResource,
				entityID:   res.ID(),
				action:     ActionRestocked,
				before:     before,
				after:      activitylog.StockState{TotalStock: res.TotalStock()},
				details:    map[string]any{"delta": delta},
			}, now)
			if err != nil {
				return err
			}
		}

		intents, err := notifyWaiting(ctx, tx, res, trigger, &actor.ID, now)
		if err != nil {
			return errs.Wrap(err, "match waiting list")
		}
		out.add(intents...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	out.flush(ctx, c.notifier)
	return res, nil
}
