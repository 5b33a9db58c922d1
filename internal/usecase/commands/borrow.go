package commands

//go:generate mockgen -source=borrow.go -destination=../../../tests/mock/commands/borrow.go -package=commandsmock

import (
	"context"
	"errors"
	"time"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/activitylog"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/availability"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/borrow"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/maintenance"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/notification"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/user"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/clock"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/errs"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

// commitmentHorizonYears bounds how far ahead Issue looks for approved reservations.
const commitmentHorizonYears = 10

type IssueBorrowInput struct {
	ResourceID      uuid.UUID
	BorrowerID      uuid.UUID
	BorrowerContact string
	Quantity        int
	ExpectedReturn  time.Time
}

type ProcessReturnInput struct {
	Condition string
	Notes     string
}

type BorrowCommands interface {
	Issue(ctx context.Context, actor shared.Actor, in IssueBorrowInput) (*borrow.Record, error)
	// ProcessReturn closes a borrow record. Stock, maintenance ticket, audit entry and
	// the record itself are written together or not at all; a failure after the
	// preconditions pass is reported as *borrow.ReturnProcessingError.
	ProcessReturn(ctx context.Context, actor shared.Actor, id uuid.UUID, in ProcessReturnInput) (*borrow.Record, error)
}

type borrowCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier shared.Notifier
	clock    clock.Clock
}

func NewBorrowCommands(uow shared.UnitOfWork, notifier shared.Notifier, clk clock.Clock) BorrowCommands {
	return &borrowCommandsImpl{
		uow:      uow,
		notifier: notifier,
		clock:    clk,
	}
}

func (c *borrowCommandsImpl) Issue(ctx context.Context, actor shared.Actor, in IssueBorrowInput) (*borrow.Record, error) {
	if err := requireAdmin(actor, "issue equipment"); err != nil {
		return nil, err
	}
	now := c.clock.Now()

	var (
		out outbox
		rec *borrow.Record
	)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		out.reset()

		res, err := tx.Resources().LockByID(ctx, in.ResourceID)
		if err != nil {
			return errs.Wrap(err, "lock resource")
		}
		rec, err = borrow.Issue(borrow.IssueParams{
			ResourceID:      res.ID(),
			ItemName:        res.Name(),
			Quantity:        in.Quantity,
			BorrowerID:      in.BorrowerID,
			BorrowerContact: in.BorrowerContact,
			ExpectedReturn:  in.ExpectedReturn,
			ApprovedBy:      actor.ID,
		}, now)
		if err != nil {
			return err
		}
		if res.TotalStock() < rec.Quantity() {
			return errs.Conflictf("%s has %d unit(s) in stock, %d requested", res.Name(), res.TotalStock(), rec.Quantity())
		}
		// Issued units leave total_stock, so approved reservations from now on
		// must still fit into what remains.
		ahead := availability.Interval{Start: now, End: now.AddDate(commitmentHorizonYears, 0, 0)}
		approved, err := tx.Reservations().ListApprovedOverlapping(ctx, res.ID(), ahead)
		if err != nil {
			return errs.Wrap(err, "list approved reservations")
		}
		if err := availability.Withdrawable(res.ID(), res.TotalStock(), approved, ahead, rec.Quantity()); err != nil {
			return err
		}

		before := activitylog.StockState{TotalStock: res.TotalStock()}
		if err := res.AdjustStock(-rec.Quantity(), now); err != nil {
			return err
		}
		if err := tx.Resources().UpdateStock(ctx, res); err != nil {
			return errs.Wrap(err, "update stock")
		}
		if err := tx.Borrows().Create(ctx, rec); err != nil {
			return errs.Wrap(err, "create borrow record")
		}
		err = appendActivity(ctx, tx, &actor.ID, activity{
			entityType: activitylog.EntityBorrowRecord,
			entityID:   rec.ID(),
			action:     ActionIssued,
			before:     before,
			after:      activitylog.BorrowStateOf(rec),
			details:    activitylog.StockState{TotalStock: res.TotalStock()},
		}, now)
		if err != nil {
			return err
		}

		out.add(notification.New(rec.BorrowerID(), notification.KindBorrowIssued, borrowPayload(rec)))
		return nil
	})
	if err != nil {
		return nil, err
	}

	out.flush(ctx, c.notifier)
	return rec, nil
}

func (c *borrowCommandsImpl) ProcessReturn(
	ctx context.Context,
	actor shared.Actor,
	id uuid.UUID,
	in ProcessReturnInput,
) (*borrow.Record, error) {
	if err := requireAdmin(actor, "process returns"); err != nil {
		return nil, err
	}
	condition, err := borrow.ParseCondition(in.Condition)
	if err != nil {
		return nil, err
	}
	if len(in.Notes) > borrow.MaxNotesLength {
		return nil, errs.Validationf("return notes are too long (max %d characters)", borrow.MaxNotesLength)
	}
	now := c.clock.Now()

	var (
		out outbox
		rec *borrow.Record
	)
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		out.reset()

		var err error
		rec, err = tx.Borrows().LockByID(ctx, id)
		if err != nil {
			return errs.Wrap(err, "lock borrow record")
		}
		before := activitylog.BorrowStateOf(rec)
		if err := rec.Return(condition, in.Notes, actor.ID, now); err != nil {
			return err
		}

		intents, err := c.applyReturn(ctx, tx, rec, before, actor, now)
		if err != nil {
			return &borrow.ReturnProcessingError{BorrowID: rec.ID(), Cause: err}
		}
		out.add(intents...)
		return nil
	})
	if err != nil {
		return nil, asReturnProcessing(id, err)
	}

	out.flush(ctx, c.notifier)
	return rec, nil
}

// asReturnProcessing passes failed preconditions through and reports anything
// else, commit failures included, as one *borrow.ReturnProcessingError.
func asReturnProcessing(id uuid.UUID, err error) error {
	var rpe *borrow.ReturnProcessingError
	switch {
	case errors.As(err, &rpe),
		errs.Is(err, errs.ErrValidation),
		errs.Is(err, errs.ErrNotFound),
		errs.Is(err, errs.ErrInvalidState),
		errs.Is(err, errs.ErrForbidden):
		return err
	}
	return &borrow.ReturnProcessingError{BorrowID: id, Cause: err}
}

// applyReturn writes every effect of a return that already passed its preconditions.
func (c *borrowCommandsImpl) applyReturn(
	ctx context.Context,
	tx shared.Tx,
	rec *borrow.Record,
	before activitylog.BorrowState,
	actor shared.Actor,
	now time.Time,
) ([]notification.Intent, error) {
	if err := tx.Borrows().Update(ctx, rec); err != nil {
		return nil, errs.Wrap(err, "update borrow record")
	}

	condition := *rec.ReturnCondition()
	details := map[string]any{"return": activitylog.ReturnDetailsOf(rec)}

	if condition.NeedsMaintenance() {
		ticket, err := maintenance.FromReturn(rec, now)
		if err != nil {
			return nil, err
		}
		if err := tx.Maintenance().Create(ctx, ticket); err != nil {
			return nil, errs.Wrap(err, "create maintenance ticket")
		}
		details["maintenance_ticket_id"] = ticket.ID.String()
	} else {
		res, err := tx.Resources().LockByID(ctx, rec.ResourceID())
		if err != nil {
			return nil, errs.Wrap(err, "lock resource")
		}
		if err := res.AdjustStock(rec.Quantity(), now); err != nil {
			return nil, err
		}
		if err := tx.Resources().UpdateStock(ctx, res); err != nil {
			return nil, errs.Wrap(err, "update stock")
		}
		details["total_stock"] = res.TotalStock()
	}

	err := appendActivity(ctx, tx, &actor.ID, activity{
		entityType: activitylog.EntityBorrowRecord,
		entityID:   rec.ID(),
		action:     ActionReturned,
		before:     before,
		after:      activitylog.BorrowStateOf(rec),
		details:    details,
	}, now)
	if err != nil {
		return nil, err
	}

	payload := borrowPayload(rec)
	intents := []notification.Intent{notification.New(rec.BorrowerID(), notification.KindBorrowReturned, payload)}
	if condition.NeedsMaintenance() {
		staff, err := tx.Users().ListIDsByRoles(ctx, user.RoleAdmin, user.RoleMaintenance)
		if err != nil {
			return nil, errs.Wrap(err, "list maintenance staff")
		}
		intents = append(intents, notification.Fanout(staff, notification.KindEquipmentNeedsAttention, payload)...)
	}
	return intents, nil
}

func borrowPayload(rec *borrow.Record) map[string]any {
	payload := map[string]any{
		"borrow_id":       rec.ID().String(),
		"resource_id":     rec.ResourceID().String(),
		"item":            rec.ItemName(),
		"quantity":        rec.Quantity(),
		"status":          string(rec.Status()),
		"expected_return": rec.ExpectedReturn(),
	}
	if c := rec.ReturnCondition(); c != nil {
		payload["condition"] = string(*c)
		payload["notes"] = rec.ReturnNotes()
	}
	return payload
}
