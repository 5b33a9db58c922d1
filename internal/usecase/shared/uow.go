package shared

import (
	"context"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/activitylog"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/availability"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/borrow"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/maintenance"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/notification"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/reservation"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/resource"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/user"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/waitlist"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn in one transaction. Any error rolls back every write made through tx.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes repositories bound to a single transaction.
type Tx interface {
	Resources() ResourceRepository
	Reservations() ReservationRepository
	WaitingList() WaitingListRepository
	Borrows() BorrowRepository
	Maintenance() MaintenanceRepository
	ActivityLogs() ActivityLogRepository
	Users() UserRepository
}

type ResourceRepository interface {
	Create(ctx context.Context, r *resource.Resource) error
	// LockByID loads the resource and holds its row lock until the transaction ends.
	LockByID(ctx context.Context, id uuid.UUID) (*resource.Resource, error)
	UpdateStock(ctx context.Context, r *resource.Resource) error
}

type ReservationRepository interface {
	Create(ctx context.Context, r *reservation.Reservation) error
	LockByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	Update(ctx context.Context, r *reservation.Reservation) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListApprovedOverlapping(ctx context.Context, resourceID uuid.UUID, window availability.Interval) ([]availability.Commitment, error)
}

type WaitingListRepository interface {
	Create(ctx context.Context, e *waitlist.Entry) error
	LockByID(ctx context.Context, id uuid.UUID) (*waitlist.Entry, error)
	// ListActiveByResource locks the waiting and notified entries of the resource.
	ListActiveByResource(ctx context.Context, resourceID uuid.UUID) ([]*waitlist.Entry, error)
	HasActive(ctx context.Context, resourceID, requesterID uuid.UUID) (bool, error)
	Update(ctx context.Context, e *waitlist.Entry) error
}

type BorrowRepository interface {
	Create(ctx context.Context, r *borrow.Record) error
	LockByID(ctx context.Context, id uuid.UUID) (*borrow.Record, error)
	Update(ctx context.Context, r *borrow.Record) error
}

type MaintenanceRepository interface {
	Create(ctx context.Context, t *maintenance.Ticket) error
}

type ActivityLogRepository interface {
	Append(ctx context.Context, e *activitylog.Entry) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByEmail(ctx context.Context, email user.Email) (*user.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	ListIDsByRoles(ctx context.Context, roles ...user.Role) ([]uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}

// Notifier hands intents to the notification gateway. It never blocks on delivery
// and never reports delivery failures.
type Notifier interface {
	Notify(ctx context.Context, intents ...notification.Intent)
}
