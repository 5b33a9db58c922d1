package memstore

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/activitylog"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/availability"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/borrow"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/maintenance"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/reservation"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/resource"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/user"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/waitlist"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/errs"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

type memTx struct {
	store *Store
	st    *state
}

func (t *memTx) Resources() shared.ResourceRepository       { return resourceRepo{t} }
func (t *memTx) Reservations() shared.ReservationRepository { return reservationRepo{t} }
func (t *memTx) WaitingList() shared.WaitingListRepository  { return waitlistRepo{t} }
func (t *memTx) Borrows() shared.BorrowRepository           { return borrowRepo{t} }
func (t *memTx) Maintenance() shared.MaintenanceRepository  { return maintenanceRepo{t} }
func (t *memTx) ActivityLogs() shared.ActivityLogRepository { return activityLogRepo{t} }
func (t *memTx) Users() shared.UserRepository               { return userRepo{t} }

type resourceRepo struct{ *memTx }

func (r resourceRepo) Create(_ context.Context, res *resource.Resource) error {
	if err := r.store.takeFailure(OpResourceCreate); err != nil {
		return err
	}
	if _, ok := r.st.resources[res.ID()]; ok {
		return errs.Conflictf("resource %s already exists", res.ID())
	}
	r.st.resources[res.ID()] = copyResource(res)
	return nil
}

func (r resourceRepo) LockByID(_ context.Context, id uuid.UUID) (*resource.Resource, error) {
	res, ok := r.st.resources[id]
	if !ok {
		return nil, errs.NotFoundf("resource %s not found", id)
	}
	return copyResource(res), nil
}

func (r resourceRepo) UpdateStock(_ context.Context, res *resource.Resource) error {
	if err := r.store.takeFailure(OpResourceUpdateStock); err != nil {
		return err
	}
	if _, ok := r.st.resources[res.ID()]; !ok {
		return errs.NotFoundf("resource %s not found", res.ID())
	}
	r.st.resources[res.ID()] = copyResource(res)
	return nil
}

type reservationRepo struct{ *memTx }

func (r reservationRepo) Create(_ context.Context, res *reservation.Reservation) error {
	if err := r.store.takeFailure(OpReservationCreate); err != nil {
		return err
	}
	if _, ok := r.st.resources[res.ResourceID()]; !ok {
		return errs.Validationf("resource %s does not exist", res.ResourceID())
	}
	r.st.reservations[res.ID()] = res.Snapshot()
	return nil
}

func (r reservationRepo) LockByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	s, ok := r.st.reservations[id]
	if !ok {
		return nil, errs.NotFoundf("reservation %s not found", id)
	}
	return reservation.Reconstruct(s), nil
}

func (r reservationRepo) Update(_ context.Context, res *reservation.Reservation) error {
	if err := r.store.takeFailure(OpReservationUpdate); err != nil {
		return err
	}
	if _, ok := r.st.reservations[res.ID()]; !ok {
		return errs.NotFoundf("reservation %s not found", res.ID())
	}
	r.st.reservations[res.ID()] = res.Snapshot()
	return nil
}

func (r reservationRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.st.reservations[id]; !ok {
		return errs.NotFoundf("reservation %s not found", id)
	}
	delete(r.st.reservations, id)
	return nil
}

func (r reservationRepo) ListApprovedOverlapping(_ context.Context, resourceID uuid.UUID, window availability.Interval) ([]availability.Commitment, error) {
	var out []availability.Commitment
	for _, s := range r.st.reservations {
		if s.ResourceID != resourceID || s.Status != reservation.StatusApproved {
			continue
		}
		if s.Window.Overlaps(window) {
			out = append(out, availability.Commitment{Interval: s.Window, Quantity: s.Quantity})
		}
	}
	return out, nil
}

type waitlistRepo struct{ *memTx }

func (r waitlistRepo) Create(_ context.Context, e *waitlist.Entry) error {
	for _, s := range r.st.waitlist {
		if s.ResourceID == e.ResourceID() && s.RequesterID == e.RequesterID() && s.Status.IsActive() {
			return errs.Conflictf("requester %s already waits for resource %s", e.RequesterID(), e.ResourceID())
		}
	}
	r.st.waitlist[e.ID()] = e.Snapshot()
	return nil
}

func (r waitlistRepo) LockByID(_ context.Context, id uuid.UUID) (*waitlist.Entry, error) {
	s, ok := r.st.waitlist[id]
	if !ok {
		return nil, errs.NotFoundf("waiting list entry %s not found", id)
	}
	return waitlist.Reconstruct(s), nil
}

func (r waitlistRepo) ListActiveByResource(_ context.Context, resourceID uuid.UUID) ([]*waitlist.Entry, error) {
	var out []*waitlist.Entry
	for _, s := range r.st.waitlist {
		if s.ResourceID == resourceID && s.Status.IsActive() {
			out = append(out, waitlist.Reconstruct(s))
		}
	}
	slices.SortFunc(out, func(a, b *waitlist.Entry) int {
		if c := a.CreatedAt().Compare(b.CreatedAt()); c != 0 {
			return c
		}
		return strings.Compare(a.ID().String(), b.ID().String())
	})
	return out, nil
}

func (r waitlistRepo) HasActive(_ context.Context, resourceID, requesterID uuid.UUID) (bool, error) {
	for _, s := range r.st.waitlist {
		if s.ResourceID == resourceID && s.RequesterID == requesterID && s.Status.IsActive() {
			return true, nil
		}
	}
	return false, nil
}

func (r waitlistRepo) Update(_ context.Context, e *waitlist.Entry) error {
	if err := r.store.takeFailure(OpWaitlistUpdate); err != nil {
		return err
	}
	if _, ok := r.st.waitlist[e.ID()]; !ok {
		return errs.NotFoundf("waiting list entry %s not found", e.ID())
	}
	r.st.waitlist[e.ID()] = e.Snapshot()
	return nil
}

type borrowRepo struct{ *memTx }

func (r borrowRepo) Create(_ context.Context, rec *borrow.Record) error {
	if err := r.store.takeFailure(OpBorrowCreate); err != nil {
		return err
	}
	r.st.borrows[rec.ID()] = rec.Snapshot()
	return nil
}

func (r borrowRepo) LockByID(_ context.Context, id uuid.UUID) (*borrow.Record, error) {
	if err := r.store.takeFailure(OpBorrowLock); err != nil {
		return nil, err
	}
	s, ok := r.st.borrows[id]
	if !ok {
		return nil, errs.NotFoundf("borrow record %s not found", id)
	}
	return borrow.Reconstruct(s), nil
}

func (r borrowRepo) Update(_ context.Context, rec *borrow.Record) error {
	if err := r.store.takeFailure(OpBorrowUpdate); err != nil {
		return err
	}
	if _, ok := r.st.borrows[rec.ID()]; !ok {
		return errs.NotFoundf("borrow record %s not found", rec.ID())
	}
	r.st.borrows[rec.ID()] = rec.Snapshot()
	return nil
}

type maintenanceRepo struct{ *memTx }

func (r maintenanceRepo) Create(_ context.Context, t *maintenance.Ticket) error {
	if err := r.store.takeFailure(OpMaintenanceCreate); err != nil {
		return err
	}
	r.st.tickets = append(r.st.tickets, *t)
	return nil
}

type activityLogRepo struct{ *memTx }

func (r activityLogRepo) Append(_ context.Context, e *activitylog.Entry) error {
	if err := r.store.takeFailure(OpActivityLogAppend); err != nil {
		return err
	}
	r.st.logs = append(r.st.logs, *e)
	return nil
}

type userRepo struct{ *memTx }

func (r userRepo) Create(_ context.Context, u *user.User) error {
	for _, existing := range r.st.users {
		if existing.Email() == u.Email() {
			return errs.Conflictf("user %s already exists", u.Email().Value())
		}
	}
	r.st.users[u.ID()] = u
	return nil
}

func (r userRepo) FindByEmail(_ context.Context, email user.Email) (*user.User, error) {
	for _, u := range r.st.users {
		if u.Email() == email {
			return u, nil
		}
	}
	return nil, errs.NotFoundf("user %s not found", email.Value())
}

func (r userRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := r.st.users[id]
	if !ok {
		return nil, errs.NotFoundf("user %s not found", id)
	}
	return u, nil
}

func (r userRepo) ListIDsByRoles(_ context.Context, roles ...user.Role) ([]uuid.UUID, error) {
	if err := r.store.takeFailure(OpUserListByRoles); err != nil {
		return nil, err
	}
	var ids []uuid.UUID
	for _, u := range r.st.users {
		if u.IsActive() && slices.Contains(roles, u.Role()) {
			ids = append(ids, u.ID())
		}
	}
	slices.SortFunc(ids, func(a, b uuid.UUID) int { return strings.Compare(a.String(), b.String()) })
	return ids, nil
}

func (r userRepo) UpdateLastLogin(_ context.Context, id uuid.UUID) error {
	u, ok := r.st.users[id]
	if !ok {
		return errs.NotFoundf("user %s not found", id)
	}
	now := time.Now()
	r.st.users[id] = user.Reconstruct(u.ID(), u.Email(), u.DisplayName(), u.PasswordHash(), u.Role(), &now, u.IsActive(), u.CreatedAt(), u.UpdatedAt())
	return nil
}
