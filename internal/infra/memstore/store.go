// Package memstore is an in-memory unit of work. Transactions are serialized behind one
// mutex and work on a copy of the state that replaces the live state only on success.
package memstore

import (
	"context"
	"sync"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/activitylog"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/borrow"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/maintenance"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/reservation"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/resource"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/user"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/waitlist"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

// Operation names accepted by FailNext.
const (
	OpResourceCreate      = "resources.create"
	OpResourceUpdateStock = "resources.update_stock"
	OpReservationCreate   = "reservations.create"
	OpReservationUpdate   = "reservations.update"
	OpWaitlistUpdate      = "waiting_list.update"
	OpBorrowCreate        = "borrows.create"
	OpBorrowUpdate        = "borrows.update"
	OpMaintenanceCreate   = "maintenance.create"
	OpActivityLogAppend   = "activity_logs.append"
	OpUserListByRoles     = "users.list_by_roles"
	OpBorrowLock          = "borrows.lock"
	OpCommit              = "commit"
)

type state struct {
	resources    map[uuid.UUID]*resource.Resource
	reservations map[uuid.UUID]reservation.Snapshot
	waitlist     map[uuid.UUID]waitlist.Snapshot
	borrows      map[uuid.UUID]borrow.Snapshot
	users        map[uuid.UUID]*user.User
	tickets      []maintenance.Ticket
	logs         []activitylog.Entry
}

func newState() *state {
	return &state{
		resources:    map[uuid.UUID]*resource.Resource{},
		reservations: map[uuid.UUID]reservation.Snapshot{},
		waitlist:     map[uuid.UUID]waitlist.Snapshot{},
		borrows:      map[uuid.UUID]borrow.Snapshot{},
		users:        map[uuid.UUID]*user.User{},
	}
}

func (s *state) clone() *state {
	c := &state{
		resources:    make(map[uuid.UUID]*resource.Resource, len(s.resources)),
		reservations: make(map[uuid.UUID]reservation.Snapshot, len(s.reservations)),
		waitlist:     make(map[uuid.UUID]waitlist.Snapshot, len(s.waitlist)),
		borrows:      make(map[uuid.UUID]borrow.Snapshot, len(s.borrows)),
		users:        make(map[uuid.UUID]*user.User, len(s.users)),
		tickets:      append([]maintenance.Ticket(nil), s.tickets...),
		logs:         append([]activitylog.Entry(nil), s.logs...),
	}
	for k, v := range s.resources {
		c.resources[k] = copyResource(v)
	}
	for k, v := range s.reservations {
		c.reservations[k] = v
	}
	for k, v := range s.waitlist {
		c.waitlist[k] = v
	}
	for k, v := range s.borrows {
		c.borrows[k] = v
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	return c
}

func copyResource(r *resource.Resource) *resource.Resource {
	return resource.Reconstruct(r.ID(), r.Name(), r.Category(), r.TotalStock(), r.CreatedAt(), r.UpdatedAt())
}

type Store struct {
	mu       sync.Mutex
	state    *state
	failures map[string]error
}

func New() *Store {
	return &Store{
		state:    newState(),
		failures: map[string]error{},
	}
}

var _ shared.UnitOfWork = (*Store)(nil)

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	work := s.state.clone()
	if err := fn(ctx, &memTx{store: s, st: work}); err != nil {
		return err
	}
	if err := s.takeFailure(OpCommit); err != nil {
		return err
	}
	s.state = work
	return nil
}

// FailNext makes the next call of op inside a transaction return err.
func (s *Store) FailNext(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = err
}

// takeFailure must be called with mu held.
func (s *Store) takeFailure(op string) error {
	err, ok := s.failures[op]
	if !ok {
		return nil
	}
	delete(s.failures, op)
	return err
}
