package memstore

import (
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/activitylog"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/borrow"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/maintenance"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/reservation"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/resource"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/user"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/waitlist"

	"github.com/google/uuid"
)

// Seed helpers write committed state directly, bypassing transactions.

func (s *Store) SeedResource(r *resource.Resource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.resources[r.ID()] = copyResource(r)
}

func (s *Store) SeedUser(u *user.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.users[u.ID()] = u
}

func (s *Store) SeedReservation(r *reservation.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.reservations[r.ID()] = r.Snapshot()
}

func (s *Store) SeedWaitlistEntry(e *waitlist.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.waitlist[e.ID()] = e.Snapshot()
}

func (s *Store) SeedBorrow(r *borrow.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.borrows[r.ID()] = r.Snapshot()
}

// Getters return copies of committed state.

func (s *Store) Resource(id uuid.UUID) (*resource.Resource, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.state.resources[id]
	if !ok {
		return nil, false
	}
	return copyResource(r), true
}

func (s *Store) Reservation(id uuid.UUID) (*reservation.Reservation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, ok := s.state.reservations[id]
	if !ok {
		return nil, false
	}
	return reservation.Reconstruct(snap), true
}

// Reservations returns every committed reservation of the resource.
func (s *Store) Reservations(resourceID uuid.UUID) []*reservation.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*reservation.Reservation
	for _, snap := range s.state.reservations {
		if snap.ResourceID == resourceID {
			out = append(out, reservation.Reconstruct(snap))
		}
	}
	return out
}

func (s *Store) WaitlistEntry(id uuid.UUID) (*waitlist.Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, ok := s.state.waitlist[id]
	if !ok {
		return nil, false
	}
	return waitlist.Reconstruct(snap), true
}

func (s *Store) Borrow(id uuid.UUID) (*borrow.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, ok := s.state.borrows[id]
	if !ok {
		return nil, false
	}
	return borrow.Reconstruct(snap), true
}

func (s *Store) Tickets() []maintenance.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]maintenance.Ticket(nil), s.state.tickets...)
}

func (s *Store) ActivityLogs() []activitylog.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]activitylog.Entry(nil), s.state.logs...)
}
