//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/availability"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/notification"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/reservation"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/resource"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/user"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra/memstore"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/clock"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/shared"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var (
	testNow = time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	testDay = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
)

// hours returns [from, to) on the test day.
func hours(from, to int) availability.Interval {
	return availability.Interval{
		Start: testDay.Add(time.Duration(from) * time.Hour),
		End:   testDay.Add(time.Duration(to) * time.Hour),
	}
}

type recordingNotifier struct {
	mu      sync.Mutex
	intents []notification.Intent
}

func (n *recordingNotifier) Notify(_ context.Context, intents ...notification.Intent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.intents = append(n.intents, intents...)
}

func (n *recordingNotifier) sent() []notification.Intent {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notification.Intent(nil), n.intents...)
}

func (n *recordingNotifier) to(recipient uuid.UUID) []notification.Kind {
	var kinds []notification.Kind
	for _, in := range n.sent() {
		if in.RecipientID == recipient {
			kinds = append(kinds, in.Kind)
		}
	}
	return kinds
}

func (n *recordingNotifier) reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.intents = nil
}

type fixture struct {
	store       *memstore.Store
	notifier    *recordingNotifier
	clock       *clock.MockClock
	policy      reservation.Policy
	admin       shared.Actor
	maintenance shared.Actor
	requester   shared.Actor
	other       shared.Actor
	resource    *resource.Resource
}

func newFixture(t *testing.T, stock int) *fixture {
	t.Helper()

	f := &fixture{
		store:    memstore.New(),
		notifier: &recordingNotifier{},
		clock:    clock.NewMockClock(testNow),
		policy:   reservation.Policy{Location: time.UTC},
	}
	f.admin = f.seedUser(t, "admin@example.com", user.RoleAdmin)
	f.maintenance = f.seedUser(t, "tech@example.com", user.RoleMaintenance)
	f.requester = f.seedUser(t, "student@example.com", user.RoleUser)
	f.other = f.seedUser(t, "other@example.com", user.RoleUser)

	f.resource = builder.NewResourceBuilder().WithStock(stock).BuildDomain()
	f.store.SeedResource(f.resource)
	return f
}

func (f *fixture) seedUser(t *testing.T, email string, role user.Role) shared.Actor {
	t.Helper()
	u, err := builder.NewUserBuilder().
		WithEmail(email).
		WithRole(role.String()).
		BuildDomain()
	require.NoError(t, err)
	f.store.SeedUser(u)
	return shared.Actor{ID: u.ID(), Role: u.Role()}
}

// seedReservation stores a reservation on the fixture resource in the given status.
func (f *fixture) seedReservation(status reservation.Status, window availability.Interval, qty int) *reservation.Reservation {
	r := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.ResourceID = f.resource.ID()
		b.RequesterID = f.requester.ID
		b.Date = testDay
		b.Start = window.Start
		b.End = window.End
		b.Quantity = qty
		b.Status = status
		b.Now = testNow
	}).BuildDomain()
	f.store.SeedReservation(r)
	return r
}

func (f *fixture) stock(t *testing.T) int {
	t.Helper()
	r, ok := f.store.Resource(f.resource.ID())
	require.True(t, ok)
	return r.TotalStock()
}

// approvedLoadWithinStock checks that at every instant the approved reservations
// of the fixture resource fit into its stock. Load only changes at window starts,
// so checking each start is enough.
func (f *fixture) approvedLoadWithinStock(t *testing.T) {
	t.Helper()
	stock := f.stock(t)

	var approved []*reservation.Reservation
	for _, r := range f.store.Reservations(f.resource.ID()) {
		if r.Status() == reservation.StatusApproved {
			approved = append(approved, r)
		}
	}
	for _, a := range approved {
		at := a.Window().Start
		load := 0
		for _, r := range approved {
			if !at.Before(r.Window().Start) && at.Before(r.Window().End) {
				load += r.Quantity()
			}
		}
		require.LessOrEqualf(t, load, stock, "load at %s exceeds stock", at)
	}
}
