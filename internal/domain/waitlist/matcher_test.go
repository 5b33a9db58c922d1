//go:build unit

package waitlist_test

import (
	"testing"
	"time"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/availability"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/waitlist"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	base    = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	trigger = availability.Interval{Start: base.Add(9 * time.Hour), End: base.Add(11 * time.Hour)}
)

func entryAt(t *testing.T, p waitlist.Priority, created time.Time, quantity int) *waitlist.Entry {
	t.Helper()
	e, err := waitlist.NewEntry(uuid.New(), uuid.New(), quantity, nil, p, created)
	require.NoError(t, err)
	return e
}

func TestMatchFairness(t *testing.T) {
	t0 := base.Add(-3 * time.Hour)
	t1 := t0.Add(time.Hour)
	t2 := t1.Add(time.Hour)

	highLate := entryAt(t, waitlist.PriorityHigh, t2, 1)
	mediumEarly := entryAt(t, waitlist.PriorityMedium, t0, 1)
	highEarly := entryAt(t, waitlist.PriorityHigh, t1, 1)

	now := base.Add(8 * time.Hour)
	notified := waitlist.Match(1, nil, trigger,
		[]*waitlist.Entry{highLate, mediumEarly, highEarly}, now)

	require.Len(t, notified, 1)
	assert.Equal(t, highEarly.ID(), notified[0].ID())
	assert.Equal(t, waitlist.StatusNotified, highEarly.Status())
	assert.Equal(t, now, *highEarly.NotifiedAt())
	assert.Equal(t, waitlist.StatusWaiting, highLate.Status())
	assert.Equal(t, waitlist.StatusWaiting, mediumEarly.Status())
}

func TestMatchCountsEarlierMatchesAsCommitted(t *testing.T) {
	a := entryAt(t, waitlist.PriorityHigh, base, 1)
	b := entryAt(t, waitlist.PriorityHigh, base.Add(time.Minute), 1)
	c := entryAt(t, waitlist.PriorityHigh, base.Add(2*time.Minute), 1)

	approved := []availability.Commitment{{Interval: trigger, Quantity: 1}}
	notified := waitlist.Match(3, approved, trigger, []*waitlist.Entry{a, b, c}, base)

	require.Len(t, notified, 2)
	assert.Equal(t, a.ID(), notified[0].ID())
	assert.Equal(t, b.ID(), notified[1].ID())
	assert.Equal(t, waitlist.StatusWaiting, c.Status())
}

func TestMatchSkipsEntriesThatDoNotFit(t *testing.T) {
	big := entryAt(t, waitlist.PriorityHigh, base, 3)
	small := entryAt(t, waitlist.PriorityLow, base, 1)

	notified := waitlist.Match(2, nil, trigger, []*waitlist.Entry{big, small}, base)

	require.Len(t, notified, 1)
	assert.Equal(t, small.ID(), notified[0].ID())
	assert.Equal(t, waitlist.StatusWaiting, big.Status())
}

func TestMatchUsesPreferredWindow(t *testing.T) {
	afternoon := availability.Interval{Start: base.Add(14 * time.Hour), End: base.Add(16 * time.Hour)}
	e, err := waitlist.NewEntry(uuid.New(), uuid.New(), 1, &afternoon, waitlist.PriorityHigh, base)
	require.NoError(t, err)

	busy := []availability.Commitment{{Interval: afternoon, Quantity: 1}}
	notified := waitlist.Match(1, busy, trigger, []*waitlist.Entry{e}, base)

	assert.Empty(t, notified)
	assert.Equal(t, waitlist.StatusWaiting, e.Status())
}

func TestMatchIgnoresNonWaitingEntries(t *testing.T) {
	cancelled := entryAt(t, waitlist.PriorityHigh, base, 1)
	require.NoError(t, cancelled.Cancel(base))
	waiting := entryAt(t, waitlist.PriorityLow, base, 1)

	notified := waitlist.Match(1, nil, trigger, []*waitlist.Entry{cancelled, waiting}, base)

	require.Len(t, notified, 1)
	assert.Equal(t, waiting.ID(), notified[0].ID())
	assert.Equal(t, waitlist.StatusCancelled, cancelled.Status())
}

func TestMatchStopsWhenNothingIsFree(t *testing.T) {
	e := entryAt(t, waitlist.PriorityHigh, base, 1)
	full := []availability.Commitment{{Interval: trigger, Quantity: 2}}

	assert.Empty(t, waitlist.Match(2, full, trigger, []*waitlist.Entry{e}, base))
}

func TestMatchKeepsClaimsOfNotifiedEntries(t *testing.T) {
	held := entryAt(t, waitlist.PriorityHigh, base, 1)
	require.NoError(t, held.MarkNotified(base))
	next := entryAt(t, waitlist.PriorityHigh, base.Add(time.Minute), 1)

	assert.Empty(t, waitlist.Match(1, nil, trigger, []*waitlist.Entry{held, next}, base))
	assert.Equal(t, waitlist.StatusWaiting, next.Status())

	require.NoError(t, held.Cancel(base))
	notified := waitlist.Match(1, nil, trigger, []*waitlist.Entry{held, next}, base)
	require.Len(t, notified, 1)
	assert.Equal(t, next.ID(), notified[0].ID())
}

func TestMatchRunsBackToBackPromiseEachUnitOnce(t *testing.T) {
	a := entryAt(t, waitlist.PriorityHigh, base, 1)
	b := entryAt(t, waitlist.PriorityHigh, base.Add(time.Minute), 1)
	entries := []*waitlist.Entry{a, b}

	require.Len(t, waitlist.Match(1, nil, trigger, entries, base), 1)
	assert.Empty(t, waitlist.Match(1, nil, trigger, entries, base.Add(time.Minute)))

	assert.Equal(t, waitlist.StatusNotified, a.Status())
	assert.Equal(t, waitlist.StatusWaiting, b.Status())
}
