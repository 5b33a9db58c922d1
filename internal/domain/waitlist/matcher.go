package waitlist

import (
	"sort"
	"time"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/availability"
)

// Rank orders entries for matching: priority high to low, then oldest first, then id.
func Rank(entries []*Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.priority.rank() != b.priority.rank() {
			return a.priority.rank() > b.priority.rank()
		}
		if !a.createdAt.Equal(b.createdAt) {
			return a.createdAt.Before(b.createdAt)
		}
		return a.id.String() < b.id.String()
	})
}

// Match notifies waiting entries that fit into the capacity left after approved.
// Entries that are already notified hold their claim until they are fulfilled or
// cancelled, and every entry notified by this run is added to those claims, so
// freed units are never promised twice. Scanning stops once the trigger window
// has nothing left. The returned entries are already marked notified.
func Match(
	totalStock int,
	approved []availability.Commitment,
	trigger availability.Interval,
	candidates []*Entry,
	now time.Time,
) []*Entry {
	committed := append([]availability.Commitment(nil), approved...)
	ranked := make([]*Entry, 0, len(candidates))
	for _, e := range candidates {
		switch e.status {
		case StatusWaiting:
			ranked = append(ranked, e)
		case StatusNotified:
			committed = append(committed, availability.Commitment{Interval: e.EvaluationWindow(trigger), Quantity: e.quantity})
		}
	}
	Rank(ranked)

	var notified []*Entry

	for _, e := range ranked {
		if availability.RemainingCapacity(totalStock, committed, trigger) <= 0 {
			break
		}
		w := e.EvaluationWindow(trigger)
		if availability.RemainingCapacity(totalStock, committed, w) < e.quantity {
			continue
		}
		if err := e.MarkNotified(now); err != nil {
			continue
		}
		committed = append(committed, availability.Commitment{Interval: w, Quantity: e.quantity})
		notified = append(notified, e)
	}
	return notified
}
