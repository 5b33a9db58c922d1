package availability

import (
	"time"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/errs"
)

// Interval is a half-open time window [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

func NewInterval(start, end time.Time) (Interval, error) {
	if start.IsZero() || end.IsZero() {
		return Interval{}, errs.Validationf("start and end are required")
	}
	if !end.After(start) {
		return Interval{}, errs.Validationf("end %s must be after start %s", end.Format(time.RFC3339), start.Format(time.RFC3339))
	}
	return Interval{Start: start, End: end}, nil
}

// Overlaps reports whether a and b share at least one instant. Touching endpoints do not overlap.
func Overlaps(a, b Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

func (i Interval) Overlaps(other Interval) bool {
	return Overlaps(i, other)
}

// Contains reports whether other lies entirely inside i.
func (i Interval) Contains(other Interval) bool {
	return !other.Start.Before(i.Start) && !other.End.After(i.End)
}

func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

func (i Interval) String() string {
	return "[" + i.Start.Format(time.RFC3339) + ", " + i.End.Format(time.RFC3339) + ")"
}

// DayWindow returns the whole calendar day of date in loc.
func DayWindow(date time.Time, loc *time.Location) Interval {
	if loc == nil {
		loc = time.UTC
	}
	d := date.In(loc)
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
	return Interval{Start: start, End: start.AddDate(0, 0, 1)}
}

// TruncateDay drops the clock part of t in loc.
func TruncateDay(t time.Time, loc *time.Location) time.Time {
	return DayWindow(t, loc).Start
}
