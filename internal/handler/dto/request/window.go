package request

import (
	"time"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/availability"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/errs"
)

const clockLayout = "15:04"

// ParseWindow reads a calendar date and two wall clock times in loc.
// An end of "24:00" means midnight at the end of date.
func ParseWindow(date, start, end string, loc *time.Location) (time.Time, availability.Interval, error) {
	if loc == nil {
		loc = time.UTC
	}
	day, err := time.ParseInLocation(time.DateOnly, date, loc)
	if err != nil {
		return time.Time{}, availability.Interval{}, errs.Validationf("date %q must look like YYYY-MM-DD", date)
	}
	from, err := clockOn(day, start)
	if err != nil {
		return time.Time{}, availability.Interval{}, err
	}
	to, err := clockOn(day, end)
	if err != nil {
		return time.Time{}, availability.Interval{}, err
	}
	w, err := availability.NewInterval(from, to)
	if err != nil {
		return time.Time{}, availability.Interval{}, err
	}
	return day, w, nil
}

func clockOn(day time.Time, hhmm string) (time.Time, error) {
	if hhmm == "24:00" {
		return day.AddDate(0, 0, 1), nil
	}
	t, err := time.Parse(clockLayout, hhmm)
	if err != nil {
		return time.Time{}, errs.Validationf("time %q must look like HH:MM", hhmm)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}

// OptionalWindow is a date plus start and end time that may be left out entirely.
type OptionalWindow struct {
	Date      *string `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
}

// Interval returns nil when no part of the window was sent.
func (w OptionalWindow) Interval(loc *time.Location) (*availability.Interval, error) {
	if w.Date == nil && w.StartTime == nil && w.EndTime == nil {
		return nil, nil
	}
	if w.Date == nil || w.StartTime == nil || w.EndTime == nil {
		return nil, errs.Validationf("date, start_time and end_time must be sent together")
	}
	_, iv, err := ParseWindow(*w.Date, *w.StartTime, *w.EndTime, loc)
	if err != nil {
		return nil, err
	}
	return &iv, nil
}
