package expand

import (
	"fmt"
	"time"
)

// Components is one decomposition of an instant: the calendar fields the
// filters and generators consume.
type Components struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
	Second int

	Weekday      time.Weekday
	WeekOfMonth  int // 1-based week within the month
	WeeksInMonth int
	DaysInMonth  int

	Offset int // seconds east of UTC
}

// Calendar supplies date decomposition and arithmetic to the expansion
// engine. Implementations must be stateless and safe for concurrent use.
type Calendar interface {
	// Components decomposes t in its own location.
	Components(t time.Time) Components

	// AddDays shifts t by the given number of calendar days.
	AddDays(t time.Time, days int) time.Time

	// Date constructs an instant from components, failing when they do not
	// name a real calendar date. A nil location means UTC.
	Date(year int, month time.Month, day, hour, min, sec int, loc *time.Location) (time.Time, error)

	// Location resolves a timezone identifier, failing on unknown names.
	Location(name string) (*time.Location, error)
}

type systemCalendar struct{}

// System returns the Calendar backed by the standard library.
func System() Calendar {
	return systemCalendar{}
}

func (systemCalendar) Components(t time.Time) Components {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()
	_, offset := t.Zone()
	dim := daysIn(year, month, t.Location())
	return Components{
		Year:         year,
		Month:        month,
		Day:          day,
		Hour:         hour,
		Minute:       min,
		Second:       sec,
		Weekday:      t.Weekday(),
		WeekOfMonth:  (day-1)/7 + 1,
		WeeksInMonth: (dim-1)/7 + 1,
		DaysInMonth:  dim,
		Offset:       offset,
	}
}

func (systemCalendar) AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

func (systemCalendar) Date(year int, month time.Month, day, hour, min, sec int, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t := time.Date(year, month, day, hour, min, sec, 0, loc)
	ty, tm, td := t.Date()
	if ty != year || tm != month || td != day {
		return time.Time{}, fmt.Errorf("expand: no such date %04d-%02d-%02d", year, month, day)
	}
	return t, nil
}

func (systemCalendar) Location(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("expand: unknown timezone %q: %w", name, err)
	}
	return loc, nil
}

// daysIn returns the number of days in the given month; day 0 of the next
// month is the last day of this one.
func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}
