package expand

import (
	"time"

	"github.com/cyp0633/librrule/rrule"
)

// Filter narrows candidate dates to those satisfying one constraint axis.
// Implementations must be pure: no side effects, no retained state. A
// generator holding several filters requires all of them to accept a
// candidate.
type Filter interface {
	Matches(t time.Time, cal Calendar) bool
}

// WeekdayFilter accepts dates falling on one of its configured weekday
// entries. Entries are OR-combined. With MatchOrdinal set, an entry that
// carries an ordinal additionally requires the date's week-of-month (or
// its from-the-end equivalent) to equal that ordinal.
type WeekdayFilter struct {
	Days         []rrule.DayOfWeek
	MatchOrdinal bool
}

func (f WeekdayFilter) Matches(t time.Time, cal Calendar) bool {
	c := cal.Components(t)
	for _, d := range f.Days {
		if d.Day != c.Weekday {
			continue
		}
		if !f.MatchOrdinal {
			return true
		}
		ord, ok := d.Ordinal.Get()
		if !ok {
			return true
		}
		if ord == c.WeekOfMonth || ord == -(c.WeeksInMonth-c.WeekOfMonth+1) {
			return true
		}
	}
	return false
}
