package expand

import (
	"errors"
	"fmt"
	"time"

	"github.com/cyp0633/librrule/rrule"
)

// ErrUnsupportedFrequency indicates that no generator is registered for a
// rule's frequency. Callers should treat it as "not yet implemented"
// rather than a fatal condition.
var ErrUnsupportedFrequency = errors.New("expand: no generator for frequency")

// Generator lazily produces the occurrence dates of one rule from a start
// date. A generator is a single-writer cursor: advance it from one
// goroutine only, and construct a fresh one to restart the sequence.
type Generator struct {
	cal      Calendar
	interval int
	term     rrule.Termination
	filters  []Filter

	current time.Time
	count   int
}

type generatorFunc func(r rrule.Rule, start time.Time, cal Calendar) (*Generator, error)

// generators maps each frequency to its constructor. Frequencies without
// an entry fail construction; adding a new frequency means registering a
// constructor here, not changing the advance loop.
var generators = map[rrule.Frequency]generatorFunc{
	rrule.Weekly: newWeeklyGenerator,
}

// NewGenerator constructs the generator for r's frequency, starting at
// start. Construction fails with ErrUnsupportedFrequency when the
// frequency has no registered generator.
func NewGenerator(r rrule.Rule, start time.Time, cal Calendar) (*Generator, error) {
	ctor, ok := generators[r.Freq]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFrequency, r.Freq)
	}
	return ctor(r, start, cal)
}

// newWeeklyGenerator builds the weekly generator: its filters come from
// ByDay when present (ordinals are ignored, weekly matching is every
// occurrence of the listed weekdays), otherwise a single filter for the
// start date's weekday.
func newWeeklyGenerator(r rrule.Rule, start time.Time, cal Calendar) (*Generator, error) {
	if r.Freq != rrule.Weekly {
		return nil, fmt.Errorf("%w: weekly generator given %s", ErrUnsupportedFrequency, r.Freq)
	}
	interval := r.Interval
	if interval < 1 {
		interval = 1
	}
	days := r.ByDay
	if len(days) == 0 {
		days = []rrule.DayOfWeek{rrule.Every(cal.Components(start).Weekday)}
	}
	return &Generator{
		cal:      cal,
		interval: interval,
		term:     r.Termination,
		filters:  []Filter{WeekdayFilter{Days: days}},
		current:  start,
	}, nil
}

// Next returns the next occurrence. ok is false once the sequence is
// exhausted; an exhausted generator stays exhausted. For an unbounded rule
// the caller must impose its own ceiling.
func (g *Generator) Next() (occurrence time.Time, ok bool) {
	for {
		if n, bounded := g.term.Count().Get(); bounded && g.count >= n {
			return time.Time{}, false
		}
		if u, bounded := g.term.Until().Get(); bounded && g.current.After(u) {
			return time.Time{}, false
		}
		candidate := g.current
		// Stepping off the last weekday of the week jumps straight to the
		// next interval-th week, so no explicit week-boundary bookkeeping
		// is needed.
		if g.cal.Components(g.current).Weekday == lastWeekday {
			g.current = g.cal.AddDays(g.current, 1+(g.interval-1)*daysPerWeek)
		} else {
			g.current = g.cal.AddDays(g.current, 1)
		}
		if g.accepts(candidate) {
			g.count++
			return candidate, true
		}
	}
}

func (g *Generator) accepts(t time.Time) bool {
	for _, f := range g.filters {
		if !f.Matches(t, g.cal) {
			return false
		}
	}
	return true
}

const daysPerWeek = 7

// lastWeekday is the final day of a week under the RFC 5545 default week
// start (Monday).
const lastWeekday = time.Sunday
