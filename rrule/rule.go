package rrule

import (
	"time"

	"github.com/samber/mo"
)

// Frequency is the base repetition unit of a rule.
type Frequency int

const (
	Minutely Frequency = iota
	Hourly
	Daily
	Weekly
	Monthly
	Yearly
)

var frequencyNames = [...]string{
	Minutely: "MINUTELY",
	Hourly:   "HOURLY",
	Daily:    "DAILY",
	Weekly:   "WEEKLY",
	Monthly:  "MONTHLY",
	Yearly:   "YEARLY",
}

// String returns the grammar literal for f, e.g. "WEEKLY".
func (f Frequency) String() string {
	if f < Minutely || f > Yearly {
		return "UNKNOWN"
	}
	return frequencyNames[f]
}

type terminationKind int

const (
	terminationNone terminationKind = iota
	terminationCount
	terminationUntil
)

// Termination is the condition ending a recurrence. The zero value is an
// unbounded recurrence. A Termination can carry a count or an end date but
// never both.
type Termination struct {
	kind  terminationKind
	count int
	until time.Time
}

// Never returns the unbounded termination.
func Never() Termination {
	return Termination{}
}

// AfterCount terminates the recurrence after n occurrences.
func AfterCount(n int) Termination {
	return Termination{kind: terminationCount, count: n}
}

// UntilDate terminates the recurrence after the given date. Occurrences on
// the date itself are still produced.
func UntilDate(t time.Time) Termination {
	return Termination{kind: terminationUntil, until: t}
}

// Count returns the occurrence limit, if this termination carries one.
func (t Termination) Count() mo.Option[int] {
	if t.kind != terminationCount {
		return mo.None[int]()
	}
	return mo.Some(t.count)
}

// Until returns the end date, if this termination carries one.
func (t Termination) Until() mo.Option[time.Time] {
	if t.kind != terminationUntil {
		return mo.None[time.Time]()
	}
	return mo.Some(t.until)
}

// IsBounded reports whether the recurrence ends on its own.
func (t Termination) IsBounded() bool {
	return t.kind != terminationNone
}

// DayOfWeek is one BYDAY entry: a weekday with an optional ordinal. A
// positive ordinal selects the nth occurrence of the weekday within the
// enclosing period, a negative one counts from the end; an absent ordinal
// means every occurrence.
type DayOfWeek struct {
	Ordinal mo.Option[int]
	Day     time.Weekday
}

// Every returns a DayOfWeek matching every occurrence of d.
func Every(d time.Weekday) DayOfWeek {
	return DayOfWeek{Day: d}
}

// Nth returns a DayOfWeek matching the nth occurrence of d; negative n
// counts from the end of the period.
func Nth(n int, d time.Weekday) DayOfWeek {
	return DayOfWeek{Ordinal: mo.Some(n), Day: d}
}

// Rule is a structured recurrence definition. An empty constraint slice
// means the axis is unconstrained. Rules are plain values: the codec and
// the expansion engine never mutate one they are handed.
type Rule struct {
	Freq        Frequency
	Interval    int // every Interval-th step; values below 1 mean 1
	Termination Termination

	BySecond   []int // 0..60
	ByMinute   []int // 0..59
	ByHour     []int // 0..23
	ByDay      []DayOfWeek
	ByMonthDay []int // -31..31, no 0
	ByYearDay  []int // -366..366, no 0
	ByWeekNo   []int // -53..53, no 0
	ByMonth    []int // 1..12
	BySetPos   []int // -366..366, no 0
}

// New returns a rule with the given frequency and an interval of 1.
func New(f Frequency) Rule {
	return Rule{Freq: f, Interval: 1}
}

func checkRange(key string, values []int, min, max int, allowZero bool) error {
	for _, v := range values {
		if v < min || v > max || (!allowZero && v == 0) {
			return valueErr(key, "", "value out of range")
		}
	}
	return nil
}

// Validate re-checks the field domains of a hand-constructed rule. Parsed
// rules are always valid.
func (r Rule) Validate() error {
	if r.Freq < Minutely || r.Freq > Yearly {
		return valueErr("FREQ", "", "unknown frequency")
	}
	if r.Interval < 0 {
		return valueErr("INTERVAL", "", "interval must be positive")
	}
	if n, ok := r.Termination.Count().Get(); ok && n < 1 {
		return valueErr("COUNT", "", "count must be at least 1")
	}
	if err := checkRange("BYSECOND", r.BySecond, 0, 60, true); err != nil {
		return err
	}
	if err := checkRange("BYMINUTE", r.ByMinute, 0, 59, true); err != nil {
		return err
	}
	if err := checkRange("BYHOUR", r.ByHour, 0, 23, true); err != nil {
		return err
	}
	for _, d := range r.ByDay {
		if d.Day < time.Sunday || d.Day > time.Saturday {
			return valueErr("BYDAY", "", "unknown weekday")
		}
		if ord, ok := d.Ordinal.Get(); ok && (ord < -5 || ord > 5 || ord == 0) {
			return valueErr("BYDAY", "", "ordinal out of range")
		}
	}
	if err := checkRange("BYMONTHDAY", r.ByMonthDay, -31, 31, false); err != nil {
		return err
	}
	if err := checkRange("BYYEARDAY", r.ByYearDay, -366, 366, false); err != nil {
		return err
	}
	if err := checkRange("BYWEEKNO", r.ByWeekNo, -53, 53, false); err != nil {
		return err
	}
	if err := checkRange("BYMONTH", r.ByMonth, 1, 12, true); err != nil {
		return err
	}
	return checkRange("BYSETPOS", r.BySetPos, -366, 366, false)
}

// weekday two-letter codes, indexed by time.Weekday (Sunday first).
var weekdayCodes = [...]string{"SU", "MO", "TU", "WE", "TH", "FR", "SA"}

func weekdayFromCode(code string) (time.Weekday, bool) {
	for i, c := range weekdayCodes {
		if c == code {
			return time.Weekday(i), true
		}
	}
	return 0, false
}
