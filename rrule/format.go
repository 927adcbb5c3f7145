package rrule

import (
	"time"

	"github.com/cyp0633/librrule/internal/scan"
)

// String formats the rule in canonical form: FREQ first, then COUNT or
// UNTIL, INTERVAL when greater than 1, and the BY* lists in a fixed order.
// Parsing the result yields a rule equal to r.
func (r Rule) String() string {
	b := scan.NewBuffer(48)
	b.Text("FREQ=")
	b.Text(r.Freq.String())
	if n, ok := r.Termination.Count().Get(); ok {
		b.Text(";COUNT=")
		b.Int(n)
	} else if u, ok := r.Termination.Until().Get(); ok {
		b.Text(";UNTIL=")
		appendUntil(b, u)
	}
	if r.Interval > 1 {
		b.Text(";INTERVAL=")
		b.Int(r.Interval)
	}
	appendIntList(b, "BYSECOND", r.BySecond)
	appendIntList(b, "BYMINUTE", r.ByMinute)
	appendIntList(b, "BYHOUR", r.ByHour)
	appendDayList(b, r.ByDay)
	appendIntList(b, "BYMONTHDAY", r.ByMonthDay)
	appendIntList(b, "BYYEARDAY", r.ByYearDay)
	appendIntList(b, "BYWEEKNO", r.ByWeekNo)
	appendIntList(b, "BYMONTH", r.ByMonth)
	appendIntList(b, "BYSETPOS", r.BySetPos)
	return b.String()
}

func appendIntList(b *scan.Buffer, key string, values []int) {
	if len(values) == 0 {
		return
	}
	b.Byte(';')
	b.Text(key)
	b.Byte('=')
	for i, v := range values {
		if i > 0 {
			b.Byte(',')
		}
		b.Int(v)
	}
}

func appendDayList(b *scan.Buffer, days []DayOfWeek) {
	if len(days) == 0 {
		return
	}
	b.Text(";BYDAY=")
	for i, d := range days {
		if i > 0 {
			b.Byte(',')
		}
		if ord, ok := d.Ordinal.Get(); ok {
			b.Int(ord)
		}
		b.Text(weekdayCodes[d.Day])
	}
}

// appendUntil emits the DATE form for a UTC midnight, otherwise a
// DATE-TIME: with a 'Z' suffix when the value is in UTC, bare when it is
// in the process-local zone, and with a TZID prefix for any other zone.
func appendUntil(b *scan.Buffer, t time.Time) {
	year, month, day := t.Date()
	hh, mm, ss := t.Clock()
	_, offset := t.Zone()
	if hh == 0 && mm == 0 && ss == 0 && offset == 0 {
		b.Pad(year, 4)
		b.Pad(int(month), 2)
		b.Pad(day, 2)
		return
	}
	if offset != 0 && t.Location() != time.Local {
		b.Text("TZID=")
		b.Text(t.Location().String())
		b.Byte(':')
	}
	b.Pad(year, 4)
	b.Pad(int(month), 2)
	b.Pad(day, 2)
	b.Byte('T')
	b.Pad(hh, 2)
	b.Pad(mm, 2)
	b.Pad(ss, 2)
	if offset == 0 {
		b.Byte('Z')
	}
}
