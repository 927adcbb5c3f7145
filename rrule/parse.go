package rrule

import (
	"strings"
	"time"

	"github.com/cyp0633/librrule/internal/scan"
)

// Parse converts a rule string into a Rule. The whole input must be a
// single rule; see ParsePrefix for parsing a rule embedded in a larger
// document.
func Parse(text string) (Rule, error) {
	r, n, err := ParsePrefix(text)
	if err != nil {
		return Rule{}, err
	}
	if n != len(text) {
		return Rule{}, grammarErr("", text[n:], "trailing input after rule")
	}
	return r, nil
}

// ParsePrefix parses a rule from the start of text, stopping at the first
// byte that cannot extend the grammar (whitespace or a line break). It
// returns the parsed rule and the number of bytes consumed.
func ParsePrefix(text string) (Rule, int, error) {
	cur := scan.NewCursor(text)
	if cur.Done() {
		return Rule{}, 0, grammarErr("", "", "empty rule")
	}
	r := Rule{Interval: 1}
	seen := make(map[string]bool, 4)
	first := true
	for !cur.Done() {
		key, seg, ok := cur.Pair()
		if !ok {
			return Rule{}, 0, grammarErr("", seg, "missing '=' in key-value pair")
		}
		if seen[key] {
			return Rule{}, 0, grammarErr(key, "", "duplicate key")
		}
		seen[key] = true
		if first {
			if key != "FREQ" {
				return Rule{}, 0, grammarErr(key, "", "FREQ must be the first key")
			}
			first = false
		}
		var err error
		switch key {
		case "FREQ":
			r.Freq, err = parseFrequency(seg)
		case "COUNT":
			if r.Termination.Until().IsPresent() {
				return Rule{}, 0, grammarErr("COUNT", "", "COUNT and UNTIL are mutually exclusive")
			}
			var n int
			if n, ok = scan.Uint(seg); !ok || n < 1 {
				err = valueErr("COUNT", seg, "count must be a positive integer")
			} else {
				r.Termination = AfterCount(n)
			}
		case "UNTIL":
			if r.Termination.Count().IsPresent() {
				return Rule{}, 0, grammarErr("UNTIL", "", "COUNT and UNTIL are mutually exclusive")
			}
			var u time.Time
			if u, err = parseUntil(seg); err == nil {
				r.Termination = UntilDate(u)
			}
		case "INTERVAL":
			var n int
			if n, ok = scan.Uint(seg); !ok || n < 1 {
				err = valueErr("INTERVAL", seg, "interval must be a positive integer")
			} else {
				r.Interval = n
			}
		case "BYSECOND":
			r.BySecond, err = parseIntList(key, seg, 0, 60, true)
		case "BYMINUTE":
			r.ByMinute, err = parseIntList(key, seg, 0, 59, true)
		case "BYHOUR":
			r.ByHour, err = parseIntList(key, seg, 0, 23, true)
		case "BYDAY":
			r.ByDay, err = parseDayList(seg)
		case "BYMONTHDAY":
			r.ByMonthDay, err = parseIntList(key, seg, -31, 31, false)
		case "BYYEARDAY":
			r.ByYearDay, err = parseIntList(key, seg, -366, 366, false)
		case "BYWEEKNO":
			r.ByWeekNo, err = parseIntList(key, seg, -53, 53, false)
		case "BYMONTH":
			r.ByMonth, err = parseIntList(key, seg, 1, 12, true)
		case "BYSETPOS":
			r.BySetPos, err = parseIntList(key, seg, -366, 366, false)
		default:
			return Rule{}, 0, grammarErr(key, seg, "unknown key")
		}
		if err != nil {
			return Rule{}, 0, err
		}
	}
	if cur.Dangling() {
		return Rule{}, 0, grammarErr("", "", "rule ends with ';'")
	}
	return r, cur.Pos(), nil
}

func parseFrequency(value string) (Frequency, error) {
	switch value {
	case "MINUTELY":
		return Minutely, nil
	case "HOURLY":
		return Hourly, nil
	case "DAILY":
		return Daily, nil
	case "WEEKLY":
		return Weekly, nil
	case "MONTHLY":
		return Monthly, nil
	case "YEARLY":
		return Yearly, nil
	case "SECONDLY":
		return 0, unsupportedErr("FREQ", value, "SECONDLY is not supported")
	}
	return 0, valueErr("FREQ", value, "unknown frequency")
}

func parseIntList(key, value string, min, max int, allowZero bool) ([]int, error) {
	out := make([]int, 0, 4)
	ok := scan.EachElement(value, func(elem string) bool {
		n, good := scan.Int(elem)
		if !good || n < min || n > max || (!allowZero && n == 0) {
			return false
		}
		out = append(out, n)
		return true
	})
	if !ok {
		return nil, valueErr(key, value, "invalid list element")
	}
	return out, nil
}

func parseDayList(value string) ([]DayOfWeek, error) {
	out := make([]DayOfWeek, 0, 4)
	ok := scan.EachElement(value, func(elem string) bool {
		d, good := parseDayElement(elem)
		if !good {
			return false
		}
		out = append(out, d)
		return true
	})
	if !ok {
		return nil, valueErr("BYDAY", value, "invalid weekday element")
	}
	return out, nil
}

// parseDayElement reads an optional signed ordinal followed by exactly a
// two-letter weekday code, e.g. "MO", "2TU", "-1FR".
func parseDayElement(elem string) (DayOfWeek, bool) {
	if len(elem) < 2 {
		return DayOfWeek{}, false
	}
	day, ok := weekdayFromCode(elem[len(elem)-2:])
	if !ok {
		return DayOfWeek{}, false
	}
	ordPart := elem[:len(elem)-2]
	if ordPart == "" {
		return Every(day), true
	}
	n, ok := scan.Int(ordPart)
	if !ok || n == 0 || n < -5 || n > 5 {
		return DayOfWeek{}, false
	}
	return Nth(n, day), true
}

// parseUntil accepts three value shapes: a bare 8-character date, a
// 15-character local date-time, and a date-time with a trailing 'Z'. A
// TZID=<zone>: prefix selects an explicit timezone and applies only to the
// local date-time shape.
func parseUntil(value string) (time.Time, error) {
	v := value
	var loc *time.Location
	if strings.HasPrefix(v, "TZID=") {
		colon := strings.IndexByte(v, ':')
		if colon < 0 {
			return time.Time{}, valueErr("UNTIL", value, "TZID prefix without ':'")
		}
		zone := v[len("TZID="):colon]
		l, err := time.LoadLocation(zone)
		if err != nil {
			return time.Time{}, valueErr("UNTIL", zone, "unknown timezone")
		}
		loc = l
		v = v[colon+1:]
	}
	switch {
	case len(v) == 8:
		if loc != nil {
			return time.Time{}, valueErr("UNTIL", value, "TZID requires a date-time value")
		}
		return buildDate(value, v, 0, 0, 0, time.UTC)
	case len(v) == 15 && v[8] == 'T':
		if loc == nil {
			loc = time.Local
		}
		return buildDateTime(value, v, loc)
	case len(v) == 16 && v[8] == 'T' && v[15] == 'Z':
		if loc != nil {
			return time.Time{}, valueErr("UNTIL", value, "TZID conflicts with UTC suffix")
		}
		return buildDateTime(value, v[:15], time.UTC)
	}
	return time.Time{}, valueErr("UNTIL", value, "malformed date")
}

func buildDateTime(input, v string, loc *time.Location) (time.Time, error) {
	hh, ok1 := scan.Uint(v[9:11])
	mm, ok2 := scan.Uint(v[11:13])
	ss, ok3 := scan.Uint(v[13:15])
	if !ok1 || !ok2 || !ok3 || hh > 23 || mm > 59 || ss > 59 {
		return time.Time{}, valueErr("UNTIL", input, "malformed time of day")
	}
	return buildDate(input, v[:8], hh, mm, ss, loc)
}

func buildDate(input, v string, hh, mm, ss int, loc *time.Location) (time.Time, error) {
	year, ok1 := scan.Uint(v[0:4])
	month, ok2 := scan.Uint(v[4:6])
	day, ok3 := scan.Uint(v[6:8])
	if !ok1 || !ok2 || !ok3 {
		return time.Time{}, valueErr("UNTIL", input, "malformed date")
	}
	t := time.Date(year, time.Month(month), day, hh, mm, ss, 0, loc)
	// time.Date normalizes out-of-range components; reject anything that
	// did not survive the round trip.
	ty, tm, td := t.Date()
	if ty != year || tm != time.Month(month) || td != day {
		return time.Time{}, valueErr("UNTIL", input, "no such calendar date")
	}
	return t, nil
}
