package expand

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"

	"github.com/cyp0633/librrule/rrule"
)

// RuleFromComponent extracts and parses the RRULE property of an iCalendar
// component. ok is false when the component carries no RRULE.
func RuleFromComponent(comp *ical.Component) (r rrule.Rule, ok bool, err error) {
	prop := comp.Props.Get(ical.PropRecurrenceRule)
	if prop == nil || prop.Value == "" {
		return rrule.Rule{}, false, nil
	}
	r, err = rrule.Parse(prop.Value)
	if err != nil {
		return rrule.Rule{}, true, fmt.Errorf("expand: component RRULE: %w", err)
	}
	return r, true, nil
}

// ExceptionDates returns the component's EXDATE values.
func ExceptionDates(comp *ical.Component) []time.Time {
	return propDates(comp, ical.PropExceptionDates)
}

// ExtraDates returns the component's RDATE values.
func ExtraDates(comp *ical.Component) []time.Time {
	return propDates(comp, ical.PropRecurrenceDates)
}

func propDates(comp *ical.Component, name string) []time.Time {
	prop := comp.Props.Get(name)
	if prop == nil || prop.Value == "" {
		return nil
	}
	return parseDateList(prop.Value, prop.Params)
}

// ExpandComponent returns the occurrence dates of a component within
// [rangeStart, rangeEnd]: the RRULE expansion from DTSTART merged with
// RDATE entries, minus EXDATE entries. A component without an RRULE
// contributes its DTSTART alone.
func (e *Engine) ExpandComponent(comp *ical.Component, rangeStart, rangeEnd time.Time) ([]time.Time, error) {
	start, err := comp.Props.DateTime(ical.PropDateTimeStart, nil)
	if err != nil {
		return nil, fmt.Errorf("expand: component DTSTART: %w", err)
	}

	exdates := ExceptionDates(comp)

	var occurrences []time.Time
	r, hasRule, err := RuleFromComponent(comp)
	if err != nil {
		return nil, err
	}
	if hasRule {
		occurrences, err = e.Between(r, start, rangeStart, rangeEnd, DefaultLimit)
		if err != nil {
			return nil, err
		}
	} else if !start.Before(rangeStart) && !start.After(rangeEnd) {
		occurrences = []time.Time{start}
	}

	for _, rdate := range ExtraDates(comp) {
		if rdate.Before(rangeStart) || rdate.After(rangeEnd) {
			continue
		}
		occurrences = append(occurrences, rdate)
	}

	out := occurrences[:0]
	for _, occ := range occurrences {
		if !isExcluded(occ, exdates) {
			out = append(out, occ)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return dedupe(out), nil
}

// NewEvent builds a minimal VEVENT carrying the rule. An empty uid gets a
// freshly minted one.
func NewEvent(uid, summary string, start time.Time, r rrule.Rule) *ical.Component {
	if uid == "" {
		uid = uuid.NewString()
	}
	comp := &ical.Component{Name: ical.CompEvent, Props: make(ical.Props)}
	comp.Props.SetText(ical.PropUID, uid)
	comp.Props.SetText(ical.PropSummary, summary)
	comp.Props.SetDateTime(ical.PropDateTimeStart, start)
	comp.Props.Set(&ical.Prop{Name: ical.PropRecurrenceRule, Value: r.String()})
	return comp
}

// isExcluded checks a date against EXDATE entries. A date-only exception
// (stored as midnight UTC) excludes every occurrence on that calendar day.
func isExcluded(t time.Time, exdates []time.Time) bool {
	for _, exdate := range exdates {
		if t.Equal(exdate) {
			return true
		}
		if exdate.Hour() == 0 && exdate.Minute() == 0 && exdate.Second() == 0 && exdate.Location() == time.UTC {
			y, m, d := t.Date()
			if time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Equal(exdate) {
				return true
			}
		}
	}
	return false
}

// parseDateList parses a comma-separated RDATE/EXDATE value. VALUE=DATE
// entries and bare 8-character dates are stored as midnight UTC.
func parseDateList(value string, params ical.Params) []time.Time {
	dateOnly := false
	if params != nil {
		if v := params["VALUE"]; len(v) > 0 && strings.EqualFold(v[0], "DATE") {
			dateOnly = true
		}
	}

	var dates []time.Time
	for _, entry := range strings.Split(value, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if t, ok := parseDateValue(entry, dateOnly); ok {
			dates = append(dates, t)
		}
	}
	return dates
}

func parseDateValue(entry string, dateOnly bool) (time.Time, bool) {
	if !dateOnly {
		if t, err := time.Parse("20060102T150405Z", entry); err == nil {
			return t, true
		}
	}
	t, err := time.Parse("20060102", entry)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
}

func dedupe(sorted []time.Time) []time.Time {
	if len(sorted) < 2 {
		return sorted
	}
	out := sorted[:1]
	for _, t := range sorted[1:] {
		if !t.Equal(out[len(out)-1]) {
			out = append(out, t)
		}
	}
	return out
}
