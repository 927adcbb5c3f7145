/*
Package rrule implements the RFC 5545 recurrence rule grammar: parsing a
rule string such as

	FREQ=WEEKLY;INTERVAL=2;BYDAY=MO,WE,FR

into a structured Rule, and formatting a Rule back into its canonical text
form.

# Parsing

	r, err := rrule.Parse("FREQ=WEEKLY;COUNT=10;BYDAY=MO,WE")
	if err != nil {
		log.Fatal(err)
	}

Parse is strict: FREQ must be the first key, every key may appear at most
once, COUNT and UNTIL are mutually exclusive, unknown keys are rejected,
and every list element is range-checked. A failed parse reports the key and
input slice that caused it through the *Error type.

ParsePrefix additionally returns how many bytes of the input belong to the
rule, so a rule can be read out of a larger document such as an iCalendar
property line.

# Formatting

Rule.String emits the canonical form: FREQ first, then the termination,
interval and BY* lists in a fixed order. Formatting a parsed rule and
parsing the result yields an equal Rule; the byte sequence of the original
input is not necessarily preserved (key order is normalized).

Occurrence expansion lives in the expand package.
*/
package rrule
