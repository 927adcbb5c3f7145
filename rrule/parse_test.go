package rrule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBasicRule(t *testing.T) {
	r, err := Parse("FREQ=WEEKLY;INTERVAL=2;BYDAY=MO,WE,FR")
	require.NoError(t, err)

	assert.Equal(t, Weekly, r.Freq)
	assert.Equal(t, 2, r.Interval)
	assert.False(t, r.Termination.IsBounded())
	assert.Equal(t, []DayOfWeek{
		Every(time.Monday),
		Every(time.Wednesday),
		Every(time.Friday),
	}, r.ByDay)
}

func TestParseAllKeys(t *testing.T) {
	r, err := Parse("FREQ=MONTHLY;COUNT=10;INTERVAL=3;BYSECOND=0,30;BYMINUTE=15;" +
		"BYHOUR=9,17;BYDAY=1MO,-1FR;BYMONTHDAY=1,-1;BYYEARDAY=100,-100;" +
		"BYWEEKNO=20,-1;BYMONTH=1,6,12;BYSETPOS=1,-2")
	require.NoError(t, err)

	assert.Equal(t, Monthly, r.Freq)
	assert.Equal(t, 3, r.Interval)
	count, ok := r.Termination.Count().Get()
	require.True(t, ok)
	assert.Equal(t, 10, count)
	assert.Equal(t, []int{0, 30}, r.BySecond)
	assert.Equal(t, []int{15}, r.ByMinute)
	assert.Equal(t, []int{9, 17}, r.ByHour)
	assert.Equal(t, []DayOfWeek{Nth(1, time.Monday), Nth(-1, time.Friday)}, r.ByDay)
	assert.Equal(t, []int{1, -1}, r.ByMonthDay)
	assert.Equal(t, []int{100, -100}, r.ByYearDay)
	assert.Equal(t, []int{20, -1}, r.ByWeekNo)
	assert.Equal(t, []int{1, 6, 12}, r.ByMonth)
	assert.Equal(t, []int{1, -2}, r.BySetPos)
}

func TestParseGrammarErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"missing equals", "FREQ=DAILY;COUNT"},
		{"freq not first", "COUNT=5;FREQ=DAILY"},
		{"missing freq", "COUNT=5"},
		{"duplicate key", "FREQ=DAILY;COUNT=5;COUNT=6"},
		{"duplicate freq", "FREQ=DAILY;FREQ=WEEKLY"},
		{"count then until", "FREQ=DAILY;COUNT=5;UNTIL=20250101"},
		{"until then count", "FREQ=DAILY;UNTIL=20250101;COUNT=5"},
		{"unknown key", "FREQ=DAILY;BYFOO=1"},
		{"lenient-only key", "FREQ=DAILY;WKST=MO"},
		{"trailing semicolon", "FREQ=DAILY;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			assert.True(t, IsGrammar(err), "want grammar error, got %v", err)
		})
	}
}

func TestParseRangeEnforcement(t *testing.T) {
	tests := []struct {
		name string
		good []string
		bad  []string
	}{
		{
			name: "BYSECOND",
			good: []string{"FREQ=DAILY;BYSECOND=0", "FREQ=DAILY;BYSECOND=60"},
			bad:  []string{"FREQ=DAILY;BYSECOND=61", "FREQ=DAILY;BYSECOND=-1"},
		},
		{
			name: "BYMINUTE",
			good: []string{"FREQ=DAILY;BYMINUTE=0", "FREQ=DAILY;BYMINUTE=59"},
			bad:  []string{"FREQ=DAILY;BYMINUTE=60"},
		},
		{
			name: "BYHOUR",
			good: []string{"FREQ=DAILY;BYHOUR=0", "FREQ=DAILY;BYHOUR=23"},
			bad:  []string{"FREQ=DAILY;BYHOUR=24"},
		},
		{
			name: "BYMONTHDAY",
			good: []string{"FREQ=MONTHLY;BYMONTHDAY=1", "FREQ=MONTHLY;BYMONTHDAY=31", "FREQ=MONTHLY;BYMONTHDAY=-31"},
			bad:  []string{"FREQ=MONTHLY;BYMONTHDAY=0", "FREQ=MONTHLY;BYMONTHDAY=32", "FREQ=MONTHLY;BYMONTHDAY=-32"},
		},
		{
			name: "BYYEARDAY",
			good: []string{"FREQ=YEARLY;BYYEARDAY=366", "FREQ=YEARLY;BYYEARDAY=-366"},
			bad:  []string{"FREQ=YEARLY;BYYEARDAY=0", "FREQ=YEARLY;BYYEARDAY=367"},
		},
		{
			name: "BYWEEKNO",
			good: []string{"FREQ=YEARLY;BYWEEKNO=53", "FREQ=YEARLY;BYWEEKNO=-53"},
			bad:  []string{"FREQ=YEARLY;BYWEEKNO=0", "FREQ=YEARLY;BYWEEKNO=54"},
		},
		{
			name: "BYMONTH",
			good: []string{"FREQ=YEARLY;BYMONTH=1", "FREQ=YEARLY;BYMONTH=12"},
			bad:  []string{"FREQ=YEARLY;BYMONTH=0", "FREQ=YEARLY;BYMONTH=13"},
		},
		{
			name: "BYSETPOS",
			good: []string{"FREQ=MONTHLY;BYSETPOS=366", "FREQ=MONTHLY;BYSETPOS=-366"},
			bad:  []string{"FREQ=MONTHLY;BYSETPOS=0", "FREQ=MONTHLY;BYSETPOS=367"},
		},
		{
			name: "BYDAY ordinal",
			good: []string{"FREQ=MONTHLY;BYDAY=5SA", "FREQ=MONTHLY;BYDAY=-5SU"},
			bad:  []string{"FREQ=MONTHLY;BYDAY=0MO", "FREQ=MONTHLY;BYDAY=6MO", "FREQ=MONTHLY;BYDAY=-6MO"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, s := range tt.good {
				_, err := Parse(s)
				assert.NoError(t, err, "input %q", s)
			}
			for _, s := range tt.bad {
				_, err := Parse(s)
				require.Error(t, err, "input %q", s)
				assert.True(t, IsValue(err), "input %q: want value error, got %v", s, err)
			}
		})
	}
}

func TestParseValueErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"non-numeric count", "FREQ=DAILY;COUNT=x"},
		{"zero count", "FREQ=DAILY;COUNT=0"},
		{"negative count", "FREQ=DAILY;COUNT=-1"},
		{"zero interval", "FREQ=DAILY;INTERVAL=0"},
		{"non-numeric interval", "FREQ=DAILY;INTERVAL=two"},
		{"empty list", "FREQ=DAILY;BYHOUR="},
		{"partial list failure", "FREQ=DAILY;BYHOUR=1,2,24"},
		{"empty list element", "FREQ=DAILY;BYHOUR=1,,2"},
		{"bad weekday code", "FREQ=WEEKLY;BYDAY=XX"},
		{"short weekday element", "FREQ=WEEKLY;BYDAY=M"},
		{"bare ordinal", "FREQ=WEEKLY;BYDAY=2"},
		{"unknown frequency", "FREQ=FORTNIGHTLY"},
		{"malformed until", "FREQ=DAILY;UNTIL=2025-01-01"},
		{"until bad length", "FREQ=DAILY;UNTIL=202501011"},
		{"until bad separator", "FREQ=DAILY;UNTIL=20250101X000000"},
		{"until nonexistent date", "FREQ=DAILY;UNTIL=20250230"},
		{"until bad hour", "FREQ=DAILY;UNTIL=20250101T250000"},
		{"until unknown zone", "FREQ=DAILY;UNTIL=TZID=Mars/Olympus:20250101T000000"},
		{"until tzid with bare date", "FREQ=DAILY;UNTIL=TZID=Asia/Tokyo:20250101"},
		{"until tzid with utc suffix", "FREQ=DAILY;UNTIL=TZID=Asia/Tokyo:20250101T000000Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			assert.True(t, IsValue(err), "want value error, got %v", err)
		})
	}
}

func TestParseSecondlyUnsupported(t *testing.T) {
	_, err := Parse("FREQ=SECONDLY")
	require.Error(t, err)
	assert.True(t, IsUnsupported(err))
}

func TestParseUntilShapes(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "bare date",
			input: "FREQ=DAILY;UNTIL=20250630",
			want:  time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "utc date-time",
			input: "FREQ=DAILY;UNTIL=20250630T120000Z",
			want:  time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC),
		},
		{
			name:  "local date-time",
			input: "FREQ=DAILY;UNTIL=20250630T120000",
			want:  time.Date(2025, 6, 30, 12, 0, 0, 0, time.Local),
		},
		{
			name:  "tzid date-time",
			input: "FREQ=DAILY;UNTIL=TZID=Asia/Tokyo:20250630T120000",
			want:  time.Date(2025, 6, 30, 12, 0, 0, 0, tokyo),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Parse(tt.input)
			require.NoError(t, err)
			until, ok := r.Termination.Until().Get()
			require.True(t, ok)
			assert.True(t, tt.want.Equal(until), "want %v, got %v", tt.want, until)
		})
	}
}

func TestParsePrefix(t *testing.T) {
	input := "FREQ=WEEKLY;BYDAY=MO\r\nDTSTART:20240101"
	r, n, err := ParsePrefix(input)
	require.NoError(t, err)
	assert.Equal(t, Weekly, r.Freq)
	assert.Equal(t, len("FREQ=WEEKLY;BYDAY=MO"), n)

	// The same input must fail the whole-string entry point.
	_, err = Parse(input)
	require.Error(t, err)
	assert.True(t, IsGrammar(err))
}

func TestParseDefaultInterval(t *testing.T) {
	r, err := Parse("FREQ=DAILY")
	require.NoError(t, err)
	assert.Equal(t, 1, r.Interval)
}
