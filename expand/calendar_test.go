package expand

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemComponents(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	c := System().Components(time.Date(2025, 1, 31, 9, 30, 15, 0, tokyo))
	assert.Equal(t, 2025, c.Year)
	assert.Equal(t, time.January, c.Month)
	assert.Equal(t, 31, c.Day)
	assert.Equal(t, 9, c.Hour)
	assert.Equal(t, 30, c.Minute)
	assert.Equal(t, 15, c.Second)
	assert.Equal(t, time.Friday, c.Weekday)
	assert.Equal(t, 5, c.WeekOfMonth)
	assert.Equal(t, 5, c.WeeksInMonth)
	assert.Equal(t, 31, c.DaysInMonth)
	assert.Equal(t, 9*60*60, c.Offset)
}

func TestSystemComponentsFebruary(t *testing.T) {
	c := System().Components(date(2024, 2, 29)) // leap year
	assert.Equal(t, 29, c.DaysInMonth)
	assert.Equal(t, 5, c.WeekOfMonth)

	c = System().Components(date(2025, 2, 1))
	assert.Equal(t, 28, c.DaysInMonth)
	assert.Equal(t, 4, c.WeeksInMonth)
}

func TestSystemAddDays(t *testing.T) {
	assert.Equal(t, date(2025, 2, 1), System().AddDays(date(2025, 1, 31), 1))
	assert.Equal(t, date(2024, 12, 31), System().AddDays(date(2025, 1, 1), -1))
	assert.Equal(t, date(2025, 1, 20), System().AddDays(date(2025, 1, 12), 8))
}

func TestSystemDate(t *testing.T) {
	got, err := System().Date(2025, time.June, 30, 12, 0, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC), got)

	_, err = System().Date(2025, time.February, 30, 0, 0, 0, nil)
	assert.Error(t, err)

	_, err = System().Date(2025, time.April, 31, 0, 0, 0, nil)
	assert.Error(t, err)
}

func TestSystemLocation(t *testing.T) {
	loc, err := System().Location("Europe/Berlin")
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", loc.String())

	_, err = System().Location("Mars/Olympus")
	assert.Error(t, err)
}
