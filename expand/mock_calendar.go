package expand

import (
	"time"

	"github.com/stretchr/testify/mock"
)

// MockCalendar implements the Calendar interface for testing
type MockCalendar struct {
	mock.Mock
}

// Components implements the Calendar interface
func (m *MockCalendar) Components(t time.Time) Components {
	args := m.Called(t)
	return args.Get(0).(Components)
}

// AddDays implements the Calendar interface
func (m *MockCalendar) AddDays(t time.Time, days int) time.Time {
	args := m.Called(t, days)
	return args.Get(0).(time.Time)
}

// Date implements the Calendar interface
func (m *MockCalendar) Date(year int, month time.Month, day, hour, min, sec int, loc *time.Location) (time.Time, error) {
	args := m.Called(year, month, day, hour, min, sec, loc)
	return args.Get(0).(time.Time), args.Error(1)
}

// Location implements the Calendar interface
func (m *MockCalendar) Location(name string) (*time.Location, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Location), args.Error(1)
}
