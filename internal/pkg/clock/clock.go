package clock

import (
	"time"

	"escape-booking/internal/pkg/calendar"
)

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

type MockClock struct {
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}

// BusinessCalendar answers "what day is it" in the business time zone, which is what due dates
// and next-available searches are measured against.
type BusinessCalendar struct {
	clock Clock
	loc   *time.Location
}

func NewBusinessCalendar(c Clock, loc *time.Location) *BusinessCalendar {
	if loc == nil {
		loc = time.UTC
	}
	return &BusinessCalendar{clock: c, loc: loc}
}

func (b *BusinessCalendar) Now() time.Time {
	return b.clock.Now()
}

func (b *BusinessCalendar) Today() calendar.Date {
	return calendar.Today(b.clock.Now(), b.loc)
}
