package shared

import (
	"time"

	"escape-booking/internal/pkg/calendar"
)

// BusinessCalendar is implemented by clock.BusinessCalendar.
type BusinessCalendar interface {
	Now() time.Time
	Today() calendar.Date
}
