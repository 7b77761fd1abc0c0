package request

import (
	"escape-booking/internal/pkg/calendar"
)

type AvailabilityQuery struct {
	CheckIn  string `form:"checkIn"`
	CheckOut string `form:"checkOut"`
}

// Dates reports ok=false when either date is missing or malformed.
func (q *AvailabilityQuery) Dates() (checkIn, checkOut calendar.Date, ok bool) {
	var err error
	if checkIn, err = calendar.Parse(q.CheckIn); err != nil {
		return calendar.Date{}, calendar.Date{}, false
	}
	if checkOut, err = calendar.Parse(q.CheckOut); err != nil {
		return calendar.Date{}, calendar.Date{}, false
	}
	return checkIn, checkOut, true
}

type NextAvailableQuery struct {
	From string `form:"from"`
}

// FromDate returns nil when no start date was given.
func (q *NextAvailableQuery) FromDate() (*calendar.Date, error) {
	if q.From == "" {
		return nil, nil
	}
	d, err := calendar.Parse(q.From)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
