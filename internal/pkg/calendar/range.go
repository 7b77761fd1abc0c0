package calendar

import "errors"

var ErrInvalidRange = errors.New("check-out must be after check-in")

// Range is a half-open stay [CheckIn, CheckOut). The check-out day is free for the next arrival.
type Range struct {
	CheckIn  Date
	CheckOut Date
}

func NewRange(checkIn, checkOut Date) (Range, error) {
	if checkIn.IsZero() || checkOut.IsZero() {
		return Range{}, ErrInvalidDate
	}
	if !checkIn.Before(checkOut) {
		return Range{}, ErrInvalidRange
	}
	return Range{CheckIn: checkIn, CheckOut: checkOut}, nil
}

func (r Range) Nights() int {
	return r.CheckIn.DaysUntil(r.CheckOut)
}

// Overlaps reports a1 < b2 && b1 < a2. Back-to-back stays do not overlap.
func (r Range) Overlaps(other Range) bool {
	return r.CheckIn.Before(other.CheckOut) && other.CheckIn.Before(r.CheckOut)
}

// Contains reports whether the night starting on d belongs to the stay.
func (r Range) Contains(d Date) bool {
	return !d.Before(r.CheckIn) && d.Before(r.CheckOut)
}

func (r Range) String() string {
	return "[" + r.CheckIn.String() + "," + r.CheckOut.String() + ")"
}
