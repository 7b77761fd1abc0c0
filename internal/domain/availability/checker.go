package availability

import (
	"cmp"
	"iter"
	"slices"

	"escape-booking/internal/domain/booking"
	"escape-booking/internal/pkg/calendar"
)

const (
	ReasonPropertyNotFound = "property not found"
	ReasonInvalidDateRange = "invalid date range"
	ReasonDatesUnavailable = "dates unavailable"
)

// Result is recomputed on every call and must not be cached.
type Result struct {
	Available           bool
	Reason              string
	ConflictingBookings []booking.ID
}

func Unavailable(reason string) Result {
	return Result{Available: false, Reason: reason, ConflictingBookings: []booking.ID{}}
}

// BlockedRange is the stay held by one blocking booking.
type BlockedRange struct {
	BookingID booking.ID
	Range     calendar.Range
}

// Check decides whether [checkIn, checkOut) is free among bookings of a single property.
func Check(bookings []*booking.Booking, checkIn, checkOut calendar.Date) Result {
	candidate, err := calendar.NewRange(checkIn, checkOut)
	if err != nil {
		return Unavailable(ReasonInvalidDateRange)
	}

	conflicts := []booking.ID{}
	for _, b := range bookings {
		if !b.IsBlocking() {
			continue
		}
		if b.Stay().Overlaps(candidate) {
			conflicts = append(conflicts, b.ID())
		}
	}
	if len(conflicts) > 0 {
		slices.Sort(conflicts)
		return Result{Available: false, Reason: ReasonDatesUnavailable, ConflictingBookings: conflicts}
	}
	return Result{Available: true, ConflictingBookings: conflicts}
}

// Blocked yields the blocking ranges ordered by check-in, then booking id. The sequence can be
// ranged over more than once.
func Blocked(bookings []*booking.Booking) iter.Seq[BlockedRange] {
	ranges := blockingRanges(bookings)
	return func(yield func(BlockedRange) bool) {
		for _, r := range ranges {
			if !yield(r) {
				return
			}
		}
	}
}

// NextAvailable returns the first date on or after from that no blocking booking covers. It jumps
// to the check-out of each covering booking, so the cost depends on the booking count only.
func NextAvailable(bookings []*booking.Booking, from calendar.Date) calendar.Date {
	next := from
	for _, r := range blockingRanges(bookings) {
		if !r.Range.CheckOut.After(next) {
			continue
		}
		if r.Range.CheckIn.After(next) {
			break
		}
		next = r.Range.CheckOut
	}
	return next
}

func blockingRanges(bookings []*booking.Booking) []BlockedRange {
	ranges := make([]BlockedRange, 0, len(bookings))
	for _, b := range bookings {
		if b.IsBlocking() {
			ranges = append(ranges, BlockedRange{BookingID: b.ID(), Range: b.Stay()})
		}
	}
	slices.SortFunc(ranges, func(a, b BlockedRange) int {
		if c := a.Range.CheckIn.Compare(b.Range.CheckIn); c != 0 {
			return c
		}
		return cmp.Compare(a.BookingID, b.BookingID)
	})
	return ranges
}
