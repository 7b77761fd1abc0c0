package response

import (
	"escape-booking/internal/domain/availability"
	"escape-booking/internal/domain/booking"
	"escape-booking/internal/pkg/calendar"
)

type AvailabilityResponse struct {
	Available           bool         `json:"available"`
	Reason              string       `json:"reason,omitempty"`
	ConflictingBookings []booking.ID `json:"conflictingBookings"`
}

func FromAvailabilityResult(r availability.Result) *AvailabilityResponse {
	conflicts := r.ConflictingBookings
	if conflicts == nil {
		conflicts = []booking.ID{}
	}
	return &AvailabilityResponse{
		Available:           r.Available,
		Reason:              r.Reason,
		ConflictingBookings: conflicts,
	}
}

type BlockedRangeResponse struct {
	BookingID booking.ID    `json:"bookingId"`
	CheckIn   calendar.Date `json:"checkIn"`
	CheckOut  calendar.Date `json:"checkOut"`
}

func FromBlockedRanges(ranges []availability.BlockedRange) []BlockedRangeResponse {
	out := make([]BlockedRangeResponse, len(ranges))
	for i, r := range ranges {
		out[i] = BlockedRangeResponse{
			BookingID: r.BookingID,
			CheckIn:   r.Range.CheckIn,
			CheckOut:  r.Range.CheckOut,
		}
	}
	return out
}

type NextAvailableResponse struct {
	Date calendar.Date `json:"date"`
}
