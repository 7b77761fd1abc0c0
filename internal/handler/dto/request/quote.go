package request

import (
	"escape-booking/internal/domain/property"
	"escape-booking/internal/pkg/calendar"
	"escape-booking/internal/pkg/errs"
	"escape-booking/internal/usecase/commands"
	"escape-booking/internal/usecase/queries"
	"escape-booking/internal/usecase/shared"
)

// StayRequest carries dates as strings so that malformed dates surface as INVALID_DATE_RANGE
// rather than a generic binding error.
type StayRequest struct {
	PropertyID     int64  `json:"propertyId" binding:"required,min=1"`
	CheckInDate    string `json:"checkInDate" binding:"required"`
	CheckOutDate   string `json:"checkOutDate" binding:"required"`
	NumberOfGuests *int   `json:"numberOfGuests" binding:"required"`
}

type QuoteRequest struct {
	StayRequest
}

type CreateBookingRequest struct {
	StayRequest
}

func (r *StayRequest) dates() (calendar.Date, calendar.Date, error) {
	checkIn, err := calendar.Parse(r.CheckInDate)
	if err != nil {
		return calendar.Date{}, calendar.Date{}, errs.Mark(err, shared.ErrInvalidDateRange)
	}
	checkOut, err := calendar.Parse(r.CheckOutDate)
	if err != nil {
		return calendar.Date{}, calendar.Date{}, errs.Mark(err, shared.ErrInvalidDateRange)
	}
	return checkIn, checkOut, nil
}

func (r *QuoteRequest) ToParams() (queries.QuoteParams, error) {
	checkIn, checkOut, err := r.dates()
	if err != nil {
		return queries.QuoteParams{}, err
	}
	return queries.QuoteParams{
		PropertyID: property.ID(r.PropertyID),
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     *r.NumberOfGuests,
	}, nil
}

func (r *CreateBookingRequest) ToParams() (commands.CreateBookingParams, error) {
	checkIn, checkOut, err := r.dates()
	if err != nil {
		return commands.CreateBookingParams{}, err
	}
	return commands.CreateBookingParams{
		PropertyID: property.ID(r.PropertyID),
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     *r.NumberOfGuests,
	}, nil
}
