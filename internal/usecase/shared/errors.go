package shared

import (
	"fmt"

	"escape-booking/internal/domain/booking"
	"escape-booking/internal/pkg/errs"
)

var (
	ErrPropertyNotFound        = errs.New("property not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrInvalidDateRange        = errs.New("invalid date range")
	ErrGuestCountOutOfRange    = errs.New("guest count out of range")
	ErrDatesUnavailable        = errs.New("dates unavailable")
	ErrInvalidStatusTransition = errs.New("invalid booking status transition")
	ErrForbidden               = errs.New("forbidden")
	ErrIdempotencyKeyRequired  = errs.New("idempotency key required")
	ErrIdempotencyKeyReused    = errs.New("idempotency key already used for a different booking")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// DatesUnavailableError carries the bookings that hold the requested dates.
type DatesUnavailableError struct {
	Conflicts []booking.ID
}

func (e *DatesUnavailableError) Error() string {
	return fmt.Sprintf("dates unavailable: %d conflicting booking(s)", len(e.Conflicts))
}

func (e *DatesUnavailableError) Is(target error) bool {
	return target == ErrDatesUnavailable
}

// Code maps a use case error to its API error code.
func Code(err error) errs.Code {
	switch {
	case err == nil:
		return ""
	case errs.Is(err, ErrInvalidDateRange):
		return errs.CodeInvalidDateRange
	case errs.Is(err, ErrGuestCountOutOfRange):
		return errs.CodeGuestCountOutOfRange
	case errs.Is(err, ErrIdempotencyKeyRequired):
		return errs.CodeIdempotencyKeyRequired
	case errs.Is(err, ErrIdempotencyKeyReused):
		return errs.CodeIdempotencyKeyReused
	case errs.Is(err, ErrPropertyNotFound):
		return errs.CodePropertyNotFound
	case errs.Is(err, ErrBookingNotFound):
		return errs.CodeBookingNotFound
	case errs.Is(err, ErrDatesUnavailable):
		return errs.CodeDatesUnavailable
	case errs.Is(err, ErrInvalidStatusTransition):
		return errs.CodeInvalidStatusTransition
	case errs.Is(err, ErrForbidden):
		return errs.CodeForbidden
	default:
		return errs.CodeInternal
	}
}
