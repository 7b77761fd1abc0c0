package queries

import (
	"escape-booking/internal/domain/availability"
	"escape-booking/internal/domain/pricing"
	"escape-booking/internal/infra"
	"escape-booking/internal/pkg/errs"
	"escape-booking/internal/usecase/shared"
)

// MapStoreErr marks a store error with notFound when the row is missing, otherwise as a database failure.
func MapStoreErr(err error, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, notFound)
	}
	return errs.Mark(err, shared.ErrDatabaseOperationFailed)
}

// MapPricingErr translates pricing engine validation errors into use case errors.
func MapPricingErr(err error) error {
	switch {
	case errs.Is(err, pricing.ErrGuestCountOutOfRange):
		return errs.Mark(err, shared.ErrGuestCountOutOfRange)
	case errs.Is(err, pricing.ErrInvalidDateRange):
		return errs.Mark(err, shared.ErrInvalidDateRange)
	default:
		return err
	}
}

// UnavailableErr turns a negative availability result into the matching use case error.
func UnavailableErr(res availability.Result) error {
	switch res.Reason {
	case availability.ReasonInvalidDateRange:
		return shared.ErrInvalidDateRange
	case availability.ReasonPropertyNotFound:
		return shared.ErrPropertyNotFound
	default:
		return &shared.DatesUnavailableError{Conflicts: res.ConflictingBookings}
	}
}
