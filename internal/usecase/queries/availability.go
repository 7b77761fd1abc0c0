package queries

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/availability_mock.go -package=queriesmock

import (
	"context"
	"slices"

	"escape-booking/internal/domain/availability"
	"escape-booking/internal/domain/property"
	"escape-booking/internal/infra"
	"escape-booking/internal/pkg/calendar"
	"escape-booking/internal/pkg/errs"
	"escape-booking/internal/usecase/shared"
)

type AvailabilityQueries interface {
	// Check never fails for an unknown property or a bad date pair; both come back as unavailable.
	Check(ctx context.Context, propertyID property.ID, checkIn, checkOut calendar.Date) (availability.Result, error)
	BlockedDates(ctx context.Context, propertyID property.ID) ([]availability.BlockedRange, error)
	// NextAvailableDate searches from today in the business time zone when from is nil.
	NextAvailableDate(ctx context.Context, propertyID property.ID, from *calendar.Date) (calendar.Date, error)
}

type availabilityQueriesImpl struct {
	properties shared.PropertyReadStore
	bookings   shared.BookingReadStore
	calendar   shared.BusinessCalendar
}

func NewAvailabilityQueries(
	properties shared.PropertyReadStore,
	bookings shared.BookingReadStore,
	cal shared.BusinessCalendar,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		properties: properties,
		bookings:   bookings,
		calendar:   cal,
	}
}

func (q *availabilityQueriesImpl) Check(ctx context.Context, propertyID property.ID, checkIn, checkOut calendar.Date) (availability.Result, error) {
	if _, err := q.properties.FindByID(ctx, propertyID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return availability.Unavailable(availability.ReasonPropertyNotFound), nil
		}
		return availability.Result{}, errs.Mark(err, shared.ErrDatabaseOperationFailed)
	}

	if !checkIn.Before(checkOut) {
		return availability.Unavailable(availability.ReasonInvalidDateRange), nil
	}

	bookings, err := q.bookings.ListByProperty(ctx, propertyID)
	if err != nil {
		return availability.Result{}, errs.Mark(err, shared.ErrDatabaseOperationFailed)
	}
	return availability.Check(bookings, checkIn, checkOut), nil
}

func (q *availabilityQueriesImpl) BlockedDates(ctx context.Context, propertyID property.ID) ([]availability.BlockedRange, error) {
	if _, err := q.properties.FindByID(ctx, propertyID); err != nil {
		return nil, MapStoreErr(err, shared.ErrPropertyNotFound)
	}

	bookings, err := q.bookings.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrDatabaseOperationFailed)
	}

	ranges := slices.Collect(availability.Blocked(bookings))
	if ranges == nil {
		ranges = []availability.BlockedRange{}
	}
	return ranges, nil
}

func (q *availabilityQueriesImpl) NextAvailableDate(ctx context.Context, propertyID property.ID, from *calendar.Date) (calendar.Date, error) {
	if _, err := q.properties.FindByID(ctx, propertyID); err != nil {
		return calendar.Date{}, MapStoreErr(err, shared.ErrPropertyNotFound)
	}

	start := q.calendar.Today()
	if from != nil && !from.IsZero() {
		start = *from
	}

	bookings, err := q.bookings.ListByProperty(ctx, propertyID)
	if err != nil {
		return calendar.Date{}, errs.Mark(err, shared.ErrDatabaseOperationFailed)
	}
	return availability.NextAvailable(bookings, start), nil
}
