package queries

//go:generate mockgen -source=quote.go -destination=../../../tests/mock/queries/quote_mock.go -package=queriesmock

import (
	"context"

	"escape-booking/internal/domain/availability"
	"escape-booking/internal/domain/pricing"
	"escape-booking/internal/pkg/errs"
	"escape-booking/internal/usecase/shared"
)

type QuoteQueries interface {
	Quote(ctx context.Context, params QuoteParams) (*QuoteView, error)
}

type quoteQueriesImpl struct {
	properties shared.PropertyReadStore
	bookings   shared.BookingReadStore
	engine     *pricing.Engine
	calendar   shared.BusinessCalendar
}

func NewQuoteQueries(
	properties shared.PropertyReadStore,
	bookings shared.BookingReadStore,
	engine *pricing.Engine,
	cal shared.BusinessCalendar,
) QuoteQueries {
	return &quoteQueriesImpl{
		properties: properties,
		bookings:   bookings,
		engine:     engine,
		calendar:   cal,
	}
}

// Quote looks the property up, rejects unavailable dates, then prices the stay.
// A quote is returned whole or not at all.
func (q *quoteQueriesImpl) Quote(ctx context.Context, params QuoteParams) (*QuoteView, error) {
	prop, err := q.properties.FindByID(ctx, params.PropertyID)
	if err != nil {
		return nil, MapStoreErr(err, shared.ErrPropertyNotFound)
	}

	if !params.CheckIn.Before(params.CheckOut) {
		return nil, shared.ErrInvalidDateRange
	}

	bookings, err := q.bookings.ListByProperty(ctx, params.PropertyID)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrDatabaseOperationFailed)
	}
	if res := availability.Check(bookings, params.CheckIn, params.CheckOut); !res.Available {
		return nil, UnavailableErr(res)
	}

	quote, err := q.engine.Calculate(prop, params.CheckIn, params.CheckOut, params.Guests)
	if err != nil {
		return nil, MapPricingErr(err)
	}

	return &QuoteView{
		PropertyID:      params.PropertyID,
		CheckIn:         params.CheckIn,
		CheckOut:        params.CheckOut,
		Guests:          params.Guests,
		Quote:           quote,
		PaymentSchedule: q.engine.PaymentDueDates(params.CheckIn, q.calendar.Today()),
	}, nil
}
