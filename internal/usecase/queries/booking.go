package queries

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking_mock.go -package=queriesmock

import (
	"context"

	"escape-booking/internal/domain/account"
	"escape-booking/internal/domain/booking"
	"escape-booking/internal/usecase/shared"
)

type BookingQueries interface {
	// GetByID hides other guests' bookings behind ErrBookingNotFound.
	GetByID(ctx context.Context, actor account.Principal, id booking.ID) (*BookingView, error)
}

type bookingQueriesImpl struct {
	bookings shared.BookingReadStore
}

func NewBookingQueries(bookings shared.BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor account.Principal, id booking.ID) (*BookingView, error) {
	b, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, MapStoreErr(err, shared.ErrBookingNotFound)
	}
	if !actor.CanAccess(b.GuestID()) {
		return nil, shared.ErrBookingNotFound
	}
	return NewBookingView(b), nil
}
