package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow_mock.go -package=sharedmock

import (
	"context"

	"escape-booking/internal/domain/booking"
	"escape-booking/internal/domain/property"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: SERIALIZABLE transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	BookingReads() BookingReadStore
	Properties() PropertyReadStore
}

type PropertyReadStore interface {
	FindByID(ctx context.Context, id property.ID) (*property.Property, error)
}

// BookingReadStore is read fresh on every call; its results are never cached.
type BookingReadStore interface {
	ListByProperty(ctx context.Context, propertyID property.ID) ([]*booking.Booking, error)
	FindByID(ctx context.Context, id booking.ID) (*booking.Booking, error)
	FindByIdempotencyKey(ctx context.Context, key uuid.UUID) (*booking.Booking, error)
}

type BookingRepository interface {
	// LockProperty takes a row lock on the property so concurrent bookings for it serialize.
	LockProperty(ctx context.Context, id property.ID) error
	Create(ctx context.Context, b *booking.Booking) (booking.ID, error)
	UpdateStatus(ctx context.Context, b *booking.Booking) error
}
