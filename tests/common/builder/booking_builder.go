//go:build unit || e2e

package builder

import (
	"time"

	"escape-booking/internal/domain/booking"
	"escape-booking/internal/domain/property"
	"escape-booking/internal/handler/dto/request"
	"escape-booking/internal/pkg/calendar"
	"escape-booking/internal/pkg/money"
	"escape-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID             booking.ID
	PropertyID     property.ID
	GuestID        uuid.UUID
	CheckIn        calendar.Date
	CheckOut       calendar.Date
	Guests         int
	Status         booking.Status
	Payment        booking.Payment
	IdempotencyKey uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewBookingBuilder defaults to a pending Friday-to-Sunday stay priced at £350.
func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2026, time.January, 5, 9, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:         1,
		PropertyID: 1,
		GuestID:    uuid.New(),
		CheckIn:    calendar.MustParse("2026-03-06"),
		CheckOut:   calendar.MustParse("2026-03-08"),
		Guests:     6,
		Status:     booking.StatusPending,
		Payment: booking.Payment{
			DepositAmount:  money.FromMinor(8750),
			BalanceAmount:  money.FromMinor(26250),
			DepositDueDate: calendar.MustParse("2026-01-05"),
			BalanceDueDate: calendar.MustParse("2026-01-23"),
		},
		IdempotencyKey: uuid.New(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Stay sets the half-open range from ISO dates.
func (b *BookingBuilder) Stay(checkIn, checkOut string) *BookingBuilder {
	b.CheckIn = calendar.MustParse(checkIn)
	b.CheckOut = calendar.MustParse(checkOut)
	return b
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	return booking.Reconstruct(
		b.ID,
		b.PropertyID,
		b.GuestID,
		calendar.Range{CheckIn: b.CheckIn, CheckOut: b.CheckOut},
		b.Guests,
		b.Status,
		b.Payment,
		b.IdempotencyKey,
		b.CreatedAt,
		b.UpdatedAt,
	)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return queries.NewBookingView(b.BuildDomain())
}

func (b *BookingBuilder) BuildCreateRequestDTO() request.CreateBookingRequest {
	guests := b.Guests
	return request.CreateBookingRequest{
		StayRequest: request.StayRequest{
			PropertyID:     int64(b.PropertyID),
			CheckInDate:    b.CheckIn.String(),
			CheckOutDate:   b.CheckOut.String(),
			NumberOfGuests: &guests,
		},
	}
}
