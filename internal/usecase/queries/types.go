package queries

import (
	"time"

	"escape-booking/internal/domain/booking"
	"escape-booking/internal/domain/pricing"
	"escape-booking/internal/domain/property"
	"escape-booking/internal/pkg/calendar"
	"escape-booking/internal/pkg/money"

	"github.com/google/uuid"
)

// QuoteParams is a priced-stay request. Dates are already parsed; ordering is checked here.
type QuoteParams struct {
	PropertyID property.ID
	CheckIn    calendar.Date
	CheckOut   calendar.Date
	Guests     int
}

// QuoteView is a quote plus the schedule the deposit and balance fall due on.
type QuoteView struct {
	PropertyID      property.ID
	CheckIn         calendar.Date
	CheckOut        calendar.Date
	Guests          int
	Quote           *pricing.Quote
	PaymentSchedule pricing.PaymentSchedule
}

// Read models (DTO for read side)
type BookingView struct {
	ID             booking.ID    `json:"id"`
	PropertyID     property.ID   `json:"propertyId"`
	GuestID        uuid.UUID     `json:"guestId"`
	CheckIn        calendar.Date `json:"checkInDate"`
	CheckOut       calendar.Date `json:"checkOutDate"`
	Nights         int           `json:"nights"`
	Guests         int           `json:"numberOfGuests"`
	Status         string        `json:"status"`
	TotalPrice     money.Money   `json:"totalPrice"`
	DepositAmount  money.Money   `json:"depositAmount"`
	BalanceAmount  money.Money   `json:"balanceAmount"`
	DepositPaid    bool          `json:"depositPaid"`
	BalancePaid    bool          `json:"balancePaid"`
	DepositDueDate calendar.Date `json:"depositDueDate"`
	BalanceDueDate calendar.Date `json:"balanceDueDate"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

func NewBookingView(b *booking.Booking) *BookingView {
	stay := b.Stay()
	payment := b.Payment()
	return &BookingView{
		ID:             b.ID(),
		PropertyID:     b.PropertyID(),
		GuestID:        b.GuestID(),
		CheckIn:        stay.CheckIn,
		CheckOut:       stay.CheckOut,
		Nights:         stay.Nights(),
		Guests:         b.Guests(),
		Status:         b.Status().String(),
		TotalPrice:     payment.Total(),
		DepositAmount:  payment.DepositAmount,
		BalanceAmount:  payment.BalanceAmount,
		DepositPaid:    payment.DepositPaid,
		BalancePaid:    payment.BalancePaid,
		DepositDueDate: payment.DepositDueDate,
		BalanceDueDate: payment.BalanceDueDate,
		CreatedAt:      b.CreatedAt(),
		UpdatedAt:      b.UpdatedAt(),
	}
}
