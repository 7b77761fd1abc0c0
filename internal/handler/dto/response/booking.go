package response

import (
	"time"

	"escape-booking/internal/domain/booking"
	"escape-booking/internal/domain/property"
	"escape-booking/internal/pkg/calendar"
	"escape-booking/internal/pkg/money"
	"escape-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
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

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	var resp BookingResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}
