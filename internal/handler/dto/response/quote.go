package response

import (
	"escape-booking/internal/domain/property"
	"escape-booking/internal/pkg/calendar"
	"escape-booking/internal/pkg/money"
	"escape-booking/internal/usecase/queries"
)

type NightlyRateResponse struct {
	Date     calendar.Date `json:"date"`
	Price    money.Money   `json:"price"`
	RateType string        `json:"rateType"`
}

type PaymentScheduleResponse struct {
	DepositDueDate calendar.Date `json:"depositDueDate"`
	BalanceDueDate calendar.Date `json:"balanceDueDate"`
}

type QuoteResponse struct {
	PropertyID       property.ID             `json:"propertyId"`
	CheckInDate      calendar.Date           `json:"checkInDate"`
	CheckOutDate     calendar.Date           `json:"checkOutDate"`
	NumberOfGuests   int                     `json:"numberOfGuests"`
	Nights           int                     `json:"nights"`
	PricePerNight    money.Money             `json:"pricePerNight"`
	NightlyBreakdown []NightlyRateResponse   `json:"nightlyBreakdown"`
	Subtotal         money.Money             `json:"subtotal"`
	CleaningFee      money.Money             `json:"cleaningFee"`
	SecurityDeposit  money.Money             `json:"securityDeposit"`
	ServiceFee       money.Money             `json:"serviceFee"`
	Taxes            money.Money             `json:"taxes"`
	TotalPrice       money.Money             `json:"totalPrice"`
	DepositAmount    money.Money             `json:"depositAmount"`
	BalanceAmount    money.Money             `json:"balanceAmount"`
	Currency         string                  `json:"currency"`
	PaymentSchedule  PaymentScheduleResponse `json:"paymentSchedule"`
}

func FromQuoteView(v *queries.QuoteView) *QuoteResponse {
	q := v.Quote
	breakdown := make([]NightlyRateResponse, len(q.NightlyBreakdown))
	for i, n := range q.NightlyBreakdown {
		breakdown[i] = NightlyRateResponse{
			Date:     n.Date,
			Price:    n.Price,
			RateType: string(n.RateType),
		}
	}

	return &QuoteResponse{
		PropertyID:       v.PropertyID,
		CheckInDate:      v.CheckIn,
		CheckOutDate:     v.CheckOut,
		NumberOfGuests:   v.Guests,
		Nights:           q.Nights,
		PricePerNight:    q.PricePerNight,
		NightlyBreakdown: breakdown,
		Subtotal:         q.Subtotal,
		CleaningFee:      q.CleaningFee,
		SecurityDeposit:  q.SecurityDeposit,
		ServiceFee:       q.ServiceFee,
		Taxes:            q.Taxes,
		TotalPrice:       q.TotalPrice,
		DepositAmount:    q.DepositAmount,
		BalanceAmount:    q.BalanceAmount,
		Currency:         q.Currency,
		PaymentSchedule: PaymentScheduleResponse{
			DepositDueDate: v.PaymentSchedule.DepositDueDate,
			BalanceDueDate: v.PaymentSchedule.BalanceDueDate,
		},
	}
}
