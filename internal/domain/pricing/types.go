package pricing

import (
	"time"

	"escape-booking/internal/pkg/calendar"
	"escape-booking/internal/pkg/money"
)

type RateType string

const (
	RateMidweek  RateType = "midweek"
	RateWeekend  RateType = "weekend"
	RateSeasonal RateType = "seasonal"
)

const (
	DefaultDepositRate     money.BasisPoints = 2500
	DefaultBalanceLeadDays                   = 42
)

// DefaultWeekendNights treats the nights starting on Friday and Saturday as weekend nights.
var DefaultWeekendNights = calendar.NewWeekdaySet(time.Friday, time.Saturday)

type NightlyRate struct {
	Date     calendar.Date
	Price    money.Money
	RateType RateType
}

// Quote is all-or-nothing: it is only returned when every line was computed.
type Quote struct {
	Nights           int
	PricePerNight    money.Money
	NightlyBreakdown []NightlyRate
	Subtotal         money.Money
	CleaningFee      money.Money
	SecurityDeposit  money.Money
	ServiceFee       money.Money
	Taxes            money.Money
	TotalPrice       money.Money
	DepositAmount    money.Money
	BalanceAmount    money.Money
	Currency         string
}

type PaymentSchedule struct {
	DepositDueDate calendar.Date
	BalanceDueDate calendar.Date
}

type Policy struct {
	Currency        string
	DepositRate     money.BasisPoints
	BalanceLeadDays int
	WeekendNights   calendar.WeekdaySet
}

func DefaultPolicy() Policy {
	return Policy{
		Currency:        money.DefaultCurrency,
		DepositRate:     DefaultDepositRate,
		BalanceLeadDays: DefaultBalanceLeadDays,
		WeekendNights:   DefaultWeekendNights,
	}
}
