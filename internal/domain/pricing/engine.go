package pricing

import (
	"errors"

	"escape-booking/internal/domain/property"
	"escape-booking/internal/pkg/calendar"
)

var (
	ErrGuestCountOutOfRange = errors.New("number of guests is outside the property's occupancy")
	ErrInvalidDateRange     = errors.New("check-out must be at least one night after check-in")
)

type Engine struct {
	policy Policy
}

func NewEngine(policy Policy) *Engine {
	return &Engine{policy: policy}
}

func (e *Engine) Policy() Policy {
	return e.policy
}

// Calculate prices a stay. Guest count is validated before the dates.
func (e *Engine) Calculate(p *property.Property, checkIn, checkOut calendar.Date, guests int) (*Quote, error) {
	if !p.AcceptsGuests(guests) {
		return nil, ErrGuestCountOutOfRange
	}
	stay, err := calendar.NewRange(checkIn, checkOut)
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	nights := stay.Nights()
	if nights < 1 {
		return nil, ErrInvalidDateRange
	}

	breakdown := e.nightlyBreakdown(p, stay.CheckIn, nights)

	var q Quote
	q.Nights = nights
	q.NightlyBreakdown = breakdown
	for _, n := range breakdown {
		q.Subtotal = q.Subtotal.Add(n.Price)
	}
	q.PricePerNight = q.Subtotal.DivRound(nights)

	fees := p.Fees()
	q.CleaningFee = fees.CleaningFee
	q.SecurityDeposit = fees.SecurityDeposit
	q.ServiceFee = q.Subtotal.Percent(fees.ServiceFeeRate)
	q.Taxes = q.Subtotal.Add(q.ServiceFee).Percent(fees.TaxRate)

	// Security deposit is held separately and stays out of the total.
	q.TotalPrice = q.Subtotal.Add(q.CleaningFee).Add(q.ServiceFee).Add(q.Taxes)
	q.DepositAmount = q.TotalPrice.Percent(e.policy.DepositRate)
	q.BalanceAmount = q.TotalPrice.Sub(q.DepositAmount)
	q.Currency = e.policy.Currency

	return &q, nil
}

func (e *Engine) nightlyBreakdown(p *property.Property, checkIn calendar.Date, nights int) []NightlyRate {
	weekend := e.policy.WeekendNights
	if own, ok := p.WeekendNights(); ok {
		weekend = own
	}
	rates := p.Rates()

	breakdown := make([]NightlyRate, 0, nights)
	for i := range nights {
		night := checkIn.AddDays(i)
		rate := NightlyRate{Date: night, Price: rates.Midweek, RateType: RateMidweek}
		if weekend.Has(night.Weekday()) {
			rate.Price = rates.Weekend
			rate.RateType = RateWeekend
		}
		if price, ok := p.OverrideFor(night); ok {
			rate.Price = price
			rate.RateType = RateSeasonal
		}
		breakdown = append(breakdown, rate)
	}
	return breakdown
}

// PaymentDueDates puts the deposit due today and the balance due BalanceLeadDays before check-in,
// never earlier than today.
func (e *Engine) PaymentDueDates(checkIn, today calendar.Date) PaymentSchedule {
	balanceDue := checkIn.AddDays(-e.policy.BalanceLeadDays)
	if balanceDue.Before(today) {
		balanceDue = today
	}
	return PaymentSchedule{
		DepositDueDate: today,
		BalanceDueDate: balanceDue,
	}
}
