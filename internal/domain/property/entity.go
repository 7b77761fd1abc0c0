package property

import (
	"errors"
	"strings"
	"time"

	"escape-booking/internal/pkg/calendar"
	"escape-booking/internal/pkg/money"
)

var (
	ErrEmptyName          = errors.New("property name cannot be empty")
	ErrNegativeRate       = errors.New("nightly rate cannot be negative")
	ErrInvalidOccupancy   = errors.New("occupancy bounds must satisfy 1 <= sleepsMin <= sleepsMax")
	ErrNegativeFee        = errors.New("fee cannot be negative")
	ErrInvalidFeeRate     = errors.New("fee rate must be between 0 and 10000 basis points")
	ErrNegativeOverride   = errors.New("override price cannot be negative")
	ErrInvalidOverrideDay = errors.New("override date must be set")
)

type ID int64

// FeeSchedule is charged on top of the nightly subtotal. The security deposit is refundable and
// never part of the booking total.
type FeeSchedule struct {
	CleaningFee     money.Money
	SecurityDeposit money.Money
	ServiceFeeRate  money.BasisPoints
	TaxRate         money.BasisPoints
}

func (f FeeSchedule) validate() error {
	if f.CleaningFee.IsNegative() || f.SecurityDeposit.IsNegative() {
		return ErrNegativeFee
	}
	if f.ServiceFeeRate < 0 || f.ServiceFeeRate > 10000 || f.TaxRate < 0 || f.TaxRate > 10000 {
		return ErrInvalidFeeRate
	}
	return nil
}

type Rates struct {
	Midweek money.Money
	Weekend money.Money
}

type Occupancy struct {
	SleepsMin int
	SleepsMax int
}

// Property is read-only for pricing and availability.
type Property struct {
	id            ID
	name          string
	rates         Rates
	occupancy     Occupancy
	fees          FeeSchedule
	overrides     map[calendar.Date]money.Money
	weekendNights *calendar.WeekdaySet
	createdAt     time.Time
	updatedAt     time.Time
}

type Params struct {
	ID            ID
	Name          string
	Rates         Rates
	Occupancy     Occupancy
	Fees          FeeSchedule
	Overrides     map[calendar.Date]money.Money
	WeekendNights *calendar.WeekdaySet
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func New(p Params) (*Property, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if p.Rates.Midweek.IsNegative() || p.Rates.Weekend.IsNegative() {
		return nil, ErrNegativeRate
	}
	if p.Occupancy.SleepsMin < 1 || p.Occupancy.SleepsMax < p.Occupancy.SleepsMin {
		return nil, ErrInvalidOccupancy
	}
	if err := p.Fees.validate(); err != nil {
		return nil, err
	}

	overrides := make(map[calendar.Date]money.Money, len(p.Overrides))
	for d, price := range p.Overrides {
		if d.IsZero() {
			return nil, ErrInvalidOverrideDay
		}
		if price.IsNegative() {
			return nil, ErrNegativeOverride
		}
		overrides[d] = price
	}

	var weekend *calendar.WeekdaySet
	if p.WeekendNights != nil {
		w := *p.WeekendNights
		weekend = &w
	}

	return &Property{
		id:            p.ID,
		name:          name,
		rates:         p.Rates,
		occupancy:     p.Occupancy,
		fees:          p.Fees,
		overrides:     overrides,
		weekendNights: weekend,
		createdAt:     p.CreatedAt,
		updatedAt:     p.UpdatedAt,
	}, nil
}

func (p *Property) AcceptsGuests(n int) bool {
	return n >= p.occupancy.SleepsMin && n <= p.occupancy.SleepsMax
}

// OverrideFor returns the seasonal price for the night starting on d, if any.
func (p *Property) OverrideFor(d calendar.Date) (money.Money, bool) {
	price, ok := p.overrides[d]
	return price, ok
}

// WeekendNights returns the property's own weekend table when it has one.
func (p *Property) WeekendNights() (calendar.WeekdaySet, bool) {
	if p.weekendNights == nil {
		return 0, false
	}
	return *p.weekendNights, true
}

func (p *Property) Overrides() map[calendar.Date]money.Money {
	out := make(map[calendar.Date]money.Money, len(p.overrides))
	for d, price := range p.overrides {
		out[d] = price
	}
	return out
}

func (p *Property) ID() ID               { return p.id }
func (p *Property) Name() string         { return p.name }
func (p *Property) Rates() Rates         { return p.rates }
func (p *Property) Occupancy() Occupancy { return p.occupancy }
func (p *Property) Fees() FeeSchedule    { return p.fees }
func (p *Property) CreatedAt() time.Time { return p.createdAt }
func (p *Property) UpdatedAt() time.Time { return p.updatedAt }
