//go:build unit || e2e

package builder

import (
	"time"

	"escape-booking/internal/domain/property"
	"escape-booking/internal/pkg/calendar"
	"escape-booking/internal/pkg/money"
)

// PropertyBuilder defaults to a house sleeping 2-10 at £100 midweek and £150 at the weekend,
// with a £50 cleaning fee and no service fee or tax.
type PropertyBuilder struct {
	ID              property.ID
	Name            string
	MidweekRate     money.Money
	WeekendRate     money.Money
	SleepsMin       int
	SleepsMax       int
	CleaningFee     money.Money
	SecurityDeposit money.Money
	ServiceFeeRate  money.BasisPoints
	TaxRate         money.BasisPoints
	Overrides       map[calendar.Date]money.Money
	WeekendNights   *calendar.WeekdaySet
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewPropertyBuilder() *PropertyBuilder {
	now := time.Date(2026, time.January, 5, 9, 0, 0, 0, time.UTC)
	return &PropertyBuilder{
		ID:              1,
		Name:            "Hillside Barn",
		MidweekRate:     money.FromMajor(100),
		WeekendRate:     money.FromMajor(150),
		SleepsMin:       2,
		SleepsMax:       10,
		CleaningFee:     money.FromMajor(50),
		SecurityDeposit: money.FromMajor(250),
		Overrides:       map[calendar.Date]money.Money{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *PropertyBuilder) With(mutate func(*PropertyBuilder)) *PropertyBuilder {
	mutate(b)
	return b
}

func (b *PropertyBuilder) Params() property.Params {
	return property.Params{
		ID:   b.ID,
		Name: b.Name,
		Rates: property.Rates{
			Midweek: b.MidweekRate,
			Weekend: b.WeekendRate,
		},
		Occupancy: property.Occupancy{
			SleepsMin: b.SleepsMin,
			SleepsMax: b.SleepsMax,
		},
		Fees: property.FeeSchedule{
			CleaningFee:     b.CleaningFee,
			SecurityDeposit: b.SecurityDeposit,
			ServiceFeeRate:  b.ServiceFeeRate,
			TaxRate:         b.TaxRate,
		},
		Overrides:     b.Overrides,
		WeekendNights: b.WeekendNights,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (b *PropertyBuilder) BuildDomain() (*property.Property, error) {
	return property.New(b.Params())
}

// MustBuild panics on invalid fields; use BuildDomain when the error is under test.
func (b *PropertyBuilder) MustBuild() *property.Property {
	p, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return p
}
