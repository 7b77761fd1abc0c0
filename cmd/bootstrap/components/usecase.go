package components

import (
	"escape-booking/internal/domain/pricing"
	"escape-booking/internal/pkg/clock"
	"escape-booking/internal/pkg/config"
	"escape-booking/internal/usecase"
	"escape-booking/internal/usecase/commands"
	"escape-booking/internal/usecase/queries"
	"escape-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewPricingEngine,
	fx.Annotate(
		NewBusinessCalendar,
		fx.As(new(shared.BusinessCalendar)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewQuoteQueries,
		queries.NewAvailabilityQueries,
		queries.NewBookingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewPricingEngine(cfg config.Config) (*pricing.Engine, error) {
	policy, err := cfg.Pricing.Policy()
	if err != nil {
		return nil, err
	}
	return pricing.NewEngine(policy), nil
}

// NewBusinessCalendar resolves "today" in the pricing time zone.
func NewBusinessCalendar(c clock.Clock, cfg config.Config) (*clock.BusinessCalendar, error) {
	loc, err := cfg.Pricing.Location()
	if err != nil {
		return nil, err
	}
	return clock.NewBusinessCalendar(c, loc), nil
}
