package components

import (
	"escape-booking/internal/handler"
	"escape-booking/internal/handler/api"
	"escape-booking/internal/handler/middleware"
	"escape-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewQuoteHandler,
		api.NewAvailabilityHandler,
		api.NewBookingHandler,
		handler.NewHandlers,
		middleware.NewAuthMiddleware,
		func(cfg config.Config) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.RateLimit)
		},
	),
	fx.Invoke(handler.NewRouter),
)
