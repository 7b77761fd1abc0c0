package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"escape-booking/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const (
	headerIdempotencyKey = "Idempotency-Key"
	headerLocation       = "Location"
	headerRetryAfter     = "Retry-After"
)

// NewCORSMiddleware always lets browsers send Idempotency-Key and read Location and Retry-After,
// whatever the configured lists say; booking creation cannot work without them.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     withHeader(cfg.AllowMethods, http.MethodPost),
		AllowHeaders:     withHeader(cfg.AllowHeaders, headerIdempotencyKey, "Authorization", "Content-Type"),
		ExposeHeaders:    withHeader(cfg.ExposeHeaders, headerLocation, headerRetryAfter),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized",
		"allow_origins", corsCfg.AllowOrigins,
		"allow_headers", corsCfg.AllowHeaders,
		"expose_headers", corsCfg.ExposeHeaders)
	return cors.New(corsCfg)
}

// withHeader appends each required name missing from list, compared case-insensitively.
func withHeader(list []string, required ...string) []string {
	out := slices.Clone(list)
	for _, name := range required {
		if !slices.ContainsFunc(out, func(h string) bool { return strings.EqualFold(strings.TrimSpace(h), name) }) {
			out = append(out, name)
		}
	}
	return out
}
