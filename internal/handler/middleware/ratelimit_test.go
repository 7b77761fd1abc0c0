//go:build unit

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"escape-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestLimiter(perSecond float64, burst int, now *time.Time) *RateLimiter {
	r := NewRateLimiter(config.RateLimitConfig{QuotesPerSecond: perSecond, QuotesBurst: burst})
	r.now = func() time.Time { return *now }
	return r
}

func TestRateLimiter_Allow(t *testing.T) {
	now := time.Date(2026, time.January, 5, 9, 0, 0, 0, time.UTC)
	r := newTestLimiter(1, 2, &now)

	assert.True(t, r.allow("10.0.0.1"))
	assert.True(t, r.allow("10.0.0.1"))
	assert.False(t, r.allow("10.0.0.1"), "burst exhausted")
	assert.True(t, r.allow("10.0.0.2"), "buckets are per client")

	now = now.Add(time.Second)
	assert.True(t, r.allow("10.0.0.1"), "one token refilled")
	assert.False(t, r.allow("10.0.0.1"))
}

func TestRateLimiter_EvictsIdleVisitors(t *testing.T) {
	now := time.Date(2026, time.January, 5, 9, 0, 0, 0, time.UTC)
	r := newTestLimiter(1, 1, &now)

	r.allow("10.0.0.1")
	r.allow("10.0.0.2")
	assert.Len(t, r.visitors, 2)

	now = now.Add(limiterIdleTTL + time.Minute)
	r.allow("10.0.0.3")

	assert.Len(t, r.visitors, 1)
	assert.Contains(t, r.visitors, "10.0.0.3")
}

func TestRateLimiter_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Date(2026, time.January, 5, 9, 0, 0, 0, time.UTC)
	r := newTestLimiter(1, 1, &now)

	router := gin.New()
	router.POST("/api/quotes", r.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/quotes", nil)
		req.RemoteAddr = "192.0.2.10:5555"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, send().Code)

	w := send()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":{"message":"Too many requests","code":"RATE_LIMITED"}}`, w.Body.String())
}
