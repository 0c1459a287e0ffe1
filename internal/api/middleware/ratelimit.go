package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// RateLimitConfig defines the per-client request budget.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained refill rate for each client IP.
	RequestsPerSecond int
	// Burst allows short spikes above the sustained rate. Defaults to
	// RequestsPerSecond when zero.
	Burst int
	// ExpiresIn is how long an idle client's bucket is kept before the store
	// reclaims it. Defaults to 3 minutes when zero.
	ExpiresIn time.Duration
}

// RateLimit returns an in-memory token-bucket limiter keyed by client IP
// (X-Forwarded-For aware via echo's RealIP). Requests beyond the budget are
// rejected with 429 through the central error handler.
func RateLimit(cfg RateLimitConfig) echo.MiddlewareFunc {
	if cfg.Burst == 0 {
		cfg.Burst = cfg.RequestsPerSecond
	}
	if cfg.ExpiresIn == 0 {
		cfg.ExpiresIn = 3 * time.Minute
	}

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.RequestsPerSecond),
		Burst:     cfg.Burst,
		ExpiresIn: cfg.ExpiresIn,
	})
	return echomiddleware.RateLimiter(store)
}
