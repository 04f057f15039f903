package middleware

import (
	"net/http"
	"time"

	"binarybyte_site/services/i18n"

	"github.com/labstack/echo/v4"
)

// RateLimitConfig defines the configuration for rate limiting
type RateLimitConfig struct {
	// Name namespaces the counters so limiters can share a store
	Name string
	// Requests is the maximum number of requests allowed within the window
	Requests int
	// Window is the time window for rate limiting
	Window time.Duration
	// KeyFunc is a function that returns a unique key for rate limiting (defaults to IP)
	KeyFunc func(c echo.Context) string
	// MessageKey is the translation key of the message returned when the limit is exceeded
	MessageKey string
	// Store holds the counters (defaults to an in-memory store)
	Store RateLimitStore
}

// RateLimiter is a per-endpoint rate limiter
type RateLimiter struct {
	config RateLimitConfig
}

// NewRateLimiter creates a new rate limiter with the given configuration
func NewRateLimiter(config RateLimitConfig) *RateLimiter {
	if config.KeyFunc == nil {
		config.KeyFunc = func(c echo.Context) string {
			return c.RealIP()
		}
	}
	if config.MessageKey == "" {
		config.MessageKey = "contact.errors.rate_limited"
	}
	if config.Name == "" {
		config.Name = "default"
	}
	if config.Store == nil {
		config.Store = NewMemoryStore()
	}
	return &RateLimiter{config: config}
}

// Middleware returns the rate limiting middleware. A failing store lets the
// request through.
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := rl.config.Name + ":" + rl.config.KeyFunc(c)

			count, err := rl.config.Store.Hit(c.Request().Context(), key, rl.config.Window)
			if err != nil {
				c.Logger().Warnf("rate limit store unavailable: %v", err)
				return next(c)
			}
			if count <= rl.config.Requests {
				return next(c)
			}

			message := i18n.T(c.Request().Context(), rl.config.MessageKey)
			if c.Request().Header.Get("HX-Request") == "true" {
				// Show the notice in the page toast instead of replacing the form
				c.Response().Header().Set("HX-Retarget", "#toast")
				c.Response().Header().Set("HX-Reswap", "innerHTML")
				return c.HTML(http.StatusTooManyRequests, `<div class="notice notice--error" role="alert">`+message+`</div>`)
			}
			return echo.NewHTTPError(http.StatusTooManyRequests, message)
		}
	}
}

// ContactFormRateLimiter limits contact form writes to 10 per minute per IP
func ContactFormRateLimiter(store RateLimitStore) *RateLimiter {
	return NewRateLimiter(RateLimitConfig{
		Name:     "contact",
		Requests: 10,
		Window:   1 * time.Minute,
		Store:    store,
	})
}
