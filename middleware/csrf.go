package middleware

import (
	"context"
	"net/http"
	"strings"

	"binarybyte_site/config"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

const csrfKey contextKey = "csrf"

// CSRF protects state-changing requests. The token is accepted from the
// X-CSRF-Token header (HTMX requests) or the _csrf form field (plain posts
// and beacons), and copied into the request context for templates.
func CSRF(cfg *config.Config) echo.MiddlewareFunc {
	csrf := echomw.CSRFWithConfig(echomw.CSRFConfig{
		TokenLookup:    "header:X-CSRF-Token,form:_csrf",
		ContextKey:     string(csrfKey),
		CookieName:     "_csrf",
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSameSite: http.SameSiteLaxMode,
		CookieSecure:   cfg.IsProduction(),
		Skipper: func(c echo.Context) bool {
			path := c.Request().URL.Path
			return path == "/healthz" || path == "/metrics" || strings.HasPrefix(path, "/static/")
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return csrf(func(c echo.Context) error {
			if token := GetCSRFToken(c); token != "" {
				ctx := context.WithValue(c.Request().Context(), csrfKey, token)
				c.SetRequest(c.Request().WithContext(ctx))
			}
			return next(c)
		})
	}
}

// GetCSRFToken retrieves the CSRF token from the Echo context
// This token should be included in forms and AJAX requests
func GetCSRFToken(c echo.Context) string {
	token := c.Get(string(csrfKey))
	if token == nil {
		return ""
	}
	if tokenStr, ok := token.(string); ok {
		return tokenStr
	}
	return ""
}

// CSRFToken retrieves the token from a request context
func CSRFToken(ctx context.Context) string {
	if val, ok := ctx.Value(csrfKey).(string); ok {
		return val
	}
	return ""
}
