package middleware

import (
	"net/http"
	"time"

	"binarybyte_site/config"
	"binarybyte_site/services/i18n"

	"github.com/labstack/echo/v4"
)

const langCookie = "lang"

// Locale middleware handles language detection and persistence.
// Priority:
// 1. Query param "lang" (sets cookie)
// 2. Cookie "lang"
// 3. Accept-Language header
// 4. Default ("en")
func Locale(cfg *config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			lang := ""
			if q := c.QueryParam("lang"); q != "" {
				lang = i18n.DefaultLang
				if i18n.IsSupported(q) {
					lang = q
				}
				SetLanguageCookie(c, cfg, lang)
			} else if cookie, err := c.Cookie(langCookie); err == nil && i18n.IsSupported(cookie.Value) {
				lang = cookie.Value
			}

			if lang == "" {
				lang = i18n.Match(c.Request().Header.Get("Accept-Language"))
			}

			// Echo context for handlers, request context for templates
			c.Set("locale", lang)
			c.SetRequest(c.Request().WithContext(i18n.WithLocale(c.Request().Context(), lang)))
			c.Response().Header().Add("Vary", "Accept-Language")

			return next(c)
		}
	}
}

// SetLanguageCookie sets the language cookie
func SetLanguageCookie(c echo.Context, cfg *config.Config, lang string) {
	cookie := new(http.Cookie)
	cookie.Name = langCookie
	cookie.Value = lang
	cookie.Expires = time.Now().Add(24 * 365 * time.Hour) // 1 year
	cookie.Path = "/"
	cookie.HttpOnly = true
	cookie.SameSite = http.SameSiteLaxMode
	if cfg != nil && cfg.IsProduction() {
		cookie.Secure = true
	}
	c.SetCookie(cookie)
}

// GetLocale returns the current locale from context
func GetLocale(c echo.Context) string {
	if lang, ok := c.Get("locale").(string); ok {
		return lang
	}
	return i18n.DefaultLang
}
