package handlers

import (
	"binarybyte_site/middleware"
	"binarybyte_site/models"
	"binarybyte_site/services/i18n"

	"github.com/labstack/echo/v4"
)

const defaultOGImage = "/static/images/og-image.png"

// seoFor builds page metadata with canonical URL and hreflang alternates
func (s *Site) seoFor(c echo.Context, title, description string) *models.SEO {
	locale := middleware.GetLocale(c)
	var alternates []string
	for _, lang := range i18n.Languages() {
		if lang != locale {
			alternates = append(alternates, lang)
		}
	}

	return models.DefaultSEO(title, description).
		WithCanonical(s.Config.AppURL + c.Request().URL.Path).
		WithOGImage(s.Config.AppURL + defaultOGImage).
		WithLocale(locale, alternates...)
}

// translatedSEO looks up title and description from the catalog
func (s *Site) translatedSEO(c echo.Context, titleKey, descriptionKey string) *models.SEO {
	ctx := c.Request().Context()
	return s.seoFor(c, i18n.T(ctx, titleKey), i18n.T(ctx, descriptionKey))
}
