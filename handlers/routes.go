package handlers

import (
	"binarybyte_site/middleware"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes mounts the public pages and the contact form endpoints
func RegisterRoutes(e *echo.Echo, site *Site, contactLimiter *middleware.RateLimiter) {
	e.HTTPErrorHandler = site.HTTPErrorHandler

	e.GET("/", site.Home)
	e.GET("/case-studies", site.CaseStudies)
	e.GET("/case-studies/:slug", site.CaseStudy)
	e.GET("/privacy", site.Privacy)
	e.GET("/terms", site.Terms)
	e.GET("/sitemap.xml", site.Sitemap)
	e.GET("/robots.txt", site.Robots)
	e.GET("/healthz", site.Healthz)

	// Contact form instances, addressed by id so several can live on one page
	contact := e.Group("/contact")
	contact.GET("/modal", site.ContactModal)

	forms := contact.Group("/forms/:id")
	forms.GET("", site.ContactFormState)
	forms.POST("/fields", site.ContactFormFields)
	forms.POST("/close", site.ContactFormClose)
	forms.POST("/teardown", site.ContactFormTeardown)
	if contactLimiter != nil {
		forms.POST("/submit", site.ContactFormSubmit, contactLimiter.Middleware())
	} else {
		forms.POST("/submit", site.ContactFormSubmit)
	}
}
