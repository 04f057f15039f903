package handlers

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// HTMX response headers
const (
	HeaderHXRequest = "HX-Request"
	HeaderHXTrigger = "HX-Trigger"
)

// Client-side events raised through HX-Trigger
const (
	EventContactSubmitted  = "contact-submitted"
	EventContactModalClose = "contact-modal-close"
)

// isHTMX reports whether the request was issued by htmx
func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get(HeaderHXRequest) == "true"
}

// trigger adds client events to the HX-Trigger header
func trigger(c echo.Context, events ...string) {
	h := c.Response().Header()
	if existing := h.Get(HeaderHXTrigger); existing != "" {
		events = append([]string{existing}, events...)
	}
	h.Set(HeaderHXTrigger, strings.Join(events, ", "))
}
