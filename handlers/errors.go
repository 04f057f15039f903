package handlers

import (
	"errors"
	"net/http"
	"strings"

	"binarybyte_site/templates/pages"

	"github.com/labstack/echo/v4"
)

// HTTPErrorHandler renders the not found page for browsers and bare statuses
// for htmx and API callers
func (s *Site) HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		}
	}
	if code >= http.StatusInternalServerError {
		c.Logger().Errorf("%s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	var renderErr error
	switch {
	case c.Request().Method == http.MethodHead:
		renderErr = c.NoContent(code)
	case isHTMX(c):
		renderErr = c.NoContent(code)
	case code == http.StatusNotFound && strings.Contains(c.Request().Header.Get(echo.HeaderAccept), "text/html"):
		seo := s.translatedSEO(c, "meta.not_found_title", "not_found.body").WithNoIndex()
		renderErr = render(c, code, pages.NotFound(s.pageMeta(c, seo)))
	default:
		renderErr = c.String(code, message)
	}
	if renderErr != nil {
		c.Logger().Error(renderErr)
	}
}
