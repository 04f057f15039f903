package handlers

import (
	"net/http"

	"binarybyte_site/services/intake"
	"binarybyte_site/templates/pages"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Home renders the landing page. Every render opens a fresh inline form
// instance.
func (s *Site) Home(c echo.Context) error {
	form := s.openForm(intake.SurfaceInline)
	return render(c, http.StatusOK, s.homePage(c, form.Snapshot(), false))
}

// homePage is also the no-JavaScript response to an inline form post, so the
// canonical path is pinned to the root.
func (s *Site) homePage(c echo.Context, snap intake.Snapshot, captchaFailed bool) templ.Component {
	seo := s.translatedSEO(c, "meta.home_title", "meta.home_description")
	seo.Canonical = s.Config.AppURL + "/"
	meta := s.pageMeta(c, seo)
	meta.Path = "/"

	view := s.formView(snap)
	view.CaptchaFailed = captchaFailed
	return pages.Home(pages.HomeViewModel{
		Meta:    meta,
		Content: s.Content,
		Form:    view,
	})
}
