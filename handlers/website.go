package handlers

import (
	"net/http"

	"binarybyte_site/models"
	"binarybyte_site/templates/pages"

	"github.com/labstack/echo/v4"
)

func (s *Site) legalPage(c echo.Context, doc models.LegalDoc) error {
	description := doc.Title + " of " + s.Content.Company.Name
	if len(doc.Sections) > 0 && len(doc.Sections[0].Paragraphs) > 0 {
		description = doc.Sections[0].Paragraphs[0]
	}
	seo := s.seoFor(c, doc.Title+" | "+s.Content.Company.Name, description)
	seo.TwitterCard = "summary"
	return render(c, http.StatusOK, pages.Legal(s.pageMeta(c, seo), doc))
}

// Privacy renders the privacy policy linked from the consent checkbox
func (s *Site) Privacy(c echo.Context) error {
	return s.legalPage(c, s.Content.Privacy)
}

// Terms renders the terms of service
func (s *Site) Terms(c echo.Context) error {
	return s.legalPage(c, s.Content.Terms)
}
