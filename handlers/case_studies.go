package handlers

import (
	"net/http"

	"binarybyte_site/models"
	"binarybyte_site/templates/pages"

	"github.com/labstack/echo/v4"
)

// CaseStudies renders the case study index
func (s *Site) CaseStudies(c echo.Context) error {
	seo := s.translatedSEO(c, "meta.case_studies_title", "meta.case_studies_description")
	return render(c, http.StatusOK, pages.CaseStudies(s.pageMeta(c, seo), s.Content.CaseStudies))
}

// CaseStudy renders a single case study by slug
func (s *Site) CaseStudy(c echo.Context) error {
	cs, ok := s.Content.CaseStudyBySlug(c.Param("slug"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "case study not found")
	}

	description := cs.MetaDescription
	if description == "" {
		description = cs.Summary
	}
	seo := s.seoFor(c, cs.Title+" | "+s.Content.Company.Name, description).AsArticle()

	var more []models.CaseStudy
	for _, other := range s.Content.CaseStudies {
		if other.Slug != cs.Slug {
			more = append(more, other)
		}
	}

	return render(c, http.StatusOK, pages.CaseStudy(pages.CaseStudyViewModel{
		Meta:  s.pageMeta(c, seo),
		Study: *cs,
		More:  more,
	}))
}
