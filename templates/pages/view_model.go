package pages

import (
	"binarybyte_site/models"
	"binarybyte_site/templates/components"
)

// HomeViewModel holds the data for the home page
type HomeViewModel struct {
	Meta    components.PageMeta
	Content *models.SiteContent
	Form    components.FormView
}

// CaseStudyViewModel holds the data for a case study detail page
type CaseStudyViewModel struct {
	Meta  components.PageMeta
	Study models.CaseStudy
	More  []models.CaseStudy
}
