package services

import (
	_ "embed"
	"errors"
	"fmt"

	"binarybyte_site/models"

	"gopkg.in/yaml.v3"
)

//go:embed content/site.yaml
var siteYAML []byte

// LoadSiteContent parses the embedded marketing copy
func LoadSiteContent() (*models.SiteContent, error) {
	return ParseSiteContent(siteYAML)
}

// ParseSiteContent decodes site copy and checks that every case study can be routed
func ParseSiteContent(data []byte) (*models.SiteContent, error) {
	var content models.SiteContent
	if err := yaml.Unmarshal(data, &content); err != nil {
		return nil, fmt.Errorf("failed to parse site content: %w", err)
	}

	if content.Company.Name == "" {
		return nil, errors.New("site content: company name is required")
	}

	seen := make(map[string]bool, len(content.CaseStudies))
	for i, cs := range content.CaseStudies {
		if cs.Slug == "" {
			return nil, fmt.Errorf("site content: case study %d has no slug", i)
		}
		if seen[cs.Slug] {
			return nil, fmt.Errorf("site content: duplicate case study slug %q", cs.Slug)
		}
		seen[cs.Slug] = true
	}

	for name, doc := range map[string]models.LegalDoc{"privacy": content.Privacy, "terms": content.Terms} {
		if doc.LastUpdated == "" {
			continue
		}
		if _, err := ParseISODate(doc.LastUpdated); err != nil {
			return nil, fmt.Errorf("site content: %s: %w", name, err)
		}
	}

	return &content, nil
}
