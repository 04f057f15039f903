package handlers

import (
	"encoding/xml"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

type SitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float32 `xml:"priority,omitempty"`
}

type SitemapURLSet struct {
	XMLName string       `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// Sitemap lists the public pages and every case study
func (s *Site) Sitemap(c echo.Context) error {
	baseURL := s.Config.AppURL

	urls := []SitemapURL{
		{Loc: baseURL + "/", ChangeFreq: "weekly", Priority: 1.0},
		{Loc: baseURL + "/case-studies", ChangeFreq: "monthly", Priority: 0.8},
		{Loc: baseURL + "/privacy", ChangeFreq: "yearly", Priority: 0.3},
		{Loc: baseURL + "/terms", ChangeFreq: "yearly", Priority: 0.3},
	}

	for _, cs := range s.Content.CaseStudies {
		urls = append(urls, SitemapURL{
			Loc:        baseURL + "/case-studies/" + cs.Slug,
			ChangeFreq: "monthly",
			Priority:   0.7,
		})
	}

	urlSet := SitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationXML)
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}

	encoder := xml.NewEncoder(c.Response().Writer)
	encoder.Indent("", "  ")
	return encoder.Encode(urlSet)
}

// Robots allows crawling everything but the form endpoints
func (s *Site) Robots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nDisallow: /contact/\nAllow: /\n\nSitemap: %s/sitemap.xml\n", s.Config.AppURL)
	return c.String(http.StatusOK, body)
}
