package handlers

import (
	"encoding/xml"
	"net/http"
	"strings"

	"consultancy_site_go/config"
	"consultancy_site_go/models"

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

// SitemapURLs lists every public page rooted at baseURL
func SitemapURLs(baseURL string) []SitemapURL {
	base := strings.TrimRight(baseURL, "/")

	urls := []SitemapURL{
		{Loc: base + "/", ChangeFreq: "weekly", Priority: 1.0},
		{Loc: base + "/get-started", ChangeFreq: "monthly", Priority: 0.9},
		{Loc: base + "/services", ChangeFreq: "monthly", Priority: 0.8},
		{Loc: base + "/pricing", ChangeFreq: "monthly", Priority: 0.8},
		{Loc: base + "/case-studies", ChangeFreq: "monthly", Priority: 0.8},
		{Loc: base + "/about", ChangeFreq: "monthly", Priority: 0.7},
		{Loc: base + "/contact", ChangeFreq: "monthly", Priority: 0.7},
		{Loc: base + "/privacy", ChangeFreq: "yearly", Priority: 0.3},
		{Loc: base + "/terms", ChangeFreq: "yearly", Priority: 0.3},
	}

	for _, study := range models.CaseStudies {
		urls = append(urls, SitemapURL{
			Loc:        base + "/case-studies/" + study.Slug,
			ChangeFreq: "yearly",
			Priority:   0.6,
		})
	}
	return urls
}

// GetSitemapHandler generates the XML sitemap
func GetSitemapHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)

	urlSet := SitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  SitemapURLs(cfg.AppURL),
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

// GetRobotsHandler serves robots.txt pointing crawlers at the sitemap.
// Non-production environments are closed to crawlers.
func GetRobotsHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)

	var b strings.Builder
	b.WriteString("User-agent: *\n")
	if cfg.IsProduction() {
		b.WriteString("Allow: /\n")
		b.WriteString("Disallow: /api/\n")
	} else {
		b.WriteString("Disallow: /\n")
	}
	b.WriteString("\nSitemap: " + strings.TrimRight(cfg.AppURL, "/") + "/sitemap.xml\n")

	return c.String(http.StatusOK, b.String())
}

// HealthzHandler reports liveness
func HealthzHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
