package handlers

import (
	"encoding/xml"
	"net/http"
	"testing"

	"consultancy_site_go/config"
	"consultancy_site_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSitemapHandler(t *testing.T) {
	_, c, rec := setupEcho(http.MethodGet, "/sitemap.xml", nil)
	require.NoError(t, GetSitemapHandler(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/xml")

	var urlSet struct {
		URLs []SitemapURL `xml:"url"`
	}
	require.NoError(t, xml.Unmarshal(rec.Body.Bytes(), &urlSet))
	require.Len(t, urlSet.URLs, 9+len(models.CaseStudies))

	locs := make([]string, 0, len(urlSet.URLs))
	for _, u := range urlSet.URLs {
		locs = append(locs, u.Loc)
	}
	assert.Contains(t, locs, "https://mmrug.com/")
	assert.Contains(t, locs, "https://mmrug.com/get-started")
	assert.Contains(t, locs, "https://mmrug.com/case-studies/parcelo")
}

func TestGetRobotsHandler(t *testing.T) {
	t.Run("production", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/robots.txt", nil)
		c.Set("config", &config.Config{Environment: "production", AppURL: "https://mmrug.com/"})
		require.NoError(t, GetRobotsHandler(c))

		assert.Equal(t, "User-agent: *\nAllow: /\nDisallow: /api/\n\nSitemap: https://mmrug.com/sitemap.xml\n", rec.Body.String())
	})

	t.Run("non production", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/robots.txt", nil)
		require.NoError(t, GetRobotsHandler(c))

		assert.Contains(t, rec.Body.String(), "Disallow: /\n")
		assert.NotContains(t, rec.Body.String(), "Allow: /\n")
	})
}

func TestHealthzHandler(t *testing.T) {
	_, c, rec := setupEcho(http.MethodGet, "/healthz", nil)
	require.NoError(t, HealthzHandler(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
