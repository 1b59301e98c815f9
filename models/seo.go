package models

// Open Graph object types used by the site
const (
	OGTypeWebsite = "website"
	OGTypeArticle = "article"
)

// SiteLocale is the og:locale of every page
const SiteLocale = "en_UG"

// SEO is the head metadata of a rendered page
type SEO struct {
	Title       string
	Description string
	Keywords    string
	Canonical   string // absolute URL, also used as og:url
	Image       string // absolute og:image URL
	OGType      string
	TwitterCard string // summary or summary_large_image
	NoIndex     bool
}

// PageSEO describes an indexable page shared as a large image card
func PageSEO(title, description string) *SEO {
	return &SEO{
		Title:       title,
		Description: description,
		OGType:      OGTypeWebsite,
		TwitterCard: "summary_large_image",
	}
}

// HiddenSEO describes a page kept out of search results
func HiddenSEO(title, description string) *SEO {
	seo := PageSEO(title, description)
	seo.NoIndex = true
	return seo
}

// Robots is the content of the robots meta tag
func (s *SEO) Robots() string {
	if s.NoIndex {
		return "noindex, nofollow"
	}
	return "index, follow"
}

// Locale is the og:locale value
func (s *SEO) Locale() string {
	return SiteLocale
}
