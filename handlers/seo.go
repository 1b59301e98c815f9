package handlers

import (
	"strings"

	"consultancy_site_go/models"
)

const (
	siteName       = "MMR Consultancy"
	defaultOGImage = "/static/images/og-image.png"
)

type pageMeta struct {
	Path        string
	Title       string
	Description string
	Keywords    string
	TwitterCard string
}

// SEO configurations for public pages
var pageSEO = map[string]pageMeta{
	"home": {
		Path:        "/",
		Title:       "MMR Consultancy | Web & Software Development in Kampala",
		Description: "Professional websites, mobile money integrations and SaaS platforms for Ugandan businesses. Built fast, built to last, by Mark Ryan Mutikanga.",
		Keywords:    "web development Uganda, software developer Kampala, mobile money integration, SaaS development",
	},
	"about": {
		Path:        "/about",
		Title:       "About | MMR Consultancy",
		Description: "Meet Mark Ryan Mutikanga, a Kampala-based full-stack developer building websites and platforms that handle real money and real users.",
		Keywords:    "about MMR Consultancy, Mark Ryan Mutikanga, Kampala developer",
	},
	"services": {
		Path:        "/services",
		Title:       "Services | MMR Consultancy",
		Description: "Web development, UI/UX design, mobile apps, backend APIs and technical consulting for businesses in Uganda and beyond.",
		Keywords:    "web development services, mobile app development Uganda, API development, UI/UX design",
	},
	"pricing": {
		Path:        "/pricing",
		Title:       "Pricing | MMR Consultancy",
		Description: "Transparent project pricing for professional websites, business platforms and custom SaaS, plus monthly retainers.",
		Keywords:    "website cost Uganda, web development pricing, SaaS development cost",
	},
	"case-studies": {
		Path:        "/case-studies",
		Title:       "Case Studies | MMR Consultancy",
		Description: "Real projects for real businesses: a WhatsApp-powered shopping platform and a B2B website delivered in 72 hours.",
		Keywords:    "case studies, portfolio, Parcelo, Fuel Core",
	},
	"contact": {
		Path:        "/contact",
		Title:       "Contact | MMR Consultancy",
		Description: "Get in touch about your website, app or platform. We reply within 24 hours.",
		Keywords:    "contact web developer Kampala, hire developer Uganda",
	},
	"get-started": {
		Path:        "/get-started",
		Title:       "Get Started | MMR Consultancy",
		Description: "Tell us about your business and project. We review every submission within 24 hours and follow up with a tailored proposal.",
		Keywords:    "start a project, request a quote, web development quote Uganda",
	},
	"privacy": {
		Path:        "/privacy",
		Title:       "Privacy Policy | MMR Consultancy",
		Description: "How MMR Consultancy collects, uses and protects the information you submit through this website.",
		Keywords:    "privacy policy, data protection",
		TwitterCard: "summary",
	},
	"terms": {
		Path:        "/terms",
		Title:       "Terms of Service | MMR Consultancy",
		Description: "The terms that govern use of this website and engagement of MMR Consultancy services.",
		Keywords:    "terms of service, terms and conditions",
		TwitterCard: "summary",
	},
}

// GetSEO returns the SEO configuration for a page with URLs rooted at baseURL
func GetSEO(page, baseURL string) *models.SEO {
	meta, ok := pageSEO[page]
	if !ok {
		return nil
	}
	return buildSEO(meta, baseURL)
}

// CaseStudySEO describes a single case study page
func CaseStudySEO(study *models.CaseStudy, baseURL string) *models.SEO {
	seo := buildSEO(pageMeta{
		Path:        "/case-studies/" + study.Slug,
		Title:       study.Client + " Case Study | " + siteName,
		Description: study.Summary,
		Keywords:    study.Client + ", case study, " + strings.ToLower(study.Badge),
	}, baseURL)
	seo.OGType = models.OGTypeArticle
	return seo
}

func buildSEO(meta pageMeta, baseURL string) *models.SEO {
	base := strings.TrimRight(baseURL, "/")
	seo := models.PageSEO(meta.Title, meta.Description)
	seo.Keywords = meta.Keywords
	seo.Canonical = base + meta.Path
	seo.Image = base + defaultOGImage
	if meta.TwitterCard != "" {
		seo.TwitterCard = meta.TwitterCard
	}
	return seo
}
