package pages

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"consultancy_site_go/middleware"
	"consultancy_site_go/models"

	"github.com/a-h/templ"
)

//go:embed html/*.html
var pageFS embed.FS

// Option is a select or radio choice on a form
type Option struct {
	Value string
	Label string
}

// LeadFormOptions holds the choices of the get-started form
type LeadFormOptions struct {
	ContactMethods  []Option
	Industries      []Option
	BusinessStages  []Option
	EmployeeCounts  []Option
	WebsiteStatuses []Option
	PrimaryNeeds    []Option
	Budgets         []Option
	Timelines       []Option
	HowFound        []Option
}

type pageData struct {
	SEO         *models.SEO
	Nonce       string
	CSSVersion  string
	SiteKey     string
	Year        int
	Nav         []navLink
	Current     string
	CaseStudies []models.CaseStudy
	CaseStudy   *models.CaseStudy
	LeadForm    *LeadFormOptions
}

type navLink struct {
	Path  string
	Label string
}

var navigation = []navLink{
	{"/services", "Services"},
	{"/case-studies", "Case Studies"},
	{"/pricing", "Pricing"},
	{"/about", "About"},
	{"/contact", "Contact"},
}

// turnstileSiteKey enables the Turnstile widget on the forms when set
var turnstileSiteKey string

// UseTurnstile renders the Cloudflare Turnstile widget with siteKey on every form
func UseTurnstile(siteKey string) {
	turnstileSiteKey = siteKey
}

// pageTemplates holds one template set per page, each sharing the layout
var pageTemplates = mustParsePages(
	"home", "about", "services", "pricing", "case_studies", "case_study",
	"contact", "get_started", "privacy", "terms", "not_found",
)

type selectField struct {
	Label   string
	Name    string
	Options []Option
}

type highlightSection struct {
	Title string
	Items []models.Highlight
}

var pageFuncs = template.FuncMap{
	"field": func(label, name string, options []Option) selectField {
		return selectField{Label: label, Name: name, Options: options}
	},
	"highlights": func(title string, items []models.Highlight) highlightSection {
		return highlightSection{Title: title, Items: items}
	},
}

func mustParsePages(names ...string) map[string]*template.Template {
	layout := template.Must(template.New("pages").Funcs(pageFuncs).ParseFS(pageFS, "html/layout.html", "html/forms.html"))
	sets := make(map[string]*template.Template, len(names))
	for _, name := range names {
		set := template.Must(layout.Clone())
		sets[name] = template.Must(set.ParseFS(pageFS, "html/"+name+".html"))
	}
	return sets
}

// page renders the named page inside the shared layout
func page(name, current string, data pageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		tmpl, ok := pageTemplates[name]
		if !ok {
			return fmt.Errorf("unknown page %q", name)
		}
		data.Nonce = middleware.GetNonce(ctx)
		data.CSSVersion = middleware.GetCSSVersion(ctx)
		data.SiteKey = turnstileSiteKey
		data.Year = time.Now().Year()
		data.Nav = navigation
		data.Current = current
		return tmpl.ExecuteTemplate(w, "layout", data)
	})
}

func Home(seo *models.SEO) templ.Component {
	return page("home", "/", pageData{SEO: seo, CaseStudies: models.CaseStudies})
}

func About(seo *models.SEO) templ.Component {
	return page("about", "/about", pageData{SEO: seo})
}

func Services(seo *models.SEO) templ.Component {
	return page("services", "/services", pageData{SEO: seo})
}

func Pricing(seo *models.SEO) templ.Component {
	return page("pricing", "/pricing", pageData{SEO: seo})
}

func CaseStudies(seo *models.SEO, studies []models.CaseStudy) templ.Component {
	return page("case_studies", "/case-studies", pageData{SEO: seo, CaseStudies: studies})
}

func CaseStudy(seo *models.SEO, study *models.CaseStudy) templ.Component {
	return page("case_study", "/case-studies", pageData{SEO: seo, CaseStudy: study})
}

func Contact(seo *models.SEO) templ.Component {
	return page("contact", "/contact", pageData{SEO: seo})
}

// GetStarted is the lead qualification form
func GetStarted(seo *models.SEO, options LeadFormOptions) templ.Component {
	return page("get_started", "/get-started", pageData{SEO: seo, LeadForm: &options})
}

func Privacy(seo *models.SEO) templ.Component {
	return page("privacy", "/privacy", pageData{SEO: seo})
}

func Terms(seo *models.SEO) templ.Component {
	return page("terms", "/terms", pageData{SEO: seo})
}

func NotFound(seo *models.SEO) templ.Component {
	return page("not_found", "", pageData{SEO: seo})
}
