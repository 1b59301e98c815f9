package handlers

import (
	"net/http"

	"consultancy_site_go/config"
	"consultancy_site_go/models"
	"consultancy_site_go/services"
	"consultancy_site_go/templates/pages"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

func render(c echo.Context, component templ.Component) error {
	return component.Render(c.Request().Context(), c.Response().Writer)
}

func renderStatus(c echo.Context, status int, component templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return render(c, component)
}

func appURL(c echo.Context) string {
	if cfg, ok := c.Get("config").(*config.Config); ok && cfg != nil {
		return cfg.AppURL
	}
	return ""
}

func WebsiteHomeHandler(c echo.Context) error {
	return render(c, pages.Home(GetSEO("home", appURL(c))))
}

func WebsiteAboutHandler(c echo.Context) error {
	return render(c, pages.About(GetSEO("about", appURL(c))))
}

func WebsiteServicesHandler(c echo.Context) error {
	return render(c, pages.Services(GetSEO("services", appURL(c))))
}

func WebsitePricingHandler(c echo.Context) error {
	return render(c, pages.Pricing(GetSEO("pricing", appURL(c))))
}

func WebsiteCaseStudiesHandler(c echo.Context) error {
	return render(c, pages.CaseStudies(GetSEO("case-studies", appURL(c)), models.CaseStudies))
}

// WebsiteCaseStudyHandler renders /case-studies/:slug
func WebsiteCaseStudyHandler(c echo.Context) error {
	study := models.FindCaseStudy(c.Param("slug"))
	if study == nil {
		return WebsiteNotFoundHandler(c)
	}
	return render(c, pages.CaseStudy(CaseStudySEO(study, appURL(c)), study))
}

func WebsiteContactHandler(c echo.Context) error {
	return render(c, pages.Contact(GetSEO("contact", appURL(c))))
}

// WebsiteGetStartedHandler renders the lead form with the same code sets the
// validator accepts
func WebsiteGetStartedHandler(c echo.Context) error {
	return render(c, pages.GetStarted(GetSEO("get-started", appURL(c)), LeadFormOptions(services.DefaultLabels)))
}

func WebsitePrivacyHandler(c echo.Context) error {
	return render(c, pages.Privacy(GetSEO("privacy", appURL(c))))
}

func WebsiteTermsHandler(c echo.Context) error {
	return render(c, pages.Terms(GetSEO("terms", appURL(c))))
}

func WebsiteNotFoundHandler(c echo.Context) error {
	seo := models.HiddenSEO("Page Not Found | "+siteName, "The page you are looking for does not exist.")
	return renderStatus(c, http.StatusNotFound, pages.NotFound(seo))
}

// LeadFormOptions turns the model code sets into labelled form choices
func LeadFormOptions(labels *services.Labels) pages.LeadFormOptions {
	opts := func(codes []string) []pages.Option {
		out := make([]pages.Option, 0, len(codes))
		for _, code := range codes {
			out = append(out, pages.Option{Value: code, Label: labels.Format(code)})
		}
		return out
	}
	return pages.LeadFormOptions{
		ContactMethods:  opts(models.ContactMethods),
		Industries:      opts(models.Industries),
		BusinessStages:  opts(models.BusinessStages),
		EmployeeCounts:  opts(models.EmployeeCounts),
		WebsiteStatuses: opts(models.WebsiteStatuses),
		PrimaryNeeds:    opts(models.PrimaryNeeds),
		Budgets:         opts(models.Budgets),
		Timelines:       opts(models.Timelines),
		HowFound:        opts(models.HowFoundSources),
	}
}
