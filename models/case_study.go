package models

// Highlight is a titled paragraph on a case study page
type Highlight struct {
	Title       string
	Description string
}

// TechGroup lists the technologies used in one layer of a project
type TechGroup struct {
	Category string
	Items    []string
}

// CaseStudy is a published client project
type CaseStudy struct {
	Slug       string
	Badge      string
	Client     string
	Title      string
	Subtitle   string
	Summary    string // one-liner for the listing page
	Overview   string
	Challenges []Highlight
	Solutions  []Highlight
	Results    []Highlight
	TechStack  []TechGroup
}

// CaseStudies are listed newest first
var CaseStudies = []CaseStudy{
	{
		Slug:     "parcelo",
		Badge:    "FULL-STACK SAAS PLATFORM",
		Client:   "Parcelo Uganda",
		Title:    "Building Uganda's First WhatsApp-Powered Shopping Platform",
		Subtitle: "From Concept to Live Transactions in 3 Months",
		Summary:  "Built a complete SaaS platform enabling Ugandans to shop internationally through WhatsApp, with MTN Mobile Money integration and real-time parcel tracking.",
		Overview: "Parcelo Uganda lets Ugandans shop from the US, UK, China and Dubai. As Technical Co-founder I built the platform that takes orders over WhatsApp, collects MTN Mobile Money payments, tracks parcels across borders and reports operations in real time.",
		Challenges: []Highlight{
			{"Mobile Money Integration", "Traditional gateways do not support local payment rails, so the platform integrates MTN's API directly with Pesapal as a backup."},
			{"WhatsApp as Primary Interface", "Customers expected to order, pay and track parcels without leaving WhatsApp."},
			{"Complex International Logistics", "One package can involve three carriers, two customs checkpoints and several currencies."},
		},
		Solutions: []Highlight{
			{"Mobile-First Architecture", "Fast on 3G connections and affordable Android devices."},
			{"Seamless Payment Integration", "Checkout completes in under 30 seconds with MTN Mobile Money or Pesapal."},
			{"Real-Time Analytics Dashboard", "Daily revenue, order status and bottlenecks at a glance."},
		},
		Results: []Highlight{
			{"Live Platform Handling Real Money", "Real customer orders are processed every day."},
			{"95% Mobile Usage", "The mobile-first design matches how customers actually shop."},
			{"70% Reduction in Manual Work", "Automated notifications and payment verification replaced manual follow-up."},
		},
		TechStack: []TechGroup{
			{"Frontend", []string{"Next.js", "React", "TypeScript", "Tailwind CSS"}},
			{"Backend", []string{"Supabase (PostgreSQL)", "Next.js API Routes"}},
			{"Integrations", []string{"WhatsApp Business API", "MTN Mobile Money", "Pesapal"}},
		},
	},
	{
		Slug:     "fuelcore",
		Badge:    "B2B WEBSITE",
		Client:   "Fuel Core",
		Title:    "Professional Website Delivered in 72 Hours",
		Subtitle: "From Brief to Launch: Focused Execution Under Pressure",
		Summary:  "Delivered a professional, production-ready website for one of Uganda's largest fuel maintenance companies in under 72 hours.",
		Overview: "Fuel Core needed a credible web presence for an important client meeting three days away. The site had to speak to operations managers and procurement officers and work on the tablets their sales team carries on site visits.",
		Challenges: []Highlight{
			{"Time Pressure Without Compromising Quality", "The 72-hour timeline left no room for rounds of revisions."},
			{"Understanding Complex B2B Messaging", "Content had to be credible to people who know the fuel industry inside out."},
			{"Mobile Responsiveness for Field Teams", "Sales staff present from tablets during client visits."},
		},
		Solutions: []Highlight{
			{"Strategic Content Architecture", "Organised around products, services, case studies and credentials."},
			{"Performance Optimization", "Static generation and image optimisation keep pages under 2 seconds on 3G."},
			{"Mobile-First Responsive Design", "Designed for tablets first, then scaled up."},
		},
		Results: []Highlight{
			{"Mission Critical Deadline Met", "The site was live for the client meeting as planned."},
			{"Rapid Turnaround", "A website that typically takes 4-6 weeks shipped in under 3 days."},
		},
		TechStack: []TechGroup{
			{"Frontend", []string{"Next.js", "Tailwind CSS"}},
			{"Deployment", []string{"Vercel"}},
		},
	},
}

// FindCaseStudy returns the case study with slug, or nil
func FindCaseStudy(slug string) *CaseStudy {
	for i := range CaseStudies {
		if CaseStudies[i].Slug == slug {
			return &CaseStudies[i]
		}
	}
	return nil
}
