package services

// Labels maps enumerated form codes to display text. It is built once and
// only read afterwards.
type Labels struct {
	table map[string]string
}

// NewLabels creates a Labels from a code -> text table. The table is copied.
func NewLabels(table map[string]string) *Labels {
	copied := make(map[string]string, len(table))
	for code, text := range table {
		copied[code] = text
	}
	return &Labels{table: copied}
}

// Format returns the display text for code, or code itself when unknown.
func (l *Labels) Format(code string) string {
	if l == nil {
		return code
	}
	if text, ok := l.table[code]; ok && text != "" {
		return text
	}
	return code
}

// DefaultLabels covers every code the intake forms can submit.
var DefaultLabels = NewLabels(map[string]string{
	// Contact methods
	"email": "Email",
	"call":  "Phone Call",
	// Business stages
	"idea":        "Just an Idea",
	"startup":     "Startup (0-2 years)",
	"growth":      "Growth (2-5 years)",
	"established": "Established (5+ years)",
	// Employee count
	"solo":   "Solo Founder",
	"2-10":   "2-10 employees",
	"11-50":  "11-50 employees",
	"51-200": "51-200 employees",
	"200+":   "200+ employees",
	// Website status
	"none":         "No website yet",
	"basic":        "Basic website",
	"outdated":     "Outdated, needs refresh",
	"professional": "Professional, working well",
	// Primary needs ("other" is shared with industry and referral source)
	"website":         "Professional Website",
	"mobile-app":      "Mobile Application",
	"mobile-money":    "Mobile Money Integration",
	"saas-platform":   "SaaS Platform",
	"e-commerce":      "E-Commerce Store",
	"custom-software": "Custom Software",
	"other":           "Other / Multiple",
	// Budget
	"under-1m": "Under 1M UGX",
	"1m-5m":    "1M - 5M UGX",
	"5m-15m":   "5M - 15M UGX",
	"15m-50m":  "15M - 50M UGX",
	"50m+":     "50M+ UGX",
	// Timeline
	"asap":     "As soon as possible",
	"1-month":  "Within 1 month",
	"3-months": "Within 3 months",
	"6-months": "Within 6 months",
	"flexible": "Flexible",
	// How found
	"google":       "Google Search",
	"social-media": "Social Media",
	"referral":     "Friend/Colleague Referral",
	"linkedin":     "LinkedIn",
	// Industries
	"agriculture":   "Agriculture & Farming",
	"retail":        "Retail & Trade",
	"finance":       "Finance & Banking",
	"healthcare":    "Healthcare & Pharmacy",
	"education":     "Education & Training",
	"hospitality":   "Hospitality & Tourism",
	"transport":     "Transport & Logistics",
	"real-estate":   "Real Estate & Construction",
	"manufacturing": "Manufacturing",
	"technology":    "Technology & IT",
	"media":         "Media & Entertainment",
	"ngo":           "NGO & Non-Profit",
})

// FormatLabel formats code with DefaultLabels.
func FormatLabel(code string) string {
	return DefaultLabels.Format(code)
}
