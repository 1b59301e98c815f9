package models

// Preferred contact methods
const (
	ContactMethodEmail = "email"
	ContactMethodCall  = "call"
)

// Business stages
const (
	BusinessStageIdea        = "idea"
	BusinessStageStartup     = "startup"
	BusinessStageGrowth      = "growth"
	BusinessStageEstablished = "established"
)

// Employee count bands, smallest first
const (
	EmployeeCountSolo    = "solo"
	EmployeeCount2to10   = "2-10"
	EmployeeCount11to50  = "11-50"
	EmployeeCount51to200 = "51-200"
	EmployeeCount200Plus = "200+"
)

// Website status
const (
	WebsiteStatusNone         = "none"
	WebsiteStatusBasic        = "basic"
	WebsiteStatusOutdated     = "outdated"
	WebsiteStatusProfessional = "professional"
)

// Primary needs
const (
	PrimaryNeedWebsite        = "website"
	PrimaryNeedMobileApp      = "mobile-app"
	PrimaryNeedMobileMoney    = "mobile-money"
	PrimaryNeedSaaSPlatform   = "saas-platform"
	PrimaryNeedECommerce      = "e-commerce"
	PrimaryNeedCustomSoftware = "custom-software"
	PrimaryNeedOther          = "other"
)

// Budget bands in UGX, smallest first
const (
	BudgetUnder1M  = "under-1m"
	Budget1Mto5M   = "1m-5m"
	Budget5Mto15M  = "5m-15m"
	Budget15Mto50M = "15m-50m"
	Budget50MPlus  = "50m+"
)

// Timeline urgency
const (
	TimelineASAP     = "asap"
	Timeline1Month   = "1-month"
	Timeline3Months  = "3-months"
	Timeline6Months  = "6-months"
	TimelineFlexible = "flexible"
)

// Referral sources
const (
	HowFoundGoogle      = "google"
	HowFoundSocialMedia = "social-media"
	HowFoundReferral    = "referral"
	HowFoundLinkedIn    = "linkedin"
	HowFoundOther       = "other"
)

// Industries offered by the get-started form. The form schema accepts any
// non-empty industry code, these are the ones with display labels.
var Industries = []string{
	"agriculture",
	"retail",
	"finance",
	"healthcare",
	"education",
	"hospitality",
	"transport",
	"real-estate",
	"manufacturing",
	"technology",
	"media",
	"ngo",
	"other",
}

// Enumerated code sets, in form order. The get-started form renders its choices from these.
var (
	ContactMethods  = []string{ContactMethodEmail, ContactMethodCall}
	BusinessStages  = []string{BusinessStageIdea, BusinessStageStartup, BusinessStageGrowth, BusinessStageEstablished}
	EmployeeCounts  = []string{EmployeeCountSolo, EmployeeCount2to10, EmployeeCount11to50, EmployeeCount51to200, EmployeeCount200Plus}
	WebsiteStatuses = []string{WebsiteStatusNone, WebsiteStatusBasic, WebsiteStatusOutdated, WebsiteStatusProfessional}
	PrimaryNeeds    = []string{PrimaryNeedWebsite, PrimaryNeedMobileApp, PrimaryNeedMobileMoney, PrimaryNeedSaaSPlatform, PrimaryNeedECommerce, PrimaryNeedCustomSoftware, PrimaryNeedOther}
	Budgets         = []string{BudgetUnder1M, Budget1Mto5M, Budget5Mto15M, Budget15Mto50M, Budget50MPlus}
	Timelines       = []string{TimelineASAP, Timeline1Month, Timeline3Months, Timeline6Months, TimelineFlexible}
	HowFoundSources = []string{HowFoundGoogle, HowFoundSocialMedia, HowFoundReferral, HowFoundLinkedIn, HowFoundOther}
)

// LeadSubmission is the payload posted by the multi-step get-started form.
// The validate tags are the intake schema; see services.ValidateLead.
type LeadSubmission struct {
	// Contact
	FullName         string `json:"fullName" validate:"min=2"`
	Email            string `json:"email" validate:"required,email"`
	Phone            string `json:"phone" validate:"min=10"`
	PreferredContact string `json:"preferredContact" validate:"oneof=email call"`

	// Business
	BusinessName  string `json:"businessName" validate:"min=2"`
	Industry      string `json:"industry" validate:"min=1"`
	BusinessStage string `json:"businessStage" validate:"oneof=idea startup growth established"`
	EmployeeCount string `json:"employeeCount" validate:"oneof=solo 2-10 11-50 51-200 200+"`
	WebsiteStatus string `json:"websiteStatus" validate:"oneof=none basic outdated professional"`

	// Project
	PrimaryNeed    string `json:"primaryNeed" validate:"oneof=website mobile-app mobile-money saas-platform e-commerce custom-software other"`
	CurrentSystems string `json:"currentSystems,omitempty"`
	Budget         string `json:"budget" validate:"oneof=under-1m 1m-5m 5m-15m 15m-50m 50m+"`
	Timeline       string `json:"timeline" validate:"oneof=asap 1-month 3-months 6-months flexible"`
	Goals          string `json:"goals" validate:"min=10"`
	HowFound       string `json:"howFound" validate:"oneof=google social-media referral linkedin other"`
}

// FirstName returns the full name up to the first space.
func (l LeadSubmission) FirstName() string {
	return firstName(l.FullName)
}

// LeadScore is derived from a LeadSubmission and never stored by the intake.
type LeadScore struct {
	Score int    `json:"score"`
	Label string `json:"label"`
	Color string `json:"color"`
}
