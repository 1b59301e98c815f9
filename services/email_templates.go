package services

import (
	"bytes"
	"embed"
	"fmt"
	"html"
	"html/template"
	"regexp"
	"strings"
	"time"
	_ "time/tzdata" // LoadLocation must work on hosts without zoneinfo

	"consultancy_site_go/models"

	"github.com/microcosm-cc/bluemonday"
)

//go:embed templates/emails/*.html
var emailTemplateFS embed.FS

// SubmittedAtLayout renders submission timestamps, e.g.
// "Thursday, 15 October 2026 at 14:05".
const SubmittedAtLayout = "Monday, 2 January 2006 at 15:04"

// SiteIdentity is the business shown in email signatures
type SiteIdentity struct {
	OwnerName    string
	BusinessName string
	Location     string
	ContactEmail string
}

// DefaultSiteIdentity is used when no identity is supplied
var DefaultSiteIdentity = SiteIdentity{
	OwnerName:    "Mark Ryan Mutikanga",
	BusinessName: "MMR Consultancy",
	Location:     "Kampala, Uganda",
	ContactEmail: "mutikanga.mark@mmrug.com",
}

// EmailAddresses holds the sender identities and the owner's inbox
type EmailAddresses struct {
	ClientFrom  string
	ContactFrom string
	LeadsFrom   string
	Admin       string
}

// EmailRenderer builds the four intake emails from validated submissions
type EmailRenderer struct {
	addrs       EmailAddresses
	site        SiteIdentity
	labels      *Labels
	location    *time.Location
	phoneRegion string
	now         func() time.Time
	tmpl        *template.Template
	text        *bluemonday.Policy
}

// RendererOption customises an EmailRenderer
type RendererOption func(*EmailRenderer)

// WithClock overrides the clock used for "submitted on" timestamps
func WithClock(now func() time.Time) RendererOption {
	return func(r *EmailRenderer) { r.now = now }
}

// WithLocation sets the timezone timestamps are rendered in
func WithLocation(loc *time.Location) RendererOption {
	return func(r *EmailRenderer) {
		if loc != nil {
			r.location = loc
		}
	}
}

// WithLabels overrides the code-to-label table
func WithLabels(labels *Labels) RendererOption {
	return func(r *EmailRenderer) { r.labels = labels }
}

// WithSiteIdentity overrides the signature block
func WithSiteIdentity(site SiteIdentity) RendererOption {
	return func(r *EmailRenderer) { r.site = site }
}

// WithPhoneRegion sets the region used to normalise phone numbers for tel: links
func WithPhoneRegion(region string) RendererOption {
	return func(r *EmailRenderer) { r.phoneRegion = region }
}

// NewEmailRenderer parses the embedded templates
func NewEmailRenderer(addrs EmailAddresses, opts ...RendererOption) (*EmailRenderer, error) {
	r := &EmailRenderer{
		addrs:       addrs,
		site:        DefaultSiteIdentity,
		labels:      DefaultLabels,
		location:    time.UTC,
		phoneRegion: DefaultPhoneRegion,
		now:         time.Now,
		text:        bluemonday.StrictPolicy(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if addrs.Admin != "" {
		r.site.ContactEmail = addrs.Admin
	}

	tmpl, err := template.ParseFS(emailTemplateFS, "templates/emails/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

// LoadLocation resolves an IANA zone name, falling back to UTC
func LoadLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

type summaryItem struct {
	Label string
	Value string
}

type tableRow struct {
	Label  string
	Value  string
	Code   string // submitted code behind a formatted Value
	Href   template.URL
	Color  template.CSS
	Weight template.CSS
	Shaded bool
}

type detailTable struct {
	Title string
	Rows  []tableRow
}

type textBlock struct {
	Title string
	Body  string
}

type leadConfirmationData struct {
	Site      SiteIdentity
	FirstName string
	Summary   []summaryItem
	NextSteps []string
}

type leadNotificationData struct {
	Lead        models.LeadSubmission
	Score       models.LeadScore
	HeaderColor template.CSS
	PhoneLink   string
	Tables      []detailTable
	Goals       textBlock
	SubmittedAt string
}

type contactConfirmationData struct {
	Site      SiteIdentity
	FirstName string
	Contact   models.ContactSubmission
	Summary   []summaryItem
}

type contactNotificationData struct {
	Contact     models.ContactSubmission
	Tables      []detailTable
	Message     textBlock
	SubmittedAt string
}

// LeadConfirmation is the thank-you sent to the person who filled the get-started form
func (r *EmailRenderer) LeadConfirmation(lead models.LeadSubmission) (*Email, error) {
	first := lead.FirstName()
	data := leadConfirmationData{
		Site:      r.site,
		FirstName: first,
		Summary: []summaryItem{
			{"Business Name", lead.BusinessName},
			{"Industry", r.labels.Format(lead.Industry)},
			{"Primary Need", r.labels.Format(lead.PrimaryNeed)},
			{"Timeline", r.labels.Format(lead.Timeline)},
		},
		NextSteps: []string{
			"We'll review your submission within 24 hours",
			fmt.Sprintf("You'll receive %s to discuss your project in detail", r.preferredContactPhrase(lead.PreferredContact)),
			"We'll prepare a custom proposal tailored to your needs",
			"Once approved, we'll kick off your project!",
		},
	}
	return r.build("lead_confirmation", data,
		r.addrs.ClientFrom, lead.Email,
		fmt.Sprintf("Thank you for reaching out, %s!", first))
}

// LeadNotification is the scored lead summary sent to the site owner
func (r *EmailRenderer) LeadNotification(lead models.LeadSubmission, score models.LeadScore) (*Email, error) {
	currentSystems := lead.CurrentSystems
	if strings.TrimSpace(currentSystems) == "" {
		currentSystems = "Not specified"
	}

	data := leadNotificationData{
		Lead:        lead,
		Score:       score,
		HeaderColor: template.CSS(score.Color),
		PhoneLink:   FormatPhoneE164(lead.Phone, r.phoneRegion),
		Tables: []detailTable{
			{Title: "Contact Information", Rows: shade([]tableRow{
				plainRow("Full Name", lead.FullName),
				linkRow("Email", lead.Email, "mailto:"+lead.Email),
				linkRow("Phone", lead.Phone, "tel:"+FormatPhoneE164(lead.Phone, r.phoneRegion)),
				r.codedRow("Preferred Contact", lead.PreferredContact),
			})},
			{Title: "Business Details", Rows: shade([]tableRow{
				plainRow("Business Name", lead.BusinessName),
				r.codedRow("Industry", lead.Industry),
				r.codedRow("Business Stage", lead.BusinessStage),
				r.codedRow("Employees", lead.EmployeeCount),
				r.codedRow("Website Status", lead.WebsiteStatus),
			})},
			{Title: "Project Requirements", Rows: shade([]tableRow{
				r.codedRow("Primary Need", lead.PrimaryNeed),
				plainRow("Current Systems", currentSystems),
				r.codedHighlightRow("Budget", lead.Budget),
				r.codedRow("Timeline", lead.Timeline),
				r.codedRow("How They Found Us", lead.HowFound),
			})},
		},
		Goals:       textBlock{Title: "Goals & Challenges", Body: lead.Goals},
		SubmittedAt: "Lead submitted on " + r.timestamp(),
	}

	subject := fmt.Sprintf("%s New Lead: %s - %s", score.Label, lead.BusinessName, lead.PrimaryNeed)
	return r.build("lead_notification", data, r.addrs.LeadsFrom, r.addrs.Admin, subject)
}

// ContactConfirmation is the thank-you sent to a contact form submitter
func (r *EmailRenderer) ContactConfirmation(contact models.ContactSubmission) (*Email, error) {
	first := contact.FirstName()
	summary := []summaryItem{{"Name", contact.Name}, {"Email", contact.Email}}
	if contact.Company != "" {
		summary = append(summary, summaryItem{"Company", contact.Company})
	}
	if contact.Budget != "" {
		summary = append(summary, summaryItem{"Budget", contact.Budget})
	}

	data := contactConfirmationData{
		Site:      r.site,
		FirstName: first,
		Contact:   contact,
		Summary:   summary,
	}
	return r.build("contact_confirmation", data,
		r.addrs.ClientFrom, contact.Email,
		fmt.Sprintf("Thank you for reaching out, %s!", first))
}

// ContactNotification is the message forwarded to the site owner
func (r *EmailRenderer) ContactNotification(contact models.ContactSubmission) (*Email, error) {
	rows := []tableRow{
		plainRow("Name", contact.Name),
		linkRow("Email", contact.Email, "mailto:"+contact.Email),
	}
	if contact.Company != "" {
		rows = append(rows, plainRow("Company", contact.Company))
	}
	if contact.Budget != "" {
		rows = append(rows, highlightRow("Budget", contact.Budget))
	}

	data := contactNotificationData{
		Contact:     contact,
		Tables:      []detailTable{{Title: "Contact Details", Rows: shade(rows)}},
		Message:     textBlock{Title: "Message", Body: contact.Message},
		SubmittedAt: "Submitted on " + r.timestamp(),
	}

	subject := "New Contact: " + contact.Name
	if contact.Company != "" {
		subject += " from " + contact.Company
	}
	return r.build("contact_notification", data, r.addrs.ContactFrom, r.addrs.Admin, subject)
}

func (r *EmailRenderer) build(name string, data interface{}, from, to, subject string) (*Email, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	htmlBody := buf.String()

	return &Email{
		From:     from,
		To:       []string{to},
		Subject:  subject,
		HTMLBody: htmlBody,
		TextBody: r.plainText(htmlBody),
	}, nil
}

var blankLines = regexp.MustCompile(`\n\s*\n+`)

// plainText strips markup so clients without HTML support still get the content
func (r *EmailRenderer) plainText(htmlBody string) string {
	text := html.UnescapeString(r.text.Sanitize(htmlBody))
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(blankLines.ReplaceAllString(strings.Join(lines, "\n"), "\n\n"))
}

func (r *EmailRenderer) timestamp() string {
	return r.now().In(r.location).Format(SubmittedAtLayout)
}

func (r *EmailRenderer) preferredContactPhrase(method string) string {
	if method == models.ContactMethodCall {
		return "a call"
	}
	return "an email"
}

func plainRow(label, value string) tableRow {
	return tableRow{Label: label, Value: value, Color: "#0f172a", Weight: "500"}
}

// linkRow takes an href built from a fixed mailto: or tel: prefix
func linkRow(label, value, href string) tableRow {
	row := plainRow(label, value)
	row.Href = template.URL(href)
	return row
}

// codedRow shows the label for code and keeps the code on the cell
func (r *EmailRenderer) codedRow(label, code string) tableRow {
	row := plainRow(label, r.labels.Format(code))
	row.Code = code
	return row
}

func (r *EmailRenderer) codedHighlightRow(label, code string) tableRow {
	row := highlightRow(label, r.labels.Format(code))
	row.Code = code
	return row
}

func highlightRow(label, value string) tableRow {
	return tableRow{Label: label, Value: value, Color: "#059669", Weight: "600"}
}

// shade stripes every other row
func shade(rows []tableRow) []tableRow {
	for i := range rows {
		rows[i].Shaded = i%2 == 1
	}
	return rows
}
