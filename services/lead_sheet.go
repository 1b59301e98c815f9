package services

import (
	"context"
	"log"
	"time"

	"consultancy_site_go/config"
	"consultancy_site_go/models"
)

// LeadSheetName is the worksheet leads are appended to
const LeadSheetName = "Leads"

// LeadSheetHeader is the fixed first row of the lead sheet, one entry per column A..R
var LeadSheetHeader = []interface{}{
	"Timestamp",
	"Full Name",
	"Email",
	"Phone",
	"Preferred Contact",
	"Business Name",
	"Industry",
	"Business Stage",
	"Employee Count",
	"Website Status",
	"Primary Need",
	"Current Systems",
	"Budget",
	"Timeline",
	"Goals",
	"How Found",
	"Lead Score",
	"Lead Label",
}

// LeadSheet is a spreadsheet that collects scored leads
type LeadSheet interface {
	AppendRow(ctx context.Context, row []interface{}) error
	EnsureHeaderRow(ctx context.Context) error
}

// Sheet is the global lead sheet. Nil when no sheet is configured.
var Sheet LeadSheet

// InitializeLeadSheet picks Google Sheets when fully configured, then a local
// XLSX file, otherwise leaves Sheet nil.
func InitializeLeadSheet(cfg *config.Config) {
	sheet, err := NewLeadSheet(context.Background(), cfg)
	if err != nil {
		log.Printf("[WARNING] Failed to initialize lead sheet: %v. Leads will not be recorded.", err)
		Sheet = nil
		return
	}
	Sheet = sheet
	if sheet != nil {
		log.Printf("[INFO] Lead sheet initialized: %T", sheet)
	}
}

// NewLeadSheet builds the LeadSheet selected by cfg, or nil when none is configured
func NewLeadSheet(ctx context.Context, cfg *config.Config) (LeadSheet, error) {
	switch {
	case cfg.GoogleSheetsConfigured():
		return NewGoogleLeadSheet(ctx, GoogleSheetConfig{
			SpreadsheetID: cfg.GoogleSheetID,
			ClientEmail:   cfg.GoogleSheetsClientEmail,
			PrivateKey:    cfg.GoogleSheetsPrivateKey,
		})
	case cfg.LeadsXLSXPath != "":
		return NewXLSXLeadSheet(cfg.LeadsXLSXPath)
	default:
		return nil, nil
	}
}

// LeadRow flattens a scored lead into the 18 sheet columns
func LeadRow(lead models.LeadSubmission, score models.LeadScore, submittedAt time.Time, labels *Labels) []interface{} {
	return []interface{}{
		submittedAt.Format(SubmittedAtLayout),
		lead.FullName,
		lead.Email,
		lead.Phone,
		labels.Format(lead.PreferredContact),
		lead.BusinessName,
		labels.Format(lead.Industry),
		labels.Format(lead.BusinessStage),
		labels.Format(lead.EmployeeCount),
		labels.Format(lead.WebsiteStatus),
		labels.Format(lead.PrimaryNeed),
		lead.CurrentSystems,
		labels.Format(lead.Budget),
		labels.Format(lead.Timeline),
		lead.Goals,
		labels.Format(lead.HowFound),
		score.Score,
		score.Label,
	}
}
