package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const (
	googleSheetAppendRange = LeadSheetName + "!A:R"
	googleSheetHeaderRange = LeadSheetName + "!A1:R1"
	googleSheetInputOption = "USER_ENTERED"
)

// GoogleSheetConfig holds the service account used to write the sheet
type GoogleSheetConfig struct {
	SpreadsheetID string
	ClientEmail   string
	PrivateKey    string
}

// GoogleLeadSheet appends leads to a Google Sheets spreadsheet
type GoogleLeadSheet struct {
	spreadsheetID string
	service       *sheets.Service
}

// NewGoogleLeadSheet authenticates with the service account credentials.
// Extra client options (endpoint, HTTP client) are appended after the credentials.
func NewGoogleLeadSheet(ctx context.Context, cfg GoogleSheetConfig, opts ...option.ClientOption) (*GoogleLeadSheet, error) {
	if cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("GOOGLE_SHEET_ID environment variable is not set")
	}

	clientOpts := []option.ClientOption{option.WithScopes(sheets.SpreadsheetsScope)}
	if cfg.ClientEmail != "" && cfg.PrivateKey != "" {
		creds, err := serviceAccountJSON(cfg.ClientEmail, cfg.PrivateKey)
		if err != nil {
			return nil, err
		}
		clientOpts = append(clientOpts, option.WithCredentialsJSON(creds))
	}
	clientOpts = append(clientOpts, opts...)

	service, err := sheets.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}
	return &GoogleLeadSheet{spreadsheetID: cfg.SpreadsheetID, service: service}, nil
}

func serviceAccountJSON(clientEmail, privateKey string) ([]byte, error) {
	creds, err := json.Marshal(map[string]string{
		"type":         "service_account",
		"client_email": clientEmail,
		"private_key":  privateKey,
		"token_uri":    "https://oauth2.googleapis.com/token",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode service account credentials: %w", err)
	}
	return creds, nil
}

// AppendRow adds row below the last populated row of the Leads sheet
func (s *GoogleLeadSheet) AppendRow(ctx context.Context, row []interface{}) error {
	values := &sheets.ValueRange{Values: [][]interface{}{literalCells(row)}}
	_, err := s.service.Spreadsheets.Values.
		Append(s.spreadsheetID, googleSheetAppendRange, values).
		ValueInputOption(googleSheetInputOption).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append lead to Google Sheet: %w", err)
	}

	log.Printf("[INFO] Lead data appended to Google Sheet %s", s.spreadsheetID)
	return nil
}

// literalCells quotes text that USER_ENTERED would otherwise parse as a
// formula, so "+256 772 123456" stays a phone number and "=HYPERLINK(...)"
// stays text.
func literalCells(row []interface{}) []interface{} {
	cells := make([]interface{}, len(row))
	for i, v := range row {
		text, ok := v.(string)
		if ok && text != "" && strings.ContainsRune("=+-@\t\r", rune(text[0])) {
			v = "'" + text
		}
		cells[i] = v
	}
	return cells
}

// EnsureHeaderRow writes LeadSheetHeader when the first row is empty
func (s *GoogleLeadSheet) EnsureHeaderRow(ctx context.Context) error {
	resp, err := s.service.Spreadsheets.Values.
		Get(s.spreadsheetID, googleSheetHeaderRange).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to read Google Sheet header: %w", err)
	}
	if len(resp.Values) > 0 {
		return nil
	}

	header := &sheets.ValueRange{Values: [][]interface{}{LeadSheetHeader}}
	_, err = s.service.Spreadsheets.Values.
		Update(s.spreadsheetID, googleSheetHeaderRange, header).
		ValueInputOption(googleSheetInputOption).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to write Google Sheet header: %w", err)
	}

	log.Printf("[INFO] Google Sheet headers initialized")
	return nil
}
