package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"consultancy_site_go/config"
	"consultancy_site_go/models"
)

// Form names used in logs and metrics
const (
	FormLead    = "lead"
	FormContact = "contact"
)

// Email recipients of a submission
const (
	RecipientClient = "client"
	RecipientAdmin  = "admin"
)

// DefaultSendTimeout bounds a single email send
const DefaultSendTimeout = 15 * time.Second

// DefaultSheetTimeout bounds the lead sheet append
const DefaultSheetTimeout = 10 * time.Second

// DeliveryResult is the outcome of one email send
type DeliveryResult struct {
	Recipient string
	To        []string
	Err       error
	Duration  time.Duration
}

// DeliveryError collects the failed sends of a submission. It is logged and
// counted but never turned into an HTTP error.
type DeliveryError struct {
	Form     string
	Failures []DeliveryResult
}

func (e *DeliveryError) Error() string {
	parts := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		parts = append(parts, fmt.Sprintf("%s %v: %v", f.Recipient, f.To, f.Err))
	}
	return fmt.Sprintf("%s email delivery failed: %s", e.Form, strings.Join(parts, "; "))
}

// LeadResult is what SubmitLead reports back for an accepted lead
type LeadResult struct {
	Score      models.LeadScore
	Deliveries []DeliveryResult
	SheetErr   error
}

// IntakeService runs a submission through validation, scoring, email
// rendering, delivery and the optional lead sheet.
type IntakeService struct {
	Sender      Sender
	Renderer    *EmailRenderer
	Scorer      *Scorer
	Sheet       LeadSheet
	Metrics     *IntakeMetrics
	Labels      *Labels
	SendTimeout time.Duration
	// SheetTimeout bounds AppendRow; DefaultSheetTimeout when zero
	SheetTimeout time.Duration
	Location    *time.Location
	Now         func() time.Time
}

// Intake is the global intake service used by the form handlers
var Intake *IntakeService

// InitializeIntake wires the global intake from the already initialized
// Mailer and Sheet.
func InitializeIntake(cfg *config.Config, metrics *IntakeMetrics) error {
	loc := LoadLocation(cfg.SiteTimezone)
	renderer, err := NewEmailRenderer(EmailAddresses{
		ClientFrom:  cfg.EmailFromClient,
		ContactFrom: cfg.EmailFromContact,
		LeadsFrom:   cfg.EmailFromLeads,
		Admin:       cfg.AdminEmail,
	}, WithLocation(loc), WithPhoneRegion(cfg.PhoneDefaultRegion))
	if err != nil {
		return err
	}

	Intake = &IntakeService{
		Sender:      Mailer,
		Renderer:    renderer,
		Scorer:      NewScorer(nil),
		Sheet:       Sheet,
		Metrics:     metrics,
		Labels:      DefaultLabels,
		SendTimeout: cfg.EmailSendTimeout,
		Location:    loc,
	}
	log.Printf("[INFO] Intake initialized (timezone %s, send timeout %s)", loc, Intake.sendTimeout())
	return nil
}

// SubmitLead validates and scores a lead, emails the submitter and the owner,
// then records the lead in the sheet. Failed emails and sheet writes are
// reported in the result but do not fail the submission.
func (s *IntakeService) SubmitLead(ctx context.Context, lead models.LeadSubmission) (*LeadResult, error) {
	if err := ValidateLead(lead); err != nil {
		s.Metrics.ObserveSubmission(FormLead, OutcomeInvalid)
		return nil, err
	}

	score := s.scorer().Score(lead)

	clientEmail, err := s.Renderer.LeadConfirmation(lead)
	if err != nil {
		s.Metrics.ObserveSubmission(FormLead, OutcomeError)
		return nil, fmt.Errorf("render lead confirmation: %w", err)
	}
	adminEmail, err := s.Renderer.LeadNotification(lead, score)
	if err != nil {
		s.Metrics.ObserveSubmission(FormLead, OutcomeError)
		return nil, fmt.Errorf("render lead notification: %w", err)
	}

	result := &LeadResult{
		Score:      score,
		Deliveries: s.dispatch(ctx, FormLead, clientEmail, adminEmail),
	}

	if s.Sheet != nil {
		row := LeadRow(lead, score, s.now().In(s.location()), s.Labels)
		result.SheetErr = s.appendRow(ctx, row)
		s.Metrics.ObserveSheetAppend(result.SheetErr)
		if result.SheetErr != nil {
			log.Printf("[WARNING] Lead from %s not recorded in sheet: %v", lead.BusinessName, result.SheetErr)
		}
	}

	s.Metrics.ObserveSubmission(FormLead, OutcomeAccepted)
	s.Metrics.ObserveLeadScore(score.Score)
	log.Printf("[INFO] Lead accepted: %s (%s, score %d)", lead.BusinessName, score.Label, score.Score)
	return result, nil
}

// SubmitContact validates a contact message and emails the owner and the submitter
func (s *IntakeService) SubmitContact(ctx context.Context, contact models.ContactSubmission) ([]DeliveryResult, error) {
	if err := ValidateContact(contact); err != nil {
		s.Metrics.ObserveSubmission(FormContact, OutcomeInvalid)
		return nil, err
	}

	adminEmail, err := s.Renderer.ContactNotification(contact)
	if err != nil {
		s.Metrics.ObserveSubmission(FormContact, OutcomeError)
		return nil, fmt.Errorf("render contact notification: %w", err)
	}
	clientEmail, err := s.Renderer.ContactConfirmation(contact)
	if err != nil {
		s.Metrics.ObserveSubmission(FormContact, OutcomeError)
		return nil, fmt.Errorf("render contact confirmation: %w", err)
	}

	deliveries := s.dispatch(ctx, FormContact, clientEmail, adminEmail)

	s.Metrics.ObserveSubmission(FormContact, OutcomeAccepted)
	log.Printf("[INFO] Contact message accepted from %s", contact.Email)
	return deliveries, nil
}

// dispatch sends both emails concurrently, each under its own timeout, and
// waits for both. The sends outlive a cancelled request context.
func (s *IntakeService) dispatch(ctx context.Context, form string, client, admin *Email) []DeliveryResult {
	results := []DeliveryResult{
		{Recipient: RecipientClient, To: client.To},
		{Recipient: RecipientAdmin, To: admin.To},
	}
	emails := []*Email{client, admin}
	base := context.WithoutCancel(ctx)

	var wg sync.WaitGroup
	for i := range emails {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			start := time.Now()
			results[i].Err = s.send(base, emails[i])
			results[i].Duration = time.Since(start)
		}(i)
	}
	wg.Wait()

	var failures []DeliveryResult
	for _, r := range results {
		s.Metrics.ObserveDelivery(form, r.Recipient, r.Err)
		if r.Err != nil {
			failures = append(failures, r)
		}
	}
	if len(failures) > 0 {
		log.Printf("[ERROR] %v", &DeliveryError{Form: form, Failures: failures})
	}
	return results
}

func (s *IntakeService) send(ctx context.Context, email *Email) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("email sender panicked: %v", r)
		}
	}()

	if err := email.Validate(); err != nil {
		return err
	}
	if s.Sender == nil {
		return fmt.Errorf("email sender not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, s.sendTimeout())
	defer cancel()
	return s.Sender.Send(ctx, email)
}

// appendRow writes the lead row under its own deadline, detached from the request
func (s *IntakeService) appendRow(ctx context.Context, row []interface{}) error {
	timeout := s.SheetTimeout
	if timeout <= 0 {
		timeout = DefaultSheetTimeout
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()
	return s.Sheet.AppendRow(ctx, row)
}

func (s *IntakeService) scorer() *Scorer {
	if s.Scorer == nil {
		return NewScorer(nil)
	}
	return s.Scorer
}

func (s *IntakeService) sendTimeout() time.Duration {
	if s.SendTimeout <= 0 {
		return DefaultSendTimeout
	}
	return s.SendTimeout
}

func (s *IntakeService) location() *time.Location {
	if s.Location == nil {
		return time.UTC
	}
	return s.Location
}

func (s *IntakeService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}
