package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"consultancy_site_go/config"

	"github.com/resend/resend-go/v2"
)

// Email represents an email message
type Email struct {
	From     string // "Name <address>"
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
}

// Validate checks the message is deliverable in principle
func (e *Email) Validate() error {
	if e == nil {
		return fmt.Errorf("email is nil")
	}
	if e.From == "" {
		return fmt.Errorf("email must have a From address")
	}
	if len(e.To) == 0 {
		return fmt.Errorf("email must have at least one recipient")
	}
	if e.HTMLBody == "" && e.TextBody == "" {
		return fmt.Errorf("email must have either HTMLBody or TextBody")
	}
	return nil
}

// Sender delivers a single email. Implementations return the provider's
// error unchanged apart from wrapping.
type Sender interface {
	Send(ctx context.Context, email *Email) error
}

// Mailer is the global email sender
var Mailer Sender

// InitializeMailer sets up Mailer based on configuration. Misconfigured
// providers fall back to console logging so the site keeps accepting forms.
func InitializeMailer(cfg *config.Config) {
	sender, err := NewSender(context.Background(), cfg)
	if err != nil {
		log.Printf("[WARNING] Failed to initialize %s email provider: %v. Falling back to console.", cfg.EmailProvider, err)
		Mailer = NewConsoleSender()
		return
	}
	Mailer = sender
	log.Printf("[INFO] Email provider initialized: %T", sender)
}

// NewSender builds the Sender selected by cfg.EmailProvider
func NewSender(ctx context.Context, cfg *config.Config) (Sender, error) {
	// In development mode, log the email instead of sending
	if cfg.EmailTestMode {
		return NewConsoleSender(), nil
	}

	switch cfg.EmailProvider {
	case config.EmailProviderResend, "":
		return NewResendSender(cfg.ResendAPIKey)
	case config.EmailProviderSMTP:
		return NewSMTPSender(SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			Timeout:  cfg.EmailSendTimeout,
		})
	case config.EmailProviderSendGrid:
		return NewSendGridSender(cfg.SendGridAPIKey)
	case config.EmailProviderSES:
		return NewSESSenderFromConfig(ctx, SESConfig{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		})
	case config.EmailProviderConsole:
		return NewConsoleSender(), nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.EmailProvider)
	}
}

// SendEmail validates email and hands it to Mailer
func SendEmail(ctx context.Context, email *Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	if Mailer == nil {
		return fmt.Errorf("email sender not initialized")
	}
	return Mailer.Send(ctx, email)
}

// ResendSender sends email through the Resend API
type ResendSender struct {
	client *resend.Client
}

// NewResendSender creates a Resend sender
func NewResendSender(apiKey string) (*ResendSender, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("RESEND_API_KEY not configured")
	}
	return &ResendSender{client: resend.NewClient(apiKey)}, nil
}

// Send sends an email via Resend
func (s *ResendSender) Send(ctx context.Context, email *Email) error {
	params := &resend.SendEmailRequest{
		From:    email.From,
		To:      email.To,
		Subject: email.Subject,
	}

	// Set body (prefer HTML if available)
	if email.HTMLBody != "" {
		params.Html = email.HTMLBody
	}
	if email.TextBody != "" {
		params.Text = email.TextBody
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send email via Resend: %w", err)
	}

	log.Printf("Email sent successfully via Resend (ID: %s) to: %v", sent.Id, email.To)
	return nil
}

// ConsoleSender logs emails instead of sending them
type ConsoleSender struct{}

// NewConsoleSender creates a ConsoleSender
func NewConsoleSender() *ConsoleSender {
	return &ConsoleSender{}
}

// Send logs email to the console
func (s *ConsoleSender) Send(ctx context.Context, email *Email) error {
	logEmailToConsole(email)
	log.Printf("✅ Email logged successfully (development mode - not actually sent)")
	return nil
}

// logEmailToConsole logs email details to console in development mode
func logEmailToConsole(email *Email) {
	separator := strings.Repeat("=", 80)
	log.Printf("\n%s\n📧 EMAIL (Development Mode - Not Actually Sent)\n%s", separator, separator)
	log.Printf("From: %s", email.From)
	log.Printf("To: %v", email.To)
	log.Printf("Subject: %s", email.Subject)
	log.Printf("\n--- TEXT BODY ---\n%s", email.TextBody)
	log.Printf("\n--- HTML BODY (first 500 chars) ---\n%s...", truncate(email.HTMLBody, 500))
	log.Printf("%s\n", separator)
}

// truncate truncates a string to a maximum length
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}
