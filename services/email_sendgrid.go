package services

import (
	"context"
	"fmt"
	"log"
	netmail "net/mail"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridSender sends emails via the SendGrid API
type SendGridSender struct {
	client *sendgrid.Client
}

// NewSendGridSender creates a SendGrid sender
func NewSendGridSender(apiKey string) (*SendGridSender, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("SENDGRID_API_KEY not configured")
	}
	return &SendGridSender{client: sendgrid.NewSendClient(apiKey)}, nil
}

// Send sends an email via SendGrid
func (s *SendGridSender) Send(ctx context.Context, email *Email) error {
	message, err := buildSendGridMessage(email)
	if err != nil {
		return err
	}

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send failed: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}

	log.Printf("Email sent successfully via SendGrid (status %d) to: %v", response.StatusCode, email.To)
	return nil
}

func buildSendGridMessage(email *Email) (*mail.SGMailV3, error) {
	from, err := netmail.ParseAddress(email.From)
	if err != nil {
		return nil, fmt.Errorf("sendgrid from: %w", err)
	}

	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail(from.Name, from.Address))
	message.Subject = email.Subject

	p := mail.NewPersonalization()
	for _, to := range email.To {
		addr, err := netmail.ParseAddress(to)
		if err != nil {
			return nil, fmt.Errorf("sendgrid to: %w", err)
		}
		p.AddTos(mail.NewEmail(addr.Name, addr.Address))
	}
	message.AddPersonalizations(p)

	// SendGrid requires text/plain before text/html
	if email.TextBody != "" {
		message.AddContent(mail.NewContent("text/plain", email.TextBody))
	}
	if email.HTMLBody != "" {
		message.AddContent(mail.NewContent("text/html", email.HTMLBody))
	}
	return message, nil
}
