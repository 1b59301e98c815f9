package services

import (
	"context"
	"fmt"
	"time"

	gomail "github.com/wneessen/go-mail"
)

// SMTPConfig holds SMTP credentials
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Timeout  time.Duration
}

// SMTPSender delivers email over a direct SMTP connection via go-mail
type SMTPSender struct {
	cfg SMTPConfig
}

// NewSMTPSender creates an SMTPSender
func NewSMTPSender(cfg SMTPConfig) (*SMTPSender, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("SMTP_HOST not configured")
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &SMTPSender{cfg: cfg}, nil
}

func (s *SMTPSender) message(email *Email) (*gomail.Msg, error) {
	msg := gomail.NewMsg()
	if err := msg.From(email.From); err != nil {
		return nil, fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(email.To...); err != nil {
		return nil, fmt.Errorf("smtp to: %w", err)
	}
	msg.Subject(email.Subject)

	switch {
	case email.TextBody != "" && email.HTMLBody != "":
		msg.SetBodyString(gomail.TypeTextPlain, email.TextBody)
		msg.AddAlternativeString(gomail.TypeTextHTML, email.HTMLBody)
	case email.HTMLBody != "":
		msg.SetBodyString(gomail.TypeTextHTML, email.HTMLBody)
	default:
		msg.SetBodyString(gomail.TypeTextPlain, email.TextBody)
	}
	return msg, nil
}

// Send sends an email via SMTP
func (s *SMTPSender) Send(ctx context.Context, email *Email) error {
	msg, err := s.message(email)
	if err != nil {
		return err
	}

	opts := []gomail.Option{
		gomail.WithPort(s.cfg.Port),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(s.cfg.Timeout),
	}
	if s.cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(s.cfg.Username),
			gomail.WithPassword(s.cfg.Password),
		)
	}

	client, err := gomail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
