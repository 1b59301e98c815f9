package services

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// SESConfig holds configuration for AWS SES
type SESConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

// SESAPI is the subset of the SES v2 client used here
type SESAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SESSender sends emails via AWS SES
type SESSender struct {
	client SESAPI
}

// NewSESSender wraps an existing SES client
func NewSESSender(client SESAPI) (*SESSender, error) {
	if client == nil {
		return nil, fmt.Errorf("SES client not configured")
	}
	return &SESSender{client: client}, nil
}

// NewSESSenderFromConfig loads AWS configuration and creates an SES sender.
// Static keys are used when both are set, otherwise the default chain.
func NewSESSenderFromConfig(ctx context.Context, cfg SESConfig) (*SESSender, error) {
	if cfg.Region == "" {
		return nil, fmt.Errorf("AWS_REGION not configured")
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return NewSESSender(sesv2.NewFromConfig(awsCfg))
}

// Send sends an email via AWS SES
func (s *SESSender) Send(ctx context.Context, email *Email) error {
	out, err := s.client.SendEmail(ctx, buildSESInput(email))
	if err != nil {
		return fmt.Errorf("SES send failed: %w", err)
	}

	log.Printf("Email sent successfully via SES (ID: %s) to: %v", aws.ToString(out.MessageId), email.To)
	return nil
}

func buildSESInput(email *Email) *sesv2.SendEmailInput {
	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(email.From),
		Destination: &types.Destination{
			ToAddresses: email.To,
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(email.Subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{},
			},
		},
	}

	if email.TextBody != "" {
		input.Content.Simple.Body.Text = &types.Content{
			Data:    aws.String(email.TextBody),
			Charset: aws.String("UTF-8"),
		}
	}
	if email.HTMLBody != "" {
		input.Content.Simple.Body.Html = &types.Content{
			Data:    aws.String(email.HTMLBody),
			Charset: aws.String("UTF-8"),
		}
	}
	return input
}
