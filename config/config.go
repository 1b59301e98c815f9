package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Email providers accepted by EMAIL_PROVIDER
const (
	EmailProviderResend   = "resend"
	EmailProviderSMTP     = "smtp"
	EmailProviderSendGrid = "sendgrid"
	EmailProviderSES      = "ses"
	EmailProviderConsole  = "console"
)

type Config struct {
	ServerPort     string
	Environment    string
	AppURL         string
	AllowedOrigins []string
	SiteTimezone   string
	// Email
	EmailProvider    string
	EmailTestMode    bool // When true, emails are logged to console instead of sent
	EmailSendTimeout time.Duration
	EmailFromClient  string // sender of confirmations to submitters
	EmailFromContact string // sender of contact form notifications
	EmailFromLeads   string // sender of lead notifications
	AdminEmail       string // site owner, receives notifications
	// Resend
	ResendAPIKey string
	// SMTP
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	// SendGrid
	SendGridAPIKey string
	// AWS SES
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	// Lead sheet
	GoogleSheetID           string
	GoogleSheetsClientEmail string
	GoogleSheetsPrivateKey  string
	LeadsXLSXPath           string
	// Bot protection
	TurnstileSiteKey   string
	TurnstileSecretKey string
	// Other
	PhoneDefaultRegion string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		ServerPort:              getEnv("SERVER_PORT", "8080"),
		Environment:             getEnv("ENVIRONMENT", "development"),
		AppURL:                  getEnv("APP_URL", "http://localhost:8080"),
		AllowedOrigins:          strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		SiteTimezone:            getEnv("SITE_TIMEZONE", "Africa/Kampala"),
		EmailProvider:           strings.ToLower(getEnv("EMAIL_PROVIDER", EmailProviderResend)),
		EmailTestMode:           getEnvBool("EMAIL_TEST_MODE", true), // Default true for safety
		EmailSendTimeout:        getEnvDuration("EMAIL_SEND_TIMEOUT", 15*time.Second),
		EmailFromClient:         getEnv("EMAIL_FROM_CLIENT", "Mutikanga Mark <hello@updates.mmrug.com>"),
		EmailFromContact:        getEnv("EMAIL_FROM_CONTACT", "Contact Form <contact@updates.mmrug.com>"),
		EmailFromLeads:          getEnv("EMAIL_FROM_LEADS", "Lead Notifications <leads@updates.mmrug.com>"),
		AdminEmail:              getEnv("ADMIN_EMAIL", "mutikanga.mark@mmrug.com"),
		ResendAPIKey:            getSecret("RESEND_API_KEY"),
		SMTPHost:                getEnv("SMTP_HOST", ""),
		SMTPPort:                getEnvInt("SMTP_PORT", 587),
		SMTPUsername:            getEnv("SMTP_USERNAME", ""),
		SMTPPassword:            getSecret("SMTP_PASSWORD"),
		SendGridAPIKey:          getSecret("SENDGRID_API_KEY"),
		AWSRegion:               getEnv("AWS_REGION", "eu-west-1"),
		AWSAccessKeyID:          getSecret("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey:      getSecret("AWS_SECRET_ACCESS_KEY"),
		GoogleSheetID:           getEnv("GOOGLE_SHEET_ID", ""),
		GoogleSheetsClientEmail: getEnv("GOOGLE_SHEETS_CLIENT_EMAIL", ""),
		// Private keys pasted into env files keep their newlines escaped
		GoogleSheetsPrivateKey: strings.ReplaceAll(getSecret("GOOGLE_SHEETS_PRIVATE_KEY"), `\n`, "\n"),
		LeadsXLSXPath:          getEnv("LEADS_XLSX_PATH", ""),
		TurnstileSiteKey:       getEnv("TURNSTILE_SITE_KEY", ""),
		TurnstileSecretKey:     getSecret("TURNSTILE_SECRET_KEY"),
		PhoneDefaultRegion:     getEnv("PHONE_DEFAULT_REGION", "UG"),
	}
}

// IsProduction reports whether the app runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// GoogleSheetsConfigured reports whether all Google Sheets settings are present
func (c *Config) GoogleSheetsConfigured() bool {
	return c.GoogleSheetID != "" && c.GoogleSheetsClientEmail != "" && c.GoogleSheetsPrivateKey != ""
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

// getSecret reads a value that must never be echoed to the log
func getSecret(key string) string {
	return os.Getenv(key)
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("[WARNING] Invalid integer for %s: %q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Printf("[WARNING] Invalid duration for %s: %q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}
