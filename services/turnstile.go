package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"consultancy_site_go/config"
)

// TurnstileVerifyURL is Cloudflare's siteverify endpoint
const TurnstileVerifyURL = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

type TurnstileResponse struct {
	Success     bool      `json:"success"`
	ChallengeTS time.Time `json:"challenge_ts"`
	Hostname    string    `json:"hostname"`
	ErrorCodes  []string  `json:"error-codes"`
}

// TurnstileVerifier checks Cloudflare Turnstile tokens sent with the public forms
type TurnstileVerifier struct {
	Secret   string
	Endpoint string
	Client   *http.Client
}

// Turnstile is the global verifier. Nil disables the check.
var Turnstile *TurnstileVerifier

// InitializeTurnstile enables bot verification when TURNSTILE_SECRET_KEY is set
func InitializeTurnstile(cfg *config.Config) {
	if cfg.TurnstileSecretKey == "" {
		Turnstile = nil
		return
	}
	Turnstile = NewTurnstileVerifier(cfg.TurnstileSecretKey)
}

func NewTurnstileVerifier(secret string) *TurnstileVerifier {
	return &TurnstileVerifier{
		Secret:   secret,
		Endpoint: TurnstileVerifyURL,
		Client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Verify verifies the token with Cloudflare
func (v *TurnstileVerifier) Verify(ctx context.Context, token, ip string) error {
	if strings.TrimSpace(token) == "" || v.Secret == "" {
		return fmt.Errorf("missing token or secret key")
	}

	form := url.Values{
		"secret":   {v.Secret},
		"response": {token},
	}
	if ip != "" {
		form.Set("remoteip", ip)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build turnstile request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	client := v.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to verify token: %w", err)
	}
	defer resp.Body.Close()

	var result TurnstileResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode turnstile response: %w", err)
	}

	// If success is false, return an error with the error codes
	if !result.Success {
		return fmt.Errorf("turnstile verification failed, error codes: %v", result.ErrorCodes)
	}
	return nil
}
