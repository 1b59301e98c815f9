package handlers

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"consultancy_site_go/config"
	"consultancy_site_go/services"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Add config to context
	c.Set("config", &config.Config{
		Environment: "test",
		AppURL:      "https://mmrug.com",
	})

	return e, c, rec
}

func setupJSON(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	_, c, rec := setupEcho(method, path, strings.NewReader(body))
	c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return c, rec
}

// captureSender records every email instead of sending it
type captureSender struct {
	mu     sync.Mutex
	emails []*services.Email
	err    error
}

func (s *captureSender) Send(_ context.Context, email *services.Email) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.emails = append(s.emails, email)
	return s.err
}

func (s *captureSender) sent() []*services.Email {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*services.Email(nil), s.emails...)
}

// setupIntake installs a global intake backed by sender for the duration of the test
func setupIntake(t *testing.T, sender services.Sender) {
	t.Helper()
	renderer, err := services.NewEmailRenderer(services.EmailAddresses{
		ClientFrom:  "Mutikanga Mark <hello@updates.mmrug.com>",
		ContactFrom: "Contact Form <contact@updates.mmrug.com>",
		LeadsFrom:   "Lead Notifications <leads@updates.mmrug.com>",
		Admin:       "owner@example.com",
	})
	require.NoError(t, err)

	prev := services.Intake
	services.Intake = &services.IntakeService{
		Sender:   sender,
		Renderer: renderer,
		Metrics:  services.NewIntakeMetrics(prometheus.NewRegistry()),
		Labels:   services.DefaultLabels,
	}
	t.Cleanup(func() { services.Intake = prev })
}
