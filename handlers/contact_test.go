package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitContactHandler(t *testing.T) {
	t.Run("sends both emails", func(t *testing.T) {
		sender := &captureSender{}
		setupIntake(t, sender)

		c, rec := setupJSON(http.MethodPost, "/api/contact",
			`{"name":"John Okello","email":"john@example.com","company":"Okello Farms","message":"I would like a quote for a website."}`)
		require.NoError(t, SubmitContactHandler(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true,"message":"Message sent successfully"}`, rec.Body.String())

		emails := sender.sent()
		require.Len(t, emails, 2)
		subjects := []string{emails[0].Subject, emails[1].Subject}
		assert.Contains(t, subjects, "New Contact: John Okello from Okello Farms")
	})

	t.Run("missing message", func(t *testing.T) {
		sender := &captureSender{}
		setupIntake(t, sender)

		c, rec := setupJSON(http.MethodPost, "/api/contact", `{"name":"John Okello","email":"john@example.com"}`)
		require.NoError(t, SubmitContactHandler(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"success":false,"message":"Name, email, and message are required"}`, rec.Body.String())
		assert.Empty(t, sender.sent())
	})

	t.Run("delivery failure still succeeds", func(t *testing.T) {
		setupIntake(t, &captureSender{err: assert.AnError})

		c, rec := setupJSON(http.MethodPost, "/api/contact",
			`{"name":"John Okello","email":"john@example.com","message":"Hello there"}`)
		require.NoError(t, SubmitContactHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		setupIntake(t, &captureSender{})

		c, rec := setupJSON(http.MethodPost, "/api/contact", `not json`)
		require.NoError(t, SubmitContactHandler(c))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"success":false,"message":"Failed to send message. Please try again."}`, rec.Body.String())
	})
}

func TestSubmitContactHandler_OversizedBody(t *testing.T) {
	sender := &captureSender{}
	setupIntake(t, sender)

	body := `{"name":"John Okello","email":"john@example.com","message":"` + strings.Repeat("x", 65<<10) + `"}`
	c, rec := setupJSON(http.MethodPost, "/api/contact", body)
	require.NoError(t, SubmitContactHandler(c))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"`+tooLargeMessage+`"}`, rec.Body.String())
	assert.Empty(t, sender.sent())
}
