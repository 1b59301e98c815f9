package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"consultancy_site_go/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hotLeadJSON = `{
	"fullName": "Jane Nakato",
	"email": "jane@example.com",
	"phone": "0772123456",
	"preferredContact": "call",
	"businessName": "Acme Logistics",
	"industry": "transport",
	"businessStage": "established",
	"employeeCount": "200+",
	"websiteStatus": "none",
	"primaryNeed": "saas-platform",
	"currentSystems": "Spreadsheets",
	"budget": "50m+",
	"timeline": "asap",
	"goals": "Track fleet deliveries in real time",
	"howFound": "referral"
}`

func leadJSON(t *testing.T, overrides map[string]interface{}) string {
	t.Helper()
	var lead map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(hotLeadJSON), &lead))
	for k, v := range overrides {
		if v == nil {
			delete(lead, k)
			continue
		}
		lead[k] = v
	}
	out, err := json.Marshal(lead)
	require.NoError(t, err)
	return string(out)
}

func decodeResponse(t *testing.T, body []byte) SubmissionResponse {
	t.Helper()
	var resp SubmissionResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

func TestSubmitLeadHandler_HotLead(t *testing.T) {
	sender := &captureSender{}
	setupIntake(t, sender)

	c, rec := setupJSON(http.MethodPost, "/api/submit-lead", hotLeadJSON)
	require.NoError(t, SubmitLeadHandler(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Lead submitted successfully","leadScore":98}`, rec.Body.String())

	emails := sender.sent()
	require.Len(t, emails, 2)
	subjects := []string{emails[0].Subject, emails[1].Subject}
	assert.Contains(t, subjects, "Hot Lead New Lead: Acme Logistics - saas-platform")
	assert.Contains(t, subjects, "Thank you for reaching out, Jane!")
}

func TestSubmitLeadHandler_ColdLead(t *testing.T) {
	setupIntake(t, &captureSender{})

	body := leadJSON(t, map[string]interface{}{
		"budget":        "under-1m",
		"timeline":      "flexible",
		"businessStage": "idea",
		"employeeCount": "solo",
		"websiteStatus": "professional",
	})
	c, rec := setupJSON(http.MethodPost, "/api/submit-lead", body)
	require.NoError(t, SubmitLeadHandler(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec.Body.Bytes())
	require.NotNil(t, resp.LeadScore)
	assert.Equal(t, 23, *resp.LeadScore)
}

func TestSubmitLeadHandler_EmailFailureStillSucceeds(t *testing.T) {
	setupIntake(t, &captureSender{err: assert.AnError})

	c, rec := setupJSON(http.MethodPost, "/api/submit-lead", hotLeadJSON)
	require.NoError(t, SubmitLeadHandler(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeResponse(t, rec.Body.Bytes()).Success)
}

func TestSubmitLeadHandler_Invalid(t *testing.T) {
	sender := &captureSender{}
	setupIntake(t, sender)

	body := leadJSON(t, map[string]interface{}{"goals": "too short", "email": "not-an-email"})
	c, rec := setupJSON(http.MethodPost, "/api/submit-lead", body)
	require.NoError(t, SubmitLeadHandler(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec.Body.Bytes())
	assert.False(t, resp.Success)
	assert.Equal(t, services.InvalidLeadMessage, resp.Message)
	assert.Nil(t, resp.LeadScore)

	fields := map[string]bool{}
	for _, fe := range resp.Errors {
		fields[fe.Field] = true
	}
	assert.True(t, fields["goals"])
	assert.True(t, fields["email"])
	assert.Empty(t, sender.sent())
}

func TestSubmitLeadHandler_MissingField(t *testing.T) {
	setupIntake(t, &captureSender{})

	c, rec := setupJSON(http.MethodPost, "/api/submit-lead", leadJSON(t, map[string]interface{}{"budget": nil}))
	require.NoError(t, SubmitLeadHandler(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitLeadHandler_MalformedJSON(t *testing.T) {
	sender := &captureSender{}
	setupIntake(t, sender)

	c, rec := setupJSON(http.MethodPost, "/api/submit-lead", `{"fullName":`)
	require.NoError(t, SubmitLeadHandler(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Failed to process submission. Please try again."}`, rec.Body.String())
	assert.Empty(t, sender.sent())
}

func TestSubmitLeadHandler_OversizedBody(t *testing.T) {
	sender := &captureSender{}
	setupIntake(t, sender)

	body := leadJSON(t, map[string]interface{}{"goals": strings.Repeat("a", 70<<10)})
	c, rec := setupJSON(http.MethodPost, "/api/submit-lead", body)
	require.NoError(t, SubmitLeadHandler(c))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	resp := decodeResponse(t, rec.Body.Bytes())
	assert.False(t, resp.Success)
	assert.Equal(t, tooLargeMessage, resp.Message)
	assert.Empty(t, sender.sent())
}

func TestSubmitLeadHandler_LongGoalsWithinLimit(t *testing.T) {
	setupIntake(t, &captureSender{})

	body := leadJSON(t, map[string]interface{}{"goals": strings.Repeat("a", 4000)})
	c, rec := setupJSON(http.MethodPost, "/api/submit-lead", body)
	require.NoError(t, SubmitLeadHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSubmitLeadHandler_NotInitialized(t *testing.T) {
	prev := services.Intake
	services.Intake = nil
	defer func() { services.Intake = prev }()

	c, rec := setupJSON(http.MethodPost, "/api/submit-lead", hotLeadJSON)
	require.NoError(t, SubmitLeadHandler(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

type panickingSender struct{}

func (panickingSender) Send(context.Context, *services.Email) error { panic("boom") }

func TestSubmitLeadHandler_SenderPanic(t *testing.T) {
	setupIntake(t, panickingSender{})

	c, rec := setupJSON(http.MethodPost, "/api/submit-lead", hotLeadJSON)
	require.NoError(t, SubmitLeadHandler(c))

	// sends run in their own goroutines and recover, the lead is still accepted
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSubmitLeadHandler_RecoversPanic(t *testing.T) {
	prev := services.Intake
	// a nil renderer panics inside the pipeline
	services.Intake = &services.IntakeService{Sender: &captureSender{}}
	defer func() { services.Intake = prev }()

	c, rec := setupJSON(http.MethodPost, "/api/submit-lead", hotLeadJSON)
	require.NoError(t, SubmitLeadHandler(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Failed to process submission. Please try again."}`, rec.Body.String())
}
