package handlers

import (
	"net/http"

	"consultancy_site_go/services"

	"github.com/labstack/echo/v4"
)

const (
	leadSuccessMessage = "Lead submitted successfully"
	leadFailureMessage = "Failed to process submission. Please try again."
)

// SubmitLeadHandler handles POST /api/submit-lead from the get-started form.
// Responds with the lead score once validation passes, regardless of whether
// the emails or the sheet write succeeded.
func SubmitLeadHandler(c echo.Context) (err error) {
	defer recoverSubmission(c, services.FormLead, leadFailureMessage, &err)

	intake, err := currentIntake()
	if err != nil {
		return submissionFailure(c, services.FormLead, err, leadFailureMessage, true)
	}

	if handled, err := rejectBot(c, intake, services.FormLead); handled {
		return err
	}

	body, err := readSubmission(c)
	if err != nil {
		intake.Metrics.ObserveSubmission(services.FormLead, rejectedOutcome(err))
		return submissionFailure(c, services.FormLead, err, leadFailureMessage, true)
	}

	lead, err := services.DecodeLead(body)
	if err != nil {
		intake.Metrics.ObserveSubmission(services.FormLead, rejectedOutcome(err))
		return submissionFailure(c, services.FormLead, err, leadFailureMessage, true)
	}

	result, err := intake.SubmitLead(c.Request().Context(), lead)
	if err != nil {
		return submissionFailure(c, services.FormLead, err, leadFailureMessage, true)
	}

	score := result.Score.Score
	return c.JSON(http.StatusOK, SubmissionResponse{
		Success:   true,
		Message:   leadSuccessMessage,
		LeadScore: &score,
	})
}
