package handlers

import (
	"net/http"

	"consultancy_site_go/services"

	"github.com/labstack/echo/v4"
)

const (
	contactSuccessMessage = "Message sent successfully"
	contactFailureMessage = "Failed to send message. Please try again."
)

// SubmitContactHandler handles POST /api/contact. Email delivery failures are
// logged, the submitter still gets a success response.
func SubmitContactHandler(c echo.Context) (err error) {
	defer recoverSubmission(c, services.FormContact, contactFailureMessage, &err)

	intake, err := currentIntake()
	if err != nil {
		return submissionFailure(c, services.FormContact, err, contactFailureMessage, false)
	}

	if handled, err := rejectBot(c, intake, services.FormContact); handled {
		return err
	}

	body, err := readSubmission(c)
	if err != nil {
		intake.Metrics.ObserveSubmission(services.FormContact, rejectedOutcome(err))
		return submissionFailure(c, services.FormContact, err, contactFailureMessage, false)
	}

	contact, err := services.DecodeContact(body)
	if err != nil {
		intake.Metrics.ObserveSubmission(services.FormContact, rejectedOutcome(err))
		return submissionFailure(c, services.FormContact, err, contactFailureMessage, false)
	}

	if _, err := intake.SubmitContact(c.Request().Context(), contact); err != nil {
		return submissionFailure(c, services.FormContact, err, contactFailureMessage, false)
	}

	return c.JSON(http.StatusOK, SubmissionResponse{Success: true, Message: contactSuccessMessage})
}
