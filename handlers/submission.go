package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"consultancy_site_go/services"

	"github.com/labstack/echo/v4"
)

// maxSubmissionBytes caps form payloads
const maxSubmissionBytes = 64 << 10

const tooLargeMessage = "Submission is too large. Please shorten your message and try again."

// TurnstileHeader carries the Turnstile token of a form post
const TurnstileHeader = "X-Turnstile-Token"

const verificationFailedMessage = "Verification failed. Please try again."

// SubmissionResponse is the JSON body of every form endpoint
type SubmissionResponse struct {
	Success   bool                  `json:"success"`
	Message   string                `json:"message"`
	LeadScore *int                  `json:"leadScore,omitempty"`
	Errors    []services.FieldError `json:"errors,omitempty"`
}

func readSubmission(c echo.Context) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Response(), c.Request().Body, maxSubmissionBytes))
	if err != nil {
		return nil, fmt.Errorf("read request body: %w", err)
	}
	return body, nil
}

// submissionFailure maps a pipeline error to 400 for validation errors, 413
// for oversized bodies and the generic 500 for everything else.
func submissionFailure(c echo.Context, form string, err error, failMessage string, withFields bool) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		log.Printf("[WARNING] %s submission rejected: body exceeds %d bytes", form, tooLarge.Limit)
		return c.JSON(http.StatusRequestEntityTooLarge, SubmissionResponse{Success: false, Message: tooLargeMessage})
	}

	var ve *services.ValidationError
	if errors.As(err, &ve) {
		resp := SubmissionResponse{Success: false, Message: ve.Message}
		if withFields {
			resp.Errors = ve.Fields
		}
		return c.JSON(http.StatusBadRequest, resp)
	}

	log.Printf("[ERROR] %s submission failed: %v", form, err)
	return c.JSON(http.StatusInternalServerError, SubmissionResponse{Success: false, Message: failMessage})
}

// recoverSubmission turns a panic in a form handler into the generic 500
func recoverSubmission(c echo.Context, form, failMessage string, errp *error) {
	r := recover()
	if r == nil {
		return
	}
	log.Printf("[ERROR] %s handler panicked: %v", form, r)
	if c.Response().Committed {
		*errp = fmt.Errorf("%s handler panicked: %v", form, r)
		return
	}
	*errp = c.JSON(http.StatusInternalServerError, SubmissionResponse{Success: false, Message: failMessage})
}

// rejectBot answers 400 when bot verification is enabled and the token does
// not check out. handled reports whether a response was written.
func rejectBot(c echo.Context, intake *services.IntakeService, form string) (handled bool, err error) {
	verifier := services.Turnstile
	if verifier == nil {
		return false, nil
	}
	token := c.Request().Header.Get(TurnstileHeader)
	if verr := verifier.Verify(c.Request().Context(), token, c.RealIP()); verr != nil {
		log.Printf("[WARNING] %s submission failed bot verification: %v", form, verr)
		intake.Metrics.ObserveSubmission(form, services.OutcomeRejected)
		return true, c.JSON(http.StatusBadRequest, SubmissionResponse{Success: false, Message: verificationFailedMessage})
	}
	return false, nil
}

// rejectedOutcome is the metrics outcome of a submission that never reached the pipeline
func rejectedOutcome(err error) string {
	var tooLarge *http.MaxBytesError
	if services.IsValidationError(err) || errors.As(err, &tooLarge) {
		return services.OutcomeInvalid
	}
	return services.OutcomeError
}

func currentIntake() (*services.IntakeService, error) {
	if services.Intake == nil {
		return nil, errors.New("intake service not initialized")
	}
	return services.Intake, nil
}
