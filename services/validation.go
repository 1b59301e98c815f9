package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"consultancy_site_go/models"

	"github.com/go-playground/validator/v10"
)

const (
	// ContactRequiredMessage is returned when the contact form misses a mandatory field
	ContactRequiredMessage = "Name, email, and message are required"
	// InvalidLeadMessage is returned when the lead form fails the schema
	InvalidLeadMessage = "Invalid form data"
)

// FieldError is a single schema failure
type FieldError struct {
	Field   string `json:"field"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// ValidationError is returned when a submission does not match its schema.
// Handlers map it to 400.
type ValidationError struct {
	Message string
	Fields  []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Reason)
	}
	return fmt.Sprintf("%s (%s)", e.Message, strings.Join(parts, ", "))
}

// IsValidationError reports whether err is or wraps a *ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Messages shown next to the form fields, keyed by JSON field name
var fieldMessages = map[string]string{
	"fullName":     "Name must be at least 2 characters",
	"email":        "Please enter a valid email address",
	"phone":        "Please enter a valid phone number",
	"businessName": "Business name is required",
	"industry":     "Please select your industry",
	"goals":        "Please describe your goals in more detail",
}

var formValidator = newFormValidator()

func newFormValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON field names so errors line up with the client form
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// ValidateLead checks lead against the intake schema. It never modifies lead.
func ValidateLead(lead models.LeadSubmission) error {
	if err := formValidator.Struct(lead); err != nil {
		return toValidationError(InvalidLeadMessage, err)
	}
	return nil
}

// ValidateContact checks that name, email and message are present
func ValidateContact(contact models.ContactSubmission) error {
	if err := formValidator.Struct(contact); err != nil {
		return toValidationError(ContactRequiredMessage, err)
	}
	return nil
}

func toValidationError(message string, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validation failed: %w", err)
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Field:   fe.Field(),
			Reason:  fe.Tag(),
			Message: fieldMessage(fe),
		})
	}
	return &ValidationError{Message: message, Fields: fields}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("Invalid option: expected one of %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "required":
		return "Required"
	}
	if msg, ok := fieldMessages[fe.Field()]; ok {
		return msg
	}
	return fmt.Sprintf("Must be at least %s characters", fe.Param())
}

// DecodeLead decodes a lead payload. Wrong JSON types for a field are reported
// as a ValidationError, malformed JSON as a plain error.
func DecodeLead(body []byte) (models.LeadSubmission, error) {
	var lead models.LeadSubmission
	if err := decodeSubmission(body, &lead, InvalidLeadMessage); err != nil {
		return models.LeadSubmission{}, err
	}
	return lead, nil
}

// DecodeContact decodes a contact payload, see DecodeLead
func DecodeContact(body []byte) (models.ContactSubmission, error) {
	var contact models.ContactSubmission
	if err := decodeSubmission(body, &contact, ContactRequiredMessage); err != nil {
		return models.ContactSubmission{}, err
	}
	return contact, nil
}

func decodeSubmission(body []byte, dst interface{}, message string) error {
	err := json.Unmarshal(body, dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return &ValidationError{
			Message: message,
			Fields: []FieldError{{
				Field:   field,
				Reason:  "type",
				Message: fmt.Sprintf("Expected %s, received %s", typeErr.Type.Kind(), typeErr.Value),
			}},
		}
	}
	return fmt.Errorf("failed to decode submission: %w", err)
}
