package services

import (
	"errors"
	"testing"

	"consultancy_site_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldNames(err error) []string {
	var ve *ValidationError
	if !errors.As(err, &ve) {
		return nil
	}
	names := make([]string, 0, len(ve.Fields))
	for _, f := range ve.Fields {
		names = append(names, f.Field)
	}
	return names
}

func TestValidateLead(t *testing.T) {
	t.Run("Valid lead", func(t *testing.T) {
		assert.NoError(t, ValidateLead(hotLead()))
	})

	t.Run("Current systems optional", func(t *testing.T) {
		lead := hotLead()
		lead.CurrentSystems = ""
		assert.NoError(t, ValidateLead(lead))
	})

	t.Run("Unknown industry accepted", func(t *testing.T) {
		lead := hotLead()
		lead.Industry = "fishing"
		assert.NoError(t, ValidateLead(lead))
	})

	t.Run("Goals length boundary", func(t *testing.T) {
		lead := hotLead()
		lead.Goals = "123456789"
		err := ValidateLead(lead)
		require.Error(t, err)
		assert.Equal(t, []string{"goals"}, fieldNames(err))

		lead.Goals = "1234567890"
		assert.NoError(t, ValidateLead(lead))
	})

	t.Run("Budget must be a known band", func(t *testing.T) {
		lead := hotLead()
		lead.Budget = "100m"
		err := ValidateLead(lead)
		require.Error(t, err)

		var ve *ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, InvalidLeadMessage, ve.Message)
		require.Len(t, ve.Fields, 1)
		assert.Equal(t, "budget", ve.Fields[0].Field)
		assert.Equal(t, "oneof", ve.Fields[0].Reason)
		assert.Contains(t, ve.Fields[0].Message, "50m+")
	})

	t.Run("Every failing field reported", func(t *testing.T) {
		err := ValidateLead(models.LeadSubmission{})
		require.Error(t, err)
		assert.ElementsMatch(t, []string{
			"fullName", "email", "phone", "preferredContact", "businessName", "industry",
			"businessStage", "employeeCount", "websiteStatus", "primaryNeed", "budget",
			"timeline", "goals", "howFound",
		}, fieldNames(err))
	})

	t.Run("Invalid email", func(t *testing.T) {
		lead := hotLead()
		lead.Email = "not-an-email"
		err := ValidateLead(lead)
		require.Error(t, err)
		assert.Equal(t, []string{"email"}, fieldNames(err))
	})

	t.Run("Short phone", func(t *testing.T) {
		lead := hotLead()
		lead.Phone = "077212345"
		assert.Equal(t, []string{"phone"}, fieldNames(ValidateLead(lead)))
	})

	t.Run("Does not modify input", func(t *testing.T) {
		lead := hotLead()
		before := lead
		_ = ValidateLead(lead)
		assert.Equal(t, before, lead)
	})
}

func TestValidateContact(t *testing.T) {
	assert.NoError(t, ValidateContact(validContact()))

	contact := validContact()
	contact.Message = ""
	err := ValidateContact(contact)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Equal(t, ContactRequiredMessage, err.(*ValidationError).Message)
	assert.Equal(t, []string{"message"}, fieldNames(err))
}

func TestDecodeLead(t *testing.T) {
	t.Run("Valid JSON", func(t *testing.T) {
		lead, err := DecodeLead([]byte(`{"fullName":"Jane Nakato","budget":"50m+"}`))
		require.NoError(t, err)
		assert.Equal(t, "Jane Nakato", lead.FullName)
		assert.Equal(t, models.Budget50MPlus, lead.Budget)
	})

	t.Run("Wrong type is a validation error", func(t *testing.T) {
		_, err := DecodeLead([]byte(`{"fullName":42}`))
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
		assert.Equal(t, []string{"fullName"}, fieldNames(err))
	})

	t.Run("Non-object body", func(t *testing.T) {
		_, err := DecodeLead([]byte(`[1,2]`))
		require.Error(t, err)
		assert.Equal(t, []string{"body"}, fieldNames(err))
	})

	t.Run("Malformed JSON is not a validation error", func(t *testing.T) {
		_, err := DecodeLead([]byte(`{"fullName":`))
		require.Error(t, err)
		assert.False(t, IsValidationError(err))
	})
}

func TestDecodeContact(t *testing.T) {
	contact, err := DecodeContact([]byte(`{"name":"John","email":"john@example.com","message":"Hi","company":"Acme"}`))
	require.NoError(t, err)
	assert.Equal(t, "Acme", contact.Company)
	assert.Equal(t, "John", contact.FirstName())
}
