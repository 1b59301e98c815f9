package services

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// DefaultPhoneRegion is assumed for numbers entered without a country code
const DefaultPhoneRegion = "UG"

// FormatPhoneE164 formats a phone number to E.164 for tel: links. Numbers
// that cannot be parsed are returned with whitespace removed.
func FormatPhoneE164(input, region string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return trimmed
	}
	if region == "" {
		region = DefaultPhoneRegion
	}

	number, err := phonenumbers.Parse(trimmed, region)
	if err != nil || !phonenumbers.IsValidNumber(number) {
		return strings.Join(strings.Fields(trimmed), "")
	}

	return phonenumbers.Format(number, phonenumbers.E164)
}
