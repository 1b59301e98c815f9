package models

import "strings"

// ContactSubmission is the payload of the generic contact form. Only presence
// is checked.
type ContactSubmission struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Company string `json:"company,omitempty"`
	Budget  string `json:"budget,omitempty"` // free text, not a budget band
	Message string `json:"message" validate:"required"`
}

// FirstName returns the name up to the first space.
func (c ContactSubmission) FirstName() string {
	return firstName(c.Name)
}

func firstName(full string) string {
	if i := strings.Index(full, " "); i >= 0 {
		return full[:i]
	}
	return full
}
