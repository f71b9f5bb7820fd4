package booking

import (
	"strings"

	"github.com/BruksfildServices01/spa-scheduler/internal/httperr"
	"github.com/BruksfildServices01/spa-scheduler/internal/validators"
)

const (
	maxNameLen  = 100
	maxEmailLen = 255
)

func nameMessage(name string) string {
	switch {
	case name == "":
		return "Name is required"
	case len(name) < 2:
		return "Name must be at least 2 characters"
	case len(name) > maxNameLen:
		return "Name must be less than 100 characters"
	case !validators.IsName(name):
		return "Name can only contain letters and spaces"
	case len(strings.TrimSpace(name)) < 2:
		return "Name must contain at least 2 characters"
	}
	return ""
}

func emailMessage(email string) string {
	switch {
	case email == "":
		return "Email is required"
	case len(email) > maxEmailLen:
		return "Email must be less than 255 characters"
	case !validators.IsEmail(email):
		return "Please enter a valid email address"
	}
	return ""
}

// validateSubmission checks every field and reports all problems at
// once, so the client can highlight each offending input.
func validateSubmission(in SubmitBookingInput) []httperr.FieldError {
	var fields []httperr.FieldError

	if msg := nameMessage(in.Name); msg != "" {
		fields = append(fields, httperr.FieldError{Field: "name", Message: msg})
	}
	if msg := emailMessage(in.Email); msg != "" {
		fields = append(fields, httperr.FieldError{Field: "email", Message: msg})
	}
	if in.SlotID == "" {
		fields = append(fields, httperr.FieldError{Field: "timeslot", Message: "Please select a timeslot"})
	}

	return fields
}
