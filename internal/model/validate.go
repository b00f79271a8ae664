package model

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// ValidationError represents a validation error with field path and message.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates all validation errors for a record.
// Validators collect every error rather than failing fast.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Error()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// NormalizeText trims surrounding whitespace and applies Unicode NFC
// normalization. User-entered text goes through this before validation and
// persistence so serial and make/model comparisons are stable regardless
// of input method.
func NormalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// Validate checks a Firearm against the persistence rules.
// MakeModel must be non-empty; a firearm with an empty MakeModel must never
// reach the store.
func (f *Firearm) Validate() ValidationErrors {
	var errs ValidationErrors

	if f.MakeModel == "" {
		errs = append(errs, ValidationError{
			Field:   "makeModel",
			Message: "is required and must be non-empty",
		})
	}
	if f.Price < 0 {
		errs = append(errs, ValidationError{
			Field:   "price",
			Message: "must not be negative",
		})
	}
	errs = appendDateError(errs, "purchaseDate", f.PurchaseDate)

	return errs
}

// Validate checks a MaintenanceEvent. Type is the category label and is
// required; the firearm reference is optional and deliberately unchecked.
func (m *MaintenanceEvent) Validate() ValidationErrors {
	var errs ValidationErrors

	if m.Type == "" {
		errs = append(errs, ValidationError{
			Field:   "type",
			Message: "is required",
		})
	}
	errs = appendDateError(errs, "date", m.Date)

	return errs
}

// Validate checks a TrainingEvent. Duration is hours and must be positive.
func (t *TrainingEvent) Validate() ValidationErrors {
	var errs ValidationErrors

	if t.Type == "" {
		errs = append(errs, ValidationError{
			Field:   "type",
			Message: "is required",
		})
	}
	if t.Duration <= 0 {
		errs = append(errs, ValidationError{
			Field:   "duration",
			Message: "must be a positive number of hours",
		})
	}
	errs = appendDateError(errs, "date", t.Date)

	return errs
}

// Validate checks a Permit. All fields are optional except the type label;
// expiry math simply skips permits without an expiration date.
func (p *Permit) Validate() ValidationErrors {
	var errs ValidationErrors

	if p.Type == "" {
		errs = append(errs, ValidationError{
			Field:   "type",
			Message: "is required",
		})
	}
	errs = appendDateError(errs, "issueDate", p.IssueDate)
	errs = appendDateError(errs, "expirationDate", p.ExpirationDate)

	return errs
}

// appendDateError validates an optional calendar-date field.
// Empty is allowed; a non-empty value must parse as YYYY-MM-DD.
func appendDateError(errs ValidationErrors, field, value string) ValidationErrors {
	if value == "" {
		return errs
	}
	if _, err := time.Parse(DateFormat, value); err != nil {
		errs = append(errs, ValidationError{
			Field:   field,
			Message: fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", value),
		})
	}
	return errs
}
