package contact

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"betagym/internal/pkg/validator"
)

// Rule identifies which check a field failed.
type Rule string

const (
	RuleMissingField  Rule = "MISSING_FIELD"
	RuleInvalidFormat Rule = "INVALID_FORMAT"
)

const (
	msgRequired     = "שדה זה הוא חובה"
	msgInvalidPhone = "נא להזין מספר טלפון תקין"
	msgInvalidEmail = "כתובת אימייל לא תקינה"
)

// FieldError is the first failing rule of a field.
type FieldError struct {
	Rule    Rule   `json:"rule"`
	Message string `json:"message"`
}

func (e FieldError) Err() error {
	if e.Rule == RuleMissingField {
		return ErrMissingField
	}
	return ErrInvalidFormat
}

// Errors maps field name to its error. A missing key means the field is valid.
type Errors map[string]FieldError

// Rules flattens the mapping to field -> rule.
func (e Errors) Rules() map[string]Rule {
	out := make(map[string]Rule, len(e))
	for k, v := range e {
		out[k] = v.Rule
	}
	return out
}

func (e Errors) clone() Errors {
	out := make(Errors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// Validate checks the form fields after trimming them.
func Validate(f Fields) Errors {
	f = f.Normalize()
	out := Errors{}

	for field, tag := range validator.Validate(&f) {
		if tag == "required" {
			out[field] = FieldError{Rule: RuleMissingField, Message: msgRequired}
			continue
		}
		msg := msgInvalidEmail
		if field == FieldPhone {
			msg = msgInvalidPhone
		}
		out[field] = FieldError{Rule: RuleInvalidFormat, Message: msg}
	}
	if _, failed := out[FieldMessage]; !failed && CleanMessage(f.Message) == "" {
		out[FieldMessage] = FieldError{Rule: RuleMissingField, Message: msgRequired}
	}
	return out
}

var markupPolicy = bluemonday.StrictPolicy()

// CleanMessage drops markup from a message and returns the plain text as
// typed. Entities are decoded since pages escape on render.
func CleanMessage(s string) string {
	return strings.TrimSpace(html.UnescapeString(markupPolicy.Sanitize(s)))
}
