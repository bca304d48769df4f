package contact

import (
	"errors"
	"fmt"
)

var (
	ErrMissingField       = errors.New("missing field")
	ErrInvalidFormat      = errors.New("invalid format")
	ErrSubmissionFailed   = errors.New("submission failed")
	ErrSubmissionInFlight = errors.New("submission already in flight")
	ErrFormClosed         = errors.New("contact form closed")
	ErrSubmissionNotFound = errors.New("submission not found")
)

// ValidationError is returned by Form.Submit when any field is invalid.
// errors.Is matches the rule errors of every failing field.
type ValidationError struct {
	Errors Errors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("contact form invalid: %d field(s)", len(e.Errors))
}

func (e *ValidationError) Unwrap() []error {
	out := make([]error, 0, len(e.Errors))
	for _, fe := range e.Errors {
		out = append(out, fe.Err())
	}
	return out
}
