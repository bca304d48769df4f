package contact

import "strings"

// Field names as reported in validation errors.
const (
	FieldName    = "name"
	FieldPhone   = "phone"
	FieldEmail   = "email"
	FieldMessage = "message"
)

// Fields is the contact form payload. All four fields are required.
type Fields struct {
	Name    string `json:"name" form:"name" validate:"required"`
	Phone   string `json:"phone" form:"phone" validate:"required,local_phone"`
	Email   string `json:"email" form:"email" validate:"required,site_email"`
	Message string `json:"message" form:"message" validate:"required"`
}

// Normalize trims surrounding whitespace so blank values count as missing.
func (f Fields) Normalize() Fields {
	return Fields{
		Name:    strings.TrimSpace(f.Name),
		Phone:   strings.TrimSpace(f.Phone),
		Email:   strings.TrimSpace(f.Email),
		Message: strings.TrimSpace(f.Message),
	}
}

func (f Fields) IsZero() bool {
	return f == (Fields{})
}

// Origin describes who submitted the form.
type Origin struct {
	SessionID string
	ClientIP  string
	UserAgent string
}

// Record is what a Submitter receives.
type Record struct {
	Fields Fields
	Origin Origin
}

// SubmissionView is the public shape of a stored submission.
type SubmissionView struct {
	Reference string `json:"reference"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}
