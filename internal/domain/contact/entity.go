package contact

import "time"

// Submission is a stored contact form entry.
type Submission struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Reference string    `gorm:"size:36;uniqueIndex;not null" json:"reference"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Phone     string    `gorm:"size:20;not null" json:"phone"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	SessionID string    `gorm:"size:64;index" json:"-"`
	IPHash    string    `gorm:"size:64" json:"-"`
	UserAgent string    `gorm:"size:512" json:"-"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (Submission) TableName() string { return "contact_submissions" }

// View converts the row to its public shape.
func (s *Submission) View() SubmissionView {
	return SubmissionView{
		Reference: s.Reference,
		Name:      s.Name,
		Phone:     s.Phone,
		Email:     s.Email,
		Message:   s.Message,
		CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339),
	}
}
