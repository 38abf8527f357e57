package models

import (
	"time"

	"gorm.io/gorm"
)

// ContactMessage is a submission of the public contact form. After creation only
// IsRead and IsReplied change.
type ContactMessage struct {
	ID        uint      `gorm:"primarykey"`
	Name      string    `gorm:"type:varchar(100);not null" form:"name" validate:"required,max=100"`
	Email     string    `gorm:"type:varchar(254);not null" form:"email" validate:"required,email,max=254"`
	Subject   string    `gorm:"type:varchar(200)" form:"subject" validate:"max=200"`
	Message   string    `gorm:"type:text;not null" form:"message" validate:"required"`
	IsRead    bool      `gorm:"not null;index"`
	IsReplied bool      `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"index"`
}

// BeforeCreate validates new messages. Status flips go through UpdateColumns and skip hooks.
func (m *ContactMessage) BeforeCreate(tx *gorm.DB) error {
	return Validate(m)
}

const previewLength = 50

// Preview returns the subject or the first 50 characters of the message.
func (m ContactMessage) Preview() string {
	if m.Subject != "" {
		return truncate(m.Subject, previewLength, "")
	}
	return truncate(m.Message, previewLength, "...")
}

// StatusLabel is "Replied", "Read" or "New".
func (m ContactMessage) StatusLabel() string {
	switch {
	case m.IsReplied:
		return "Replied"
	case m.IsRead:
		return "Read"
	default:
		return "New"
	}
}

func truncate(s string, n int, suffix string) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + suffix
}
