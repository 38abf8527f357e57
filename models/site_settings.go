package models

import (
	"time"

	"gorm.io/gorm"
)

// SiteSettings holds site-wide configuration. Like Profile it lives at SingletonID
// and is created with defaults the first time it is loaded.
type SiteSettings struct {
	ID              uint   `gorm:"primarykey" form:"-"`
	SiteTitle       string `gorm:"type:varchar(100);not null" form:"site_title" validate:"required,max=100"`
	SiteDescription string `gorm:"type:text" form:"site_description"`
	Favicon         string `gorm:"type:varchar(500)" form:"-"`

	MetaKeywords      string `gorm:"type:varchar(300)" form:"meta_keywords" validate:"max=300"`
	GoogleAnalyticsID string `gorm:"type:varchar(50)" form:"google_analytics_id" validate:"max=50"`

	ContactEmail string `gorm:"type:varchar(254)" form:"contact_email" validate:"omitempty,email,max=254"`

	ShowSocialLinks    bool `gorm:"not null" form:"show_social_links"`
	EnableBlog         bool `gorm:"not null" form:"enable_blog"`
	EnableTestimonials bool `gorm:"not null" form:"enable_testimonials"`

	UpdatedAt time.Time `form:"-"`
}

func (SiteSettings) TableName() string { return "site_settings" }

// DefaultSiteSettings returns the row written on first load.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		ID:                 SingletonID,
		SiteTitle:          "N:PORTFOLIO",
		SiteDescription:    "Full Stack Developer Portfolio",
		ContactEmail:       "nischitshrestha@example.com",
		ShowSocialLinks:    true,
		EnableBlog:         false,
		EnableTestimonials: true,
	}
}

func (s *SiteSettings) BeforeSave(tx *gorm.DB) error {
	s.ID = SingletonID
	return Validate(s)
}
