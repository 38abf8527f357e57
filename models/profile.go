package models

import "gorm.io/gorm"

// Profile is the site owner's public information. Only one row exists, at SingletonID.
type Profile struct {
	BaseModel
	Name         string `gorm:"type:varchar(100);not null" form:"name" validate:"required,max=100"`
	Tagline      string `gorm:"type:varchar(200)" form:"tagline" validate:"max=200"`
	Description  string `gorm:"type:text" form:"description"`
	ProfileImage string `gorm:"type:varchar(500)" form:"-"`
	Email        string `gorm:"type:varchar(254)" form:"email" validate:"required,email,max=254"`
	Phone        string `gorm:"type:varchar(20)" form:"phone" validate:"max=20"`
	Location     string `gorm:"type:varchar(100)" form:"location" validate:"max=100"`

	GitHubURL   string `gorm:"column:github_url;type:varchar(200)" form:"github_url" validate:"omitempty,url,max=200"`
	LinkedInURL string `gorm:"column:linkedin_url;type:varchar(200)" form:"linkedin_url" validate:"omitempty,url,max=200"`
	TwitterURL  string `gorm:"column:twitter_url;type:varchar(200)" form:"twitter_url" validate:"omitempty,url,max=200"`

	ResumeFile string `gorm:"type:varchar(500)" form:"-"`

	Images []ProfileImage `gorm:"foreignKey:ProfileID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" form:"-"`
}

// DefaultProfile returns the values a freshly materialised profile starts with.
func DefaultProfile() Profile {
	return Profile{
		BaseModel:   BaseModel{ID: SingletonID},
		Name:        "Nischit Shrestha",
		Tagline:     "Experiencing the Full Stack Developer Life",
		Description: "Turning ideas into interactive and scalable web solutions.",
		Email:       "nischitshrestha@example.com",
	}
}

// BeforeSave pins every write to the singleton slot and validates the row.
func (p *Profile) BeforeSave(tx *gorm.DB) error {
	p.ID = SingletonID
	return Validate(p)
}

// MaxProfileImages caps the slider next to the main profile picture.
const MaxProfileImages = 6

// ProfileImage is an extra slider picture, owned by the Profile and deleted with it.
type ProfileImage struct {
	BaseModel
	ProfileID uint   `gorm:"not null;index" form:"-"`
	Image     string `gorm:"type:varchar(500);not null" form:"-" validate:"required"`
	Order     int    `gorm:"column:sort_order;not null;default:0" form:"order"`
}

func (i *ProfileImage) BeforeSave(tx *gorm.DB) error {
	return Validate(i)
}
