package models

import "gorm.io/gorm"

// Experience is a work history entry.
type Experience struct {
	BaseModel
	Title       string `gorm:"type:varchar(200);not null" form:"title" validate:"required,max=200"`
	Company     string `gorm:"type:varchar(200)" form:"company" validate:"max=200"`
	Description string `gorm:"type:text;not null" form:"description" validate:"required"`
	Timeline
	Order int `gorm:"column:sort_order;not null;index" form:"order"`
}

func (e *Experience) BeforeSave(tx *gorm.DB) error {
	if err := e.normalize(); err != nil {
		return err
	}
	return Validate(e)
}

// Heading is "Title at Company", or just the title when no company is set.
func (e Experience) Heading() string {
	if e.Company == "" {
		return e.Title
	}
	return e.Title + " at " + e.Company
}
