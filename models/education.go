package models

import "gorm.io/gorm"

// Education is an entry of the education history.
type Education struct {
	BaseModel
	Institution  string `gorm:"type:varchar(200);not null" form:"institution" validate:"required,max=200"`
	Degree       string `gorm:"type:varchar(200);not null" form:"degree" validate:"required,max=200"`
	FieldOfStudy string `gorm:"type:varchar(200)" form:"field_of_study" validate:"max=200"`
	Timeline
	Description string `gorm:"type:text" form:"description"`
	Order       int    `gorm:"column:sort_order;not null;index" form:"order"`
}

func (Education) TableName() string { return "education" }

func (e *Education) BeforeSave(tx *gorm.DB) error {
	if err := e.normalize(); err != nil {
		return err
	}
	return Validate(e)
}
