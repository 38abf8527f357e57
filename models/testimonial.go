package models

import (
	"strings"

	"gorm.io/gorm"
)

const (
	MinTestimonialRating     = 1
	MaxTestimonialRating     = 5
	DefaultTestimonialRating = 5
)

// Testimonial is a quote from a client or colleague. Inactive ones stay hidden.
type Testimonial struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);not null" form:"name" validate:"required,max=100"`
	Position    string `gorm:"type:varchar(100);not null" form:"position" validate:"required,max=100"`
	Company     string `gorm:"type:varchar(100)" form:"company" validate:"max=100"`
	Testimonial string `gorm:"column:testimonial;type:text;not null" form:"testimonial" validate:"required"`
	Avatar      string `gorm:"type:varchar(500)" form:"-"`
	Rating      int    `gorm:"not null" form:"rating" validate:"gte=1,lte=5"`
	IsActive    bool   `gorm:"not null;index" form:"is_active"`
	Order       int    `gorm:"column:sort_order;not null;index" form:"order"`
}

func NewTestimonial() Testimonial {
	return Testimonial{Rating: DefaultTestimonialRating, IsActive: true}
}

func (t *Testimonial) BeforeSave(tx *gorm.DB) error {
	return Validate(t)
}

// Stars renders the rating as filled and empty stars.
func (t Testimonial) Stars() string {
	r := t.Rating
	if r < 0 {
		r = 0
	}
	if r > MaxTestimonialRating {
		r = MaxTestimonialRating
	}
	return strings.Repeat("★", r) + strings.Repeat("☆", MaxTestimonialRating-r)
}
