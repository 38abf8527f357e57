package models

import "gorm.io/gorm"

// SkillCategory groups skills on the public page.
type SkillCategory string

const (
	SkillCategoryFrontend SkillCategory = "frontend"
	SkillCategoryBackend  SkillCategory = "backend"
	SkillCategoryDatabase SkillCategory = "database"
	SkillCategoryTools    SkillCategory = "tools"
	SkillCategoryOther    SkillCategory = "other"
)

// SkillCategories lists the categories in display order.
var SkillCategories = []SkillCategory{
	SkillCategoryFrontend,
	SkillCategoryBackend,
	SkillCategoryDatabase,
	SkillCategoryTools,
	SkillCategoryOther,
}

var skillCategoryLabels = map[SkillCategory]string{
	SkillCategoryFrontend: "Frontend",
	SkillCategoryBackend:  "Backend",
	SkillCategoryDatabase: "Database",
	SkillCategoryTools:    "Tools & Technologies",
	SkillCategoryOther:    "Other",
}

func (c SkillCategory) Valid() bool {
	_, ok := skillCategoryLabels[c]
	return ok
}

func (c SkillCategory) Label() string {
	if l, ok := skillCategoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// Proficiency tier thresholds.
const (
	SkillTierHighMin   = 70
	SkillTierMediumMin = 40
)

const DefaultSkillProficiency = 50

// Skill is a named skill with a 0-100 proficiency.
type Skill struct {
	BaseModel
	Category    SkillCategory `gorm:"type:varchar(20);not null;index" form:"category" validate:"required,oneof=frontend backend database tools other"`
	Name        string        `gorm:"type:varchar(100);not null" form:"name" validate:"required,max=100"`
	Description string        `gorm:"type:text" form:"description"`
	Proficiency int           `gorm:"not null" form:"proficiency" validate:"gte=0,lte=100"`
	Icon        string        `gorm:"type:varchar(50)" form:"icon" validate:"max=50"`
	Order       int           `gorm:"column:sort_order;not null;index" form:"order"`
}

func NewSkill() Skill {
	return Skill{Category: SkillCategoryOther, Proficiency: DefaultSkillProficiency}
}

func (s *Skill) BeforeSave(tx *gorm.DB) error {
	return Validate(s)
}

// Tier buckets proficiency for display: "high" (>=70), "medium" (>=40) or "low".
func (s Skill) Tier() string {
	switch {
	case s.Proficiency >= SkillTierHighMin:
		return "high"
	case s.Proficiency >= SkillTierMediumMin:
		return "medium"
	default:
		return "low"
	}
}

// TierColor is the bar colour of Tier.
func (s Skill) TierColor() string {
	switch s.Tier() {
	case "high":
		return "#4CAF50"
	case "medium":
		return "#FFC107"
	default:
		return "#F44336"
	}
}
