package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type ProjectStatus string

const (
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusPlanned    ProjectStatus = "planned"
)

// PublicProjectStatuses are the statuses shown on the public page.
var PublicProjectStatuses = []ProjectStatus{ProjectStatusCompleted, ProjectStatusInProgress}

var projectStatusLabels = map[ProjectStatus]string{
	ProjectStatusCompleted:  "Completed",
	ProjectStatusInProgress: "In Progress",
	ProjectStatusPlanned:    "Planned",
}

func (s ProjectStatus) Valid() bool {
	_, ok := projectStatusLabels[s]
	return ok
}

func (s ProjectStatus) Label() string {
	if l, ok := projectStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

// Project is a portfolio entry.
type Project struct {
	BaseModel
	Title       string `gorm:"type:varchar(200);not null" form:"title" validate:"required,max=200"`
	Description string `gorm:"type:text;not null" form:"description" validate:"required"`
	Image       string `gorm:"type:varchar(500)" form:"-"`
	ProjectURL  string `gorm:"column:project_url;type:varchar(200)" form:"project_url" validate:"omitempty,url,max=200"`
	GitHubURL   string `gorm:"column:github_url;type:varchar(200)" form:"github_url" validate:"omitempty,url,max=200"`

	// Technologies is a comma-separated tag list, see TechnologyList.
	Technologies string        `gorm:"type:varchar(300);not null" form:"technologies" validate:"required,max=300"`
	Status       ProjectStatus `gorm:"type:varchar(20);not null;index" form:"status" validate:"required,oneof=completed in_progress planned"`

	Featured bool `gorm:"not null;index" form:"featured"`
	Order    int  `gorm:"column:sort_order;not null;index" form:"order"`

	StartDate *time.Time `gorm:"type:date" form:"-"`
	EndDate   *time.Time `gorm:"type:date" form:"-"`
}

func NewProject() Project {
	return Project{Status: ProjectStatusCompleted}
}

func (p *Project) BeforeSave(tx *gorm.DB) error {
	if p.Status == "" {
		p.Status = ProjectStatusCompleted
	}
	return Validate(p)
}

// TechnologyList splits Technologies on commas, trimming blanks.
func (p Project) TechnologyList() []string {
	parts := strings.Split(p.Technologies, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
