package handlers

import (
	"strconv"

	"portfolio.site/models"
	"portfolio.site/pkg/uploads"

	"github.com/gofiber/fiber/v2"
)

// EducationMeta describes the education screens.
func EducationMeta() ShowcaseMeta[models.Education] {
	return ShowcaseMeta[models.Education]{
		Slug: "education", Singular: "Education", Plural: "Education",
		Form:    educationForm,
		Columns: []string{"Degree", "Institution", "Period", "Order"},
		Row: func(e *models.Education) []string {
			return []string{e.Degree, e.Institution, e.Period(), strconv.Itoa(e.Order)}
		},
		New: func() models.Education { return models.Education{} },
	}
}

// ExperienceMeta describes the experience screens.
func ExperienceMeta() ShowcaseMeta[models.Experience] {
	return ShowcaseMeta[models.Experience]{
		Slug: "experiences", Singular: "Experience", Plural: "Experiences",
		Form:    experienceForm,
		Columns: []string{"Title", "Company", "Period", "Order"},
		Row: func(e *models.Experience) []string {
			return []string{e.Title, e.Company, e.Period(), strconv.Itoa(e.Order)}
		},
		New: func() models.Experience { return models.Experience{} },
	}
}

// SkillMeta describes the skill screens.
func SkillMeta() ShowcaseMeta[models.Skill] {
	return ShowcaseMeta[models.Skill]{
		Slug: "skills", Singular: "Skill", Plural: "Skills",
		Form:    skillForm,
		Columns: []string{"Name", "Category", "Proficiency", "Order"},
		Row: func(s *models.Skill) []string {
			return []string{s.Name, s.Category.Label(), strconv.Itoa(s.Proficiency) + "% (" + s.Tier() + ")", strconv.Itoa(s.Order)}
		},
		New: models.NewSkill,
	}
}

// ProjectMeta describes the project screens.
func ProjectMeta() ShowcaseMeta[models.Project] {
	return ShowcaseMeta[models.Project]{
		Slug: "projects", Singular: "Project", Plural: "Projects",
		Form:    projectForm,
		Columns: []string{"Title", "Status", "Featured", "Order"},
		Row: func(p *models.Project) []string {
			return []string{p.Title, p.Status.Label(), yesNo(p.Featured), strconv.Itoa(p.Order)}
		},
		New: models.NewProject,
		Files: func(c *fiber.Ctx, files *uploads.Store, p *models.Project, errs formErrors) {
			p.Image = upload(c, files, "image", "projects", p.Image, uploads.ImageExtensions, errs)
		},
		FileRefs: func(p *models.Project) []string { return []string{p.Image} },
	}
}

// TestimonialMeta describes the testimonial screens.
func TestimonialMeta() ShowcaseMeta[models.Testimonial] {
	return ShowcaseMeta[models.Testimonial]{
		Slug: "testimonials", Singular: "Testimonial", Plural: "Testimonials",
		Form:    testimonialForm,
		Columns: []string{"Name", "Position", "Company", "Rating", "Active", "Order"},
		Row: func(t *models.Testimonial) []string {
			return []string{t.Name, t.Position, t.Company, t.Stars(), yesNo(t.IsActive), strconv.Itoa(t.Order)}
		},
		New: models.NewTestimonial,
		Files: func(c *fiber.Ctx, files *uploads.Store, t *models.Testimonial, errs formErrors) {
			t.Avatar = upload(c, files, "avatar", "testimonials", t.Avatar, uploads.ImageExtensions, errs)
		},
		FileRefs: func(t *models.Testimonial) []string { return []string{t.Avatar} },
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
