package handlers

import (
	"errors"

	"portfolio.site/models"
	"portfolio.site/pkg/fieldsets"
	"portfolio.site/pkg/uploads"

	"github.com/gofiber/fiber/v2"
)

var profileForm = fieldsets.Form{
	{Title: "Basic Information", Fields: []fieldsets.Field{
		{Name: "name", Label: "Name", Type: fieldsets.Text, Required: true},
		{Name: "tagline", Label: "Tagline", Type: fieldsets.Text},
		{Name: "description", Label: "Description", Type: fieldsets.TextArea},
		{Name: "profile_image", Label: "Profile image", Type: fieldsets.File, Accept: "image/*"},
	}},
	{Title: "Contact Details", Fields: []fieldsets.Field{
		{Name: "email", Label: "Email", Type: fieldsets.Email, Required: true},
		{Name: "phone", Label: "Phone", Type: fieldsets.Text},
		{Name: "location", Label: "Location", Type: fieldsets.Text},
	}},
	{Title: "Social Links", Collapsed: true, Fields: []fieldsets.Field{
		{Name: "github_url", Label: "GitHub URL", Type: fieldsets.URL},
		{Name: "linkedin_url", Label: "LinkedIn URL", Type: fieldsets.URL},
		{Name: "twitter_url", Label: "Twitter URL", Type: fieldsets.URL},
	}},
	{Title: "Resume", Fields: []fieldsets.Field{
		{Name: "resume_file", Label: "Resume", Type: fieldsets.File, Accept: ".pdf,.doc,.docx"},
	}},
}

var settingsForm = fieldsets.Form{
	{Title: "Site Information", Fields: []fieldsets.Field{
		{Name: "site_title", Label: "Site title", Type: fieldsets.Text, Required: true},
		{Name: "site_description", Label: "Site description", Type: fieldsets.TextArea},
		{Name: "favicon", Label: "Favicon", Type: fieldsets.File, Accept: "image/*"},
	}},
	{Title: "SEO", Collapsed: true, Fields: []fieldsets.Field{
		{Name: "meta_keywords", Label: "Meta keywords", Type: fieldsets.Text},
		{Name: "google_analytics_id", Label: "Google Analytics ID", Type: fieldsets.Text},
	}},
	{Title: "Contact", Fields: []fieldsets.Field{
		{Name: "contact_email", Label: "Contact email", Type: fieldsets.Email, Help: "Contact form notifications are sent here."},
	}},
	{Title: "Features", Fields: []fieldsets.Field{
		{Name: "show_social_links", Label: "Show social links", Type: fieldsets.Checkbox},
		{Name: "enable_blog", Label: "Enable blog", Type: fieldsets.Checkbox},
		{Name: "enable_testimonials", Label: "Enable testimonials", Type: fieldsets.Checkbox},
	}},
}

var timelineFields = []fieldsets.Field{
	{Name: "start_date", Label: "Start date", Type: fieldsets.Date},
	{Name: "end_date", Label: "End date", Type: fieldsets.Date, Help: "Ignored when this is current."},
	{Name: "is_current", Label: "Current", Type: fieldsets.Checkbox},
}

var orderField = fieldsets.Field{Name: "order", Label: "Order", Type: fieldsets.Number, Help: "Lower numbers are shown first."}

var educationForm = fieldsets.Form{
	{Title: "Details", Fields: []fieldsets.Field{
		{Name: "institution", Label: "Institution", Type: fieldsets.Text, Required: true},
		{Name: "degree", Label: "Degree", Type: fieldsets.Text, Required: true},
		{Name: "field_of_study", Label: "Field of study", Type: fieldsets.Text},
		{Name: "description", Label: "Description", Type: fieldsets.TextArea},
	}},
	{Title: "Timeline", Fields: timelineFields},
	{Title: "Display", Fields: []fieldsets.Field{orderField}},
}

var experienceForm = fieldsets.Form{
	{Title: "Position Details", Fields: []fieldsets.Field{
		{Name: "title", Label: "Title", Type: fieldsets.Text, Required: true},
		{Name: "company", Label: "Company", Type: fieldsets.Text},
		{Name: "description", Label: "Description", Type: fieldsets.TextArea, Required: true},
	}},
	{Title: "Timeline", Fields: timelineFields},
	{Title: "Display", Fields: []fieldsets.Field{orderField}},
}

var skillForm = fieldsets.Form{
	{Title: "Skill Information", Fields: []fieldsets.Field{
		{Name: "name", Label: "Name", Type: fieldsets.Text, Required: true},
		{Name: "category", Label: "Category", Type: fieldsets.Select, Required: true, Choices: skillCategoryChoices()},
		{Name: "description", Label: "Description", Type: fieldsets.TextArea},
	}},
	{Title: "Details", Fields: []fieldsets.Field{
		{Name: "proficiency", Label: "Proficiency", Type: fieldsets.Number, Min: "0", Max: "100", Help: "0 to 100."},
		{Name: "icon", Label: "Icon", Type: fieldsets.Text, Help: "Icon class, e.g. fab fa-python."},
	}},
	{Title: "Display", Fields: []fieldsets.Field{orderField}},
}

var projectForm = fieldsets.Form{
	{Title: "Project Information", Fields: []fieldsets.Field{
		{Name: "title", Label: "Title", Type: fieldsets.Text, Required: true},
		{Name: "description", Label: "Description", Type: fieldsets.TextArea, Required: true},
		{Name: "image", Label: "Image", Type: fieldsets.File, Accept: "image/*"},
	}},
	{Title: "Links", Fields: []fieldsets.Field{
		{Name: "project_url", Label: "Project URL", Type: fieldsets.URL},
		{Name: "github_url", Label: "GitHub URL", Type: fieldsets.URL},
	}},
	{Title: "Details", Fields: []fieldsets.Field{
		{Name: "technologies", Label: "Technologies", Type: fieldsets.Text, Required: true, Help: "Comma separated, e.g. Go, PostgreSQL, Docker."},
		{Name: "status", Label: "Status", Type: fieldsets.Select, Required: true, Choices: projectStatusChoices()},
		{Name: "start_date", Label: "Start date", Type: fieldsets.Date},
		{Name: "end_date", Label: "End date", Type: fieldsets.Date},
	}},
	{Title: "Display Options", Fields: []fieldsets.Field{
		{Name: "featured", Label: "Featured", Type: fieldsets.Checkbox},
		orderField,
	}},
}

var testimonialForm = fieldsets.Form{
	{Title: "Person Details", Fields: []fieldsets.Field{
		{Name: "name", Label: "Name", Type: fieldsets.Text, Required: true},
		{Name: "position", Label: "Position", Type: fieldsets.Text, Required: true},
		{Name: "company", Label: "Company", Type: fieldsets.Text},
		{Name: "avatar", Label: "Avatar", Type: fieldsets.File, Accept: "image/*"},
	}},
	{Title: "Testimonial", Fields: []fieldsets.Field{
		{Name: "testimonial", Label: "Testimonial", Type: fieldsets.TextArea, Required: true},
		{Name: "rating", Label: "Rating", Type: fieldsets.Number, Min: "1", Max: "5"},
	}},
	{Title: "Display", Fields: []fieldsets.Field{
		{Name: "is_active", Label: "Active", Type: fieldsets.Checkbox},
		orderField,
	}},
}

func skillCategoryChoices() []fieldsets.Choice {
	out := make([]fieldsets.Choice, 0, len(models.SkillCategories))
	for _, c := range models.SkillCategories {
		out = append(out, fieldsets.Choice{Value: string(c), Label: c.Label()})
	}
	return out
}

func projectStatusChoices() []fieldsets.Choice {
	statuses := []models.ProjectStatus{models.ProjectStatusCompleted, models.ProjectStatusInProgress, models.ProjectStatusPlanned}
	out := make([]fieldsets.Choice, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, fieldsets.Choice{Value: string(s), Label: s.Label()})
	}
	return out
}

// formErrors collects per-field problems found while reading a form.
type formErrors map[string]string

// merge adds the fields of a validation error and reports whether err was one.
func (e formErrors) merge(err error) bool {
	var ve *models.ValidationError
	if !errors.As(err, &ve) {
		return false
	}
	for k, v := range ve.Fields {
		e[k] = v
	}
	return true
}

// upload stores the file posted in field, keeping current when nothing was posted.
func upload(c *fiber.Ctx, files *uploads.Store, field, dir, current string, allowed []string, errs formErrors) string {
	rel, err := files.SaveFormFile(c, field, dir, allowed)
	if err != nil {
		errs[field] = "file could not be uploaded: " + err.Error()
		return current
	}
	if rel == "" {
		return current
	}
	return rel
}
