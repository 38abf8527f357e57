package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolio.site/models"

	"github.com/gofiber/fiber/v2"
)

func posted(m map[string]string) func(string) string {
	return func(name string) string { return m[name] }
}

func TestSkillFormDecode(t *testing.T) {
	s := models.NewSkill()
	errs := skillForm.Decode(&s, posted(map[string]string{
		"name":        "Go",
		"category":    "backend",
		"proficiency": "85",
		"icon":        "fab fa-golang",
		"order":       "2",
	}))
	if len(errs) != 0 {
		t.Fatalf("Decode errors = %v", errs)
	}
	if s.Name != "Go" || s.Category != models.SkillCategoryBackend || s.Proficiency != 85 || s.Order != 2 || s.Icon != "fab fa-golang" {
		t.Errorf("skill = %+v", s)
	}
	if err := models.Validate(&s); err != nil {
		t.Errorf("decoded skill invalid: %v", err)
	}
}

func TestExperienceFormDecode(t *testing.T) {
	var e models.Experience
	errs := experienceForm.Decode(&e, posted(map[string]string{
		"title":       "Engineer",
		"company":     "Acme",
		"description": "Built things",
		"start_date":  "2021-07-01",
		"end_date":    "2023-01-31",
		"is_current":  "true",
	}))
	if len(errs) != 0 {
		t.Fatalf("Decode errors = %v", errs)
	}
	if e.StartDate == nil || e.EndDate == nil || !e.IsCurrent {
		t.Errorf("timeline = %+v", e.Timeline)
	}
	if e.Heading() != "Engineer at Acme" {
		t.Errorf("Heading() = %q", e.Heading())
	}
}

func TestFormsHaveExpectedFiles(t *testing.T) {
	tests := []struct {
		name  string
		files bool
	}{
		{"profile", profileForm.HasFiles()},
		{"settings", settingsForm.HasFiles()},
		{"project", projectForm.HasFiles()},
		{"testimonial", testimonialForm.HasFiles()},
	}
	for _, tt := range tests {
		if !tt.files {
			t.Errorf("%s form has no file field", tt.name)
		}
	}
	if skillForm.HasFiles() || educationForm.HasFiles() || experienceForm.HasFiles() {
		t.Errorf("plain forms report file fields")
	}
}

func TestChanged(t *testing.T) {
	got := changed([]string{"a.png", "b.pdf"}, []string{"a.png", "c.pdf", ""})
	if len(got) != 1 || got[0] != "c.pdf" {
		t.Errorf("changed() = %v, want [c.pdf]", got)
	}
	if got := changed(nil, nil); len(got) != 0 {
		t.Errorf("changed(nil, nil) = %v", got)
	}
}

func TestFormIDs(t *testing.T) {
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		ids, err := formIDs(c, "ids")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).SendString(err.Error())
		}
		return c.JSON(ids)
	})

	tests := []struct {
		body   string
		status int
	}{
		{"ids=1&ids=7&action=mark_read", fiber.StatusOK},
		{"action=mark_read", fiber.StatusOK},
		{"ids=1&ids=x", fiber.StatusBadRequest},
		{"ids=0", fiber.StatusBadRequest},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		resp, err := app.Test(req, -1)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != tt.status {
			t.Errorf("body %q: status = %d, want %d", tt.body, resp.StatusCode, tt.status)
		}
	}
}
