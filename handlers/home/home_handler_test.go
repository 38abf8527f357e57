package home

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"portfolio.site/database/testdb"
	"portfolio.site/models"
	"portfolio.site/repositories"
	"portfolio.site/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"gorm.io/gorm"
)

type stubNotifier struct{ err error }

func (s stubNotifier) Notify(ctx context.Context, n services.Notification) error { return s.err }

type brokenContact struct{}

func (brokenContact) Submit(ctx context.Context, sub services.ContactSubmission) (*models.ContactMessage, error) {
	return nil, &services.PersistenceError{Op: "store contact message", Err: errors.New("database is locked")}
}

func writeViews(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"layouts/public_layout.html": `<title>{{.Title}}</title>{{embed}}`,
		"public/home.html": `{{range .Page.Projects}}<p class="project">{{.Title}}</p>{{end}}` +
			`{{range .SkillGroups}}<h3>{{.Label}}</h3>{{range .Skills}}<span class="tier-{{.Tier}}">{{.Name}}</span>{{end}}{{end}}` +
			`{{range .Page.Testimonials}}<q>{{.Name}}</q>{{end}}`,
	}
	for name, body := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func newTestApp(t *testing.T, db *gorm.DB, contact services.IContactService) *fiber.App {
	t.Helper()
	return newAppWithViews(t, html.New(writeViews(t), ".html"), db, contact)
}

func newAppWithViews(t *testing.T, views fiber.Views, db *gorm.DB, contact services.IContactService) *fiber.App {
	t.Helper()
	app := fiber.New(fiber.Config{Views: views})

	settingsRepo := repositories.NewSiteSettingsRepository(db)
	home := services.NewHomeService(services.HomeRepositories{
		Profile:     repositories.NewProfileRepository(db),
		Settings:    settingsRepo,
		Experience:  repositories.NewExperienceRepository(db),
		Education:   repositories.NewEducationRepository(db),
		Skill:       repositories.NewSkillRepository(db),
		Project:     repositories.NewProjectRepository(db),
		Testimonial: repositories.NewTestimonialRepository(db),
	})
	if contact == nil {
		contact = services.NewContactService(repositories.NewContactMessageRepository(db), settingsRepo, stubNotifier{err: errors.New("smtp: connection refused")}, 0)
	}

	h := NewHomeHandler(home, contact)
	app.Get("/", h.Index)
	app.Post("/", h.Contact)
	return app
}

func postForm(t *testing.T, app *fiber.App, form url.Values) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, body
}

func TestContactSuccessEvenWhenNotificationFails(t *testing.T) {
	db := testdb.Open(t)
	app := newTestApp(t, db, nil)

	status, body := postForm(t, app, url.Values{"name": {"Ada"}, "email": {"ada@example.com"}, "message": {"Hello"}})
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if body["status"] != "success" || body["message"] != "Message sent successfully!" {
		t.Errorf("body = %v", body)
	}

	var msgs []models.ContactMessage
	if err := db.Find(&msgs).Error; err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 1 || msgs[0].IsRead || msgs[0].IsReplied || msgs[0].Subject != "" {
		t.Errorf("stored messages = %+v", msgs)
	}
}

func TestContactMissingMessage(t *testing.T) {
	db := testdb.Open(t)
	app := newTestApp(t, db, nil)

	status, body := postForm(t, app, url.Values{"name": {"Ada"}, "email": {"ada@example.com"}})
	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if body["status"] != "error" || body["message"] == "" {
		t.Errorf("body = %v", body)
	}
	errs, _ := body["errors"].(map[string]interface{})
	if _, ok := errs["message"]; !ok {
		t.Errorf("errors = %v, want an entry for message", body["errors"])
	}

	var n int64
	db.Model(&models.ContactMessage{}).Count(&n)
	if n != 0 {
		t.Errorf("messages = %d, want 0", n)
	}
}

func TestContactStorageFailure(t *testing.T) {
	app := newTestApp(t, testdb.Open(t), brokenContact{})

	status, body := postForm(t, app, url.Values{"name": {"Ada"}, "email": {"ada@example.com"}, "message": {"Hello"}})
	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if body["status"] != "error" || body["message"] != contactFailedMessage {
		t.Errorf("body = %v", body)
	}
}

func TestIndexRendersPublicRecords(t *testing.T) {
	db := testdb.Open(t)
	for _, r := range []interface{}{
		&models.Project{Title: "Visible", Description: "d", Technologies: "Go", Status: models.ProjectStatusCompleted},
		&models.Project{Title: "Secret", Description: "d", Technologies: "Go", Status: models.ProjectStatusPlanned},
		&models.Skill{Category: models.SkillCategoryBackend, Name: "Go", Proficiency: 85},
		&models.Skill{Category: models.SkillCategoryBackend, Name: "Rust", Proficiency: 45, Order: 1},
		&models.Skill{Category: models.SkillCategoryBackend, Name: "COBOL", Proficiency: 15, Order: 2},
		&models.Testimonial{Name: "Quiet", Position: "PM", Testimonial: "t", Rating: 4, IsActive: false},
	} {
		if err := db.Create(r).Error; err != nil {
			t.Fatal(err)
		}
	}
	app := newTestApp(t, db, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	page := string(raw)

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, body %s", resp.StatusCode, page)
	}
	for _, want := range []string{"<title>N:PORTFOLIO</title>", "Visible", `class="tier-high">Go`, `class="tier-medium">Rust`, `class="tier-low">COBOL`} {
		if !strings.Contains(page, want) {
			t.Errorf("page does not contain %q:\n%s", want, page)
		}
	}
	for _, hidden := range []string{"Secret", "Quiet"} {
		if strings.Contains(page, hidden) {
			t.Errorf("page shows %q", hidden)
		}
	}
}
