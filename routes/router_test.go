package routes

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"portfolio.site/database/testdb"
	"portfolio.site/pkg/uploads"
	"portfolio.site/services"

	"github.com/gofiber/fiber/v2"
)

func newRoutedApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	SetupRoutes(app, testdb.Open(t), Options{
		StaticDir: t.TempDir(),
		Files:     uploads.NewStore(t.TempDir()),
		Notifier:  services.LogNotifier{},
	})
	return app
}

func TestRoutes(t *testing.T) {
	app := newRoutedApp(t)

	form := url.Values{"name": {"Ada"}, "email": {"ada@example.com"}, "message": {"Hello"}}
	contact := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	contact.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	tests := []struct {
		name     string
		req      *http.Request
		status   int
		location string
	}{
		{"health check", httptest.NewRequest(http.MethodGet, "/healthz", nil), fiber.StatusOK, ""},
		{"dashboard needs login", httptest.NewRequest(http.MethodGet, "/dashboard", nil), fiber.StatusSeeOther, "/auth/login"},
		{"inbox needs login", httptest.NewRequest(http.MethodGet, "/dashboard/messages", nil), fiber.StatusSeeOther, "/auth/login"},
		{"contact without csrf token", contact, fiber.StatusForbidden, ""},
		{"unknown path", httptest.NewRequest(http.MethodGet, "/nope", nil), fiber.StatusNotFound, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(tt.req, -1)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			if tt.location != "" && resp.Header.Get("Location") != tt.location {
				t.Errorf("Location = %q, want %q", resp.Header.Get("Location"), tt.location)
			}
		})
	}
}
