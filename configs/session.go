package configs

import (
	"time"

	"portfolio.site/configs/configsenv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// SetupSession returns the cookie session store used for admin login and flash messages.
func SetupSession() *session.Store {
	return session.New(session.Config{
		Expiration:     configsenv.GetEnvDuration("SESSION_EXPIRATION", 12*time.Hour),
		KeyLookup:      "cookie:portfolio_session",
		CookieSecure:   configsenv.IsProduction(),
		CookieHTTPOnly: true,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
	})
}

// SetupCSRF protects every unsafe method. The token is read from the
// X-CSRF-Token header (contact form XHR) or the _csrf form field (dashboard forms)
// and exposed to templates through c.Locals("csrf").
func SetupCSRF() fiber.Handler {
	fromHeader := csrf.CsrfFromHeader("X-CSRF-Token")
	fromForm := csrf.CsrfFromForm("_csrf")

	return csrf.New(csrf.Config{
		CookieName:     "csrf_",
		CookieSecure:   configsenv.IsProduction(),
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		Expiration:     configsenv.GetEnvDuration("CSRF_EXPIRATION", time.Hour),
		ContextKey:     "csrf",
		Extractor: func(c *fiber.Ctx) (string, error) {
			if token, err := fromHeader(c); err == nil {
				return token, nil
			}
			return fromForm(c)
		},
	})
}
