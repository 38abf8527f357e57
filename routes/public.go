package routes

import (
	"time"

	homeHandlers "portfolio.site/handlers/home"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

const defaultContactRateLimit = 5

func registerPublicRoutes(app *fiber.App, c *container, contactRateLimit int) {
	if contactRateLimit <= 0 {
		contactRateLimit = defaultContactRateLimit
	}
	homeHandler := homeHandlers.NewHomeHandler(c.home, c.contact)

	app.Get("/", homeHandler.Index)
	app.Post("/", limiter.New(limiter.Config{
		Max:        contactRateLimit,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"status":  "error",
				"message": "Too many messages, please try again in a minute.",
			})
		},
	}), homeHandler.Contact)
}
