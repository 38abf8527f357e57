package home

import (
	"portfolio.site/configs/configslog"
	"portfolio.site/pkg/renderer"
	"portfolio.site/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const contactFailedMessage = "Your message could not be sent. Please try again later."

// HomeHandler serves the public page and its contact form.
type HomeHandler struct {
	home    services.IHomeService
	contact services.IContactService
}

// NewHomeHandler creates the public page handler.
func NewHomeHandler(home services.IHomeService, contact services.IContactService) *HomeHandler {
	return &HomeHandler{home: home, contact: contact}
}

// Index renders the portfolio. Store failures are passed to the app error handler.
func (h *HomeHandler) Index(c *fiber.Ctx) error {
	data, err := h.home.GetHomePage(c.UserContext())
	if err != nil {
		return err
	}
	return renderer.Render(c, "public/home", "layouts/public_layout", fiber.Map{
		"Title":       data.Settings.SiteTitle,
		"Page":        data,
		"SkillGroups": data.SkillsByCategory(),
	})
}

// Contact accepts the contact form and answers with a JSON status.
func (h *HomeHandler) Contact(c *fiber.Ctx) error {
	var sub services.ContactSubmission
	if err := c.BodyParser(&sub); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid form data."})
	}

	if _, err := h.contact.Submit(c.UserContext(), sub); err != nil {
		if ve, ok := services.IsValidation(err); ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status":  "error",
				"message": ve.Error(),
				"errors":  ve.Fields,
			})
		}
		configslog.Log.Error("Contact submission failed", zap.String("ip", c.IP()), zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": contactFailedMessage})
	}

	return c.JSON(fiber.Map{"status": "success", "message": services.ContactSuccessMessage})
}
