package handlers

import (
	"portfolio.site/pkg/renderer"
	"portfolio.site/services"

	"github.com/gofiber/fiber/v2"
)

type HomeHandler struct {
	service services.IDashboardService
}

// NewHomeHandler creates the dashboard home handler.
func NewHomeHandler(service services.IDashboardService) *HomeHandler {
	return &HomeHandler{service: service}
}

// HomePage shows record counts and the latest messages.
func (h *HomeHandler) HomePage(c *fiber.Ctx) error {
	summary, err := h.service.Summary(c.UserContext())
	if err != nil {
		return err
	}
	return renderer.RenderWithFlash(c, "dashboard/home", dashboardLayout, fiber.Map{
		"Title":   "Dashboard",
		"Summary": summary,
	})
}
