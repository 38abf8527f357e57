package routes

import (
	handlers "portfolio.site/handlers/dashboard"
	"portfolio.site/middlewares"
	"portfolio.site/pkg/uploads"
	"portfolio.site/services"

	"github.com/gofiber/fiber/v2"
)

func registerDashboardRoutes(app *fiber.App, c *container, files *uploads.Store) {
	homeHandler := handlers.NewHomeHandler(c.dashboard)
	profileHandler := handlers.NewProfileHandler(c.profile, files)
	settingsHandler := handlers.NewSettingsHandler(c.settings, files)
	messageHandler := handlers.NewMessageHandler(c.messages)

	dashboardGroup := app.Group("/dashboard")
	dashboardGroup.Use(
		middlewares.AuthMiddleware,
		middlewares.StatusMiddleware(c.auth),
	)

	dashboardGroup.Get("/", homeHandler.HomePage)

	// Singletons
	dashboardGroup.Get("/profile", profileHandler.ShowUpdate)
	dashboardGroup.Post("/profile", profileHandler.Update)
	dashboardGroup.Post("/profile/images", profileHandler.AddImage)
	dashboardGroup.Post("/profile/images/delete/:id", profileHandler.DeleteImage)
	dashboardGroup.Get("/settings", settingsHandler.ShowUpdate)
	dashboardGroup.Post("/settings", settingsHandler.Update)

	registerShowcase(dashboardGroup, handlers.NewShowcaseHandler(c.education, files, handlers.EducationMeta()))
	registerShowcase(dashboardGroup, handlers.NewShowcaseHandler(c.experiences, files, handlers.ExperienceMeta()))
	registerShowcase(dashboardGroup, handlers.NewShowcaseHandler(c.skills, files, handlers.SkillMeta()))
	registerShowcase(dashboardGroup, handlers.NewShowcaseHandler(c.projects, files, handlers.ProjectMeta()))
	registerShowcase(dashboardGroup, handlers.NewShowcaseHandler(c.testimonials, files, handlers.TestimonialMeta()))

	// Inbox
	dashboardGroup.Get("/messages", messageHandler.List)
	dashboardGroup.Post("/messages/bulk", messageHandler.Bulk)
	dashboardGroup.Get("/messages/:id", messageHandler.Show)
	dashboardGroup.Post("/messages/:id/replied", messageHandler.MarkReplied)
	dashboardGroup.Post("/messages/delete/:id", messageHandler.Delete)
}

func registerShowcase[T services.Showcase](group fiber.Router, h *handlers.ShowcaseHandler[T]) {
	base := "/" + h.Slug()
	group.Get(base, h.List)
	group.Get(base+"/create", h.ShowCreate)
	group.Post(base+"/create", h.Create)
	group.Get(base+"/update/:id", h.ShowUpdate)
	group.Post(base+"/update/:id", h.Update)
	group.Post(base+"/delete/:id", h.Delete)
}
