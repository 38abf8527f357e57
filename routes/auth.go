package routes

import (
	authHandlers "portfolio.site/handlers/auth"
	"portfolio.site/middlewares"

	"github.com/gofiber/fiber/v2"
)

func registerAuthRoutes(app *fiber.App, c *container) {
	authHandler := authHandlers.NewAuthHandler(c.auth)
	authGroup := app.Group("/auth")

	guestRoutes := authGroup.Group("")
	guestRoutes.Use(middlewares.GuestMiddleware)
	guestRoutes.Get("/login", authHandler.ShowLogin)
	guestRoutes.Post("/login", authHandler.Login)

	userRoutes := authGroup.Group("")
	userRoutes.Use(middlewares.AuthMiddleware, middlewares.StatusMiddleware(c.auth))
	userRoutes.Post("/logout", authHandler.Logout)
	userRoutes.Get("/password", authHandler.ShowPassword)
	userRoutes.Post("/password", authHandler.UpdatePassword)
}
