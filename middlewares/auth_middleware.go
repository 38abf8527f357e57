package middlewares

import (
	"portfolio.site/configs/configslog"
	"portfolio.site/pkg/flashmessages"
	"portfolio.site/services"
	"portfolio.site/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const loginPath = "/auth/login"

// AuthMiddleware lets only logged-in users through.
func AuthMiddleware(c *fiber.Ctx) error {
	if id, ok := c.Locals("userID").(uint); ok && id != 0 {
		return c.Next()
	}
	if c.Method() == fiber.MethodGet {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Please log in to continue.")
	}
	return c.Redirect(loginPath, fiber.StatusSeeOther)
}

// GuestMiddleware sends logged-in users to the dashboard.
func GuestMiddleware(c *fiber.Ctx) error {
	if id, ok := c.Locals("userID").(uint); ok && id != 0 {
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	}
	return c.Next()
}

// StatusMiddleware ends the session of users that were deleted or disabled since login.
func StatusMiddleware(auth services.IAuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, _ := c.Locals("userID").(uint)
		user, err := auth.GetUser(c.UserContext(), id)
		if err == nil && user.IsActive {
			return c.Next()
		}
		configslog.Log.Warn("Session of missing or inactive user ended", zap.Uint("user_id", id), zap.Error(err))
		if logoutErr := utils.LogoutSession(c); logoutErr != nil {
			configslog.Log.Error("Session could not be destroyed", zap.Error(logoutErr))
		}
		return c.Redirect(loginPath, fiber.StatusSeeOther)
	}
}
