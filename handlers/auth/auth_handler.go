package auth

import (
	"errors"
	"strings"

	"portfolio.site/configs/configslog"
	"portfolio.site/pkg/flashmessages"
	"portfolio.site/pkg/renderer"
	"portfolio.site/services"
	"portfolio.site/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AuthHandler struct {
	service services.IAuthService
}

// NewAuthHandler creates the login and account handler.
func NewAuthHandler(service services.IAuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// ShowLogin renders the login form.
func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	return renderer.RenderWithFlash(c, "auth/login", "layouts/auth_layout", fiber.Map{"Title": "Log in"})
}

// Login checks the credentials and starts a session. Failures go back to the form
// with a flash message; throttled clients get the lockout message.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	username := strings.TrimSpace(c.FormValue("username"))
	password := c.FormValue("password")
	if username == "" || password == "" {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Username and password are required.")
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	user, err := h.service.Authenticate(c.UserContext(), username, password, c.IP())
	if err != nil {
		var svcErr services.AuthServiceError
		msg := "Login failed. Please try again."
		if errors.As(err, &svcErr) {
			msg = svcErr.Error()
		} else {
			configslog.Log.Error("Login error", zap.String("username", username), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, msg)
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	if err := utils.LoginSession(c, user.ID, user.Username); err != nil {
		configslog.Log.Error("Session could not be started", zap.Uint("user_id", user.ID), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Login failed. Please try again.")
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}

// Logout ends the session.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := utils.LogoutSession(c); err != nil {
		configslog.Log.Warn("Logout could not destroy the session", zap.Error(err))
	}
	return c.Redirect("/auth/login", fiber.StatusSeeOther)
}

// ShowPassword renders the change password form.
func (h *AuthHandler) ShowPassword(c *fiber.Ctx) error {
	return renderer.RenderWithFlash(c, "auth/password", "layouts/dashboard_layout", fiber.Map{"Title": "Change password"})
}

// UpdatePassword changes the logged-in user's password after checking the current one.
func (h *AuthHandler) UpdatePassword(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	current := c.FormValue("current_password")
	next := c.FormValue("new_password")
	if next != c.FormValue("confirm_password") {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "The new passwords do not match.")
		return c.Redirect("/auth/password", fiber.StatusSeeOther)
	}
	if err := h.service.ChangePassword(c.UserContext(), userID, current, next); err != nil {
		var svcErr services.AuthServiceError
		msg := "Password could not be changed."
		if errors.As(err, &svcErr) {
			msg = svcErr.Error()
		} else {
			configslog.Log.Error("Password change failed", zap.Uint("user_id", userID), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, msg)
		return c.Redirect("/auth/password", fiber.StatusSeeOther)
	}
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Password changed.")
	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}
