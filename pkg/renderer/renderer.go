package renderer

import (
	"net/http"

	"portfolio.site/pkg/flashmessages"

	"github.com/gofiber/fiber/v2"
)

// Keys under which templates find flash messages.
const (
	FlashSuccessKeyView = "Success"
	FlashErrorKeyView   = "Error"
)

// Render renders view inside layout. The CSRF token, the current path and the
// logged-in user name are added unless data already has them.
func Render(c *fiber.Ctx, view, layout string, data fiber.Map, statusCode ...int) error {
	code := http.StatusOK
	if len(statusCode) > 0 {
		code = statusCode[0]
	}
	if data == nil {
		data = fiber.Map{}
	}
	if _, ok := data["CsrfToken"]; !ok {
		data["CsrfToken"] = c.Locals("csrf")
	}
	if _, ok := data["CurrentPath"]; !ok {
		data["CurrentPath"] = c.Path()
	}
	if _, ok := data["UserName"]; !ok {
		data["UserName"] = c.Locals("userName")
	}
	if layout == "" {
		return c.Status(code).Render(view, data)
	}
	return c.Status(code).Render(view, data, layout)
}

// SetFlashMessages copies pending flash messages into data.
func SetFlashMessages(data fiber.Map, fm flashmessages.FlashMessages) {
	if fm.Success != "" {
		data[FlashSuccessKeyView] = fm.Success
	}
	if fm.Error != "" {
		data[FlashErrorKeyView] = fm.Error
	}
}

// RenderWithFlash reads the pending flash messages and renders view.
func RenderWithFlash(c *fiber.Ctx, view, layout string, data fiber.Map, statusCode ...int) error {
	if data == nil {
		data = fiber.Map{}
	}
	if fm, err := flashmessages.GetFlashMessages(c); err == nil {
		SetFlashMessages(data, fm)
	}
	return Render(c, view, layout, data, statusCode...)
}
