package configs

import (
	"errors"
	"time"

	"portfolio.site/configs/configsenv"
	"portfolio.site/configs/configslog"
	"portfolio.site/pkg/renderer"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
)

// NewApp creates the Fiber application with the html template engine.
func NewApp() *fiber.App {
	viewsDir := configsenv.GetEnv("VIEWS_DIR", "./views")
	engine := html.New(viewsDir, ".html")
	engine.Reload(!configsenv.IsProduction())
	engine.AddFuncMap(renderer.TemplateFuncs())

	return fiber.New(fiber.Config{
		AppName:      configsenv.GetEnv("APP_NAME", "portfolio.site"),
		Views:        engine,
		BodyLimit:    configsenv.GetEnvInt("BODY_LIMIT_MB", 10) * 1024 * 1024,
		ReadTimeout:  configsenv.GetEnvDuration("HTTP_READ_TIMEOUT", 15*time.Second),
		WriteTimeout: configsenv.GetEnvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
		ErrorHandler: errorHandler,
	})
}

// errorHandler renders the error pages for anything a handler did not handle itself.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	if code >= fiber.StatusInternalServerError {
		configslog.Log.Error("Unhandled request error",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	if c.Accepts("application/json", "text/html") == "application/json" {
		return c.Status(code).JSON(fiber.Map{"status": "error", "message": statusMessage(code)})
	}

	view := "errors/500"
	title := "Server Error"
	if code == fiber.StatusNotFound {
		view = "errors/404"
		title = "Page Not Found"
	}
	if renderErr := c.Status(code).Render(view, fiber.Map{"Title": title}, "layouts/error_layout"); renderErr != nil {
		return c.Status(code).SendString(statusMessage(code))
	}
	return nil
}

func statusMessage(code int) string {
	if msg := utils.StatusMessage(code); msg != "" {
		return msg
	}
	return "Error"
}
