package routes

import (
	"strings"
	"time"

	"portfolio.site/configs"
	"portfolio.site/configs/configslog"
	"portfolio.site/pkg/uploads"
	"portfolio.site/services"
	"portfolio.site/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Options carries what the routes need besides the database.
type Options struct {
	StaticDir        string
	Files            *uploads.Store
	Notifier         services.Notifier
	NotifyTimeout    time.Duration
	ContactRateLimit int // submissions per minute per IP
	MaxLoginFailures int
	LoginLockout     time.Duration
}

// SetupRoutes registers middleware and every route of the site.
func SetupRoutes(app *fiber.App, db *gorm.DB, opts Options) {
	app.Use(recoverMiddleware.New())
	app.Use(logger.New())
	app.Use(initializeSessionAndLocals(configs.SetupSession()))
	app.Use(configs.SetupCSRF())

	app.Static("/static", opts.StaticDir)
	app.Static(strings.TrimSuffix(uploads.PublicPrefix, "/"), opts.Files.Root())

	app.Get("/healthz", healthHandler(db))

	c := newContainer(db, opts)
	registerAuthRoutes(app, c)
	registerDashboardRoutes(app, c, opts.Files)
	registerPublicRoutes(app, c, opts.ContactRateLimit)

	app.Use(notFoundHandler)
}

func initializeSessionAndLocals(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		utils.SetSessionStore(c, store)
		sess, err := utils.SessionStart(c)
		if err != nil {
			return c.Next()
		}
		if userID, idErr := utils.GetUserIDFromSession(sess); idErr == nil {
			c.Locals("userID", userID)
		}
		if userName, ok := sess.Get(utils.SessionUserNameKey).(string); ok {
			c.Locals("userName", userName)
		}
		return c.Next()
	}
}

func healthHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.UserContext())
		}
		if err != nil {
			configslog.Log.Error("Health check failed", zap.Error(err))
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "error", "database": "unreachable"})
		}
		return c.JSON(fiber.Map{"status": "ok", "database": "ok"})
	}
}

func notFoundHandler(c *fiber.Ctx) error {
	return fiber.ErrNotFound
}
