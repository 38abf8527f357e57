package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio.site/configs"
	"portfolio.site/configs/configsdatabase"
	"portfolio.site/configs/configsenv"
	"portfolio.site/configs/configslog"
	"portfolio.site/configs/configsmail"
	"portfolio.site/database"
	"portfolio.site/pkg/uploads"
	"portfolio.site/routes"
	"portfolio.site/services"

	"go.uber.org/zap"
)

func main() {
	envErr := configsenv.LoadEnv()
	configslog.InitLogger()
	defer configslog.SyncLogger()
	if envErr != nil {
		configslog.SLog.Infof(".env not loaded (%v), using process environment", envErr)
	}

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	if configsenv.GetEnvBool("AUTO_MIGRATE", false) {
		if err := database.RunMigrationsInOrder(configsdatabase.GetDB()); err != nil {
			configslog.Log.Fatal("Auto migration failed", zap.Error(err))
		}
	}

	mailCfg := configsmail.ConfigFromEnv()
	app := configs.NewApp()
	routes.SetupRoutes(app, configsdatabase.GetDB(), routes.Options{
		StaticDir:        configsenv.GetEnv("STATIC_DIR", "./public"),
		Files:            uploads.NewStore(configsenv.GetEnv("MEDIA_ROOT", "./media")),
		Notifier:         services.NewNotifier(mailCfg),
		NotifyTimeout:    mailCfg.Timeout,
		ContactRateLimit: configsenv.GetEnvInt("CONTACT_RATE_LIMIT", 5),
		MaxLoginFailures: configsenv.GetEnvInt("LOGIN_MAX_FAILURES", services.DefaultMaxLoginFailures),
		LoginLockout:     configsenv.GetEnvDuration("LOGIN_LOCKOUT", services.DefaultLoginLockout),
	})

	addr := configsenv.GetEnv("APP_HOST", "0.0.0.0") + ":" + configsenv.GetEnv("APP_PORT", "3000")
	go func() {
		configslog.SLog.Infof("Server listening on %s", addr)
		if err := app.Listen(addr); err != nil {
			configslog.Log.Fatal("Server could not start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	configslog.SLog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), configsenv.GetEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second))
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		configslog.Log.Error("Server shutdown failed", zap.Error(err))
	}
	configslog.SLog.Info("Server stopped")
}
