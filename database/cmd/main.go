package main

import (
	"flag"
	"os"

	"portfolio.site/configs/configsdatabase"
	"portfolio.site/configs/configsenv"
	"portfolio.site/configs/configslog"
	"portfolio.site/database"
	"portfolio.site/database/seeders"

	"go.uber.org/zap"
)

func main() {
	envErr := configsenv.LoadEnv()
	configslog.InitLogger()
	defer configslog.SyncLogger()
	if envErr != nil {
		configslog.SLog.Infof(".env not loaded (%v), using process environment", envErr)
	}

	migrateFlag := flag.Bool("migrate", false, "Run database migrations")
	seedFlag := flag.Bool("seed", false, "Run seeders (singleton records and admin user)")
	resetPassword := flag.String("reset-password", "", "Reset the password of this user to ADMIN_PASSWORD")
	flag.Parse()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	db := configsdatabase.GetDB()

	if *resetPassword != "" {
		if err := seeders.ResetPassword(db, *resetPassword, os.Getenv("ADMIN_PASSWORD")); err != nil {
			configslog.Log.Error("Password reset failed", zap.String("username", *resetPassword), zap.Error(err))
			os.Exit(1)
		}
		return
	}

	configslog.SLog.Info("Running database initialization...")
	opts := database.SeedOptions{
		AdminUsername: configsenv.GetEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}
	if err := database.Initialize(db, *migrateFlag, *seedFlag, opts); err != nil {
		configslog.Log.Error("Database initialization failed", zap.Error(err))
		os.Exit(1)
	}
	configslog.SLog.Info("Database initialization finished.")
}
