package migrations

import (
	"errors"

	"portfolio.site/configs/configslog"
	"portfolio.site/models"

	"gorm.io/gorm"
)

func MigrateUsersTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating users table...")

	if err := db.AutoMigrate(&models.User{}); err != nil {
		errMsg := "users table could not be migrated: " + err.Error()
		configslog.Log.Error(errMsg)
		return errors.New(errMsg)
	}

	configslog.SLog.Info("Users table migrated.")
	return nil
}
