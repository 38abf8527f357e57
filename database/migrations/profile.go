package migrations

import (
	"portfolio.site/configs/configslog"
	"portfolio.site/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateProfileTables creates profiles and profile_images (images depend on profiles).
func MigrateProfileTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating profiles and profile_images tables...")
	if err := db.AutoMigrate(&models.Profile{}, &models.ProfileImage{}); err != nil {
		configslog.Log.Error("Failed to migrate profile tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Profile tables migrated successfully")
	return nil
}
