package migrations

import (
	"portfolio.site/configs/configslog"
	"portfolio.site/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateSiteSettingsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating site_settings table...")
	if err := db.AutoMigrate(&models.SiteSettings{}); err != nil {
		configslog.Log.Error("Failed to migrate site_settings table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Site_settings table migrated successfully")
	return nil
}
