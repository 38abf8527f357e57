package seeders

import (
	"errors"

	"portfolio.site/configs/configslog"
	"portfolio.site/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedSingletons makes sure the Profile and SiteSettings rows exist at their fixed id.
// Existing rows are left untouched.
func SeedSingletons(db *gorm.DB) error {
	configslog.SLog.Info("Checking singleton records...")

	var settings models.SiteSettings
	err := db.First(&settings, models.SingletonID).Error
	switch {
	case err == nil:
		configslog.SLog.Debug("Site settings already exist, skipping.")
	case errors.Is(err, gorm.ErrRecordNotFound):
		defaults := models.DefaultSiteSettings()
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&defaults).Error; err != nil {
			configslog.Log.Error("Site settings could not be created", zap.Error(err))
			return err
		}
		configslog.SLog.Info("Site settings created with defaults.")
	default:
		configslog.Log.Error("Database error while checking site settings", zap.Error(err))
		return err
	}

	var profile models.Profile
	err = db.First(&profile, models.SingletonID).Error
	switch {
	case err == nil:
		configslog.SLog.Debug("Profile already exists, skipping.")
	case errors.Is(err, gorm.ErrRecordNotFound):
		defaults := models.DefaultProfile()
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Omit(clause.Associations).Create(&defaults).Error; err != nil {
			configslog.Log.Error("Profile could not be created", zap.Error(err))
			return err
		}
		configslog.SLog.Infof("Profile created with defaults (%s).", defaults.Name)
	default:
		configslog.Log.Error("Database error while checking profile", zap.Error(err))
		return err
	}

	return nil
}
