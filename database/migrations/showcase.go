package migrations

import (
	"fmt"

	"portfolio.site/configs/configslog"
	"portfolio.site/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateShowcaseTables creates the independent tables listed on the public page.
func MigrateShowcaseTables(db *gorm.DB) error {
	tables := []struct {
		name  string
		model interface{}
	}{
		{"education", &models.Education{}},
		{"experiences", &models.Experience{}},
		{"skills", &models.Skill{}},
		{"projects", &models.Project{}},
		{"testimonials", &models.Testimonial{}},
	}

	for _, t := range tables {
		configslog.SLog.Infof("Migrating %s table...", t.name)
		if err := db.AutoMigrate(t.model); err != nil {
			configslog.Log.Error("Failed to migrate table", zap.String("table", t.name), zap.Error(err))
			return fmt.Errorf("migrate %s: %w", t.name, err)
		}
	}
	configslog.SLog.Info("Showcase tables migrated successfully")
	return nil
}
