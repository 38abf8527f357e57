package database

import (
	"errors"

	"portfolio.site/configs/configslog"
	"portfolio.site/database/migrations"
	"portfolio.site/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedOptions carries the admin account created by the seed step.
type SeedOptions struct {
	AdminUsername string
	AdminPassword string
}

// Initialize runs migrations and/or seeders inside one transaction.
func Initialize(db *gorm.DB, migrate bool, seed bool, opts SeedOptions) error {
	if !migrate && !seed {
		configslog.SLog.Info("Neither migrate nor seed flag given, nothing to do.")
		return nil
	}

	configslog.SLog.Info("Database initialization starting...")

	err := db.Transaction(func(tx *gorm.DB) error {
		if migrate {
			configslog.SLog.Info("Running migrations...")
			if err := RunMigrationsInOrder(tx); err != nil {
				configslog.Log.Error("Migration failed", zap.Error(err))
				return err
			}
			configslog.SLog.Info("Migrations completed.")
		} else {
			configslog.SLog.Info("Migrate flag not given, skipping migrations.")
		}

		if seed {
			configslog.SLog.Info("Running seeders...")
			if err := CheckAndRunSeeders(tx, opts); err != nil {
				configslog.Log.Error("Seeding failed", zap.Error(err))
				return err
			}
			configslog.SLog.Info("Seeders completed.")
		} else {
			configslog.SLog.Info("Seed flag not given, skipping seeders.")
		}
		return nil
	})
	if err != nil {
		configslog.SLog.Warn("Initialization rolled back.")
		return err
	}

	configslog.SLog.Info("Database initialization completed successfully")
	return nil
}

// RunMigrationsInOrder creates every table, parents before children.
func RunMigrationsInOrder(db *gorm.DB) error {
	steps := []struct {
		name string
		run  func(*gorm.DB) error
	}{
		{"users", migrations.MigrateUsersTable},
		{"site settings", migrations.MigrateSiteSettingsTable},
		{"profile", migrations.MigrateProfileTables},
		{"showcase", migrations.MigrateShowcaseTables},
		{"contact messages", migrations.MigrateContactMessagesTable},
	}

	for _, step := range steps {
		configslog.SLog.Infof(" -> Running %s migrations...", step.name)
		if err := step.run(db); err != nil {
			return err
		}
	}

	configslog.SLog.Info("All migrations ran successfully.")
	return nil
}

func CheckAndRunSeeders(db *gorm.DB, opts SeedOptions) error {
	if err := seeders.SeedSingletons(db); err != nil {
		return err
	}

	if opts.AdminUsername == "" {
		configslog.SLog.Info("No admin username given, skipping admin user seeder.")
		return nil
	}
	if err := seeders.SeedAdminUser(db, opts.AdminUsername, opts.AdminPassword); err != nil {
		if errors.Is(err, seeders.ErrAdminPasswordMissing) {
			configslog.SLog.Warn("ADMIN_PASSWORD is empty, admin user was not created.")
			return nil
		}
		return err
	}
	return nil
}
