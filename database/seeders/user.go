package seeders

import (
	"errors"
	"fmt"

	"portfolio.site/configs/configslog"
	"portfolio.site/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrAdminPasswordMissing is returned when no password is available for the admin account.
var ErrAdminPasswordMissing = errors.New("ADMIN_PASSWORD must be set to seed or reset the admin user")

// SeedAdminUser creates the dashboard account if it does not exist yet.
func SeedAdminUser(db *gorm.DB, username, password string) error {
	if username == "" {
		return errors.New("admin username cannot be empty")
	}

	var existing models.User
	err := db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		configslog.SLog.Infof("Admin user '%s' already exists, skipping.", username)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		configslog.Log.Error("Database error while checking admin user", zap.String("username", username), zap.Error(err))
		return err
	}
	if password == "" {
		return ErrAdminPasswordMissing
	}

	user := models.User{Username: username, IsActive: true}
	if err := user.SetPassword(password); err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	if err := db.Create(&user).Error; err != nil {
		configslog.Log.Error("Admin user could not be created", zap.String("username", username), zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Admin user '%s' created (ID: %d).", username, user.ID)
	return nil
}

// ResetPassword sets a new password on an existing account.
func ResetPassword(db *gorm.DB, username, password string) error {
	if password == "" {
		return ErrAdminPasswordMissing
	}
	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user '%s' does not exist", username)
		}
		return err
	}
	if err := user.SetPassword(password); err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := db.Model(&user).Update("password_hash", user.PasswordHash).Error; err != nil {
		return err
	}
	configslog.SLog.Infof("Password reset for user '%s'.", username)
	return nil
}
