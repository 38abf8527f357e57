package repositories

import (
	"context"
	"errors"

	"portfolio.site/configs/configslog"
	"portfolio.site/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ISiteSettingsRepository reads and writes the settings singleton.
type ISiteSettingsRepository interface {
	Load(ctx context.Context) (*models.SiteSettings, error)
	Save(ctx context.Context, settings *models.SiteSettings) error
}

type SiteSettingsRepository struct {
	db *gorm.DB
}

func NewSiteSettingsRepository(db *gorm.DB) ISiteSettingsRepository {
	return &SiteSettingsRepository{db: db}
}

func (r *SiteSettingsRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txContextKey).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Load returns the settings row at models.SingletonID. The first call on an empty
// table inserts the defaults with ON CONFLICT DO NOTHING, so concurrent first loads
// still end with exactly one row; later calls only read.
func (r *SiteSettingsRepository) Load(ctx context.Context) (*models.SiteSettings, error) {
	settings, err := r.find(ctx)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	defaults := models.DefaultSiteSettings()
	if err := r.getDB(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&defaults).Error; err != nil {
		configslog.Log.Error("SiteSettingsRepository.Load: defaults could not be created", zap.Error(err))
		return nil, err
	}
	configslog.SLog.Info("Site settings created with defaults")
	return r.find(ctx)
}

func (r *SiteSettingsRepository) find(ctx context.Context) (*models.SiteSettings, error) {
	var settings models.SiteSettings
	err := r.getDB(ctx).First(&settings, models.SingletonID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("SiteSettingsRepository.find: DB error", zap.Error(err))
		return nil, err
	}
	return &settings, nil
}

// Save writes settings to the singleton slot, whatever ID the caller set.
func (r *SiteSettingsRepository) Save(ctx context.Context, settings *models.SiteSettings) error {
	if settings == nil {
		return errors.New("settings to save cannot be nil")
	}
	settings.ID = models.SingletonID
	return r.getDB(ctx).Save(settings).Error
}

var _ ISiteSettingsRepository = (*SiteSettingsRepository)(nil)
