package services

import (
	"context"

	"portfolio.site/configs/configslog"
	"portfolio.site/models"
	"portfolio.site/repositories"
)

type ISiteSettingsService interface {
	Load(ctx context.Context) (*models.SiteSettings, error)
	Update(ctx context.Context, settings *models.SiteSettings) error
}

type SiteSettingsService struct {
	repo repositories.ISiteSettingsRepository
}

// NewSiteSettingsService creates the site settings service.
func NewSiteSettingsService(repo repositories.ISiteSettingsRepository) ISiteSettingsService {
	return &SiteSettingsService{repo: repo}
}

// Load returns the settings, creating the defaults on first use.
func (s *SiteSettingsService) Load(ctx context.Context) (*models.SiteSettings, error) {
	settings, err := s.repo.Load(ctx)
	if err != nil {
		return nil, storeError("load site settings", err)
	}
	return settings, nil
}

// Update writes settings into the singleton row. An empty favicon keeps the stored one.
func (s *SiteSettingsService) Update(ctx context.Context, settings *models.SiteSettings) error {
	current, err := s.Load(ctx)
	if err != nil {
		return err
	}
	if settings.Favicon == "" {
		settings.Favicon = current.Favicon
	}
	if err := s.repo.Save(ctx, settings); err != nil {
		return storeError("save site settings", err)
	}
	configslog.SLog.Info("Site settings updated")
	return nil
}

var _ ISiteSettingsService = (*SiteSettingsService)(nil)
