package services

import (
	"context"
	"errors"

	"portfolio.site/configs/configslog"
	"portfolio.site/models"
	"portfolio.site/repositories"

	"go.uber.org/zap"
)

type ProfileServiceError string

func (e ProfileServiceError) Error() string { return string(e) }

const (
	ErrProfileImageLimit    ProfileServiceError = "a profile can have at most 6 slider images"
	ErrProfileImageNotFound ProfileServiceError = "profile image not found"
	ErrProfileImageRequired ProfileServiceError = "an image file is required"
)

// IProfileService manages the single profile and its slider images.
type IProfileService interface {
	Load(ctx context.Context) (*models.Profile, error)
	Create(ctx context.Context, profile *models.Profile) (*models.Profile, error)
	Update(ctx context.Context, profile *models.Profile) error
	AddImage(ctx context.Context, path string, order int) (*models.ProfileImage, error)
	DeleteImage(ctx context.Context, id uint) (*models.ProfileImage, error)
}

type ProfileService struct {
	repo repositories.IProfileRepository
}

// NewProfileService creates the profile service.
func NewProfileService(repo repositories.IProfileRepository) IProfileService {
	return &ProfileService{repo: repo}
}

// Load returns the profile, creating the default one on first use.
func (s *ProfileService) Load(ctx context.Context) (*models.Profile, error) {
	profile, err := s.repo.Load(ctx)
	if err != nil {
		return nil, storeError("load profile", err)
	}
	return profile, nil
}

// Create never adds a second profile: when one exists it is returned unchanged.
func (s *ProfileService) Create(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	stored, err := s.repo.Create(ctx, profile)
	if err != nil {
		return nil, storeError("create profile", err)
	}
	return stored, nil
}

// Update keeps the stored file references when the form left them empty.
func (s *ProfileService) Update(ctx context.Context, profile *models.Profile) error {
	current, err := s.Load(ctx)
	if err != nil {
		return err
	}
	if profile.ProfileImage == "" {
		profile.ProfileImage = current.ProfileImage
	}
	if profile.ResumeFile == "" {
		profile.ResumeFile = current.ResumeFile
	}
	if err := s.repo.Update(ctx, profile); err != nil {
		return storeError("update profile", err)
	}
	configslog.SLog.Info("Profile updated")
	return nil
}

// AddImage stores a slider image at path. The image count is checked and the row
// inserted in one transaction so the limit holds.
func (s *ProfileService) AddImage(ctx context.Context, path string, order int) (*models.ProfileImage, error) {
	if path == "" {
		return nil, ErrProfileImageRequired
	}
	image := &models.ProfileImage{Image: path, Order: order}
	err := s.repo.InTx(ctx, func(ctx context.Context) error {
		if _, err := s.Load(ctx); err != nil {
			return err
		}
		count, err := s.repo.CountImages(ctx)
		if err != nil {
			return storeError("count profile images", err)
		}
		if count >= models.MaxProfileImages {
			return ErrProfileImageLimit
		}
		if err := s.repo.AddImage(ctx, image); err != nil {
			configslog.Log.Error("Profile image could not be added", zap.String("path", path), zap.Error(err))
			return storeError("add profile image", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return image, nil
}

// DeleteImage removes the image row and returns it so the caller can drop the file.
func (s *ProfileService) DeleteImage(ctx context.Context, id uint) (*models.ProfileImage, error) {
	image, err := s.repo.GetImage(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProfileImageNotFound
		}
		return nil, storeError("get profile image", err)
	}
	if err := s.repo.DeleteImage(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProfileImageNotFound
		}
		return nil, storeError("delete profile image", err)
	}
	return image, nil
}

var _ IProfileService = (*ProfileService)(nil)
