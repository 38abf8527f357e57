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

// IProfileRepository works on the single Profile row and its slider images.
type IProfileRepository interface {
	Get(ctx context.Context) (*models.Profile, error)
	Load(ctx context.Context) (*models.Profile, error)
	Create(ctx context.Context, profile *models.Profile) (*models.Profile, error)
	Update(ctx context.Context, profile *models.Profile) error
	Delete(ctx context.Context) error
	AddImage(ctx context.Context, image *models.ProfileImage) error
	GetImage(ctx context.Context, id uint) (*models.ProfileImage, error)
	DeleteImage(ctx context.Context, id uint) error
	CountImages(ctx context.Context) (int64, error)
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) IProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txContextKey).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Get returns the profile with its images, or ErrNotFound. It never writes.
func (r *ProfileRepository) Get(ctx context.Context) (*models.Profile, error) {
	var profile models.Profile
	err := r.getDB(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order(ImageOrder) }).
		First(&profile, models.SingletonID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("ProfileRepository.Get: DB error", zap.Error(err))
		return nil, err
	}
	return &profile, nil
}

// Load returns the profile, creating it with defaults when absent.
func (r *ProfileRepository) Load(ctx context.Context) (*models.Profile, error) {
	profile, err := r.Get(ctx)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	defaults := models.DefaultProfile()
	return r.Create(ctx, &defaults)
}

// Create inserts profile at the singleton id. When a profile already exists the
// insert is a no-op and the existing row is returned, so there is never a second row.
func (r *ProfileRepository) Create(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	if profile == nil {
		return nil, errors.New("profile to create cannot be nil")
	}
	profile.ID = models.SingletonID
	err := r.getDB(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Omit(clause.Associations).
		Create(profile).Error
	if err != nil {
		if !errors.Is(err, models.ErrValidation) {
			configslog.Log.Error("ProfileRepository.Create: DB error", zap.Error(err))
		}
		return nil, err
	}
	return r.Get(ctx)
}

// Update overwrites the profile columns, keeping created_at and the images.
func (r *ProfileRepository) Update(ctx context.Context, profile *models.Profile) error {
	if profile == nil {
		return errors.New("profile to update cannot be nil")
	}
	profile.ID = models.SingletonID
	result := r.getDB(ctx).Model(profile).Select("*").Omit("id", "created_at", clause.Associations).Updates(profile)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the profile together with its images.
func (r *ProfileRepository) Delete(ctx context.Context) error {
	return r.getDB(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("profile_id = ?", models.SingletonID).Delete(&models.ProfileImage{}).Error; err != nil {
			configslog.Log.Error("ProfileRepository.Delete: images could not be deleted", zap.Error(err))
			return err
		}
		result := tx.Delete(&models.Profile{}, models.SingletonID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *ProfileRepository) AddImage(ctx context.Context, image *models.ProfileImage) error {
	if image == nil {
		return errors.New("image to add cannot be nil")
	}
	image.ProfileID = models.SingletonID
	return r.getDB(ctx).Create(image).Error
}

func (r *ProfileRepository) GetImage(ctx context.Context, id uint) (*models.ProfileImage, error) {
	var image models.ProfileImage
	err := r.getDB(ctx).Where("profile_id = ?", models.SingletonID).First(&image, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &image, nil
}

func (r *ProfileRepository) DeleteImage(ctx context.Context, id uint) error {
	result := r.getDB(ctx).Where("profile_id = ?", models.SingletonID).Delete(&models.ProfileImage{}, id)
	if result.Error != nil {
		configslog.Log.Error("ProfileRepository.DeleteImage: DB error", zap.Uint("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ProfileRepository) CountImages(ctx context.Context) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.ProfileImage{}).Where("profile_id = ?", models.SingletonID).Count(&count).Error
	return count, err
}

// InTx runs fn in one transaction. Repository calls made with the ctx passed to fn join it.
func (r *ProfileRepository) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.getDB(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(WithTx(ctx, tx))
	})
}

var _ IProfileRepository = (*ProfileRepository)(nil)
