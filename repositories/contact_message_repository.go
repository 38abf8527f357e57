package repositories

import (
	"context"
	"errors"

	"portfolio.site/configs/configslog"
	"portfolio.site/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MessageFilter narrows the dashboard inbox. Nil fields match everything.
type MessageFilter struct {
	IsRead    *bool
	IsReplied *bool
}

// IContactMessageRepository stores contact form submissions.
type IContactMessageRepository interface {
	Create(ctx context.Context, msg *models.ContactMessage) error
	GetByID(ctx context.Context, id uint) (*models.ContactMessage, error)
	List(ctx context.Context, filter MessageFilter) ([]models.ContactMessage, error)
	MarkRead(ctx context.Context, ids []uint) (int64, error)
	MarkReplied(ctx context.Context, ids []uint) (int64, error)
	Delete(ctx context.Context, id uint) error
	CountUnread(ctx context.Context) (int64, error)
}

type ContactMessageRepository struct {
	db *gorm.DB
}

func NewContactMessageRepository(db *gorm.DB) IContactMessageRepository {
	return &ContactMessageRepository{db: db}
}

func (r *ContactMessageRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txContextKey).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Create inserts a new unread, unreplied message.
func (r *ContactMessageRepository) Create(ctx context.Context, msg *models.ContactMessage) error {
	if msg == nil {
		return errors.New("message to create cannot be nil")
	}
	msg.ID = 0
	msg.IsRead = false
	msg.IsReplied = false
	return r.getDB(ctx).Create(msg).Error
}

func (r *ContactMessageRepository) GetByID(ctx context.Context, id uint) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	err := r.getDB(ctx).First(&msg, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("ContactMessageRepository.GetByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &msg, nil
}

// List returns messages newest first.
func (r *ContactMessageRepository) List(ctx context.Context, filter MessageFilter) ([]models.ContactMessage, error) {
	q := r.getDB(ctx).Model(&models.ContactMessage{})
	if filter.IsRead != nil {
		q = q.Where("is_read = ?", *filter.IsRead)
	}
	if filter.IsReplied != nil {
		q = q.Where("is_replied = ?", *filter.IsReplied)
	}
	var msgs []models.ContactMessage
	if err := q.Order(MessageOrder).Find(&msgs).Error; err != nil {
		configslog.Log.Error("ContactMessageRepository.List: DB error", zap.Error(err))
		return nil, err
	}
	return msgs, nil
}

// MarkRead flips is_read on ids and returns the number of rows touched.
func (r *ContactMessageRepository) MarkRead(ctx context.Context, ids []uint) (int64, error) {
	return r.setFlags(ctx, ids, map[string]interface{}{"is_read": true})
}

// MarkReplied flips is_replied, and is_read with it.
func (r *ContactMessageRepository) MarkReplied(ctx context.Context, ids []uint) (int64, error) {
	return r.setFlags(ctx, ids, map[string]interface{}{"is_read": true, "is_replied": true})
}

// setFlags uses UpdateColumns so only the status flags can change after creation.
func (r *ContactMessageRepository) setFlags(ctx context.Context, ids []uint, flags map[string]interface{}) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.getDB(ctx).Model(&models.ContactMessage{}).Where("id IN ?", ids).UpdateColumns(flags)
	if result.Error != nil {
		configslog.Log.Error("ContactMessageRepository.setFlags: DB error", zap.Uints("ids", ids), zap.Error(result.Error))
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *ContactMessageRepository) Delete(ctx context.Context, id uint) error {
	result := r.getDB(ctx).Delete(&models.ContactMessage{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ContactMessageRepository) CountUnread(ctx context.Context) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.ContactMessage{}).Where("is_read = ?", false).Count(&count).Error
	return count, err
}

var _ IContactMessageRepository = (*ContactMessageRepository)(nil)
