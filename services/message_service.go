package services

import (
	"context"
	"errors"

	"portfolio.site/configs/configslog"
	"portfolio.site/models"
	"portfolio.site/repositories"
)

type MessageServiceError string

func (e MessageServiceError) Error() string { return string(e) }

const (
	ErrMessageNotFound   MessageServiceError = "message not found"
	ErrNoMessagesChosen  MessageServiceError = "no messages selected"
	ErrUnknownBulkAction MessageServiceError = "unknown bulk action"
)

// Bulk actions offered on the inbox list.
const (
	BulkMarkRead    = "mark_read"
	BulkMarkReplied = "mark_replied"
)

// IMessageService is the dashboard inbox.
type IMessageService interface {
	List(ctx context.Context, filter repositories.MessageFilter) ([]models.ContactMessage, error)
	Open(ctx context.Context, id uint) (*models.ContactMessage, error)
	MarkRead(ctx context.Context, ids []uint) (int64, error)
	MarkReplied(ctx context.Context, ids []uint) (int64, error)
	ApplyBulk(ctx context.Context, action string, ids []uint) (int64, error)
	Delete(ctx context.Context, id uint) error
	CountUnread(ctx context.Context) (int64, error)
}

type MessageService struct {
	repo repositories.IContactMessageRepository
}

// NewMessageService creates the inbox service.
func NewMessageService(repo repositories.IContactMessageRepository) IMessageService {
	return &MessageService{repo: repo}
}

// List returns messages newest first, filtered by filter.
func (s *MessageService) List(ctx context.Context, filter repositories.MessageFilter) ([]models.ContactMessage, error) {
	msgs, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, storeError("list messages", err)
	}
	return msgs, nil
}

// Open returns a message and marks it read.
func (s *MessageService) Open(ctx context.Context, id uint) (*models.ContactMessage, error) {
	msg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, storeError("get message", err)
	}
	if !msg.IsRead {
		if _, err := s.repo.MarkRead(ctx, []uint{id}); err != nil {
			return nil, storeError("mark message read", err)
		}
		msg.IsRead = true
	}
	return msg, nil
}

// MarkRead flags ids as read and returns the number of updated rows.
func (s *MessageService) MarkRead(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, ErrNoMessagesChosen
	}
	n, err := s.repo.MarkRead(ctx, ids)
	if err != nil {
		return 0, storeError("mark messages read", err)
	}
	configslog.SLog.Infof("%d message(s) marked as read", n)
	return n, nil
}

// MarkReplied also marks the messages read.
func (s *MessageService) MarkReplied(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, ErrNoMessagesChosen
	}
	n, err := s.repo.MarkReplied(ctx, ids)
	if err != nil {
		return 0, storeError("mark messages replied", err)
	}
	configslog.SLog.Infof("%d message(s) marked as replied", n)
	return n, nil
}

// ApplyBulk runs a named bulk action ("mark_read" or "mark_replied") on ids.
func (s *MessageService) ApplyBulk(ctx context.Context, action string, ids []uint) (int64, error) {
	switch action {
	case BulkMarkRead:
		return s.MarkRead(ctx, ids)
	case BulkMarkReplied:
		return s.MarkReplied(ctx, ids)
	default:
		return 0, ErrUnknownBulkAction
	}
}

// Delete removes one message.
func (s *MessageService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrMessageNotFound
		}
		return storeError("delete message", err)
	}
	return nil
}

func (s *MessageService) CountUnread(ctx context.Context) (int64, error) {
	n, err := s.repo.CountUnread(ctx)
	if err != nil {
		return 0, storeError("count unread messages", err)
	}
	return n, nil
}

var _ IMessageService = (*MessageService)(nil)
