package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"portfolio.site/configs/configslog"
	"portfolio.site/models"
	"portfolio.site/repositories"

	"go.uber.org/zap"
)

// ContactSuccessMessage is shown to visitors after a stored submission.
const ContactSuccessMessage = "Message sent successfully!"

// DefaultNotifyTimeout bounds the owner notification when none is configured.
const DefaultNotifyTimeout = 10 * time.Second

// ContactSubmission is the public contact form.
type ContactSubmission struct {
	Name    string `form:"name" json:"name"`
	Email   string `form:"email" json:"email"`
	Message string `form:"message" json:"message"`
}

type IContactService interface {
	Submit(ctx context.Context, sub ContactSubmission) (*models.ContactMessage, error)
}

type ContactService struct {
	messages      repositories.IContactMessageRepository
	settings      repositories.ISiteSettingsRepository
	notifier      Notifier
	notifyTimeout time.Duration
}

// NewContactService creates the contact intake. A notifyTimeout of zero uses DefaultNotifyTimeout.
func NewContactService(messages repositories.IContactMessageRepository, settings repositories.ISiteSettingsRepository, notifier Notifier, notifyTimeout time.Duration) IContactService {
	if notifyTimeout <= 0 {
		notifyTimeout = DefaultNotifyTimeout
	}
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &ContactService{
		messages:      messages,
		settings:      settings,
		notifier:      notifier,
		notifyTimeout: notifyTimeout,
	}
}

// Submit stores the message and then notifies the owner. Only validation and storage
// failures are returned; once the row is written the call succeeds whatever the
// notification does.
func (s *ContactService) Submit(ctx context.Context, sub ContactSubmission) (*models.ContactMessage, error) {
	msg := &models.ContactMessage{
		Name:    strings.TrimSpace(sub.Name),
		Email:   strings.TrimSpace(sub.Email),
		Message: strings.TrimSpace(sub.Message),
	}
	if err := models.Validate(msg); err != nil {
		return nil, err
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		configslog.Log.Error("Contact message could not be stored", zap.String("email", msg.Email), zap.Error(err))
		return nil, storeError("store contact message", err)
	}
	configslog.SLog.Infof("Contact message stored: ID %d from %s", msg.ID, msg.Email)

	s.notifyOwner(ctx, msg)
	return msg, nil
}

// notifyOwner never returns an error and never panics. It runs on a context detached
// from the request so a client disconnect does not cut it short, bounded by notifyTimeout.
func (s *ContactService) notifyOwner(ctx context.Context, msg *models.ContactMessage) {
	defer func() {
		if r := recover(); r != nil {
			configslog.Log.Error("Contact notification panicked", zap.Uint("message_id", msg.ID), zap.Any("panic", r))
		}
	}()

	nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.notifyTimeout)
	defer cancel()

	settings, err := s.settings.Load(nctx)
	if err != nil {
		configslog.Log.Warn("Contact notification skipped, settings unavailable", zap.Uint("message_id", msg.ID), zap.Error(err))
		return
	}
	if settings.ContactEmail == "" {
		configslog.Log.Warn("Contact notification skipped, no contact e-mail configured", zap.Uint("message_id", msg.ID))
		return
	}

	note := ContactNotification(msg, settings.ContactEmail)
	done := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- fmt.Errorf("notifier panic: %v", r)
			}
		}()
		done <- s.notifier.Notify(nctx, note)
	}()

	select {
	case err = <-done:
	case <-nctx.Done():
		err = nctx.Err()
	}
	if err != nil {
		nerr := &NotificationError{To: note.To, Err: err}
		configslog.Log.Warn("Contact notification failed", zap.Uint("message_id", msg.ID), zap.Error(nerr))
		return
	}
	configslog.SLog.Infof("Contact notification sent for message %d", msg.ID)
}

var _ IContactService = (*ContactService)(nil)
