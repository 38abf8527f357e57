package services

import (
	"context"
	"fmt"

	"portfolio.site/configs/configslog"
	"portfolio.site/configs/configsmail"
	"portfolio.site/models"

	"go.uber.org/zap"
	"gopkg.in/mail.v2"
)

// Notification is a plain-text e-mail to the site owner.
type Notification struct {
	To      string
	ReplyTo string
	Subject string
	Body    string
}

// Notifier delivers owner notifications. Implementations must return when ctx is done.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// ContactNotification builds the owner e-mail for a stored contact message.
func ContactNotification(msg *models.ContactMessage, to string) Notification {
	return Notification{
		To:      to,
		ReplyTo: msg.Email,
		Subject: fmt.Sprintf("New Contact from Portfolio: %s", msg.Name),
		Body:    fmt.Sprintf("Name: %s\nEmail: %s\n\nMessage:\n%s", msg.Name, msg.Email, msg.Message),
	}
}

// NewNotifier returns an SMTP notifier, or a logging one when no SMTP host is configured.
func NewNotifier(cfg configsmail.Config) Notifier {
	if !cfg.Enabled() {
		configslog.SLog.Info("SMTP_HOST not set, contact notifications will be logged only")
		return LogNotifier{}
	}
	return NewSMTPNotifier(cfg)
}

// SMTPNotifier sends notifications through an SMTP relay.
type SMTPNotifier struct {
	from   string
	dialer *mail.Dialer
}

// NewSMTPNotifier creates a notifier that sends mail through cfg.
func NewSMTPNotifier(cfg configsmail.Config) *SMTPNotifier {
	d := mail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.Timeout = cfg.Timeout
	return &SMTPNotifier{from: cfg.From, dialer: d}
}

// Notify sends note as a plain text mail. It returns when ctx ends even if the send is still running.
func (n *SMTPNotifier) Notify(ctx context.Context, note Notification) error {
	m := mail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", note.To)
	if note.ReplyTo != "" {
		m.SetHeader("Reply-To", note.ReplyTo)
	}
	m.SetHeader("Subject", note.Subject)
	m.SetBody("text/plain", note.Body)

	// DialAndSend has no context; the buffered channel lets the goroutine finish after a timeout.
	done := make(chan error, 1)
	go func() { done <- n.dialer.DialAndSend(m) }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// LogNotifier writes notifications to the log instead of sending them.
type LogNotifier struct{}

func (LogNotifier) Notify(ctx context.Context, note Notification) error {
	configslog.Log.Info("Contact notification",
		zap.String("to", note.To),
		zap.String("subject", note.Subject),
		zap.String("body", note.Body),
	)
	return nil
}

var (
	_ Notifier = (*SMTPNotifier)(nil)
	_ Notifier = LogNotifier{}
)
