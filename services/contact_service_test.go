package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"portfolio.site/database/testdb"
	"portfolio.site/models"
	"portfolio.site/repositories"

	"gorm.io/gorm"
)

type fakeNotifier struct {
	mu    sync.Mutex
	sent  []Notification
	err   error
	block bool
	panic bool
}

func (f *fakeNotifier) Notify(ctx context.Context, n Notification) error {
	if f.panic {
		panic("smtp exploded")
	}
	if f.block {
		<-ctx.Done()
		return ctx.Err()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, n)
	return f.err
}

func (f *fakeNotifier) calls() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Notification(nil), f.sent...)
}

type failingMessageRepo struct {
	repositories.IContactMessageRepository
}

func (failingMessageRepo) Create(ctx context.Context, msg *models.ContactMessage) error {
	return errors.New("disk full")
}

func newContactFixture(t *testing.T, n Notifier, timeout time.Duration) (IContactService, *gorm.DB) {
	t.Helper()
	db := testdb.Open(t)
	svc := NewContactService(
		repositories.NewContactMessageRepository(db),
		repositories.NewSiteSettingsRepository(db),
		n,
		timeout,
	)
	return svc, db
}

func countMessages(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&models.ContactMessage{}).Count(&n).Error; err != nil {
		t.Fatalf("count messages: %v", err)
	}
	return n
}

func TestContactSubmitStoresAndNotifies(t *testing.T) {
	notifier := &fakeNotifier{}
	svc, db := newContactFixture(t, notifier, time.Second)

	msg, err := svc.Submit(context.Background(), ContactSubmission{Name: " Ada ", Email: "ada@example.com", Message: "Hello"})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if msg.ID == 0 || msg.IsRead || msg.IsReplied || msg.Subject != "" {
		t.Errorf("stored message = %+v", msg)
	}
	if msg.Name != "Ada" {
		t.Errorf("Name = %q, want trimmed Ada", msg.Name)
	}
	if got := countMessages(t, db); got != 1 {
		t.Errorf("messages = %d, want 1", got)
	}

	sent := notifier.calls()
	if len(sent) != 1 {
		t.Fatalf("notifications = %d, want 1", len(sent))
	}
	n := sent[0]
	if n.To != models.DefaultSiteSettings().ContactEmail {
		t.Errorf("To = %q", n.To)
	}
	if n.Subject != "New Contact from Portfolio: Ada" {
		t.Errorf("Subject = %q", n.Subject)
	}
	if n.ReplyTo != "ada@example.com" || !strings.Contains(n.Body, "Message:\nHello") {
		t.Errorf("notification = %+v", n)
	}
}

func TestContactSubmitValidation(t *testing.T) {
	tests := []struct {
		name  string
		sub   ContactSubmission
		field string
	}{
		{"missing message", ContactSubmission{Name: "Ada", Email: "ada@example.com"}, "message"},
		{"blank name", ContactSubmission{Name: "   ", Email: "ada@example.com", Message: "Hi"}, "name"},
		{"missing email", ContactSubmission{Name: "Ada", Message: "Hi"}, "email"},
		{"bad email", ContactSubmission{Name: "Ada", Email: "not-an-email", Message: "Hi"}, "email"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := &fakeNotifier{}
			svc, db := newContactFixture(t, notifier, time.Second)

			_, err := svc.Submit(context.Background(), tt.sub)
			ve, ok := IsValidation(err)
			if !ok {
				t.Fatalf("Submit = %v, want validation error", err)
			}
			if _, ok := ve.Fields[tt.field]; !ok {
				t.Errorf("fields = %v, want %q", ve.Fields, tt.field)
			}
			if got := countMessages(t, db); got != 0 {
				t.Errorf("messages = %d, want 0", got)
			}
			if len(notifier.calls()) != 0 {
				t.Errorf("notifier called for invalid submission")
			}
		})
	}
}

func TestContactNotificationFailuresAreSwallowed(t *testing.T) {
	tests := []struct {
		name     string
		notifier *fakeNotifier
	}{
		{"transport error", &fakeNotifier{err: errors.New("connection refused")}},
		{"timeout", &fakeNotifier{block: true}},
		{"panic", &fakeNotifier{panic: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, db := newContactFixture(t, tt.notifier, 50*time.Millisecond)

			start := time.Now()
			msg, err := svc.Submit(context.Background(), ContactSubmission{Name: "Ada", Email: "ada@example.com", Message: "Hello"})
			if err != nil {
				t.Fatalf("Submit = %v, want success", err)
			}
			if msg == nil || msg.ID == 0 {
				t.Fatalf("Submit returned %+v", msg)
			}
			if got := countMessages(t, db); got != 1 {
				t.Errorf("messages = %d, want 1", got)
			}
			if elapsed := time.Since(start); elapsed > 2*time.Second {
				t.Errorf("Submit took %v, notification was not bounded", elapsed)
			}
		})
	}
}

func TestContactSubmitSurvivesCancelledRequest(t *testing.T) {
	notifier := &fakeNotifier{}
	svc, _ := newContactFixture(t, notifier, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	msg, err := svc.Submit(ctx, ContactSubmission{Name: "Ada", Email: "ada@example.com", Message: "Hello"})
	cancel()
	if err != nil || msg == nil {
		t.Fatalf("Submit = %v", err)
	}
	if len(notifier.calls()) != 1 {
		t.Errorf("notifications = %d, want 1", len(notifier.calls()))
	}
}

func TestContactSubmitWithoutContactEmailSkipsNotification(t *testing.T) {
	notifier := &fakeNotifier{}
	svc, db := newContactFixture(t, notifier, time.Second)

	settings := models.DefaultSiteSettings()
	settings.ContactEmail = ""
	if err := repositories.NewSiteSettingsRepository(db).Save(context.Background(), &settings); err != nil {
		t.Fatalf("save settings: %v", err)
	}

	if _, err := svc.Submit(context.Background(), ContactSubmission{Name: "Ada", Email: "ada@example.com", Message: "Hello"}); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if len(notifier.calls()) != 0 {
		t.Errorf("notifier called without a contact e-mail")
	}
}

func TestContactSubmitStorageFailure(t *testing.T) {
	notifier := &fakeNotifier{}
	db := testdb.Open(t)
	svc := NewContactService(failingMessageRepo{}, repositories.NewSiteSettingsRepository(db), notifier, time.Second)

	_, err := svc.Submit(context.Background(), ContactSubmission{Name: "Ada", Email: "ada@example.com", Message: "Hello"})
	var pe *PersistenceError
	if !errors.As(err, &pe) {
		t.Fatalf("Submit = %v, want *PersistenceError", err)
	}
	if len(notifier.calls()) != 0 {
		t.Errorf("notifier called after a failed write")
	}
}
