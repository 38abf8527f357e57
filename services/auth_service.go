package services

import (
	"context"
	"errors"
	"time"

	"portfolio.site/configs/configslog"
	"portfolio.site/models"
	"portfolio.site/repositories"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

type AuthServiceError string

func (e AuthServiceError) Error() string { return string(e) }

const (
	ErrInvalidCredentials   AuthServiceError = "invalid username or password"
	ErrUserInactive         AuthServiceError = "this account is disabled"
	ErrTooManyAttempts      AuthServiceError = "too many failed login attempts, try again later"
	ErrCurrentPasswordWrong AuthServiceError = "current password is incorrect"
	ErrPasswordTooShort     AuthServiceError = "password must be at least 8 characters"
)

// Login throttling defaults.
const (
	DefaultMaxLoginFailures = 5
	DefaultLoginLockout     = 15 * time.Minute
	MinPasswordLength       = 8
)

type IAuthService interface {
	Authenticate(ctx context.Context, username, password, clientKey string) (*models.User, error)
	GetUser(ctx context.Context, id uint) (*models.User, error)
	ChangePassword(ctx context.Context, id uint, current, next string) error
}

type AuthService struct {
	users       repositories.IUserRepository
	failures    *cache.Cache
	maxFailures int
	now         func() time.Time
}

// NewAuthService counts failed logins per client in memory; after maxFailures the
// client is locked out until lockout has passed since its last failure.
func NewAuthService(users repositories.IUserRepository, maxFailures int, lockout time.Duration) IAuthService {
	if maxFailures <= 0 {
		maxFailures = DefaultMaxLoginFailures
	}
	if lockout <= 0 {
		lockout = DefaultLoginLockout
	}
	return &AuthService{
		users:       users,
		failures:    cache.New(lockout, 2*lockout),
		maxFailures: maxFailures,
		now:         time.Now,
	}
}

// Authenticate returns the active user matching username and password.
// clientKey identifies the caller for the failed-attempt throttle.
func (s *AuthService) Authenticate(ctx context.Context, username, password, clientKey string) (*models.User, error) {
	if n, ok := s.failures.Get(clientKey); ok && n.(int) >= s.maxFailures {
		configslog.Log.Warn("Login blocked by throttle", zap.String("client", clientKey), zap.String("username", username))
		return nil, ErrTooManyAttempts
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			s.recordFailure(clientKey)
			return nil, ErrInvalidCredentials
		}
		return nil, storeError("find user", err)
	}
	if !user.CheckPassword(password) {
		s.recordFailure(clientKey)
		configslog.Log.Warn("Failed login", zap.String("client", clientKey), zap.String("username", username))
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	s.failures.Delete(clientKey)
	now := s.now()
	if err := s.users.TouchLastLogin(ctx, user.ID, now); err != nil {
		configslog.Log.Warn("last_login_at could not be updated", zap.Uint("user_id", user.ID), zap.Error(err))
	} else {
		user.LastLoginAt = &now
	}
	configslog.SLog.Infof("User '%s' logged in", user.Username)
	return user, nil
}

// recordFailure restarts the lockout window on every failure.
func (s *AuthService) recordFailure(clientKey string) {
	n := 1
	if v, ok := s.failures.Get(clientKey); ok {
		n = v.(int) + 1
	}
	s.failures.Set(clientKey, n, cache.DefaultExpiration)
}

// GetUser loads a user by id.
func (s *AuthService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, storeError("find user", err)
	}
	return user, nil
}

// ChangePassword replaces the password hash once current is verified.
func (s *AuthService) ChangePassword(ctx context.Context, id uint, current, next string) error {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}
	if !user.CheckPassword(current) {
		return ErrCurrentPasswordWrong
	}
	if len(next) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if err := user.SetPassword(next); err != nil {
		return err
	}
	if err := s.users.UpdatePasswordHash(ctx, id, user.PasswordHash); err != nil {
		return storeError("update password", err)
	}
	configslog.SLog.Infof("Password changed for user '%s'", user.Username)
	return nil
}

var _ IAuthService = (*AuthService)(nil)
