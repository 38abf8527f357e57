package services

import (
	"errors"
	"fmt"

	"portfolio.site/models"
	"portfolio.site/repositories"
)

// ErrValidation is re-exported so handlers only depend on services.
var ErrValidation = models.ErrValidation

// PersistenceError is a storage failure on a read or write.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *PersistenceError) Unwrap() error { return e.Err }

// NotificationError is an outbound notification failure. It is logged, never returned to callers.
type NotificationError struct {
	To  string
	Err error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("notification to %q failed: %v", e.To, e.Err)
}
func (e *NotificationError) Unwrap() error { return e.Err }

// storeError keeps validation and not-found errors as they are and wraps the rest.
func storeError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, models.ErrValidation) || errors.Is(err, repositories.ErrNotFound) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}

// IsValidation reports whether err is a field validation failure and returns its fields.
func IsValidation(err error) (*models.ValidationError, bool) {
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
