package service

import (
	"errors"
	"fmt"

	"visit-map-api/internal/models"
)

var (
	ErrNotFound           = models.ErrNotFound
	ErrInvalidCustomerRef = models.ErrInvalidCustomerRef

	// ErrInvalidCredentials is returned for any failed login.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// ValidationError is a user-facing input error. Handlers report its message as-is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
