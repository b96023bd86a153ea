// Package error defines domain-specific errors for the Moneyboard application.
package error

import "errors"

// Email delivery errors.
var (
	// ErrInvalidTemplate is returned when a queued job references an
	// unknown template type.
	ErrInvalidTemplate = errors.New("invalid email template")

	// ErrEmailJobNotFound is returned when a queued job is not found.
	ErrEmailJobNotFound = errors.New("email job not found")
)

// EmailErrorCode defines error codes for email errors.
// Format: EML-XXYYYY where XX is category and YYYY is specific error.
type EmailErrorCode string

const (
	ErrCodeInvalidTemplate       EmailErrorCode = "EML-010001"
	ErrCodeTemporaryEmailFailure EmailErrorCode = "EML-020001"
	ErrCodePermanentEmailFailure EmailErrorCode = "EML-020002"
	ErrCodeEmailQueueFailed      EmailErrorCode = "EML-030001"
)

// EmailError represents an email delivery error with code and message.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EmailError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EmailError) Unwrap() error {
	return e.Err
}

// NewEmailError creates a new EmailError with the given code and message.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
