// Package error defines domain-specific errors for the Moneyboard application.
package error

import "errors"

// Settings domain errors.
var (
	// ErrInvalidCurrency is returned when a currency code is not a 3-letter
	// ISO code.
	ErrInvalidCurrency = errors.New("invalid currency code")
)

// SettingsErrorCode defines error codes for settings errors.
// Format: SET-XXYYYY where XX is category and YYYY is specific error.
type SettingsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidCurrency SettingsErrorCode = "SET-010001"
)

// SettingsError represents a settings error with code and message.
type SettingsError struct {
	Code    SettingsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SettingsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SettingsError) Unwrap() error {
	return e.Err
}

// NewSettingsValidationError creates a SettingsError for bad user input.
func NewSettingsValidationError(message string) *SettingsError {
	return &SettingsError{
		Code:    ErrCodeInvalidCurrency,
		Message: message,
		Err:     ErrInvalidCurrency,
	}
}
