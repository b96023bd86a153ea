// Package error defines domain-specific errors for the Moneyboard application.
package error

import "errors"

// Recurring-transaction domain errors.
var (
	// ErrRecurringNotFound is returned when a recurring template is not found.
	ErrRecurringNotFound = errors.New("recurring transaction not found")

	// ErrInvalidFrequency is returned when the frequency is not one of the
	// supported values.
	ErrInvalidFrequency = errors.New("invalid frequency")

	// ErrEndBeforeStart is returned when a template's end date precedes its
	// start date.
	ErrEndBeforeStart = errors.New("end date must not precede start date")
)

// RecurringErrorCode defines error codes for recurring-transaction errors.
// Format: RCR-XXYYYY where XX is category and YYYY is specific error.
type RecurringErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidFrequency RecurringErrorCode = "RCR-010001"
	ErrCodeEndBeforeStart   RecurringErrorCode = "RCR-010002"

	// Lookup errors (02XXXX)
	ErrCodeRecurringNotFound RecurringErrorCode = "RCR-020001"
)

// RecurringError represents a recurring-transaction error with code and message.
type RecurringError struct {
	Code    RecurringErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecurringError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecurringError) Unwrap() error {
	return e.Err
}

// NewRecurringError creates a new RecurringError with the given code and message.
func NewRecurringError(code RecurringErrorCode, message string, err error) *RecurringError {
	return &RecurringError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
