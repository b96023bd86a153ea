// Package error defines domain-specific errors for the Moneyboard application.
package error

import "errors"

// Dashboard domain errors.
var (
	// ErrInvalidTimeWindow is returned when the requested window is not one
	// of the supported values (7d, 30d, 90d, 1y).
	ErrInvalidTimeWindow = errors.New("invalid time window")
)

// DashboardErrorCode defines error codes for dashboard errors.
// Format: DSH-XXYYYY where XX is category and YYYY is specific error.
type DashboardErrorCode string

// Validation errors (01XXXX)
const ErrCodeInvalidTimeWindow DashboardErrorCode = "DSH-010001"

// DashboardError represents a dashboard error with code and message.
type DashboardError struct {
	Code    DashboardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DashboardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError creates a new DashboardError with the given code and message.
func NewDashboardError(code DashboardErrorCode, message string, err error) *DashboardError {
	return &DashboardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
