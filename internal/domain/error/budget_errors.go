// Package error defines domain-specific errors for the Moneyboard application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrInvalidBudgetLimit is returned when the limit is zero or negative.
	ErrInvalidBudgetLimit = errors.New("budget limit must be positive")

	// ErrInvalidBudgetPeriod is returned when the period is not monthly or weekly.
	ErrInvalidBudgetPeriod = errors.New("invalid budget period")

	// ErrDuplicateBudgetCategory is returned when the user already has a
	// budget for the category.
	ErrDuplicateBudgetCategory = errors.New("budget already exists for category")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BGT-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBudgetLimit      BudgetErrorCode = "BGT-010001"
	ErrCodeInvalidBudgetPeriod     BudgetErrorCode = "BGT-010002"
	ErrCodeDuplicateBudgetCategory BudgetErrorCode = "BGT-010003"

	// Lookup errors (02XXXX)
	ErrCodeBudgetNotFound BudgetErrorCode = "BGT-020001"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
