// Package error defines domain-specific errors for the Moneyboard application.
package error

import "errors"

// Ledger boundary errors. The ledger session recovers from both kinds by
// leaving its in-memory state untouched and reporting the error to the
// caller.
var (
	// ErrRetrievalFailed is returned when a list fetch from the store fails.
	ErrRetrievalFailed = errors.New("failed to retrieve ledger data")

	// ErrMutationFailed is returned when a create/update/delete against the
	// store fails.
	ErrMutationFailed = errors.New("failed to apply ledger mutation")
)

// LedgerErrorCode defines error codes for ledger boundary errors.
// Format: LED-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	// Retrieval errors (02XXXX)
	ErrCodeTransactionFetchFailed LedgerErrorCode = "LED-020001"
	ErrCodeRecurringFetchFailed   LedgerErrorCode = "LED-020002"
	ErrCodeSettingsLoadFailed     LedgerErrorCode = "LED-020003"

	// Mutation errors (03XXXX)
	ErrCodeTransactionCreateFailed LedgerErrorCode = "LED-030001"
	ErrCodeTransactionUpdateFailed LedgerErrorCode = "LED-030002"
	ErrCodeTransactionDeleteFailed LedgerErrorCode = "LED-030003"
	ErrCodeRecurringCreateFailed   LedgerErrorCode = "LED-030004"
	ErrCodeRecurringToggleFailed   LedgerErrorCode = "LED-030005"
	ErrCodeSettingsSaveFailed      LedgerErrorCode = "LED-030006"
)

// LedgerError represents a ledger boundary error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewRetrievalError creates a LedgerError wrapping ErrRetrievalFailed.
func NewRetrievalError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     errors.Join(ErrRetrievalFailed, err),
	}
}

// NewMutationError creates a LedgerError wrapping ErrMutationFailed.
func NewMutationError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     errors.Join(ErrMutationFailed, err),
	}
}
