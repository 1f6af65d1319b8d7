// Package error defines domain-specific errors for the expense ledger.
package error

import "errors"

// Ledger error taxonomy. Feature errors wrap one of these so callers can
// classify any failure with errors.Is.
var (
	// ErrValidation is returned when a required field is missing or malformed.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateKey is returned when a unique constraint would be violated.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrStorageUnavailable is returned when the underlying store cannot be reached.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// Calendar validation errors.
var (
	// ErrInvalidDate is returned when a date is not a valid calendar date.
	ErrInvalidDate = errors.Join(ErrValidation, errors.New("date must be a valid YYYY-MM-DD date"))

	// ErrInvalidMonth is returned when a month is not a valid YYYY-MM month.
	ErrInvalidMonth = errors.Join(ErrValidation, errors.New("month must be a valid YYYY-MM month"))

	// ErrInvalidEntityType is returned when a sequence is requested without a name.
	ErrInvalidEntityType = errors.Join(ErrValidation, errors.New("entity type is required"))
)

// LedgerErrorCode defines error codes for storage-level ledger errors.
// Format: LEDGER-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	ErrCodeValidation         LedgerErrorCode = "LEDGER-010001"
	ErrCodeDuplicateKey       LedgerErrorCode = "LEDGER-010002"
	ErrCodeNotFound           LedgerErrorCode = "LEDGER-010003"
	ErrCodeStorageUnavailable LedgerErrorCode = "LEDGER-020001"
)

// LedgerError represents a storage-level error with code and message.
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

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// StorageUnavailable wraps a driver failure so it matches ErrStorageUnavailable.
func StorageUnavailable(err error) *LedgerError {
	return NewLedgerError(ErrCodeStorageUnavailable, "storage unavailable", errors.Join(ErrStorageUnavailable, err))
}

// DuplicateKey wraps a unique constraint violation so it matches ErrDuplicateKey.
func DuplicateKey(what string, err error) *LedgerError {
	return NewLedgerError(ErrCodeDuplicateKey, what+" already exists", errors.Join(ErrDuplicateKey, err))
}

// CodeOf returns the ledger code matching the taxonomy class of err, or "" if
// err belongs to none of them.
func CodeOf(err error) LedgerErrorCode {
	switch {
	case errors.Is(err, ErrStorageUnavailable):
		return ErrCodeStorageUnavailable
	case errors.Is(err, ErrDuplicateKey):
		return ErrCodeDuplicateKey
	case errors.Is(err, ErrNotFound):
		return ErrCodeNotFound
	case errors.Is(err, ErrValidation):
		return ErrCodeValidation
	default:
		return ""
	}
}
