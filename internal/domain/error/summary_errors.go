// Package error defines domain-specific errors for the expense ledger.
package error

// SummaryErrorCode defines error codes for monthly summary errors.
// Format: SUM-XXYYYY where XX is category and YYYY is specific error.
type SummaryErrorCode string

const (
	ErrCodeInvalidSummaryMonth SummaryErrorCode = "SUM-010001"
	ErrCodeMissingSummaryUser  SummaryErrorCode = "SUM-010002"
)

// SummaryError represents a monthly summary error with code and message.
type SummaryError struct {
	Code    SummaryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SummaryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SummaryError) Unwrap() error {
	return e.Err
}

// NewSummaryError creates a new SummaryError with the given code and message.
func NewSummaryError(code SummaryErrorCode, message string, err error) *SummaryError {
	return &SummaryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
