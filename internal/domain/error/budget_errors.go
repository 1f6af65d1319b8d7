// Package error defines domain-specific errors for the expense ledger.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when no budget exists for a (user, category, month) key.
	ErrBudgetNotFound = errors.Join(ErrNotFound, errors.New("budget not found"))

	// ErrInvalidBudgetAmount is returned when a budget amount is negative.
	ErrInvalidBudgetAmount = errors.Join(ErrValidation, errors.New("budget amount must be a non-negative number"))

	// ErrBudgetAmountOutOfRange is returned when a budget amount has more than two decimal places or is too large to store.
	ErrBudgetAmountOutOfRange = errors.Join(ErrValidation, errors.New("budget amount must have at most 2 decimal places and fewer than 14 integer digits"))

	// ErrMissingBudgetCategory is returned when a budget has no category.
	ErrMissingBudgetCategory = errors.Join(ErrValidation, errors.New("category is required"))

	// ErrMissingBudgetUser is returned when a budget has no owner.
	ErrMissingBudgetUser = errors.Join(ErrValidation, errors.New("user is required"))
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BUD-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBudgetAmount   BudgetErrorCode = "BUD-010001"
	ErrCodeInvalidBudgetMonth    BudgetErrorCode = "BUD-010002"
	ErrCodeMissingBudgetCategory BudgetErrorCode = "BUD-010003"
	ErrCodeMissingBudgetFields   BudgetErrorCode = "BUD-010004"
	ErrCodeMissingBudgetUser     BudgetErrorCode = "BUD-010005"
	ErrCodeBudgetAmountRange     BudgetErrorCode = "BUD-010006"

	// Consistency errors (02XXXX)
	ErrCodeBudgetConflict BudgetErrorCode = "BUD-020001"
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
