// Package error defines domain-specific errors for the expense ledger.
package error

import "errors"

// Expense domain errors.
var (
	// ErrInvalidExpenseAmount is returned when an expense amount is missing or negative.
	ErrInvalidExpenseAmount = errors.Join(ErrValidation, errors.New("amount must be a non-negative number"))

	// ErrMissingExpenseCategory is returned when an expense has no category.
	ErrMissingExpenseCategory = errors.Join(ErrValidation, errors.New("category is required"))

	// ErrExpenseAmountOutOfRange is returned when an amount has more than two decimal places or is too large to store.
	ErrExpenseAmountOutOfRange = errors.Join(ErrValidation, errors.New("amount must have at most 2 decimal places and fewer than 14 integer digits"))

	// ErrMissingExpenseUser is returned when an expense has no owner.
	ErrMissingExpenseUser = errors.Join(ErrValidation, errors.New("user is required"))

	// ErrDescriptionTooLong is returned when the expense description exceeds the maximum length.
	ErrDescriptionTooLong = errors.Join(ErrValidation, errors.New("description too long"))
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidExpenseAmount   ExpenseErrorCode = "EXP-010001"
	ErrCodeInvalidExpenseDate     ExpenseErrorCode = "EXP-010002"
	ErrCodeMissingExpenseCategory ExpenseErrorCode = "EXP-010003"
	ErrCodeDescriptionTooLong     ExpenseErrorCode = "EXP-010004"
	ErrCodeMissingExpenseFields   ExpenseErrorCode = "EXP-010005"
	ErrCodeInvalidExpenseID       ExpenseErrorCode = "EXP-010006"
	ErrCodeInvalidExpenseMonth    ExpenseErrorCode = "EXP-010007"
	ErrCodeMissingExpenseUser     ExpenseErrorCode = "EXP-010008"
	ErrCodeExpenseAmountRange     ExpenseErrorCode = "EXP-010009"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
