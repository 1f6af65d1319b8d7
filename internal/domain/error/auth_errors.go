// Package error defines domain-specific errors for the expense ledger.
package error

import "errors"

// Authentication and account domain errors.
var (
	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.Join(ErrNotFound, errors.New("user not found"))

	// ErrUsernameTaken is returned when signing up or renaming to an existing username.
	ErrUsernameTaken = errors.Join(ErrDuplicateKey, errors.New("username already taken"))

	// ErrInvalidCredentials is returned when login credentials are invalid.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned when a token is invalid or malformed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrMissingUsername is returned when a username is required but empty.
	ErrMissingUsername = errors.Join(ErrValidation, errors.New("username is required"))

	// ErrMissingPassword is returned when a password is required but empty.
	ErrMissingPassword = errors.Join(ErrValidation, errors.New("password is required"))
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Signup errors (01XXXX)
	ErrCodeUsernameTaken   AuthErrorCode = "AUTH-010001"
	ErrCodeMissingUsername AuthErrorCode = "AUTH-010002"
	ErrCodeMissingPassword AuthErrorCode = "AUTH-010003"
	ErrCodeMissingFields   AuthErrorCode = "AUTH-010005"

	// Login errors (02XXXX)
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-020001"
	ErrCodeUserNotFound       AuthErrorCode = "AUTH-020002"
	ErrCodeRateLimited        AuthErrorCode = "AUTH-020003"

	// Token errors (03XXXX)
	ErrCodeInvalidToken AuthErrorCode = "AUTH-030001"
	ErrCodeMissingToken AuthErrorCode = "AUTH-030003"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
