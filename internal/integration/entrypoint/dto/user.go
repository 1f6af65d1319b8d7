// Package dto defines data transfer objects for API requests and responses.
package dto

// UpdateProfileRequest represents the request body for a profile update.
// Omitted fields are left unchanged.
type UpdateProfileRequest struct {
	Username *string `json:"username" binding:"omitempty,max=100"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Phone    *string `json:"phone" binding:"omitempty,max=50"`
}

// ChangePasswordRequest represents the request body for a password change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}
