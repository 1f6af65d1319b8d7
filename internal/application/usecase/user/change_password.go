// Package user contains profile use cases for the signed-in user.
package user

import (
	"context"
	"fmt"

	"github.com/expense-ledger/backend/internal/application/adapter"
	"github.com/expense-ledger/backend/internal/domain/entity"
	domainerror "github.com/expense-ledger/backend/internal/domain/error"
)

// ChangePasswordInput represents the input for a password change.
type ChangePasswordInput struct {
	UserID          int64
	CurrentPassword string
	NewPassword     string
}

// ChangePasswordOutput represents the output of a password change.
type ChangePasswordOutput struct {
	Success bool
}

// ChangePasswordUseCase replaces the caller's password after checking the current one.
type ChangePasswordUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewChangePasswordUseCase creates a new ChangePasswordUseCase instance.
func NewChangePasswordUseCase(userRepo adapter.UserRepository, passwordService adapter.PasswordService) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// Execute performs the password change.
func (uc *ChangePasswordUseCase) Execute(ctx context.Context, input ChangePasswordInput) (*ChangePasswordOutput, error) {
	if input.CurrentPassword == "" || input.NewPassword == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingPassword,
			"current and new password are required",
			domainerror.ErrMissingPassword,
		)
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, userLookupError(err)
	}

	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.CurrentPassword); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"current password is incorrect",
			domainerror.ErrInvalidCredentials,
		)
	}

	hash, err := uc.passwordService.HashPassword(input.NewPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if _, err := uc.userRepo.Update(ctx, user.ID, entity.UserUpdate{PasswordHash: &hash}); err != nil {
		return nil, userLookupError(err)
	}
	return &ChangePasswordOutput{Success: true}, nil
}
