// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/expense-ledger/backend/internal/application/adapter"
	domainerror "github.com/expense-ledger/backend/internal/domain/error"
)

// DeleteAccountInput represents the input for account deletion.
type DeleteAccountInput struct {
	UserID int64
}

// DeleteAccountOutput represents the output of account deletion.
type DeleteAccountOutput struct {
	Success bool
}

// DeleteAccountUseCase removes a user together with their expenses and budgets.
type DeleteAccountUseCase struct {
	userRepo adapter.UserRepository
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(userRepo adapter.UserRepository) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		userRepo: userRepo,
	}
}

// Execute performs the account deletion.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) (*DeleteAccountOutput, error) {
	if err := uc.userRepo.Delete(ctx, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeUserNotFound,
				"user not found",
				err,
			)
		}
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}

	slog.InfoContext(ctx, "Account deleted", "user_id", input.UserID)

	return &DeleteAccountOutput{Success: true}, nil
}
