// Package user contains profile use cases for the signed-in user.
package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/expense-ledger/backend/internal/application/adapter"
	"github.com/expense-ledger/backend/internal/domain/entity"
	domainerror "github.com/expense-ledger/backend/internal/domain/error"
)

// GetProfileInput represents the input for reading a profile.
type GetProfileInput struct {
	UserID int64
}

// GetProfileOutput represents the output of reading a profile.
type GetProfileOutput struct {
	User *entity.User
}

// GetProfileUseCase reads the caller's profile.
type GetProfileUseCase struct {
	userRepo adapter.UserRepository
}

// NewGetProfileUseCase creates a new GetProfileUseCase instance.
func NewGetProfileUseCase(userRepo adapter.UserRepository) *GetProfileUseCase {
	return &GetProfileUseCase{
		userRepo: userRepo,
	}
}

// Execute reads the profile.
func (uc *GetProfileUseCase) Execute(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, userLookupError(err)
	}
	return &GetProfileOutput{User: user}, nil
}

func userLookupError(err error) error {
	if errors.Is(err, domainerror.ErrUserNotFound) {
		return domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			err,
		)
	}
	return fmt.Errorf("failed to find user: %w", err)
}
