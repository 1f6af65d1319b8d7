// Package user contains profile use cases for the signed-in user.
package user

import (
	"context"
	"errors"
	"strings"

	"github.com/expense-ledger/backend/internal/application/adapter"
	"github.com/expense-ledger/backend/internal/domain/entity"
	domainerror "github.com/expense-ledger/backend/internal/domain/error"
)

// UpdateProfileInput represents the input for a profile update.
// Nil fields are left unchanged.
type UpdateProfileInput struct {
	UserID   int64
	Username *string
	Email    *string
	Phone    *string
}

// UpdateProfileOutput represents the output of a profile update.
type UpdateProfileOutput struct {
	User *entity.User
}

// UpdateProfileUseCase changes the caller's username, email or phone.
type UpdateProfileUseCase struct {
	userRepo adapter.UserRepository
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(userRepo adapter.UserRepository) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo: userRepo,
	}
}

// Execute applies the update.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	update := entity.UserUpdate{
		Email: trimmed(input.Email),
		Phone: trimmed(input.Phone),
	}
	if input.Username != nil {
		username := strings.TrimSpace(*input.Username)
		if username == "" {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeMissingUsername,
				"username cannot be empty",
				domainerror.ErrMissingUsername,
			)
		}
		update.Username = &username
	}

	user, err := uc.userRepo.Update(ctx, input.UserID, update)
	if err != nil {
		if errors.Is(err, domainerror.ErrDuplicateKey) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeUsernameTaken,
				"username already taken",
				domainerror.ErrUsernameTaken,
			)
		}
		return nil, userLookupError(err)
	}
	return &UpdateProfileOutput{User: user}, nil
}

func trimmed(value *string) *string {
	if value == nil {
		return nil
	}
	v := strings.TrimSpace(*value)
	return &v
}
