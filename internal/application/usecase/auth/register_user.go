// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/expense-ledger/backend/internal/application/adapter"
	"github.com/expense-ledger/backend/internal/domain/entity"
	domainerror "github.com/expense-ledger/backend/internal/domain/error"
)

// RegisterUserInput represents the input for user registration.
type RegisterUserInput struct {
	Username string
	Password string
	Email    string
	Phone    string
}

// RegisterUserOutput represents the output of user registration.
type RegisterUserOutput struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *entity.User
}

// RegisterUserUseCase handles user registration logic.
type RegisterUserUseCase struct {
	userRepo        adapter.UserRepository
	allocator       adapter.SequenceAllocator
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(
	userRepo adapter.UserRepository,
	allocator adapter.SequenceAllocator,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:        userRepo,
		allocator:       allocator,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the user registration.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingUsername,
			"username is required",
			domainerror.ErrMissingUsername,
		)
	}
	if input.Password == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingPassword,
			"password is required",
			domainerror.ErrMissingPassword,
		)
	}

	// Check if username already exists
	_, err := uc.userRepo.FindByUsername(ctx, username)
	if err == nil {
		return nil, usernameTaken()
	}
	if !errors.Is(err, domainerror.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := uc.allocator.NextID(ctx, entity.SequenceUser)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate user id: %w", err)
	}

	user := entity.NewUser(id, username, passwordHash, strings.TrimSpace(input.Email), strings.TrimSpace(input.Phone))
	if err := uc.userRepo.Create(ctx, user); err != nil {
		// A concurrent signup can claim the name between the check and the insert.
		if errors.Is(err, domainerror.ErrDuplicateKey) {
			return nil, usernameTaken()
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, expiresAt, err := uc.tokenService.GenerateAccessToken(ctx, user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	slog.InfoContext(ctx, "User registered", "user_id", user.ID)

	return &RegisterUserOutput{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        user,
	}, nil
}

func usernameTaken() error {
	return domainerror.NewAuthError(
		domainerror.ErrCodeUsernameTaken,
		"username already taken",
		domainerror.ErrUsernameTaken,
	)
}
