package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/expense-ledger/backend/config"
	"github.com/expense-ledger/backend/internal/application/adapter"
	"github.com/expense-ledger/backend/internal/domain/entity"
	domainerror "github.com/expense-ledger/backend/internal/domain/error"
	"github.com/expense-ledger/backend/internal/infra/db"
	"github.com/expense-ledger/backend/internal/integration/adapters"
	"github.com/expense-ledger/backend/internal/integration/persistence"
)

type authFixture struct {
	users     adapter.UserRepository
	expenses  adapter.ExpenseRepository
	allocator adapter.SequenceAllocator
	passwords adapter.PasswordService
	tokens    adapter.TokenService
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	database, err := db.NewConnection(&config.DatabaseConfig{
		Driver: config.DriverSQLite,
		URL:    fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	if err := database.Migrate(); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	gormDB := database.DB()
	return &authFixture{
		users:     persistence.NewUserRepository(gormDB),
		expenses:  persistence.NewExpenseRepository(gormDB),
		allocator: persistence.NewSequenceAllocator(gormDB),
		passwords: adapters.NewPasswordService(bcrypt.MinCost),
		tokens:    adapters.NewTokenService("test-secret", time.Hour),
	}
}

func (f *authFixture) register() *RegisterUserUseCase {
	return NewRegisterUserUseCase(f.users, f.allocator, f.passwords, f.tokens)
}

func TestRegisterUserUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the user with an allocated id and a usable token", func(t *testing.T) {
		f := newAuthFixture(t)

		output, err := f.register().Execute(ctx, RegisterUserInput{Username: " alice ", Password: "pw", Email: "a@example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.User.ID != 1 || output.User.Username != "alice" {
			t.Errorf("unexpected user: %+v", output.User)
		}
		if output.User.PasswordHash == "pw" {
			t.Error("expected hashed password")
		}

		claims, err := f.tokens.ValidateAccessToken(ctx, output.AccessToken)
		if err != nil {
			t.Fatalf("expected valid token, got %v", err)
		}
		if claims.UserID != output.User.ID {
			t.Errorf("expected token for user %d, got %d", output.User.ID, claims.UserID)
		}
	})

	t.Run("duplicate username is a conflict", func(t *testing.T) {
		f := newAuthFixture(t)
		if _, err := f.register().Execute(ctx, RegisterUserInput{Username: "alice", Password: "pw"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err := f.register().Execute(ctx, RegisterUserInput{Username: "alice", Password: "other"})

		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeUsernameTaken {
			t.Fatalf("expected username taken, got %v", err)
		}
		if !errors.Is(err, domainerror.ErrDuplicateKey) {
			t.Errorf("expected duplicate key class, got %v", err)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		f := newAuthFixture(t)

		tests := []struct {
			name     string
			input    RegisterUserInput
			wantCode domainerror.AuthErrorCode
		}{
			{name: "username", input: RegisterUserInput{Password: "pw"}, wantCode: domainerror.ErrCodeMissingUsername},
			{name: "password", input: RegisterUserInput{Username: "bob"}, wantCode: domainerror.ErrCodeMissingPassword},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := f.register().Execute(ctx, tt.input)
				var authErr *domainerror.AuthError
				if !errors.As(err, &authErr) || authErr.Code != tt.wantCode {
					t.Errorf("expected %s, got %v", tt.wantCode, err)
				}
			})
		}
	})
}

func TestLoginUserUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t)
	if _, err := f.register().Execute(ctx, RegisterUserInput{Username: "alice", Password: "correct"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	uc := NewLoginUserUseCase(f.users, f.passwords, f.tokens)

	t.Run("valid credentials", func(t *testing.T) {
		output, err := uc.Execute(ctx, LoginUserInput{Username: "alice", Password: "correct"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.AccessToken == "" || output.User.Username != "alice" {
			t.Errorf("unexpected output: %+v", output)
		}
	})

	for name, input := range map[string]LoginUserInput{
		"wrong password": {Username: "alice", Password: "wrong"},
		"unknown user":   {Username: "mallory", Password: "correct"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Execute(ctx, input)
			if !errors.Is(err, domainerror.ErrInvalidCredentials) {
				t.Errorf("expected invalid credentials, got %v", err)
			}
		})
	}
}

func TestDeleteAccountUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t)
	registered, err := f.register().Execute(ctx, RegisterUserInput{Username: "alice", Password: "pw"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	userID := registered.User.ID
	_ = f.expenses.Create(ctx, entity.NewExpense(1, userID, decimal.NewFromInt(5), 1, "", "2024-05-01"))

	uc := NewDeleteAccountUseCase(f.users)

	output, err := uc.Execute(ctx, DeleteAccountInput{UserID: userID})
	if err != nil || !output.Success {
		t.Fatalf("expected deletion, got %+v (%v)", output, err)
	}
	if left, _ := f.expenses.ListByUser(ctx, userID); len(left) != 0 {
		t.Errorf("expected expenses removed with the account, got %d", len(left))
	}

	_, err = uc.Execute(ctx, DeleteAccountInput{UserID: userID})
	if !errors.Is(err, domainerror.ErrNotFound) {
		t.Errorf("expected not found on second delete, got %v", err)
	}
}
