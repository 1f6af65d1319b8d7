package user

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/expense-ledger/backend/config"
	"github.com/expense-ledger/backend/internal/application/adapter"
	"github.com/expense-ledger/backend/internal/domain/entity"
	domainerror "github.com/expense-ledger/backend/internal/domain/error"
	"github.com/expense-ledger/backend/internal/infra/db"
	"github.com/expense-ledger/backend/internal/integration/adapters"
	"github.com/expense-ledger/backend/internal/integration/persistence"
)

func newUsers(t *testing.T) (adapter.UserRepository, adapter.PasswordService) {
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

	passwords := adapters.NewPasswordService(bcrypt.MinCost)
	users := persistence.NewUserRepository(database.DB())

	for i, name := range []string{"alice", "bob"} {
		hash, _ := passwords.HashPassword(name + "-pw")
		if err := users.Create(context.Background(), entity.NewUser(int64(i+1), name, hash, "", "")); err != nil {
			t.Fatalf("failed to create %s: %v", name, err)
		}
	}
	return users, passwords
}

func ptr(s string) *string { return &s }

func TestGetProfileUseCase_Execute(t *testing.T) {
	users, _ := newUsers(t)
	uc := NewGetProfileUseCase(users)

	output, err := uc.Execute(context.Background(), GetProfileInput{UserID: 1})
	if err != nil || output.User.Username != "alice" {
		t.Fatalf("expected alice, got %+v (%v)", output, err)
	}

	_, err = uc.Execute(context.Background(), GetProfileInput{UserID: 404})
	if !errors.Is(err, domainerror.ErrNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestUpdateProfileUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	users, _ := newUsers(t)
	uc := NewUpdateProfileUseCase(users)

	t.Run("updates contact fields", func(t *testing.T) {
		output, err := uc.Execute(ctx, UpdateProfileInput{UserID: 1, Email: ptr(" a@example.com "), Phone: ptr("555")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.User.Email != "a@example.com" || output.User.Phone != "555" {
			t.Errorf("unexpected user: %+v", output.User)
		}
	})

	t.Run("renaming onto a taken username is a conflict", func(t *testing.T) {
		_, err := uc.Execute(ctx, UpdateProfileInput{UserID: 1, Username: ptr("bob")})
		if !errors.Is(err, domainerror.ErrUsernameTaken) {
			t.Errorf("expected username taken, got %v", err)
		}
	})

	t.Run("blank username", func(t *testing.T) {
		_, err := uc.Execute(ctx, UpdateProfileInput{UserID: 1, Username: ptr("  ")})
		if !errors.Is(err, domainerror.ErrValidation) {
			t.Errorf("expected validation error, got %v", err)
		}
	})
}

func TestChangePasswordUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	users, passwords := newUsers(t)
	uc := NewChangePasswordUseCase(users, passwords)

	t.Run("wrong current password", func(t *testing.T) {
		_, err := uc.Execute(ctx, ChangePasswordInput{UserID: 1, CurrentPassword: "nope", NewPassword: "fresh"})
		if !errors.Is(err, domainerror.ErrInvalidCredentials) {
			t.Errorf("expected invalid credentials, got %v", err)
		}
	})

	t.Run("changes the stored hash", func(t *testing.T) {
		output, err := uc.Execute(ctx, ChangePasswordInput{UserID: 1, CurrentPassword: "alice-pw", NewPassword: "fresh"})
		if err != nil || !output.Success {
			t.Fatalf("expected success, got %+v (%v)", output, err)
		}

		stored, _ := users.FindByID(ctx, 1)
		if err := passwords.VerifyPassword(stored.PasswordHash, "fresh"); err != nil {
			t.Errorf("expected new password to verify, got %v", err)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := uc.Execute(ctx, ChangePasswordInput{UserID: 1, NewPassword: "x"})
		if !errors.Is(err, domainerror.ErrValidation) {
			t.Errorf("expected validation error, got %v", err)
		}
	})
}
