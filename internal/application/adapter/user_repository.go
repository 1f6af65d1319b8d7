// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/expense-ledger/backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// Create creates a new user. A taken username yields domainerror.ErrDuplicateKey.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by their ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByUsername retrieves a user by their username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Update applies the non-nil fields of update and returns the stored user.
	Update(ctx context.Context, id int64, update entity.UserUpdate) (*entity.User, error)

	// Delete removes a user together with all of their expenses and budgets.
	Delete(ctx context.Context, id int64) error

	// Count returns the number of users.
	Count(ctx context.Context) (int64, error)
}
