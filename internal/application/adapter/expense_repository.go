// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/expense-ledger/backend/internal/domain/entity"
)

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create creates a new expense.
	Create(ctx context.Context, expense *entity.Expense) error

	// ListByUser retrieves a user's expenses ordered by date descending.
	ListByUser(ctx context.Context, userID int64) ([]*entity.Expense, error)

	// ListByUserAndMonth retrieves a user's expenses whose date starts with month,
	// ordered by date descending.
	ListByUserAndMonth(ctx context.Context, userID int64, month string) ([]*entity.Expense, error)

	// Delete removes the expense only if it belongs to userID. A mismatch is not an error.
	Delete(ctx context.Context, id, userID int64) (bool, error)
}
