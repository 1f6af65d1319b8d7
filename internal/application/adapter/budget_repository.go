// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/expense-ledger/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// FindByKey retrieves the budget for the (user, category, month) triple,
	// or domainerror.ErrBudgetNotFound.
	FindByKey(ctx context.Context, userID, categoryID int64, month string) (*entity.Budget, error)

	// Create creates a new budget. An existing triple yields domainerror.ErrDuplicateKey.
	Create(ctx context.Context, budget *entity.Budget) error

	// ReplaceAmount sets the amount of an existing budget in place.
	ReplaceAmount(ctx context.Context, id int64, amount decimal.Decimal) error

	// ListByUserAndMonth retrieves a user's budgets for month ordered by category.
	ListByUserAndMonth(ctx context.Context, userID int64, month string) ([]*entity.Budget, error)
}
