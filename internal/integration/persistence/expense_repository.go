// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/expense-ledger/backend/internal/application/adapter"
	"github.com/expense-ledger/backend/internal/domain/entity"
	"github.com/expense-ledger/backend/internal/integration/persistence/model"
)

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// Create creates a new expense in the database.
func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.ExpenseFromEntity(expense)
	result := r.db.WithContext(ctx).Create(expenseModel)
	return translateError(result.Error, "expense")
}

// ListByUser retrieves a user's expenses ordered by date descending.
func (r *expenseRepository) ListByUser(ctx context.Context, userID int64) ([]*entity.Expense, error) {
	var expenseModels []model.ExpenseModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, translateError(result.Error, "expense")
	}
	return toExpenses(expenseModels), nil
}

// ListByUserAndMonth retrieves a user's expenses dated within month.
func (r *expenseRepository) ListByUserAndMonth(ctx context.Context, userID int64, month string) ([]*entity.Expense, error) {
	var expenseModels []model.ExpenseModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND date LIKE ?", userID, month+"-%").
		Order("date DESC, id DESC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, translateError(result.Error, "expense")
	}
	return toExpenses(expenseModels), nil
}

// Delete removes the expense only if it belongs to userID.
func (r *expenseRepository) Delete(ctx context.Context, id, userID int64) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.ExpenseModel{})
	if result.Error != nil {
		return false, translateError(result.Error, "expense")
	}
	return result.RowsAffected > 0, nil
}

func toExpenses(models []model.ExpenseModel) []*entity.Expense {
	expenses := make([]*entity.Expense, len(models))
	for i := range models {
		expenses[i] = models[i].ToEntity()
	}
	return expenses
}
