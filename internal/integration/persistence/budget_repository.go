// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/expense-ledger/backend/internal/application/adapter"
	"github.com/expense-ledger/backend/internal/domain/entity"
	domainerror "github.com/expense-ledger/backend/internal/domain/error"
	"github.com/expense-ledger/backend/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// FindByKey retrieves the budget for the (user, category, month) triple.
func (r *budgetRepository) FindByKey(ctx context.Context, userID, categoryID int64, month string) (*entity.Budget, error) {
	var budgetModel model.BudgetModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND category_id = ? AND month = ?", userID, categoryID, month).
		First(&budgetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBudgetNotFound
		}
		return nil, translateError(result.Error, "budget")
	}
	return budgetModel.ToEntity(), nil
}

// Create creates a new budget in the database.
func (r *budgetRepository) Create(ctx context.Context, budget *entity.Budget) error {
	budgetModel := model.BudgetFromEntity(budget)
	result := r.db.WithContext(ctx).Create(budgetModel)
	return translateError(result.Error, "budget")
}

// ReplaceAmount sets the amount of an existing budget in place.
func (r *budgetRepository) ReplaceAmount(ctx context.Context, id int64, amount decimal.Decimal) error {
	result := r.db.WithContext(ctx).
		Model(&model.BudgetModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"amount":     amount,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return translateError(result.Error, "budget")
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBudgetNotFound
	}
	return nil
}

// ListByUserAndMonth retrieves a user's budgets for month ordered by category.
func (r *budgetRepository) ListByUserAndMonth(ctx context.Context, userID int64, month string) ([]*entity.Budget, error) {
	var budgetModels []model.BudgetModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND month = ?", userID, month).
		Order("category_id ASC").
		Find(&budgetModels)
	if result.Error != nil {
		return nil, translateError(result.Error, "budget")
	}

	budgets := make([]*entity.Budget, len(budgetModels))
	for i := range budgetModels {
		budgets[i] = budgetModels[i].ToEntity()
	}
	return budgets, nil
}
