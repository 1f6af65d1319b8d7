// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-ledger/backend/internal/domain/entity"
)

// BudgetModel represents the budgets table in the database.
// idx_budget_user_category_month guarantees one budget per user, category and month.
type BudgetModel struct {
	ID         int64           `gorm:"primaryKey;autoIncrement:false"`
	UserID     int64           `gorm:"not null;uniqueIndex:idx_budget_user_category_month,priority:1"`
	CategoryID int64           `gorm:"not null;uniqueIndex:idx_budget_user_category_month,priority:2"`
	Month      string          `gorm:"type:varchar(7);not null;uniqueIndex:idx_budget_user_category_month,priority:3"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	return &entity.Budget{
		ID:         m.ID,
		UserID:     m.UserID,
		CategoryID: m.CategoryID,
		Amount:     m.Amount,
		Month:      m.Month,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(budget *entity.Budget) *BudgetModel {
	return &BudgetModel{
		ID:         budget.ID,
		UserID:     budget.UserID,
		CategoryID: budget.CategoryID,
		Month:      budget.Month,
		Amount:     budget.Amount,
		CreatedAt:  budget.CreatedAt,
		UpdatedAt:  budget.UpdatedAt,
	}
}
