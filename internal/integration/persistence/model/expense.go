// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-ledger/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database.
// Date is stored as canonical YYYY-MM-DD text so month filtering is a prefix match.
type ExpenseModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement:false"`
	UserID      int64           `gorm:"not null;index:idx_expense_user_date,priority:1"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CategoryID  int64           `gorm:"not null;index"`
	Description string          `gorm:"type:varchar(255)"`
	Date        string          `gorm:"type:varchar(10);not null;index:idx_expense_user_date,priority:2"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:          m.ID,
		UserID:      m.UserID,
		Amount:      m.Amount,
		CategoryID:  m.CategoryID,
		Description: m.Description,
		Date:        m.Date,
		CreatedAt:   m.CreatedAt,
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:          expense.ID,
		UserID:      expense.UserID,
		Amount:      expense.Amount,
		CategoryID:  expense.CategoryID,
		Description: expense.Description,
		Date:        expense.Date,
		CreatedAt:   expense.CreatedAt,
	}
}
