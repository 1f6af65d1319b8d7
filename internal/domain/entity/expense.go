// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents a single spending record.
type Expense struct {
	ID          int64
	UserID      int64
	Amount      decimal.Decimal
	CategoryID  int64
	Description string
	Date        string // canonical YYYY-MM-DD
	CreatedAt   time.Time
}

// NewExpense creates a new Expense. The date must already be canonical.
func NewExpense(id, userID int64, amount decimal.Decimal, categoryID int64, description, date string) *Expense {
	return &Expense{
		ID:          id,
		UserID:      userID,
		Amount:      amount,
		CategoryID:  categoryID,
		Description: description,
		Date:        date,
		CreatedAt:   time.Now().UTC(),
	}
}

// ExpenseWithCategory is an expense with its category display fields resolved.
type ExpenseWithCategory struct {
	Expense       *Expense
	CategoryName  string
	CategoryColor string
}
