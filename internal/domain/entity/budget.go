// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is the spending limit of one user for one category in one month.
// The triple (UserID, CategoryID, Month) is unique.
type Budget struct {
	ID         int64
	UserID     int64
	CategoryID int64
	Amount     decimal.Decimal
	Month      string // canonical YYYY-MM
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewBudget creates a new Budget. The month must already be canonical.
func NewBudget(id, userID, categoryID int64, amount decimal.Decimal, month string) *Budget {
	now := time.Now().UTC()
	return &Budget{
		ID:         id,
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     amount,
		Month:      month,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// BudgetStatus is a budget with its category resolved and the month's spending.
type BudgetStatus struct {
	Budget        *Budget
	CategoryName  string
	CategoryColor string
	Spent         decimal.Decimal
	Remaining     decimal.Decimal
}
