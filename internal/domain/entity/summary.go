// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/shopspring/decimal"

// CategorySpending is one slice of a monthly category breakdown.
type CategorySpending struct {
	CategoryID int64
	Name       string
	Value      decimal.Decimal
	Color      string
}

// DailySpending is the total spent on one calendar day.
type DailySpending struct {
	Date   string
	Amount decimal.Decimal
}

// MonthlySummary holds the derived statistics of one user's month.
type MonthlySummary struct {
	Month             string
	TotalSpent        decimal.Decimal
	ExpenseCount      int
	TotalBudget       decimal.Decimal
	RemainingBudget   decimal.Decimal
	CategoryBreakdown []CategorySpending
	DailySpending     []DailySpending
}
