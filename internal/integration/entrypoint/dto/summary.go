// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"encoding/json"

	"github.com/expense-ledger/backend/internal/domain/entity"
)

// CategorySpendingResponse is one slice of the category breakdown.
type CategorySpendingResponse struct {
	CategoryID int64       `json:"category_id"`
	Name       string      `json:"name"`
	Value      json.Number `json:"value"`
	Color      string      `json:"color"`
}

// DailySpendingResponse is one day of the daily spending series.
type DailySpendingResponse struct {
	Date   string      `json:"date"`
	Amount json.Number `json:"amount"`
}

// MonthlySummaryResponse represents the response for the monthly summary.
type MonthlySummaryResponse struct {
	Month             string                     `json:"month"`
	TotalSpent        json.Number                `json:"total_spent"`
	ExpenseCount      int                        `json:"expense_count"`
	TotalBudget       json.Number                `json:"total_budget"`
	RemainingBudget   json.Number                `json:"remaining_budget"`
	CategoryBreakdown []CategorySpendingResponse `json:"category_breakdown"`
	DailySpending     []DailySpendingResponse    `json:"daily_spending"`
}

// ToMonthlySummaryResponse converts a domain MonthlySummary to its DTO.
func ToMonthlySummaryResponse(summary *entity.MonthlySummary) MonthlySummaryResponse {
	breakdown := make([]CategorySpendingResponse, len(summary.CategoryBreakdown))
	for i, c := range summary.CategoryBreakdown {
		breakdown[i] = CategorySpendingResponse{
			CategoryID: c.CategoryID,
			Name:       c.Name,
			Value:      Money(c.Value),
			Color:      c.Color,
		}
	}

	daily := make([]DailySpendingResponse, len(summary.DailySpending))
	for i, d := range summary.DailySpending {
		daily[i] = DailySpendingResponse{Date: d.Date, Amount: Money(d.Amount)}
	}

	return MonthlySummaryResponse{
		Month:             summary.Month,
		TotalSpent:        Money(summary.TotalSpent),
		ExpenseCount:      summary.ExpenseCount,
		TotalBudget:       Money(summary.TotalBudget),
		RemainingBudget:   Money(summary.RemainingBudget),
		CategoryBreakdown: breakdown,
		DailySpending:     daily,
	}
}
