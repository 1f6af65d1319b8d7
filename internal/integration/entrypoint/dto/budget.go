// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/expense-ledger/backend/internal/domain/entity"
)

// UpsertBudgetRequest represents the request body for setting a monthly budget.
type UpsertBudgetRequest struct {
	CategoryID int64            `json:"category_id" binding:"required"`
	Amount     *decimal.Decimal `json:"amount" binding:"required"`
	Month      string           `json:"month" binding:"required"`
}

// BudgetResponse represents the result of a budget upsert.
type BudgetResponse struct {
	ID         int64       `json:"id"`
	CategoryID int64       `json:"category_id"`
	Amount     json.Number `json:"amount"`
	Month      string      `json:"month"`
	Created    bool        `json:"created"`
}

// BudgetStatusResponse represents a budget next to the month's spending.
type BudgetStatusResponse struct {
	ID            int64       `json:"id"`
	CategoryID    int64       `json:"category_id"`
	CategoryName  string      `json:"category_name"`
	CategoryColor string      `json:"category_color"`
	Amount        json.Number `json:"amount"`
	Spent         json.Number `json:"spent"`
	Remaining     json.Number `json:"remaining"`
	Month         string      `json:"month"`
}

// BudgetListResponse represents the response for listing a month's budgets.
type BudgetListResponse struct {
	Month   string                 `json:"month"`
	Budgets []BudgetStatusResponse `json:"budgets"`
}

// ToBudgetResponse converts an upserted budget to a BudgetResponse DTO.
func ToBudgetResponse(budget *entity.Budget, created bool) BudgetResponse {
	return BudgetResponse{
		ID:         budget.ID,
		CategoryID: budget.CategoryID,
		Amount:     Money(budget.Amount),
		Month:      budget.Month,
		Created:    created,
	}
}

// ToBudgetListResponse converts budget statuses to the list response.
func ToBudgetListResponse(month string, statuses []*entity.BudgetStatus) BudgetListResponse {
	items := make([]BudgetStatusResponse, len(statuses))
	for i, s := range statuses {
		items[i] = BudgetStatusResponse{
			ID:            s.Budget.ID,
			CategoryID:    s.Budget.CategoryID,
			CategoryName:  s.CategoryName,
			CategoryColor: s.CategoryColor,
			Amount:        Money(s.Budget.Amount),
			Spent:         Money(s.Spent),
			Remaining:     Money(s.Remaining),
			Month:         s.Budget.Month,
		}
	}
	return BudgetListResponse{Month: month, Budgets: items}
}
