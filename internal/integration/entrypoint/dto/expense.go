// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-ledger/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for recording an expense.
// Amount accepts a JSON number or a numeric string.
type CreateExpenseRequest struct {
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	CategoryID  int64            `json:"category_id" binding:"required"`
	Description string           `json:"description"`
	Date        string           `json:"date"`
}

// ExpenseResponse represents an expense in API responses.
type ExpenseResponse struct {
	ID            int64       `json:"id"`
	Amount        json.Number `json:"amount"`
	CategoryID    int64       `json:"category_id"`
	CategoryName  string      `json:"category_name,omitempty"`
	CategoryColor string      `json:"category_color,omitempty"`
	Description   string      `json:"description"`
	Date          string      `json:"date"`
	CreatedAt     time.Time   `json:"created_at"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToExpenseResponse converts a domain Expense to an ExpenseResponse DTO.
func ToExpenseResponse(expense *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          expense.ID,
		Amount:      Money(expense.Amount),
		CategoryID:  expense.CategoryID,
		Description: expense.Description,
		Date:        expense.Date,
		CreatedAt:   expense.CreatedAt,
	}
}

// ToExpenseListResponse converts resolved expenses to the list response.
func ToExpenseListResponse(expenses []*entity.ExpenseWithCategory) ExpenseListResponse {
	items := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		items[i] = ToExpenseResponse(e.Expense)
		items[i].CategoryName = e.CategoryName
		items[i].CategoryColor = e.CategoryColor
	}
	return ExpenseListResponse{Expenses: items}
}
