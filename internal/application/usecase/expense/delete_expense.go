// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/expense-ledger/backend/internal/application/adapter"
	domainerror "github.com/expense-ledger/backend/internal/domain/error"
)

// DeleteExpenseInput represents the input for deleting an expense.
type DeleteExpenseInput struct {
	UserID    int64
	ExpenseID int64
}

// DeleteExpenseOutput represents the output of deleting an expense.
type DeleteExpenseOutput struct {
	Deleted bool
}

// DeleteExpenseUseCase removes one of the caller's expenses.
type DeleteExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(expenseRepo adapter.ExpenseRepository) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute deletes the expense. An expense that does not exist or belongs to
// another user is left alone and reported as not deleted, without error.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) (*DeleteExpenseOutput, error) {
	if input.ExpenseID <= 0 {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseID,
			"expense id must be a positive integer",
			domainerror.ErrValidation,
		)
	}

	deleted, err := uc.expenseRepo.Delete(ctx, input.ExpenseID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete expense: %w", err)
	}
	if !deleted {
		slog.InfoContext(ctx, "Expense delete matched nothing",
			"expense_id", input.ExpenseID,
			"user_id", input.UserID,
		)
	}
	return &DeleteExpenseOutput{Deleted: deleted}, nil
}
