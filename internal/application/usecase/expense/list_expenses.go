// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"

	"github.com/expense-ledger/backend/internal/application/adapter"
	"github.com/expense-ledger/backend/internal/application/usecase/summary"
	"github.com/expense-ledger/backend/internal/domain/entity"
	domainerror "github.com/expense-ledger/backend/internal/domain/error"
	"github.com/expense-ledger/backend/internal/domain/valueobject"
)

// ListExpensesInput represents the input for listing expenses.
type ListExpensesInput struct {
	UserID int64
	// Month optionally restricts the listing to YYYY-MM.
	Month string
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses []*entity.ExpenseWithCategory
}

// ListExpensesUseCase lists a user's expenses with their categories resolved.
type ListExpensesUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	categoryRepo adapter.CategoryRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository, categoryRepo adapter.CategoryRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the listing, newest first.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	var (
		expenses []*entity.Expense
		err      error
	)
	if input.Month != "" {
		month, parseErr := valueobject.ParseMonth(input.Month)
		if parseErr != nil {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidExpenseMonth,
				"month must be in YYYY-MM format",
				parseErr,
			)
		}
		expenses, err = uc.expenseRepo.ListByUserAndMonth(ctx, input.UserID, month)
	} else {
		expenses, err = uc.expenseRepo.ListByUser(ctx, input.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	result := make([]*entity.ExpenseWithCategory, len(expenses))
	if len(expenses) == 0 {
		return &ListExpensesOutput{Expenses: result}, nil
	}

	categories, err := uc.categoryRepo.FindByIDs(ctx, summary.CategoryIDs(expenses))
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	index := summary.IndexCategories(categories)

	for i, e := range expenses {
		name, color := summary.ResolveCategory(e.CategoryID, index)
		result[i] = &entity.ExpenseWithCategory{
			Expense:       e,
			CategoryName:  name,
			CategoryColor: color,
		}
	}
	return &ListExpensesOutput{Expenses: result}, nil
}
