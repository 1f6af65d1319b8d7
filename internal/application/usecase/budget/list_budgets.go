// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/expense-ledger/backend/internal/application/adapter"
	"github.com/expense-ledger/backend/internal/application/usecase/summary"
	"github.com/expense-ledger/backend/internal/domain/entity"
	domainerror "github.com/expense-ledger/backend/internal/domain/error"
	"github.com/expense-ledger/backend/internal/domain/valueobject"
)

// ListBudgetsInput represents the input for listing a month's budgets.
type ListBudgetsInput struct {
	UserID int64
	Month  string
}

// ListBudgetsOutput represents the output of listing a month's budgets.
type ListBudgetsOutput struct {
	Month   string
	Budgets []*entity.BudgetStatus
}

// ListBudgetsUseCase lists a user's budgets for a month next to what was spent.
type ListBudgetsUseCase struct {
	budgetRepo   adapter.BudgetRepository
	expenseRepo  adapter.ExpenseRepository
	categoryRepo adapter.CategoryRepository
	now          func() time.Time
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(
	budgetRepo adapter.BudgetRepository,
	expenseRepo adapter.ExpenseRepository,
	categoryRepo adapter.CategoryRepository,
) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo:   budgetRepo,
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
		now:          time.Now,
	}
}

// Execute lists the budgets.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	month := valueobject.CurrentMonth(uc.now())
	if input.Month != "" {
		parsed, err := valueobject.ParseMonth(input.Month)
		if err != nil {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidBudgetMonth,
				"month must be in YYYY-MM format",
				err,
			)
		}
		month = parsed
	}

	budgets, err := uc.budgetRepo.ListByUserAndMonth(ctx, input.UserID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	if len(budgets) == 0 {
		return &ListBudgetsOutput{Month: month, Budgets: []*entity.BudgetStatus{}}, nil
	}

	expenses, err := uc.expenseRepo.ListByUserAndMonth(ctx, input.UserID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	categoryIDs := make([]int64, len(budgets))
	for i, b := range budgets {
		categoryIDs[i] = b.CategoryID
	}
	categories, err := uc.categoryRepo.FindByIDs(ctx, categoryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	spent := summary.SpentByCategory(expenses)
	index := summary.IndexCategories(categories)

	statuses := make([]*entity.BudgetStatus, len(budgets))
	for i, b := range budgets {
		name, color := summary.ResolveCategory(b.CategoryID, index)
		statuses[i] = &entity.BudgetStatus{
			Budget:        b,
			CategoryName:  name,
			CategoryColor: color,
			Spent:         spent[b.CategoryID],
			Remaining:     b.Amount.Sub(spent[b.CategoryID]),
		}
	}

	return &ListBudgetsOutput{Month: month, Budgets: statuses}, nil
}
