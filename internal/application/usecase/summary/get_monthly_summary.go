// Package summary contains the monthly statistics use case and the pure
// aggregation functions it is built on.
package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/expense-ledger/backend/internal/application/adapter"
	"github.com/expense-ledger/backend/internal/domain/entity"
	domainerror "github.com/expense-ledger/backend/internal/domain/error"
	"github.com/expense-ledger/backend/internal/domain/valueobject"
)

// GetMonthlySummaryInput represents the input for the monthly summary.
type GetMonthlySummaryInput struct {
	UserID int64
	// Month is YYYY-MM; empty means the current month.
	Month string
}

// GetMonthlySummaryOutput represents the output of the monthly summary.
type GetMonthlySummaryOutput struct {
	Summary *entity.MonthlySummary
}

// GetMonthlySummaryUseCase computes a user's statistics for one month.
type GetMonthlySummaryUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	categoryRepo adapter.CategoryRepository
	budgetRepo   adapter.BudgetRepository
	now          func() time.Time
}

// NewGetMonthlySummaryUseCase creates a new GetMonthlySummaryUseCase instance.
func NewGetMonthlySummaryUseCase(
	expenseRepo adapter.ExpenseRepository,
	categoryRepo adapter.CategoryRepository,
	budgetRepo adapter.BudgetRepository,
) *GetMonthlySummaryUseCase {
	return &GetMonthlySummaryUseCase{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
		budgetRepo:   budgetRepo,
		now:          time.Now,
	}
}

// Execute loads the month's expenses, the categories and the month's budgets
// concurrently and aggregates them.
func (uc *GetMonthlySummaryUseCase) Execute(ctx context.Context, input GetMonthlySummaryInput) (*GetMonthlySummaryOutput, error) {
	if input.UserID <= 0 {
		return nil, domainerror.NewSummaryError(
			domainerror.ErrCodeMissingSummaryUser,
			"user is required",
			domainerror.ErrValidation,
		)
	}

	month := valueobject.CurrentMonth(uc.now())
	if input.Month != "" {
		parsed, err := valueobject.ParseMonth(input.Month)
		if err != nil {
			return nil, domainerror.NewSummaryError(
				domainerror.ErrCodeInvalidSummaryMonth,
				"month must be in YYYY-MM format",
				err,
			)
		}
		month = parsed
	}

	var (
		expenses   []*entity.Expense
		categories []*entity.Category
		budgets    []*entity.Budget
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		expenses, err = uc.expenseRepo.ListByUserAndMonth(gctx, input.UserID, month)
		if err != nil {
			return fmt.Errorf("failed to load expenses: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		categories, err = uc.categoryRepo.List(gctx)
		if err != nil {
			return fmt.Errorf("failed to load categories: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		budgets, err = uc.budgetRepo.ListByUserAndMonth(gctx, input.UserID, month)
		if err != nil {
			return fmt.Errorf("failed to load budgets: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// The store matches on a date prefix; keep only rows whose canonical date is in the month.
	expenses = FilterByMonth(expenses, month)

	totalSpent := TotalSpent(expenses)
	totalBudget := decimal.Zero
	for _, b := range budgets {
		totalBudget = totalBudget.Add(b.Amount)
	}

	return &GetMonthlySummaryOutput{
		Summary: &entity.MonthlySummary{
			Month:             month,
			TotalSpent:        totalSpent,
			ExpenseCount:      len(expenses),
			TotalBudget:       totalBudget,
			RemainingBudget:   totalBudget.Sub(totalSpent),
			CategoryBreakdown: CategoryBreakdown(expenses, categories),
			DailySpending:     DailySpending(expenses),
		},
	}, nil
}
