package summary

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-ledger/backend/internal/domain/entity"
	domainerror "github.com/expense-ledger/backend/internal/domain/error"
)

type stubExpenseRepository struct {
	expenses  []*entity.Expense
	err       error
	lastMonth string

	// unfiltered returns every expense from ListByUserAndMonth.
	unfiltered bool
}

func (s *stubExpenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	return nil
}

func (s *stubExpenseRepository) ListByUser(ctx context.Context, userID int64) ([]*entity.Expense, error) {
	return s.expenses, s.err
}

func (s *stubExpenseRepository) ListByUserAndMonth(ctx context.Context, userID int64, month string) ([]*entity.Expense, error) {
	s.lastMonth = month
	if s.err != nil {
		return nil, s.err
	}
	if s.unfiltered {
		return s.expenses, nil
	}
	return FilterByMonth(s.expenses, month), nil
}

func (s *stubExpenseRepository) Delete(ctx context.Context, id, userID int64) (bool, error) {
	return false, nil
}

type stubCategoryRepository struct {
	categories []*entity.Category
}

func (s *stubCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	return nil
}

func (s *stubCategoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	return s.categories, nil
}

func (s *stubCategoryRepository) FindByIDs(ctx context.Context, ids []int64) ([]*entity.Category, error) {
	return s.categories, nil
}

func (s *stubCategoryRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(s.categories)), nil
}

type stubBudgetRepository struct {
	budgets []*entity.Budget
}

func (s *stubBudgetRepository) FindByKey(ctx context.Context, userID, categoryID int64, month string) (*entity.Budget, error) {
	return nil, domainerror.ErrBudgetNotFound
}

func (s *stubBudgetRepository) Create(ctx context.Context, budget *entity.Budget) error {
	return nil
}

func (s *stubBudgetRepository) ReplaceAmount(ctx context.Context, id int64, amount decimal.Decimal) error {
	return nil
}

func (s *stubBudgetRepository) ListByUserAndMonth(ctx context.Context, userID int64, month string) ([]*entity.Budget, error) {
	return s.budgets, nil
}

func TestGetMonthlySummaryUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	expenses := &stubExpenseRepository{expenses: []*entity.Expense{
		expense(1, 1, "50", "2024-05-01"),
		expense(2, 1, "30", "2024-05-01"),
		expense(3, 2, "20", "2024-05-02"),
		expense(4, 2, "999", "2024-04-30"),
	}}
	categories := &stubCategoryRepository{categories: testCategories()}
	budgets := &stubBudgetRepository{budgets: []*entity.Budget{
		entity.NewBudget(1, 1, 1, decimal.NewFromInt(150), "2024-05"),
		entity.NewBudget(2, 1, 2, decimal.NewFromInt(50), "2024-05"),
	}}
	uc := NewGetMonthlySummaryUseCase(expenses, categories, budgets)

	t.Run("aggregates the requested month", func(t *testing.T) {
		output, err := uc.Execute(ctx, GetMonthlySummaryInput{UserID: 1, Month: "2024-5"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		s := output.Summary

		if s.Month != "2024-05" {
			t.Errorf("expected normalized month 2024-05, got %s", s.Month)
		}
		if !s.TotalSpent.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected total 100, got %s", s.TotalSpent)
		}
		if s.ExpenseCount != 3 {
			t.Errorf("expected 3 expenses, got %d", s.ExpenseCount)
		}
		if !s.TotalBudget.Equal(decimal.NewFromInt(200)) || !s.RemainingBudget.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected budget 200 remaining 100, got %s / %s", s.TotalBudget, s.RemainingBudget)
		}
		if len(s.CategoryBreakdown) != 2 || len(s.DailySpending) != 2 {
			t.Errorf("unexpected breakdown %+v / daily %+v", s.CategoryBreakdown, s.DailySpending)
		}
	})

	t.Run("defaults to the current month", func(t *testing.T) {
		uc.now = func() time.Time { return time.Date(2024, time.May, 17, 9, 0, 0, 0, time.UTC) }

		output, err := uc.Execute(ctx, GetMonthlySummaryInput{UserID: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Summary.Month != "2024-05" || expenses.lastMonth != "2024-05" {
			t.Errorf("expected current month 2024-05, got %s", output.Summary.Month)
		}
	})

	t.Run("rejects malformed month", func(t *testing.T) {
		_, err := uc.Execute(ctx, GetMonthlySummaryInput{UserID: 1, Month: "May 2024"})
		if !errors.Is(err, domainerror.ErrValidation) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("rejects missing user", func(t *testing.T) {
		_, err := uc.Execute(ctx, GetMonthlySummaryInput{Month: "2024-05"})
		if !errors.Is(err, domainerror.ErrValidation) {
			t.Errorf("expected validation error, got %v", err)
		}
	})
}

func TestGetMonthlySummaryUseCase_IgnoresRowsOutsideMonth(t *testing.T) {
	expenses := &stubExpenseRepository{
		unfiltered: true,
		expenses: []*entity.Expense{
			expense(1, 1, "10", "2024-05-01"),
			expense(2, 1, "20", "2024-04-30"),
			expense(3, 2, "40", "2024-050"),
		},
	}
	uc := NewGetMonthlySummaryUseCase(expenses, &stubCategoryRepository{categories: testCategories()}, &stubBudgetRepository{})

	output, err := uc.Execute(context.Background(), GetMonthlySummaryInput{UserID: 1, Month: "2024-05"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Summary.ExpenseCount != 1 || !output.Summary.TotalSpent.Equal(decimal.NewFromInt(10)) {
		t.Errorf("expected only the May row, got count %d total %s", output.Summary.ExpenseCount, output.Summary.TotalSpent)
	}
	if len(output.Summary.DailySpending) != 1 || output.Summary.DailySpending[0].Date != "2024-05-01" {
		t.Errorf("unexpected daily series %+v", output.Summary.DailySpending)
	}
}

func TestGetMonthlySummaryUseCase_PropagatesStorageFailure(t *testing.T) {
	expenses := &stubExpenseRepository{err: domainerror.StorageUnavailable(errors.New("connection refused"))}
	uc := NewGetMonthlySummaryUseCase(expenses, &stubCategoryRepository{}, &stubBudgetRepository{})

	output, err := uc.Execute(context.Background(), GetMonthlySummaryInput{UserID: 1, Month: "2024-05"})
	if !errors.Is(err, domainerror.ErrStorageUnavailable) {
		t.Errorf("expected storage unavailable, got %v", err)
	}
	if output != nil {
		t.Error("expected no summary on failure")
	}
}
