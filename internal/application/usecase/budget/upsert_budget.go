// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/expense-ledger/backend/internal/application/adapter"
	"github.com/expense-ledger/backend/internal/domain/entity"
	domainerror "github.com/expense-ledger/backend/internal/domain/error"
	"github.com/expense-ledger/backend/internal/domain/valueobject"
)

// UpsertBudgetInput represents the input for setting a monthly budget.
type UpsertBudgetInput struct {
	UserID     int64
	CategoryID int64
	Amount     decimal.Decimal
	Month      string
}

// UpsertBudgetOutput represents the output of setting a monthly budget.
type UpsertBudgetOutput struct {
	Budget  *entity.Budget
	Created bool
}

// UpsertBudgetUseCase creates the budget for a (user, category, month) triple
// or replaces the amount of the existing one.
type UpsertBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	allocator  adapter.SequenceAllocator
}

// NewUpsertBudgetUseCase creates a new UpsertBudgetUseCase instance.
func NewUpsertBudgetUseCase(budgetRepo adapter.BudgetRepository, allocator adapter.SequenceAllocator) *UpsertBudgetUseCase {
	return &UpsertBudgetUseCase{
		budgetRepo: budgetRepo,
		allocator:  allocator,
	}
}

// Execute performs the upsert. A create that loses a concurrent race is
// retried once as an update of the winner's row.
func (uc *UpsertBudgetUseCase) Execute(ctx context.Context, input UpsertBudgetInput) (*UpsertBudgetOutput, error) {
	month, err := validateUpsert(input)
	if err != nil {
		return nil, err
	}

	existing, err := uc.budgetRepo.FindByKey(ctx, input.UserID, input.CategoryID, month)
	switch {
	case err == nil:
		return uc.replace(ctx, existing, input.Amount)
	case !errors.Is(err, domainerror.ErrBudgetNotFound):
		return nil, fmt.Errorf("failed to look up budget: %w", err)
	}

	id, err := uc.allocator.NextID(ctx, entity.SequenceBudget)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate budget id: %w", err)
	}

	budget := entity.NewBudget(id, input.UserID, input.CategoryID, input.Amount, month)
	err = uc.budgetRepo.Create(ctx, budget)
	if err == nil {
		return &UpsertBudgetOutput{Budget: budget, Created: true}, nil
	}
	if !errors.Is(err, domainerror.ErrDuplicateKey) {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	slog.InfoContext(ctx, "Budget created concurrently, updating winner",
		"user_id", input.UserID,
		"category_id", input.CategoryID,
		"month", month,
		"discarded_id", id,
	)

	winner, err := uc.budgetRepo.FindByKey(ctx, input.UserID, input.CategoryID, month)
	if err != nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetConflict,
			"budget changed concurrently",
			err,
		)
	}
	return uc.replace(ctx, winner, input.Amount)
}

func (uc *UpsertBudgetUseCase) replace(ctx context.Context, budget *entity.Budget, amount decimal.Decimal) (*UpsertBudgetOutput, error) {
	if err := uc.budgetRepo.ReplaceAmount(ctx, budget.ID, amount); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}
	budget.Amount = amount
	return &UpsertBudgetOutput{Budget: budget, Created: false}, nil
}

func validateUpsert(input UpsertBudgetInput) (string, error) {
	if input.UserID <= 0 {
		return "", domainerror.NewBudgetError(
			domainerror.ErrCodeMissingBudgetUser,
			"user is required",
			domainerror.ErrMissingBudgetUser,
		)
	}
	if input.CategoryID <= 0 {
		return "", domainerror.NewBudgetError(
			domainerror.ErrCodeMissingBudgetCategory,
			"category is required",
			domainerror.ErrMissingBudgetCategory,
		)
	}
	if input.Amount.IsNegative() {
		return "", domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"amount must not be negative",
			domainerror.ErrInvalidBudgetAmount,
		)
	}
	if !valueobject.AmountFits(input.Amount) {
		return "", domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetAmountRange,
			"amount must have at most 2 decimal places and be below 10000000000000",
			domainerror.ErrBudgetAmountOutOfRange,
		)
	}
	month, err := valueobject.ParseMonth(input.Month)
	if err != nil {
		return "", domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetMonth,
			"month must be in YYYY-MM format",
			err,
		)
	}
	return month, nil
}
