// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/expense-ledger/backend/internal/application/adapter"
	"github.com/expense-ledger/backend/internal/domain/entity"
	domainerror "github.com/expense-ledger/backend/internal/domain/error"
	"github.com/expense-ledger/backend/internal/domain/valueobject"
)

// MaxDescriptionLength is the maximum number of characters in a description.
const MaxDescriptionLength = 255

// CreateExpenseInput represents the input for recording an expense.
type CreateExpenseInput struct {
	UserID      int64
	Amount      decimal.Decimal
	CategoryID  int64
	Description string
	// Date accepts YYYY-MM-DD, YYYY-M-D or an RFC 3339 timestamp; empty means today.
	Date string
}

// CreateExpenseOutput represents the output of recording an expense.
type CreateExpenseOutput struct {
	Expense *entity.Expense
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	allocator   adapter.SequenceAllocator
	now         func() time.Time
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseRepo adapter.ExpenseRepository, allocator adapter.SequenceAllocator) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo: expenseRepo,
		allocator:   allocator,
		now:         time.Now,
	}
}

// Execute validates the expense, allocates its ID and stores it.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if input.UserID <= 0 {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeMissingExpenseUser,
			"user is required",
			domainerror.ErrMissingExpenseUser,
		)
	}
	if input.Amount.IsNegative() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"amount must not be negative",
			domainerror.ErrInvalidExpenseAmount,
		)
	}
	if !valueobject.AmountFits(input.Amount) {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseAmountRange,
			"amount must have at most 2 decimal places and be below 10000000000000",
			domainerror.ErrExpenseAmountOutOfRange,
		)
	}
	if input.CategoryID <= 0 {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeMissingExpenseCategory,
			"category is required",
			domainerror.ErrMissingExpenseCategory,
		)
	}
	if utf8.RuneCountInString(input.Description) > MaxDescriptionLength {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must be at most %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}

	date := valueobject.Today(uc.now())
	if input.Date != "" {
		parsed, err := valueobject.ParseDate(input.Date)
		if err != nil {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidExpenseDate,
				"date must be in YYYY-MM-DD format",
				err,
			)
		}
		date = parsed
	}

	id, err := uc.allocator.NextID(ctx, entity.SequenceExpense)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate expense id: %w", err)
	}

	expense := entity.NewExpense(id, input.UserID, input.Amount, input.CategoryID, input.Description, date)
	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return &CreateExpenseOutput{Expense: expense}, nil
}
