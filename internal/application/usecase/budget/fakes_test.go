package budget

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/expense-ledger/backend/internal/domain/entity"
	domainerror "github.com/expense-ledger/backend/internal/domain/error"
)

type memoryAllocator struct {
	mu       sync.Mutex
	counters map[string]int64
}

func newMemoryAllocator() *memoryAllocator {
	return &memoryAllocator{counters: make(map[string]int64)}
}

func (a *memoryAllocator) NextID(ctx context.Context, entityType string) (int64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.counters[entityType]++
	return a.counters[entityType], nil
}

type budgetKey struct {
	userID     int64
	categoryID int64
	month      string
}

// memoryBudgetRepository enforces the (user, category, month) uniqueness like the store index does.
type memoryBudgetRepository struct {
	mu      sync.Mutex
	budgets map[budgetKey]*entity.Budget
	creates int
	// beforeCreate runs ahead of the uniqueness check, to stage a concurrent winner.
	beforeCreate func(r *memoryBudgetRepository, budget *entity.Budget)
}

func newMemoryBudgetRepository() *memoryBudgetRepository {
	return &memoryBudgetRepository{budgets: make(map[budgetKey]*entity.Budget)}
}

func (r *memoryBudgetRepository) insert(budget *entity.Budget) error {
	key := budgetKey{budget.UserID, budget.CategoryID, budget.Month}
	if _, ok := r.budgets[key]; ok {
		return domainerror.DuplicateKey("budget", nil)
	}
	copied := *budget
	r.budgets[key] = &copied
	return nil
}

func (r *memoryBudgetRepository) FindByKey(ctx context.Context, userID, categoryID int64, month string) (*entity.Budget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.budgets[budgetKey{userID, categoryID, month}]
	if !ok {
		return nil, domainerror.ErrBudgetNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *memoryBudgetRepository) Create(ctx context.Context, budget *entity.Budget) error {
	if r.beforeCreate != nil {
		hook := r.beforeCreate
		r.beforeCreate = nil
		hook(r, budget)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creates++
	return r.insert(budget)
}

func (r *memoryBudgetRepository) ReplaceAmount(ctx context.Context, id int64, amount decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.budgets {
		if b.ID == id {
			b.Amount = amount
			return nil
		}
	}
	return domainerror.ErrBudgetNotFound
}

func (r *memoryBudgetRepository) ListByUserAndMonth(ctx context.Context, userID int64, month string) ([]*entity.Budget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var budgets []*entity.Budget
	for _, b := range r.budgets {
		if b.UserID == userID && b.Month == month {
			copied := *b
			budgets = append(budgets, &copied)
		}
	}
	return budgets, nil
}

type memoryExpenseRepository struct {
	expenses []*entity.Expense
}

func (r *memoryExpenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	r.expenses = append(r.expenses, expense)
	return nil
}

func (r *memoryExpenseRepository) ListByUser(ctx context.Context, userID int64) ([]*entity.Expense, error) {
	return r.expenses, nil
}

func (r *memoryExpenseRepository) ListByUserAndMonth(ctx context.Context, userID int64, month string) ([]*entity.Expense, error) {
	var matched []*entity.Expense
	for _, e := range r.expenses {
		if e.UserID == userID && len(e.Date) >= 7 && e.Date[:7] == month {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

func (r *memoryExpenseRepository) Delete(ctx context.Context, id, userID int64) (bool, error) {
	return false, nil
}

type memoryCategoryRepository struct {
	categories []*entity.Category
	requested  []int64
}

func (r *memoryCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	r.categories = append(r.categories, category)
	return nil
}

func (r *memoryCategoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	return r.categories, nil
}

func (r *memoryCategoryRepository) FindByIDs(ctx context.Context, ids []int64) ([]*entity.Category, error) {
	r.requested = append(r.requested, ids...)
	wanted := make(map[int64]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	found := make([]*entity.Category, 0, len(ids))
	for _, c := range r.categories {
		if wanted[c.ID] {
			found = append(found, c)
		}
	}
	return found, nil
}

func (r *memoryCategoryRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(r.categories)), nil
}
