// Package summary contains the monthly statistics use case and the pure
// aggregation functions it is built on.
package summary

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/expense-ledger/backend/internal/domain/entity"
	"github.com/expense-ledger/backend/internal/domain/valueobject"
)

// TotalSpent returns the sum of all expense amounts.
func TotalSpent(expenses []*entity.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// SpentByCategory sums expense amounts per category ID.
func SpentByCategory(expenses []*entity.Expense) map[int64]decimal.Decimal {
	spent := make(map[int64]decimal.Decimal)
	for _, e := range expenses {
		spent[e.CategoryID] = spent[e.CategoryID].Add(e.Amount)
	}
	return spent
}

// CategoryBreakdown returns one entry per distinct category in expenses,
// in order of first appearance.
func CategoryBreakdown(expenses []*entity.Expense, categories []*entity.Category) []entity.CategorySpending {
	index := IndexCategories(categories)
	breakdown := make([]entity.CategorySpending, 0)
	position := make(map[int64]int)

	for _, e := range expenses {
		if i, ok := position[e.CategoryID]; ok {
			breakdown[i].Value = breakdown[i].Value.Add(e.Amount)
			continue
		}

		name, color := ResolveCategory(e.CategoryID, index)
		position[e.CategoryID] = len(breakdown)
		breakdown = append(breakdown, entity.CategorySpending{
			CategoryID: e.CategoryID,
			Name:       name,
			Value:      e.Amount,
			Color:      color,
		})
	}
	return breakdown
}

// DailySpending returns per-day totals sorted ascending by date.
func DailySpending(expenses []*entity.Expense) []entity.DailySpending {
	byDate := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		byDate[e.Date] = byDate[e.Date].Add(e.Amount)
	}

	daily := make([]entity.DailySpending, 0, len(byDate))
	for date, amount := range byDate {
		daily = append(daily, entity.DailySpending{Date: date, Amount: amount})
	}
	// Canonical YYYY-MM-DD sorts chronologically as text.
	sort.Slice(daily, func(i, j int) bool { return daily[i].Date < daily[j].Date })
	return daily
}

// FilterByMonth selects the expenses dated within month.
func FilterByMonth(expenses []*entity.Expense, month string) []*entity.Expense {
	filtered := make([]*entity.Expense, 0, len(expenses))
	for _, e := range expenses {
		if valueobject.InMonth(e.Date, month) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// CategoryIDs returns the distinct category IDs of expenses in first-appearance order.
func CategoryIDs(expenses []*entity.Expense) []int64 {
	seen := make(map[int64]bool)
	ids := make([]int64, 0)
	for _, e := range expenses {
		if !seen[e.CategoryID] {
			seen[e.CategoryID] = true
			ids = append(ids, e.CategoryID)
		}
	}
	return ids
}

// IndexCategories keys categories by ID.
func IndexCategories(categories []*entity.Category) map[int64]*entity.Category {
	index := make(map[int64]*entity.Category, len(categories))
	for _, c := range categories {
		index[c.ID] = c
	}
	return index
}

// ResolveCategory returns the display name and color for a category ID,
// falling back to Unknown for IDs not in index.
func ResolveCategory(id int64, index map[int64]*entity.Category) (name, color string) {
	if c, ok := index[id]; ok {
		return c.Name, c.Color
	}
	return entity.UnknownCategoryName, entity.UnknownCategoryColor
}
