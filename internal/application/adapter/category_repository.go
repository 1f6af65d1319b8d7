// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/expense-ledger/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category. A taken name yields domainerror.ErrDuplicateKey.
	Create(ctx context.Context, category *entity.Category) error

	// List retrieves all categories ordered by ID.
	List(ctx context.Context) ([]*entity.Category, error)

	// FindByIDs retrieves the categories whose IDs are listed. Unknown IDs are skipped.
	FindByIDs(ctx context.Context, ids []int64) ([]*entity.Category, error)

	// Count returns the number of categories.
	Count(ctx context.Context) (int64, error)
}
