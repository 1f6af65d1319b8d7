// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/expense-ledger/backend/internal/application/adapter"
	"github.com/expense-ledger/backend/internal/domain/entity"
	"github.com/expense-ledger/backend/internal/integration/persistence/model"
)

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a new category in the database.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	result := r.db.WithContext(ctx).Create(categoryModel)
	return translateError(result.Error, "category")
}

// List retrieves all categories ordered by ID.
func (r *categoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	result := r.db.WithContext(ctx).Order("id ASC").Find(&categoryModels)
	if result.Error != nil {
		return nil, translateError(result.Error, "category")
	}
	return toCategories(categoryModels), nil
}

// FindByIDs retrieves the categories whose IDs are listed.
func (r *categoryRepository) FindByIDs(ctx context.Context, ids []int64) ([]*entity.Category, error) {
	if len(ids) == 0 {
		return []*entity.Category{}, nil
	}

	var categoryModels []model.CategoryModel
	result := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&categoryModels)
	if result.Error != nil {
		return nil, translateError(result.Error, "category")
	}
	return toCategories(categoryModels), nil
}

// Count returns the number of categories.
func (r *categoryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.CategoryModel{}).Count(&count)
	if result.Error != nil {
		return 0, translateError(result.Error, "category")
	}
	return count, nil
}

func toCategories(models []model.CategoryModel) []*entity.Category {
	categories := make([]*entity.Category, len(models))
	for i := range models {
		categories[i] = models[i].ToEntity()
	}
	return categories
}
