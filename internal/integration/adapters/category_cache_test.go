package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/expense-ledger/backend/internal/domain/entity"
)

type countingCategoryRepository struct {
	categories []*entity.Category
	listCalls  int
}

func (r *countingCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	r.categories = append(r.categories, category)
	return nil
}

func (r *countingCategoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	r.listCalls++
	return r.categories, nil
}

func (r *countingCategoryRepository) FindByIDs(ctx context.Context, ids []int64) ([]*entity.Category, error) {
	var found []*entity.Category
	for _, c := range r.categories {
		for _, id := range ids {
			if c.ID == id {
				found = append(found, c)
			}
		}
	}
	return found, nil
}

func (r *countingCategoryRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(r.categories)), nil
}

func seededCategories() []*entity.Category {
	categories := make([]*entity.Category, len(entity.DefaultCategories))
	for i, d := range entity.DefaultCategories {
		categories[i] = entity.NewCategory(int64(i+1), d.Name, d.Color)
	}
	return categories
}

func TestCachedCategoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("second list is served from cache", func(t *testing.T) {
		_, client := newTestRedis(t)
		inner := &countingCategoryRepository{categories: seededCategories()}
		repo := NewCachedCategoryRepository(inner, client, "ledger", time.Minute)

		first, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if inner.listCalls != 1 {
			t.Errorf("expected one repository call, got %d", inner.listCalls)
		}
		if len(second) != len(first) || second[0].Name != first[0].Name || second[0].Color != first[0].Color {
			t.Errorf("expected cached categories to match, got %+v", second)
		}
	})

	t.Run("create invalidates the snapshot", func(t *testing.T) {
		_, client := newTestRedis(t)
		inner := &countingCategoryRepository{categories: seededCategories()}
		repo := NewCachedCategoryRepository(inner, client, "ledger", time.Minute)

		_, _ = repo.List(ctx)
		if err := repo.Create(ctx, entity.NewCategory(100, "Travel", "#123456")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		categories, _ := repo.List(ctx)

		if inner.listCalls != 2 {
			t.Errorf("expected repository reload after create, got %d calls", inner.listCalls)
		}
		if categories[len(categories)-1].Name != "Travel" {
			t.Errorf("expected new category in list, got %+v", categories)
		}
	})

	t.Run("find by ids uses the snapshot", func(t *testing.T) {
		_, client := newTestRedis(t)
		inner := &countingCategoryRepository{categories: seededCategories()}
		repo := NewCachedCategoryRepository(inner, client, "ledger", time.Minute)
		_, _ = repo.List(ctx)
		inner.categories = nil

		found, err := repo.FindByIDs(ctx, []int64{2, 404})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(found) != 1 || found[0].Name != "Transport" {
			t.Errorf("expected Transport from cache, got %+v", found)
		}
	})

	t.Run("redis outage falls back to repository", func(t *testing.T) {
		mr, client := newTestRedis(t)
		inner := &countingCategoryRepository{categories: seededCategories()}
		repo := NewCachedCategoryRepository(inner, client, "ledger", time.Minute)
		mr.Close()

		categories, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("expected cache failure to be hidden, got %v", err)
		}
		if len(categories) != len(inner.categories) {
			t.Errorf("expected %d categories, got %d", len(inner.categories), len(categories))
		}
	})
}
