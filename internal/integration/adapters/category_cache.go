// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/expense-ledger/backend/internal/application/adapter"
	"github.com/expense-ledger/backend/internal/domain/entity"
)

const categoryCacheSuffix = "categories"

type cachedCategory struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// cachedCategoryRepository serves category reads from a Redis snapshot of the
// whole table and falls back to the wrapped repository on a miss or a cache error.
type cachedCategoryRepository struct {
	next   adapter.CategoryRepository
	client redis.UniversalClient
	key    string
	ttl    time.Duration
}

// NewCachedCategoryRepository wraps next with a read-through Redis cache.
func NewCachedCategoryRepository(next adapter.CategoryRepository, client redis.UniversalClient, keyPrefix string, ttl time.Duration) adapter.CategoryRepository {
	key := categoryCacheSuffix
	if keyPrefix != "" {
		key = keyPrefix + ":" + categoryCacheSuffix
	}
	return &cachedCategoryRepository{
		next:   next,
		client: client,
		key:    key,
		ttl:    ttl,
	}
}

// Create writes through to the repository and drops the snapshot.
func (r *cachedCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	if err := r.next.Create(ctx, category); err != nil {
		return err
	}
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		slog.Warn("failed to invalidate category cache", "key", r.key, "error", err)
	}
	return nil
}

// List returns all categories ordered by ID.
func (r *cachedCategoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	if categories, ok := r.load(ctx); ok {
		return categories, nil
	}

	categories, err := r.next.List(ctx)
	if err != nil {
		return nil, err
	}
	r.store(ctx, categories)
	return categories, nil
}

// FindByIDs filters the snapshot when one is cached.
func (r *cachedCategoryRepository) FindByIDs(ctx context.Context, ids []int64) ([]*entity.Category, error) {
	categories, ok := r.load(ctx)
	if !ok {
		return r.next.FindByIDs(ctx, ids)
	}

	wanted := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	found := make([]*entity.Category, 0, len(ids))
	for _, c := range categories {
		if _, ok := wanted[c.ID]; ok {
			found = append(found, c)
		}
	}
	return found, nil
}

// Count is always answered by the repository.
func (r *cachedCategoryRepository) Count(ctx context.Context) (int64, error) {
	return r.next.Count(ctx)
}

func (r *cachedCategoryRepository) load(ctx context.Context) ([]*entity.Category, bool) {
	raw, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("failed to read category cache", "key", r.key, "error", err)
		}
		return nil, false
	}

	var cached []cachedCategory
	if err := json.Unmarshal(raw, &cached); err != nil {
		slog.Warn("discarding malformed category cache", "key", r.key, "error", err)
		return nil, false
	}

	categories := make([]*entity.Category, len(cached))
	for i, c := range cached {
		categories[i] = entity.NewCategory(c.ID, c.Name, c.Color)
	}
	return categories, true
}

func (r *cachedCategoryRepository) store(ctx context.Context, categories []*entity.Category) {
	// An empty table is not cached so that seeding is picked up immediately.
	if len(categories) == 0 {
		return
	}

	cached := make([]cachedCategory, len(categories))
	for i, c := range categories {
		cached[i] = cachedCategory{ID: c.ID, Name: c.Name, Color: c.Color}
	}
	raw, err := json.Marshal(cached)
	if err != nil {
		slog.Warn("failed to encode category cache", "error", err)
		return
	}
	if err := r.client.Set(ctx, r.key, raw, r.ttl).Err(); err != nil {
		slog.Warn("failed to write category cache", "key", r.key, "error", err)
	}
}
