// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/expense-ledger/backend/internal/application/adapter"
	domainerror "github.com/expense-ledger/backend/internal/domain/error"
)

// redisSequenceAllocator issues identifiers with Redis INCR, one key per entity type.
type redisSequenceAllocator struct {
	client    redis.UniversalClient
	keyPrefix string
}

// NewRedisSequenceAllocator creates an allocator whose counters live under keyPrefix.
func NewRedisSequenceAllocator(client redis.UniversalClient, keyPrefix string) adapter.SequenceAllocator {
	return &redisSequenceAllocator{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// NextID atomically increments <prefix>:<entityType>. A missing key starts at 0, so the first ID is 1.
func (a *redisSequenceAllocator) NextID(ctx context.Context, entityType string) (int64, error) {
	if strings.TrimSpace(entityType) == "" {
		return 0, domainerror.ErrInvalidEntityType
	}

	id, err := a.client.Incr(ctx, a.key(entityType)).Result()
	if err != nil {
		return 0, domainerror.StorageUnavailable(err)
	}
	return id, nil
}

func (a *redisSequenceAllocator) key(entityType string) string {
	if a.keyPrefix == "" {
		return entityType
	}
	return a.keyPrefix + ":" + entityType
}
