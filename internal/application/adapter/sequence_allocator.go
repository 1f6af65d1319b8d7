// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// SequenceAllocator issues identifiers for new records.
//
// NextID returns a value strictly greater than every value previously returned
// for the same entity type, across all callers and all service instances that
// share the backing store. The first call for an unseen type returns 1.
// Implementations must perform the increment atomically in the store; if the
// store is unreachable they return domainerror.ErrStorageUnavailable and never
// a fabricated value.
type SequenceAllocator interface {
	NextID(ctx context.Context, entityType string) (int64, error)
}
