// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/expense-ledger/backend/internal/application/adapter"
	domainerror "github.com/expense-ledger/backend/internal/domain/error"
	"github.com/expense-ledger/backend/internal/integration/persistence/model"
)

// sequenceAllocator issues identifiers from counter rows in the sequences table.
type sequenceAllocator struct {
	db *gorm.DB
}

// NewSequenceAllocator creates an allocator backed by the relational store.
func NewSequenceAllocator(db *gorm.DB) adapter.SequenceAllocator {
	return &sequenceAllocator{
		db: db,
	}
}

// NextID increments the counter for entityType and returns the new value.
// The row is created lazily at zero; the increment and read-back share one
// transaction so the row lock orders concurrent callers.
func (a *sequenceAllocator) NextID(ctx context.Context, entityType string) (int64, error) {
	if strings.TrimSpace(entityType) == "" {
		return 0, domainerror.ErrInvalidEntityType
	}

	var next int64
	err := a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seed := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&model.SequenceModel{Name: entityType})
		if seed.Error != nil {
			return seed.Error
		}

		bump := tx.Model(&model.SequenceModel{}).
			Where("name = ?", entityType).
			Update("value", gorm.Expr("value + ?", 1))
		if bump.Error != nil {
			return bump.Error
		}
		if bump.RowsAffected != 1 {
			return fmt.Errorf("sequence %q: expected one counter row, updated %d", entityType, bump.RowsAffected)
		}

		var counter model.SequenceModel
		if err := tx.Where("name = ?", entityType).Take(&counter).Error; err != nil {
			return err
		}
		next = counter.Value
		return nil
	})
	if err != nil {
		return 0, translateError(err, "sequence")
	}
	return next, nil
}
