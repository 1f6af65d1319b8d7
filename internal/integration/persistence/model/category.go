// Package model defines database models for persistence layer.
package model

import "github.com/expense-ledger/backend/internal/domain/entity"

// CategoryModel represents the categories table in the database.
type CategoryModel struct {
	ID    int64  `gorm:"primaryKey;autoIncrement:false"`
	Name  string `gorm:"type:varchar(50);uniqueIndex;not null"`
	Color string `gorm:"type:varchar(7);default:'#6B7280'"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		ID:    m.ID,
		Name:  m.Name,
		Color: m.Color,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:    category.ID,
		Name:  category.Name,
		Color: category.Color,
	}
}
