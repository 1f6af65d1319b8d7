// Package model defines database models for persistence layer.
package model

// SequenceModel represents the sequences table: one counter row per entity type,
// holding the last issued identifier.
type SequenceModel struct {
	Name  string `gorm:"type:varchar(50);primaryKey"`
	Value int64  `gorm:"not null;default:0"`
}

// TableName returns the table name for the SequenceModel.
func (SequenceModel) TableName() string {
	return "sequences"
}

// All returns every model managed by the ledger schema, for migrations.
func All() []any {
	return []any{
		&UserModel{},
		&CategoryModel{},
		&ExpenseModel{},
		&BudgetModel{},
		&SequenceModel{},
	}
}
