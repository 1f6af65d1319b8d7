// Package entity defines the core business entities for the domain layer.
package entity

// Entity type names used as sequence counter keys.
const (
	SequenceUser     = "user"
	SequenceCategory = "category"
	SequenceExpense  = "expense"
	SequenceBudget   = "budget"
)
