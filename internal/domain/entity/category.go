// Package entity defines the core business entities for the domain layer.
package entity

// UnknownCategoryName is shown for expenses whose category cannot be resolved.
const UnknownCategoryName = "Unknown"

// UnknownCategoryColor is the neutral color paired with UnknownCategoryName.
const UnknownCategoryColor = "#6B7280"

// Category represents a global expense category.
type Category struct {
	ID    int64
	Name  string
	Color string
}

// NewCategory creates a new Category carrying an allocator-issued ID.
func NewCategory(id int64, name, color string) *Category {
	return &Category{
		ID:    id,
		Name:  name,
		Color: color,
	}
}

// DefaultCategory describes one of the categories seeded on first boot.
type DefaultCategory struct {
	Name  string
	Color string
}

// DefaultCategories is the fixed, ordered set seeded by name when missing.
var DefaultCategories = []DefaultCategory{
	{Name: "Food", Color: "#FF6384"},
	{Name: "Transport", Color: "#36A2EB"},
	{Name: "Entertainment", Color: "#FFCE56"},
	{Name: "Shopping", Color: "#4BC0C0"},
	{Name: "Utilities", Color: "#9966FF"},
	{Name: "Health", Color: "#FF9F40"},
	{Name: "Other", Color: "#C9CBCF"},
}
