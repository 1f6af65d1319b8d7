// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/expense-ledger/backend/internal/domain/entity"

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryListResponse converts domain categories to the list response.
func ToCategoryListResponse(categories []*entity.Category) CategoryListResponse {
	items := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		items[i] = CategoryResponse{ID: c.ID, Name: c.Name, Color: c.Color}
	}
	return CategoryListResponse{Categories: items}
}
