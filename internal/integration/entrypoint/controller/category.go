// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-ledger/backend/internal/application/usecase/category"
	"github.com/expense-ledger/backend/internal/integration/entrypoint/dto"
)

// CategoryController handles category endpoints.
type CategoryController struct {
	listCategoriesUseCase *category.ListCategoriesUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(listCategoriesUseCase *category.ListCategoriesUseCase) *CategoryController {
	return &CategoryController{
		listCategoriesUseCase: listCategoriesUseCase,
	}
}

// List handles GET /categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	output, err := c.listCategoriesUseCase.Execute(ctx.Request.Context(), category.ListCategoriesInput{})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(output.Categories))
}
