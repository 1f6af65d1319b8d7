// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-ledger/backend/internal/application/usecase/budget"
	domainerror "github.com/expense-ledger/backend/internal/domain/error"
	"github.com/expense-ledger/backend/internal/integration/entrypoint/dto"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	upsertBudgetUseCase *budget.UpsertBudgetUseCase
	listBudgetsUseCase  *budget.ListBudgetsUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	upsertBudgetUseCase *budget.UpsertBudgetUseCase,
	listBudgetsUseCase *budget.ListBudgetsUseCase,
) *BudgetController {
	return &BudgetController{
		upsertBudgetUseCase: upsertBudgetUseCase,
		listBudgetsUseCase:  listBudgetsUseCase,
	}
}

// List handles GET /budgets?month=YYYY-MM requests.
func (c *BudgetController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.listBudgetsUseCase.Execute(ctx.Request.Context(), budget.ListBudgetsInput{
		UserID: userID,
		Month:  ctx.Query("month"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetListResponse(output.Month, output.Budgets))
}

// Upsert handles PUT /budgets requests. A new budget answers 201 and an
// updated one 200.
func (c *BudgetController) Upsert(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.UpsertBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, string(domainerror.ErrCodeMissingBudgetFields), err)
		return
	}

	output, err := c.upsertBudgetUseCase.Execute(ctx.Request.Context(), budget.UpsertBudgetInput{
		UserID:     userID,
		CategoryID: req.CategoryID,
		Amount:     *req.Amount,
		Month:      req.Month,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	status := http.StatusOK
	if output.Created {
		status = http.StatusCreated
	}
	ctx.JSON(status, dto.ToBudgetResponse(output.Budget, output.Created))
}
