// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/expense-ledger/backend/internal/application/usecase/expense"
	domainerror "github.com/expense-ledger/backend/internal/domain/error"
	"github.com/expense-ledger/backend/internal/integration/entrypoint/dto"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	createExpenseUseCase *expense.CreateExpenseUseCase
	listExpensesUseCase  *expense.ListExpensesUseCase
	deleteExpenseUseCase *expense.DeleteExpenseUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	createExpenseUseCase *expense.CreateExpenseUseCase,
	listExpensesUseCase *expense.ListExpensesUseCase,
	deleteExpenseUseCase *expense.DeleteExpenseUseCase,
) *ExpenseController {
	return &ExpenseController{
		createExpenseUseCase: createExpenseUseCase,
		listExpensesUseCase:  listExpensesUseCase,
		deleteExpenseUseCase: deleteExpenseUseCase,
	}
}

// List handles GET /expenses requests, optionally filtered by ?month=YYYY-MM.
func (c *ExpenseController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.listExpensesUseCase.Execute(ctx.Request.Context(), expense.ListExpensesInput{
		UserID: userID,
		Month:  ctx.Query("month"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(output.Expenses))
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, string(domainerror.ErrCodeMissingExpenseFields), err)
		return
	}

	output, err := c.createExpenseUseCase.Execute(ctx.Request.Context(), expense.CreateExpenseInput{
		UserID:      userID,
		Amount:      *req.Amount,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		Date:        req.Date,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(output.Expense))
}

// Delete handles DELETE /expenses/:id requests. Deleting an expense that does
// not exist or belongs to someone else still answers 204.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	expenseID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense id",
			Code:  string(domainerror.ErrCodeInvalidExpenseID),
		})
		return
	}

	if _, err := c.deleteExpenseUseCase.Execute(ctx.Request.Context(), expense.DeleteExpenseInput{
		UserID:    userID,
		ExpenseID: expenseID,
	}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
