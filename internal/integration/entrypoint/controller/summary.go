// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-ledger/backend/internal/application/usecase/summary"
	"github.com/expense-ledger/backend/internal/integration/entrypoint/dto"
)

// SummaryController handles the monthly summary endpoint.
type SummaryController struct {
	getMonthlySummaryUseCase *summary.GetMonthlySummaryUseCase
}

// NewSummaryController creates a new summary controller instance.
func NewSummaryController(getMonthlySummaryUseCase *summary.GetMonthlySummaryUseCase) *SummaryController {
	return &SummaryController{
		getMonthlySummaryUseCase: getMonthlySummaryUseCase,
	}
}

// Get handles GET /summary?month=YYYY-MM requests. Without a month the
// current month is summarized.
func (c *SummaryController) Get(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.getMonthlySummaryUseCase.Execute(ctx.Request.Context(), summary.GetMonthlySummaryInput{
		UserID: userID,
		Month:  ctx.Query("month"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlySummaryResponse(output.Summary))
}
