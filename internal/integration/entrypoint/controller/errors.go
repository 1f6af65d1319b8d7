// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/expense-ledger/backend/internal/domain/error"
	"github.com/expense-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/expense-ledger/backend/internal/integration/entrypoint/middleware"
)

// handleError writes the HTTP response for an error returned by a use case.
func handleError(ctx *gin.Context, err error) {
	code, message := codedError(err)
	status := statusFor(err)

	if status == http.StatusInternalServerError {
		slog.ErrorContext(ctx.Request.Context(), "Request failed",
			"method", ctx.Request.Method,
			"path", ctx.FullPath(),
			"error", err,
		)
		ctx.JSON(status, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}
	if status == http.StatusServiceUnavailable {
		slog.WarnContext(ctx.Request.Context(), "Storage unavailable",
			"path", ctx.FullPath(),
			"error", err,
		)
		message = "Service temporarily unavailable"
	}

	ctx.JSON(status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// codedError extracts the domain error code and message carried by err.
func codedError(err error) (string, string) {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		return string(authErr.Code), authErr.Message
	}
	var expenseErr *domainerror.ExpenseError
	if errors.As(err, &expenseErr) {
		return string(expenseErr.Code), expenseErr.Message
	}
	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		return string(budgetErr.Code), budgetErr.Message
	}
	var summaryErr *domainerror.SummaryError
	if errors.As(err, &summaryErr) {
		return string(summaryErr.Code), summaryErr.Message
	}
	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		return string(ledgerErr.Code), ledgerErr.Message
	}
	return string(domainerror.CodeOf(err)), err.Error()
}

// statusFor maps an error to its HTTP status code.
func statusFor(err error) int {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		switch authErr.Code {
		case domainerror.ErrCodeInvalidCredentials,
			domainerror.ErrCodeInvalidToken,
			domainerror.ErrCodeMissingToken:
			return http.StatusUnauthorized
		case domainerror.ErrCodeRateLimited:
			return http.StatusTooManyRequests
		}
	}
	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) && budgetErr.Code == domainerror.ErrCodeBudgetConflict {
		return http.StatusConflict
	}

	switch {
	case errors.Is(err, domainerror.ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, domainerror.ErrDuplicateKey):
		return http.StatusConflict
	case errors.Is(err, domainerror.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainerror.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// badRequest writes a 400 response for a request that failed binding.
func badRequest(ctx *gin.Context, code string, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Invalid request body",
		Code:    code,
		Details: err.Error(),
	})
}

// requireUser returns the authenticated user's ID, writing a 401 response
// when the request carries none.
func requireUser(ctx *gin.Context) (int64, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Unauthorized",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return 0, false
	}
	return userID, true
}
