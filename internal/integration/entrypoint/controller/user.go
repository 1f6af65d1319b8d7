// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-ledger/backend/internal/application/usecase/auth"
	"github.com/expense-ledger/backend/internal/application/usecase/user"
	domainerror "github.com/expense-ledger/backend/internal/domain/error"
	"github.com/expense-ledger/backend/internal/integration/entrypoint/dto"
)

// UserController handles endpoints for the signed-in user's account.
type UserController struct {
	getProfileUseCase     *user.GetProfileUseCase
	updateProfileUseCase  *user.UpdateProfileUseCase
	changePasswordUseCase *user.ChangePasswordUseCase
	deleteAccountUseCase  *auth.DeleteAccountUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	getProfileUseCase *user.GetProfileUseCase,
	updateProfileUseCase *user.UpdateProfileUseCase,
	changePasswordUseCase *user.ChangePasswordUseCase,
	deleteAccountUseCase *auth.DeleteAccountUseCase,
) *UserController {
	return &UserController{
		getProfileUseCase:     getProfileUseCase,
		updateProfileUseCase:  updateProfileUseCase,
		changePasswordUseCase: changePasswordUseCase,
		deleteAccountUseCase:  deleteAccountUseCase,
	}
}

// GetProfile handles GET /users/me requests.
func (c *UserController) GetProfile(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.getProfileUseCase.Execute(ctx.Request.Context(), user.GetProfileInput{UserID: userID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// UpdateProfile handles PATCH /users/me requests.
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, string(domainerror.ErrCodeMissingFields), err)
		return
	}

	output, err := c.updateProfileUseCase.Execute(ctx.Request.Context(), user.UpdateProfileInput{
		UserID:   userID,
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// ChangePassword handles PUT /users/me/password requests.
func (c *UserController) ChangePassword(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, string(domainerror.ErrCodeMissingPassword), err)
		return
	}

	_, err := c.changePasswordUseCase.Execute(ctx.Request.Context(), user.ChangePasswordInput{
		UserID:          userID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Password updated"})
}

// DeleteAccount handles DELETE /users/me requests.
// The account's expenses and budgets are removed with it.
func (c *UserController) DeleteAccount(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	if _, err := c.deleteAccountUseCase.Execute(ctx.Request.Context(), auth.DeleteAccountInput{UserID: userID}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
