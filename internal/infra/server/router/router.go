// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/expense-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/expense-ledger/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	authController     *controller.AuthController
	userController     *controller.UserController
	categoryController *controller.CategoryController
	expenseController  *controller.ExpenseController
	budgetController   *controller.BudgetController
	summaryController  *controller.SummaryController
	loginRateLimiter   *middleware.RateLimiter
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	categoryController *controller.CategoryController,
	expenseController *controller.ExpenseController,
	budgetController *controller.BudgetController,
	summaryController *controller.SummaryController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:   healthController,
		authController:     authController,
		userController:     userController,
		categoryController: categoryController,
		expenseController:  expenseController,
		budgetController:   budgetController,
		summaryController:  summaryController,
		loginRateLimiter:   loginRateLimiter,
		authMiddleware:     authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	switch environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test", "e2e":
		gin.SetMode(gin.TestMode)
	}

	// Default middleware: logger and recovery
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")

	// Auth routes
	if r.authController != nil {
		auth := v1.Group("/auth")
		{
			auth.POST("/signup", r.authController.Signup)
			if r.loginRateLimiter != nil {
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
			} else {
				auth.POST("/login", r.authController.Login)
			}
		}
	}

	if r.authMiddleware == nil {
		return
	}

	// Everything below requires a bearer token
	protected := v1.Group("")
	protected.Use(r.authMiddleware.Authenticate())

	if r.userController != nil {
		users := protected.Group("/users")
		{
			users.GET("/me", r.userController.GetProfile)
			users.PATCH("/me", r.userController.UpdateProfile)
			users.PUT("/me/password", r.userController.ChangePassword)
			users.DELETE("/me", r.userController.DeleteAccount)
		}
	}

	if r.categoryController != nil {
		protected.GET("/categories", r.categoryController.List)
	}

	if r.expenseController != nil {
		expenses := protected.Group("/expenses")
		{
			expenses.GET("", r.expenseController.List)
			expenses.POST("", r.expenseController.Create)
			expenses.DELETE("/:id", r.expenseController.Delete)
		}
	}

	if r.budgetController != nil {
		budgets := protected.Group("/budgets")
		{
			budgets.GET("", r.budgetController.List)
			budgets.PUT("", r.budgetController.Upsert)
		}
	}

	if r.summaryController != nil {
		protected.GET("/summary", r.summaryController.Get)
	}
}
