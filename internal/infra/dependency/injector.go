// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/expense-ledger/backend/config"
	"github.com/expense-ledger/backend/internal/application/adapter"
	"github.com/expense-ledger/backend/internal/application/usecase/auth"
	"github.com/expense-ledger/backend/internal/application/usecase/budget"
	"github.com/expense-ledger/backend/internal/application/usecase/category"
	"github.com/expense-ledger/backend/internal/application/usecase/expense"
	"github.com/expense-ledger/backend/internal/application/usecase/seed"
	"github.com/expense-ledger/backend/internal/application/usecase/summary"
	"github.com/expense-ledger/backend/internal/application/usecase/user"
	"github.com/expense-ledger/backend/internal/infra/server/router"
	"github.com/expense-ledger/backend/internal/integration/adapters"
	"github.com/expense-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/expense-ledger/backend/internal/integration/entrypoint/middleware"
	"github.com/expense-ledger/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  redis.UniversalClient
	Router *router.Router

	// Allocator hands out identifiers from the configured sequence backend.
	Allocator adapter.SequenceAllocator

	SeedDefaults      *seed.SeedDefaultsUseCase
	GetMonthlySummary *summary.GetMonthlySummaryUseCase
	LoginRateLimiter  *middleware.RateLimiter
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil when Redis is disabled; it is then an error to
// select the Redis sequence backend.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient redis.UniversalClient) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)

	var categoryRepo adapter.CategoryRepository = persistence.NewCategoryRepository(db)
	if redisClient != nil && cfg.Cache.CategoryTTL > 0 {
		categoryRepo = adapters.NewCachedCategoryRepository(categoryRepo, redisClient, cfg.Sequence.KeyPrefix, cfg.Cache.CategoryTTL)
	}

	allocator, err := newAllocator(cfg, db, redisClient)
	if err != nil {
		return nil, err
	}

	// Create adapters/services
	passwordService := adapters.NewPasswordService(cfg.Security.BcryptCost)
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Create auth and account use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, allocator, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	deleteAccountUseCase := auth.NewDeleteAccountUseCase(userRepo)
	getProfileUseCase := user.NewGetProfileUseCase(userRepo)
	updateProfileUseCase := user.NewUpdateProfileUseCase(userRepo)
	changePasswordUseCase := user.NewChangePasswordUseCase(userRepo, passwordService)

	// Create ledger use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, allocator)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo, categoryRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)
	upsertBudgetUseCase := budget.NewUpsertBudgetUseCase(budgetRepo, allocator)
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo, expenseRepo, categoryRepo)
	getMonthlySummaryUseCase := summary.NewGetMonthlySummaryUseCase(expenseRepo, categoryRepo, budgetRepo)
	seedDefaultsUseCase := seed.NewSeedDefaultsUseCase(categoryRepo, userRepo, allocator, passwordService)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}, redisHealthChecker(redisClient))

	authController := controller.NewAuthController(registerUseCase, loginUseCase)
	userController := controller.NewUserController(
		getProfileUseCase,
		updateProfileUseCase,
		changePasswordUseCase,
		deleteAccountUseCase,
	)
	categoryController := controller.NewCategoryController(listCategoriesUseCase)
	expenseController := controller.NewExpenseController(createExpenseUseCase, listExpensesUseCase, deleteExpenseUseCase)
	budgetController := controller.NewBudgetController(upsertBudgetUseCase, listBudgetsUseCase)
	summaryController := controller.NewSummaryController(getMonthlySummaryUseCase)

	// Create middleware
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}

	r := router.NewRouter(
		healthController,
		authController,
		userController,
		categoryController,
		expenseController,
		budgetController,
		summaryController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:            cfg,
		DB:                db,
		Redis:             redisClient,
		Router:            r,
		Allocator:         allocator,
		SeedDefaults:      seedDefaultsUseCase,
		GetMonthlySummary: getMonthlySummaryUseCase,
		LoginRateLimiter:  loginRateLimiter,
	}, nil
}

func newAllocator(cfg *config.Config, db *gorm.DB, redisClient redis.UniversalClient) (adapter.SequenceAllocator, error) {
	switch cfg.Sequence.Backend {
	case config.SequenceBackendDatabase, "":
		return persistence.NewSequenceAllocator(db), nil
	case config.SequenceBackendRedis:
		if redisClient == nil {
			return nil, fmt.Errorf("sequence backend %q requires Redis to be enabled", cfg.Sequence.Backend)
		}
		return adapters.NewRedisSequenceAllocator(redisClient, cfg.Sequence.KeyPrefix), nil
	default:
		return nil, fmt.Errorf("unsupported sequence backend %q", cfg.Sequence.Backend)
	}
}

func redisHealthChecker(client redis.UniversalClient) func() bool {
	if client == nil {
		return nil
	}
	return func() bool {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return client.Ping(ctx).Err() == nil
	}
}
