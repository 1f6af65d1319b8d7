// Package seed contains first-run bootstrap use cases.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/expense-ledger/backend/internal/application/adapter"
	"github.com/expense-ledger/backend/internal/domain/entity"
	domainerror "github.com/expense-ledger/backend/internal/domain/error"
)

// DemoUsername is the account created when the store has no users.
const DemoUsername = "demo"

// SeedDefaultsInput represents the input for first-run seeding.
type SeedDefaultsInput struct {
	// DemoPassword is the demo account's password; empty skips the demo account.
	DemoPassword string
}

// SeedDefaultsOutput reports what the run created.
type SeedDefaultsOutput struct {
	CategoriesCreated int
	DemoUserCreated   bool
}

// SeedDefaultsUseCase creates missing default categories and, on a store without users, the demo user.
type SeedDefaultsUseCase struct {
	categoryRepo    adapter.CategoryRepository
	userRepo        adapter.UserRepository
	allocator       adapter.SequenceAllocator
	passwordService adapter.PasswordService
}

// NewSeedDefaultsUseCase creates a new SeedDefaultsUseCase instance.
func NewSeedDefaultsUseCase(
	categoryRepo adapter.CategoryRepository,
	userRepo adapter.UserRepository,
	allocator adapter.SequenceAllocator,
	passwordService adapter.PasswordService,
) *SeedDefaultsUseCase {
	return &SeedDefaultsUseCase{
		categoryRepo:    categoryRepo,
		userRepo:        userRepo,
		allocator:       allocator,
		passwordService: passwordService,
	}
}

// Execute seeds whatever is missing. Running it on a seeded store changes nothing.
func (uc *SeedDefaultsUseCase) Execute(ctx context.Context, input SeedDefaultsInput) (*SeedDefaultsOutput, error) {
	created, err := uc.seedCategories(ctx)
	if err != nil {
		return nil, err
	}

	demoCreated, err := uc.seedDemoUser(ctx, input.DemoPassword)
	if err != nil {
		return nil, err
	}

	if created > 0 || demoCreated {
		slog.InfoContext(ctx, "Seeded defaults",
			"categories_created", created,
			"demo_user_created", demoCreated,
		)
	}

	return &SeedDefaultsOutput{
		CategoriesCreated: created,
		DemoUserCreated:   demoCreated,
	}, nil
}

// seedCategories creates each default category whose name is not stored yet,
// so a run interrupted halfway is completed by the next one.
func (uc *SeedDefaultsUseCase) seedCategories(ctx context.Context) (int, error) {
	existing, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list categories: %w", err)
	}
	stored := make(map[string]bool, len(existing))
	for _, c := range existing {
		stored[c.Name] = true
	}

	created := 0
	for _, def := range entity.DefaultCategories {
		if stored[def.Name] {
			continue
		}

		id, err := uc.allocator.NextID(ctx, entity.SequenceCategory)
		if err != nil {
			return created, fmt.Errorf("failed to allocate category id: %w", err)
		}

		err = uc.categoryRepo.Create(ctx, entity.NewCategory(id, def.Name, def.Color))
		if errors.Is(err, domainerror.ErrDuplicateKey) {
			slog.InfoContext(ctx, "Category seeded concurrently", "category", def.Name)
			continue
		}
		if err != nil {
			return created, fmt.Errorf("failed to create category %s: %w", def.Name, err)
		}
		created++
	}
	return created, nil
}

func (uc *SeedDefaultsUseCase) seedDemoUser(ctx context.Context, password string) (bool, error) {
	if password == "" {
		return false, nil
	}

	count, err := uc.userRepo.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	hash, err := uc.passwordService.HashPassword(password)
	if err != nil {
		return false, fmt.Errorf("failed to hash demo password: %w", err)
	}

	id, err := uc.allocator.NextID(ctx, entity.SequenceUser)
	if err != nil {
		return false, fmt.Errorf("failed to allocate user id: %w", err)
	}

	err = uc.userRepo.Create(ctx, entity.NewUser(id, DemoUsername, hash, "", ""))
	if errors.Is(err, domainerror.ErrDuplicateKey) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to create demo user: %w", err)
	}
	return true, nil
}
