package seed

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/expense-ledger/backend/config"
	"github.com/expense-ledger/backend/internal/application/adapter"
	"github.com/expense-ledger/backend/internal/domain/entity"
	"github.com/expense-ledger/backend/internal/infra/db"
	"github.com/expense-ledger/backend/internal/integration/adapters"
	"github.com/expense-ledger/backend/internal/integration/persistence"
)

type seedFixture struct {
	uc         *SeedDefaultsUseCase
	categories adapter.CategoryRepository
	users      adapter.UserRepository
	passwords  adapter.PasswordService
	allocator  adapter.SequenceAllocator
}

func newSeedUseCase(t *testing.T) *seedFixture {
	t.Helper()

	database, err := db.NewConnection(&config.DatabaseConfig{
		Driver: config.DriverSQLite,
		URL:    fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	if err := database.Migrate(); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	gormDB := database.DB()
	categories := persistence.NewCategoryRepository(gormDB)
	users := persistence.NewUserRepository(gormDB)
	passwords := adapters.NewPasswordService(bcrypt.MinCost)
	allocator := persistence.NewSequenceAllocator(gormDB)
	return &seedFixture{
		uc:         NewSeedDefaultsUseCase(categories, users, allocator, passwords),
		categories: categories,
		users:      users,
		passwords:  passwords,
		allocator:  allocator,
	}
}

func TestSeedDefaultsUseCase_FirstRun(t *testing.T) {
	ctx := context.Background()
	f := newSeedUseCase(t)
	uc, categories, users, passwords := f.uc, f.categories, f.users, f.passwords

	output, err := uc.Execute(ctx, SeedDefaultsInput{DemoPassword: "demo1234"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.CategoriesCreated != len(entity.DefaultCategories) || !output.DemoUserCreated {
		t.Errorf("unexpected output: %+v", output)
	}

	listed, err := categories.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, def := range entity.DefaultCategories {
		if listed[i].ID != int64(i+1) || listed[i].Name != def.Name || listed[i].Color != def.Color {
			t.Errorf("position %d: expected %d %s %s, got %+v", i, i+1, def.Name, def.Color, listed[i])
		}
	}

	demo, err := users.FindByUsername(ctx, DemoUsername)
	if err != nil {
		t.Fatalf("expected demo user, got %v", err)
	}
	if demo.PasswordHash == "demo1234" {
		t.Error("expected demo password to be hashed")
	}
	if err := passwords.VerifyPassword(demo.PasswordHash, "demo1234"); err != nil {
		t.Errorf("expected demo password to verify, got %v", err)
	}
}

func TestSeedDefaultsUseCase_Idempotent(t *testing.T) {
	ctx := context.Background()
	f := newSeedUseCase(t)
	uc, categories, users := f.uc, f.categories, f.users

	if _, err := uc.Execute(ctx, SeedDefaultsInput{DemoPassword: "demo1234"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	output, err := uc.Execute(ctx, SeedDefaultsInput{DemoPassword: "demo1234"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.CategoriesCreated != 0 || output.DemoUserCreated {
		t.Errorf("expected second run to create nothing, got %+v", output)
	}

	categoryCount, _ := categories.Count(ctx)
	userCount, _ := users.Count(ctx)
	if categoryCount != int64(len(entity.DefaultCategories)) || userCount != 1 {
		t.Errorf("expected %d categories and 1 user, got %d and %d", len(entity.DefaultCategories), categoryCount, userCount)
	}
}

func TestSeedDefaultsUseCase_SkipsDemoWithoutPassword(t *testing.T) {
	ctx := context.Background()
	f := newSeedUseCase(t)
	uc, users := f.uc, f.users

	output, err := uc.Execute(ctx, SeedDefaultsInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.DemoUserCreated {
		t.Error("expected no demo user")
	}
	if count, _ := users.Count(ctx); count != 0 {
		t.Errorf("expected no users, got %d", count)
	}
}

func TestSeedDefaultsUseCase_CompletesPartialSet(t *testing.T) {
	ctx := context.Background()
	f := newSeedUseCase(t)

	// An earlier run stored only the first two defaults.
	for _, def := range entity.DefaultCategories[:2] {
		id, err := f.allocator.NextID(ctx, entity.SequenceCategory)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := f.categories.Create(ctx, entity.NewCategory(id, def.Name, def.Color)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	output, err := f.uc.Execute(ctx, SeedDefaultsInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.CategoriesCreated != len(entity.DefaultCategories)-2 {
		t.Errorf("expected %d categories created, got %d", len(entity.DefaultCategories)-2, output.CategoriesCreated)
	}

	listed, err := f.categories.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listed) != len(entity.DefaultCategories) {
		t.Fatalf("expected %d categories, got %d", len(entity.DefaultCategories), len(listed))
	}
	for i, def := range entity.DefaultCategories {
		if listed[i].ID != int64(i+1) || listed[i].Name != def.Name {
			t.Errorf("position %d: expected %d %s, got %d %s", i, i+1, def.Name, listed[i].ID, listed[i].Name)
		}
	}

	again, err := f.uc.Execute(ctx, SeedDefaultsInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.CategoriesCreated != 0 {
		t.Errorf("expected a completed set to stay unchanged, got %d created", again.CategoriesCreated)
	}
}
