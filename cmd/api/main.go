// Package main is the entry point for the Expense Ledger API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/expense-ledger/backend/config"
	"github.com/expense-ledger/backend/internal/application/usecase/seed"
	"github.com/expense-ledger/backend/internal/infra/dependency"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting Expense Ledger API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"db_driver", cfg.Database.Driver,
		"sequence_backend", cfg.Sequence.Backend,
	)

	resources, err := dependency.Connect(cfg)
	if err != nil {
		slog.Error("Failed to connect to storage", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := resources.Close(); err != nil {
			slog.Error("Failed to close connections", "error", err)
		}
	}()

	if err := resources.Database.Migrate(); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	injector, err := resources.Injector(cfg)
	if err != nil {
		slog.Error("Failed to wire application", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Seed.Enabled {
		output, err := injector.SeedDefaults.Execute(ctx, seed.SeedDefaultsInput{DemoPassword: cfg.Seed.DemoPassword})
		if err != nil {
			slog.Error("Failed to seed defaults", "error", err)
			os.Exit(1)
		}
		slog.Info("Seeding completed",
			"categories_created", output.CategoriesCreated,
			"demo_user_created", output.DemoUserCreated,
		)
	}

	go injector.LoginRateLimiter.RunCleanup(ctx, 5*time.Minute)

	engine := injector.Router.Setup(cfg.Server.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		return
	}

	slog.Info("Server exited properly")
}
