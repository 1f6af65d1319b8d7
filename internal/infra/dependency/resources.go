// Package dependency provides dependency injection for the application.
package dependency

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/expense-ledger/backend/config"
	"github.com/expense-ledger/backend/internal/infra/cache"
	"github.com/expense-ledger/backend/internal/infra/db"
)

// Resources holds the external connections shared by the API server and the admin CLI.
type Resources struct {
	Database *db.Database
	// Redis is nil when Redis is disabled.
	Redis *redis.Client
}

// Connect opens the database and, when enabled, Redis.
func Connect(cfg *config.Config) (*Resources, error) {
	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		return nil, err
	}

	res := &Resources{Database: database}
	if !cfg.Redis.Enabled {
		return res, nil
	}

	client, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	res.Redis = client

	return res, nil
}

// Injector wires the application over the opened connections.
func (r *Resources) Injector(cfg *config.Config) (*Injector, error) {
	var client redis.UniversalClient
	if r.Redis != nil {
		client = r.Redis
	}
	return NewInjector(cfg, r.Database.DB(), client)
}

// Close releases every connection, reporting all failures.
func (r *Resources) Close() error {
	var errs []error
	if r.Redis != nil {
		if err := r.Redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close redis: %w", err))
		} else {
			slog.Info("Redis connection closed")
		}
	}
	if err := r.Database.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
