package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Database.Driver != DriverPostgres {
		t.Errorf("expected default driver %q, got %q", DriverPostgres, cfg.Database.Driver)
	}
	if cfg.Sequence.Backend != SequenceBackendDatabase {
		t.Errorf("expected default sequence backend %q, got %q", SequenceBackendDatabase, cfg.Sequence.Backend)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if !cfg.Seed.Enabled {
		t.Error("expected seeding to be enabled by default")
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SEQUENCE_BACKEND", "redis")
	t.Setenv("SERVER_PORT", "9191")
	t.Setenv("CATEGORY_CACHE_TTL", "30s")
	t.Setenv("REDIS_ENABLED", "true")

	cfg := Load()

	if cfg.Database.Driver != DriverSQLite {
		t.Errorf("expected driver %q, got %q", DriverSQLite, cfg.Database.Driver)
	}
	if cfg.Sequence.Backend != SequenceBackendRedis {
		t.Errorf("expected sequence backend %q, got %q", SequenceBackendRedis, cfg.Sequence.Backend)
	}
	if cfg.Server.Port != 9191 {
		t.Errorf("expected port 9191, got %d", cfg.Server.Port)
	}
	if cfg.Cache.CategoryTTL != 30*time.Second {
		t.Errorf("expected category TTL 30s, got %s", cfg.Cache.CategoryTTL)
	}
	if !cfg.Redis.Enabled {
		t.Error("expected redis to be enabled")
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-number")
	t.Setenv("JWT_EXPIRY", "forever")
	t.Setenv("REDIS_ENABLED", "maybe")

	cfg := Load()

	if cfg.Server.Port != 8080 {
		t.Errorf("expected fallback port 8080, got %d", cfg.Server.Port)
	}
	if cfg.JWT.AccessTokenExpiry != 24*time.Hour {
		t.Errorf("expected fallback expiry 24h, got %s", cfg.JWT.AccessTokenExpiry)
	}
	if cfg.Redis.Enabled {
		t.Error("expected fallback redis disabled")
	}
}
