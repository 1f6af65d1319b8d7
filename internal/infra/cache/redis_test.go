package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"github.com/expense-ledger/backend/config"
)

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(&config.RedisConfig{
		URL:          "redis://" + mr.Addr() + "/0",
		DialTimeout:  time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() { _ = client.Close() }()

	if err := client.Set(context.Background(), "k", "v", 0).Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := mr.Get("k"); got != "v" {
		t.Errorf("expected value to reach server, got %q", got)
	}
}

func TestNewRedisClient_Errors(t *testing.T) {
	t.Run("bad url", func(t *testing.T) {
		if _, err := NewRedisClient(&config.RedisConfig{URL: "://nope"}); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("unreachable server", func(t *testing.T) {
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()

		_, err := NewRedisClient(&config.RedisConfig{
			URL:         "redis://" + addr,
			DialTimeout: 200 * time.Millisecond,
		})
		if err == nil {
			t.Error("expected ping error")
		}
	})
}
