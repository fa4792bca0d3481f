package cache

import (
	"context"
	"testing"
	"time"

	"telefono-http-service/internal/infrastructure/config"
)

func TestNilRepositoryIsANoop(t *testing.T) {
	var repo *RedisRepository
	ctx := context.Background()

	if err := repo.SetJSON(ctx, "k", true, time.Minute); err != nil {
		t.Fatalf("SetJSON: %v", err)
	}

	var v bool
	found, err := repo.GetJSON(ctx, "k", &v)
	if err != nil || found {
		t.Fatalf("GetJSON = %v, %v; want miss", found, err)
	}

	if err := NewRedisRepository(nil).Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}

func TestNewRedisClientDisabled(t *testing.T) {
	if client := NewRedisClient(&config.Config{}); client != nil {
		t.Fatal("expected no client when REDIS_HOST is empty")
	}
}
