package cache

import (
	"context"
	"encoding/json"
	"time"

	"telefono-http-service/internal/infrastructure/config"
	Logger "telefono-http-service/pkg/logger"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

// NewRedisClient connects to the configured Redis, returning nil when Redis is
// not configured or unreachable.
func NewRedisClient(cfg *config.Config) *redis.Client {
	addr := cfg.GetRedisAddr()
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		Logger.Warning("redis ping failed on %s: %v, continuing without redis", addr, err)
		client.Close()
		return nil
	}

	return client
}

// RedisRepository stores JSON values in Redis. A nil repository or client turns
// every call into a no-op miss.
type RedisRepository struct {
	Client *redis.Client
}

// NewRedisRepository creates a new RedisRepository
func NewRedisRepository(client *redis.Client) *RedisRepository {
	return &RedisRepository{Client: client}
}

// GetJSON fetches key and unmarshals it into dest, reporting whether it was found
func (r *RedisRepository) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	if r == nil || r.Client == nil {
		return false, nil
	}

	data, err := r.Client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, errors.WithStack(err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, errors.WithStack(err)
	}
	return true, nil
}

// SetJSON stores value under key for ttl
func (r *RedisRepository) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if r == nil || r.Client == nil || ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(r.Client.Set(ctx, key, data, ttl).Err())
}

// Delete removes key
func (r *RedisRepository) Delete(ctx context.Context, key string) error {
	if r == nil || r.Client == nil {
		return nil
	}
	return errors.WithStack(r.Client.Del(ctx, key).Err())
}
