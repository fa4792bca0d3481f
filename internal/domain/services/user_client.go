package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"telefono-http-service/internal/infrastructure/cache"
	Logger "telefono-http-service/pkg/logger"

	"github.com/pkg/errors"
	"github.com/sony/gobreaker"
)

// UserClient implements UserLookup against a remote user service exposing
// GET /usuarios/{id}. Positive answers are cached in Redis.
type UserClient struct {
	baseURL  string
	client   *http.Client
	breaker  *gobreaker.CircuitBreaker
	cache    *cache.RedisRepository
	cacheTTL time.Duration
}

// NewUserClient creates a new UserClient
func NewUserClient(baseURL string, repo *cache.RedisRepository, cacheTTL time.Duration) *UserClient {
	return &UserClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "user-service",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		}),
		cache:    repo,
		cacheTTL: cacheTTL,
	}
}

// remoteEnvelope is the subset of the user service response we rely on
type remoteEnvelope struct {
	Success bool `json:"success"`
}

// UserExists implements UserLookup
func (c *UserClient) UserExists(ctx context.Context, id uint) (bool, error) {
	if id == 0 {
		return false, nil
	}

	cacheKey := fmt.Sprintf("usuario:exists:%d", id)

	var cached bool
	found, err := c.cache.GetJSON(ctx, cacheKey, &cached)
	if err != nil {
		Logger.Warning("could not read cached usuario %d: %v", id, err)
	} else if found && cached {
		return true, nil
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.fetch(ctx, id)
	})
	if err != nil {
		return false, errors.Wrapf(err, "could not look up usuario %d", id)
	}

	exists := result.(bool)
	if exists {
		if err := c.cache.SetJSON(ctx, cacheKey, true, c.cacheTTL); err != nil {
			Logger.Warning("could not cache usuario %d: %v", id, err)
		}
	}

	return exists, nil
}

func (c *UserClient) fetch(ctx context.Context, id uint) (bool, error) {
	url := fmt.Sprintf("%s/usuarios/%d", c.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return false, errors.WithStack(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return false, nil
	case resp.StatusCode != http.StatusOK:
		return false, errors.Errorf("user service returned status %d", resp.StatusCode)
	}

	var envelope remoteEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return false, errors.WithStack(err)
	}

	return envelope.Success, nil
}
