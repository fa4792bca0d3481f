package middleware

import (
	"math"
	"strconv"
	"sync"
	"time"

	"telefono-http-service/internal/error/code"
	"telefono-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// RateLimiterConfig configures the per client limiter
type RateLimiterConfig struct {
	Rate       float64                   // requests per second
	Burst      int                       // bucket size
	CacheSize  int                       // number of clients tracked
	ExpiryTime time.Duration             // an idle client limiter is dropped after this
	KeyFunc    func(*gin.Context) string // defaults to the client IP
}

// DefaultRateLimiterConfig is used for zero fields
var DefaultRateLimiterConfig = RateLimiterConfig{
	Rate:       10,
	Burst:      20,
	CacheSize:  10000,
	ExpiryTime: 1 * time.Hour,
}

// RateLimiter rejects requests above the configured rate with a 429 envelope.
// A non positive rate disables limiting.
func RateLimiter(cfg RateLimiterConfig) gin.HandlerFunc {
	if cfg.Rate <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	if cfg.Burst <= 0 {
		cfg.Burst = DefaultRateLimiterConfig.Burst
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultRateLimiterConfig.CacheSize
	}
	if cfg.ExpiryTime <= 0 {
		cfg.ExpiryTime = DefaultRateLimiterConfig.ExpiryTime
	}
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = func(c *gin.Context) string { return c.ClientIP() }
	}

	limiters := expirable.NewLRU[string, *rate.Limiter](cfg.CacheSize, nil, cfg.ExpiryTime)
	var mu sync.Mutex

	getLimiter := func(key string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()

		limiter, exists := limiters.Get(key)
		if !exists {
			limiter = rate.NewLimiter(rate.Limit(cfg.Rate), cfg.Burst)
			limiters.Add(key, limiter)
		}
		return limiter
	}

	return func(c *gin.Context) {
		limiter := getLimiter(cfg.KeyFunc(c))

		reservation := limiter.Reserve()
		if !reservation.OK() {
			response.Fail(c, code.ErrTooManyRequests, nil)
			c.Abort()
			return
		}

		if delay := reservation.Delay(); delay > 0 {
			reservation.Cancel()
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
			response.Fail(c, code.ErrTooManyRequests, nil)
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Burst))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(int(limiter.Tokens())))
		c.Next()
	}
}

// IPRateLimiter limits by client IP
func IPRateLimiter(rps float64, burst int) gin.HandlerFunc {
	return RateLimiter(RateLimiterConfig{
		Rate:  rps,
		Burst: burst,
	})
}
