package middleware

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const defaultCacheSize = 1024

// cachedResponse is one captured GET response
type cachedResponse struct {
	ContentType string
	Content     []byte
	StoredAt    time.Time
}

// ResponseCache keeps successful GET responses for a short time. Any successful
// write through PurgeOnWrite drops every entry, so readers never see a list or
// record older than the last write.
type ResponseCache struct {
	entries *expirable.LRU[string, cachedResponse]
	ttl     time.Duration
}

// NewResponseCache returns nil when ttl is not positive, a nil cache lets every
// request through.
func NewResponseCache(ttl time.Duration, size int) *ResponseCache {
	if ttl <= 0 {
		return nil
	}
	if size <= 0 {
		size = defaultCacheSize
	}

	return &ResponseCache{
		entries: expirable.NewLRU[string, cachedResponse](size, nil, ttl),
		ttl:     ttl,
	}
}

// cacheKey hashes the path and the sorted query string
func cacheKey(c *gin.Context) string {
	path := c.Request.URL.Path

	queryParams := c.Request.URL.Query()
	queryKeys := make([]string, 0, len(queryParams))
	for key := range queryParams {
		queryKeys = append(queryKeys, key)
	}
	sort.Strings(queryKeys)

	var query strings.Builder
	for _, key := range queryKeys {
		values := queryParams[key]
		sort.Strings(values)
		for _, value := range values {
			query.WriteString(key + "=" + value + "&")
		}
	}

	hasher := md5.New()
	hasher.Write([]byte(path + "?" + query.String()))
	return hex.EncodeToString(hasher.Sum(nil))
}

// Middleware serves cached GET responses and stores new 200 responses
func (rc *ResponseCache) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rc == nil || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := cacheKey(c)
		if entry, found := rc.entries.Get(key); found {
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, entry.ContentType, entry.Content)
			c.Abort()
			return
		}

		writer := &responseWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}
		c.Writer = writer
		c.Header("X-Cache", "MISS")

		c.Next()

		if writer.Status() == http.StatusOK {
			rc.entries.Add(key, cachedResponse{
				ContentType: writer.Header().Get("Content-Type"),
				Content:     writer.body.Bytes(),
				StoredAt:    time.Now(),
			})
		}
	}
}

// PurgeOnWrite empties the cache after a write request succeeded
func (rc *ResponseCache) PurgeOnWrite() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if rc == nil {
			return
		}
		if status := c.Writer.Status(); status >= http.StatusOK && status < http.StatusBadRequest {
			rc.Purge()
		}
	}
}

// Purge removes every cached response
func (rc *ResponseCache) Purge() {
	if rc == nil {
		return
	}
	rc.entries.Purge()
}

// Stats describes the cache content
func (rc *ResponseCache) Stats() map[string]interface{} {
	if rc == nil {
		return map[string]interface{}{"total_items": 0}
	}

	items := make([]map[string]interface{}, 0, rc.entries.Len())
	for _, key := range rc.entries.Keys() {
		entry, ok := rc.entries.Peek(key)
		if !ok {
			continue
		}
		items = append(items, map[string]interface{}{
			"key":        key,
			"size":       len(entry.Content),
			"expiration": entry.StoredAt.Add(rc.ttl).Format(time.RFC3339),
		})
	}

	return map[string]interface{}{
		"total_items": len(items),
		"ttl":         rc.ttl.String(),
		"items":       items,
	}
}

// responseWriter copies the response body while writing it
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
