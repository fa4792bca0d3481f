package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"telefono-http-service/internal/infrastructure/cache"
	Logger "telefono-http-service/pkg/logger"

	"github.com/go-redis/redis/v8"
)

func newUserServiceStub(t *testing.T, calls *atomic.Int64) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/usuarios/1":
			w.Write([]byte(`{"success":true,"message":"ok","data":{"status":200,"body":{"id":1}}}`))
		case "/usuarios/2":
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"success":false,"message":"not found","data":{"status":404,"body":null}}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	t.Cleanup(server.Close)

	return server
}

func TestUserClient(t *testing.T) {
	var calls atomic.Int64
	server := newUserServiceStub(t, &calls)
	client := NewUserClient(server.URL, nil, time.Minute)
	ctx := context.Background()

	exists, err := client.UserExists(ctx, 1)
	if err != nil || !exists {
		t.Fatalf("UserExists(1) = %v, %v", exists, err)
	}

	exists, err = client.UserExists(ctx, 2)
	if err != nil || exists {
		t.Fatalf("UserExists(2) = %v, %v", exists, err)
	}

	if _, err := client.UserExists(ctx, 3); err == nil {
		t.Fatal("expected an error on a 500 answer")
	}

	before := calls.Load()
	exists, err = client.UserExists(ctx, 0)
	if err != nil || exists {
		t.Fatalf("UserExists(0) = %v, %v", exists, err)
	}
	if calls.Load() != before {
		t.Error("id 0 should not reach the user service")
	}
}

func TestUserClientBreakerOpens(t *testing.T) {
	var calls atomic.Int64
	server := newUserServiceStub(t, &calls)
	client := NewUserClient(server.URL, nil, time.Minute)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		if _, err := client.UserExists(ctx, 3); err == nil {
			t.Fatal("expected an error")
		}
	}

	if got := calls.Load(); got != 5 {
		t.Errorf("user service was called %d times, breaker should open after 5 failures", got)
	}
}

func TestUserClientLogsCacheFailures(t *testing.T) {
	logDir := t.TempDir()
	if err := Logger.SetupLogger(Logger.Options{Level: "warn", Dir: logDir}); err != nil {
		t.Fatalf("%+v", err)
	}
	t.Cleanup(func() {
		_ = Logger.SetupLogger(Logger.Options{Level: "error"})
	})

	var calls atomic.Int64
	server := newUserServiceStub(t, &calls)

	unreachable := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { unreachable.Close() })

	client := NewUserClient(server.URL, cache.NewRedisRepository(unreachable), time.Minute)

	exists, err := client.UserExists(context.Background(), 1)
	if err != nil || !exists {
		t.Fatalf("UserExists(1) = %v, %v", exists, err)
	}
	Logger.Sync()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one log file, got %d", len(entries))
	}

	content, err := os.ReadFile(filepath.Join(logDir, entries[0].Name()))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if !strings.Contains(string(content), "could not cache usuario 1") {
		t.Errorf("expected the cache write failure in the log, got %q", content)
	}
}
