package benchmark

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

func TestAPIBenchmarkRun(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&hits, 1)
		if r.Header.Get("Authorization") != "Bearer token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if n%4 == 0 {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	bench := NewAPIBenchmark(server.URL+"/", 3, 20, "token")
	result, err := bench.Run(context.Background(), http.MethodPost, "/telefonos", map[string]interface{}{"numero": "600123456"})
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if e, g := int32(20), atomic.LoadInt32(&hits); e != g {
		t.Errorf("hits: expected '%v', got '%v'", e, g)
	}
	if e, g := 15, result.SuccessCount; e != g {
		t.Errorf("result.SuccessCount: expected '%v', got '%v'", e, g)
	}
	if e, g := 5, result.StatusCodes[http.StatusNotFound]; e != g {
		t.Errorf("404 count: expected '%v', got '%v'", e, g)
	}
	if e, g := server.URL+"/telefonos", result.URL; e != g {
		t.Errorf("result.URL: expected '%v', got '%v'", e, g)
	}

	var report bytes.Buffer
	result.PrintResult(&report)
	if !strings.Contains(report.String(), "status 404") {
		t.Errorf("report misses the status breakdown: %s", report.String())
	}
}

func TestAPIBenchmarkConnectionErrors(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	result, err := NewAPIBenchmark(url, 2, 4, "").Run(context.Background(), http.MethodGet, "/telefonos", nil)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if e, g := 4, result.FailureCount; e != g {
		t.Errorf("result.FailureCount: expected '%v', got '%v'", e, g)
	}
	if e, g := 4, len(result.Errors); e != g {
		t.Errorf("len(result.Errors): expected '%v', got '%v'", e, g)
	}
}
