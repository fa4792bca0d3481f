package benchmark

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// APIBenchmark fires concurrent requests at a running service
type APIBenchmark struct {
	BaseURL     string
	Concurrency int
	Requests    int
	AuthToken   string
	Client      *http.Client
}

// BenchmarkResult summarises one run
type BenchmarkResult struct {
	URL            string        `json:"url"`
	Method         string        `json:"method"`
	Concurrency    int           `json:"concurrency"`
	TotalRequests  int           `json:"total_requests"`
	SuccessCount   int           `json:"success_count"`
	FailureCount   int           `json:"failure_count"`
	TotalTime      time.Duration `json:"total_time"`
	AverageTime    time.Duration `json:"average_time"`
	MinTime        time.Duration `json:"min_time"`
	MaxTime        time.Duration `json:"max_time"`
	RequestsPerSec float64       `json:"requests_per_sec"`
	StatusCodes    map[int]int   `json:"status_codes"`
	Errors         []string      `json:"errors"`
}

type requestResult struct {
	Duration   time.Duration
	StatusCode int
	Err        error
}

// NewAPIBenchmark creates a benchmark against baseURL
func NewAPIBenchmark(baseURL string, concurrency, requests int, authToken string) *APIBenchmark {
	if concurrency <= 0 {
		concurrency = 1
	}
	if requests <= 0 {
		requests = 1
	}

	return &APIBenchmark{
		BaseURL:     strings.TrimRight(baseURL, "/"),
		Concurrency: concurrency,
		Requests:    requests,
		AuthToken:   authToken,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Run sends Requests requests with at most Concurrency in flight. payload is
// encoded as JSON when not nil.
func (b *APIBenchmark) Run(ctx context.Context, method, path string, payload interface{}) (*BenchmarkResult, error) {
	var body []byte
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		body = raw
	}

	url := b.BaseURL + path
	results := make(chan requestResult, b.Requests)
	limiter := make(chan struct{}, b.Concurrency)
	var wg sync.WaitGroup

	startTime := time.Now()

	for i := 0; i < b.Requests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			limiter <- struct{}{}
			defer func() { <-limiter }()

			results <- b.do(ctx, method, url, body)
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	result := &BenchmarkResult{
		URL:           url,
		Method:        method,
		Concurrency:   b.Concurrency,
		TotalRequests: b.Requests,
		StatusCodes:   make(map[int]int),
		MinTime:       time.Duration(1<<63 - 1),
	}

	var totalTime time.Duration
	for r := range results {
		if r.Err != nil {
			result.FailureCount++
			result.Errors = append(result.Errors, r.Err.Error())
			continue
		}

		totalTime += r.Duration
		if r.Duration < result.MinTime {
			result.MinTime = r.Duration
		}
		if r.Duration > result.MaxTime {
			result.MaxTime = r.Duration
		}

		result.StatusCodes[r.StatusCode]++
		if r.StatusCode >= 200 && r.StatusCode < 300 {
			result.SuccessCount++
		} else {
			result.FailureCount++
		}
	}

	result.TotalTime = time.Since(startTime)
	result.RequestsPerSec = float64(b.Requests) / result.TotalTime.Seconds()
	if answered := result.SuccessCount + result.FailureCount - len(result.Errors); answered > 0 {
		result.AverageTime = totalTime / time.Duration(answered)
	} else {
		result.MinTime = 0
	}

	return result, nil
}

func (b *APIBenchmark) do(ctx context.Context, method, url string, body []byte) requestResult {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return requestResult{Err: err}
	}

	req.Header.Set("Content-Type", "application/json")
	if b.AuthToken != "" {
		req.Header.Set("Authorization", "Bearer "+b.AuthToken)
	}

	resp, err := b.Client.Do(req)
	if err != nil {
		return requestResult{Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return requestResult{
		Duration:   time.Since(start),
		StatusCode: resp.StatusCode,
	}
}

// SuccessRate is the share of 2xx answers
func (r *BenchmarkResult) SuccessRate() float64 {
	if r.TotalRequests == 0 {
		return 0
	}
	return float64(r.SuccessCount) / float64(r.TotalRequests)
}

// PrintResult writes a human readable report
func (r *BenchmarkResult) PrintResult(w io.Writer) {
	fmt.Fprintf(w, "%s %s\n", r.Method, r.URL)
	fmt.Fprintf(w, "  concurrency:   %d\n", r.Concurrency)
	fmt.Fprintf(w, "  requests:      %d (%d ok, %d failed)\n", r.TotalRequests, r.SuccessCount, r.FailureCount)
	fmt.Fprintf(w, "  total time:    %s\n", r.TotalTime)
	fmt.Fprintf(w, "  latency:       avg %s, min %s, max %s\n", r.AverageTime, r.MinTime, r.MaxTime)
	fmt.Fprintf(w, "  throughput:    %.2f req/s\n", r.RequestsPerSec)

	codes := make([]int, 0, len(r.StatusCodes))
	for code := range r.StatusCodes {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	for _, code := range codes {
		fmt.Fprintf(w, "  status %d:    %d\n", code, r.StatusCodes[code])
	}

	for i, err := range r.Errors {
		if i >= 5 {
			fmt.Fprintf(w, "  ... %d more errors\n", len(r.Errors)-5)
			break
		}
		fmt.Fprintf(w, "  error: %s\n", err)
	}
}
