package httpclient_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/SalBom/app-sb-sub001/internal/platform/config"
	"github.com/SalBom/app-sb-sub001/internal/platform/httpclient"
	"github.com/SalBom/app-sb-sub001/internal/platform/telemetry"
)

func testConfig(baseURL string) *config.BackendConfig {
	return &config.BackendConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Headers: map[string]string{"content-type": "application/json"},
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     100 * time.Millisecond,
			Multiplier:      2.0,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   3,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func statusServer(t *testing.T, status int, hits *atomic.Int32) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if hits != nil {
			hits.Add(1)
		}
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, client *httpclient.Client, ctx context.Context) (*http.Response, error) {
	t.Helper()

	resp, err := client.Get(ctx, "/factura_pdf", url.Values{"facturaId": {"F-1"}})
	if resp != nil {
		t.Cleanup(func() { _ = resp.Body.Close() })
	}
	return resp, err
}

func TestGet_BuildsURLAndHeaders(t *testing.T) {
	t.Parallel()

	var gotURL, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.String()
		gotContentType = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte("ok"))
	}))
	t.Cleanup(srv.Close)

	client := httpclient.New(testConfig(srv.URL+"/"), "salbom-backend", nil, testLogger())

	resp, err := client.Get(context.Background(), "/factura_pdf", url.Values{"facturaId": {"F 1&2"}})
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(resp.Body)
	if string(body) != "ok" {
		t.Errorf("body = %q, want %q", body, "ok")
	}
	if gotURL != "/factura_pdf?facturaId=F+1%262" {
		t.Errorf("request URL = %q, want %q", gotURL, "/factura_pdf?facturaId=F+1%262")
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", gotContentType)
	}
	if client.BaseURL() != srv.URL {
		t.Errorf("BaseURL() = %q, want trailing slash trimmed %q", client.BaseURL(), srv.URL)
	}
}

func TestDo_ExplicitHeaderWins(t *testing.T) {
	t.Parallel()

	var gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
	}))
	t.Cleanup(srv.Close)

	client := httpclient.New(testConfig(srv.URL), "salbom-backend", nil, testLogger())

	req, _ := http.NewRequestWithContext(context.Background(), http.MethodPost, srv.URL, strings.NewReader("a=1"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := client.Do(context.Background(), req)
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	_ = resp.Body.Close()

	if gotContentType != "application/x-www-form-urlencoded" {
		t.Errorf("Content-Type = %q, want the request's own value", gotContentType)
	}
}

func TestDo_SingleAttemptByDefault(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := statusServer(t, http.StatusServiceUnavailable, &hits)

	client := httpclient.New(testConfig(srv.URL), "salbom-backend", nil, testLogger())

	resp, err := get(t, client, context.Background())
	if err != nil {
		t.Fatalf("Get() error = %v, want the 503 response", err)
	}
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", resp.StatusCode)
	}
	if hits.Load() != 1 {
		t.Errorf("server hits = %d, want 1", hits.Load())
	}
}

func TestDo_RetriesWhenConfigured(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(srv.URL)
	cfg.Retry.MaxAttempts = 3

	resp, err := get(t, httpclient.New(cfg, "salbom-backend", nil, testLogger()), context.Background())
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if hits.Load() != 3 {
		t.Errorf("server hits = %d, want 3", hits.Load())
	}
}

func TestDo_NoRetryOn4xx(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := statusServer(t, http.StatusNotFound, &hits)

	cfg := testConfig(srv.URL)
	cfg.Retry.MaxAttempts = 3

	resp, err := get(t, httpclient.New(cfg, "salbom-backend", nil, testLogger()), context.Background())
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
	if hits.Load() != 1 {
		t.Errorf("server hits = %d, want 1", hits.Load())
	}
}

func TestDo_RequestAndCorrelationIDs(t *testing.T) {
	t.Parallel()

	var gotReqID, gotCorrID string
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		gotReqID = r.Header.Get("X-Request-ID")
		gotCorrID = r.Header.Get("X-Correlation-ID")
	}))
	t.Cleanup(srv.Close)

	client := httpclient.New(testConfig(srv.URL), "salbom-backend", nil, testLogger())

	ctx := httpclient.WithRequestID(context.Background(), "req-123")
	ctx = httpclient.WithCorrelationID(ctx, "corr-456")

	if _, err := get(t, client, ctx); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if gotReqID != "req-123" {
		t.Errorf("X-Request-ID = %q, want %q", gotReqID, "req-123")
	}
	if gotCorrID != "corr-456" {
		t.Errorf("X-Correlation-ID = %q, want %q", gotCorrID, "corr-456")
	}

	if _, err := get(t, client, context.Background()); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if gotReqID != "" || gotCorrID != "" {
		t.Errorf("IDs = (%q, %q), want none without context values", gotReqID, gotCorrID)
	}
}

func TestDo_Timeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})

	cfg := testConfig(srv.URL)
	cfg.Timeout = 50 * time.Millisecond

	resp, err := get(t, httpclient.New(cfg, "salbom-backend", nil, testLogger()), context.Background())
	if err == nil {
		t.Fatal("Get() error = nil, want timeout")
	}
	if resp != nil {
		t.Errorf("Get() response = %v, want nil on timeout", resp)
	}

	var netErr net.Error
	if !errors.As(err, &netErr) || !netErr.Timeout() {
		t.Errorf("error = %v, want a net.Error with Timeout() true", err)
	}
}

func TestDo_ContextCancellation(t *testing.T) {
	t.Parallel()

	srv := statusServer(t, http.StatusOK, nil)
	client := httpclient.New(testConfig(srv.URL), "salbom-backend", nil, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := get(t, client, ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Get() error = %v, want context.Canceled", err)
	}
}

func TestDo_ConnectionRefused(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	if _, err := get(t, httpclient.New(testConfig(addr), "salbom-backend", nil, testLogger()),
		context.Background()); err == nil {
		t.Fatal("Get() error = nil, want connection error")
	}
}

func TestDo_RateLimitRespectsContext(t *testing.T) {
	t.Parallel()

	srv := statusServer(t, http.StatusOK, nil)

	cfg := testConfig(srv.URL)
	cfg.RateLimit = config.RateLimitConfig{RequestsPerSecond: 0.001, BurstSize: 1}
	client := httpclient.New(cfg, "salbom-backend", nil, testLogger())

	if _, err := get(t, client, context.Background()); err != nil {
		t.Fatalf("first Get() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, err := get(t, client, ctx); err == nil {
		t.Fatal("second Get() error = nil, want rate limiter error")
	}
}

func TestDo_CircuitBreakerOpens(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := statusServer(t, http.StatusInternalServerError, &hits)

	cfg := testConfig(srv.URL)
	cfg.CircuitBreaker.MaxFailures = 1
	client := httpclient.New(cfg, "salbom-backend", nil, testLogger())

	if _, err := get(t, client, context.Background()); err != nil {
		t.Fatalf("first Get() error = %v, want the 500 response", err)
	}

	resp, err := get(t, client, context.Background())
	if resp != nil {
		t.Errorf("Get() response = %v, want nil while open", resp)
	}
	if !errors.Is(err, httpclient.ErrCircuitOpen) {
		t.Errorf("error = %v, want ErrCircuitOpen", err)
	}
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("error = %v, want gobreaker.ErrOpenState", err)
	}
	if hits.Load() != 1 {
		t.Errorf("server hits = %d, want 1", hits.Load())
	}
	if client.CircuitBreakerState() != "open" {
		t.Errorf("CircuitBreakerState() = %q, want open", client.CircuitBreakerState())
	}
}

func TestDo_ZeroMaxFailuresNeverTrips(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := statusServer(t, http.StatusServiceUnavailable, &hits)

	cfg := testConfig(srv.URL)
	cfg.CircuitBreaker.MaxFailures = 0
	client := httpclient.New(cfg, "salbom-backend", nil, testLogger())

	const calls = 10
	for i := range calls {
		resp, err := get(t, client, context.Background())
		if err != nil {
			t.Fatalf("Get() #%d error = %v, want the 503 response", i+1, err)
		}
		if resp.StatusCode != http.StatusServiceUnavailable {
			t.Errorf("Get() #%d status = %d, want 503", i+1, resp.StatusCode)
		}
	}

	if hits.Load() != calls {
		t.Errorf("server hits = %d, want %d", hits.Load(), calls)
	}
	if client.CircuitBreakerState() != "closed" {
		t.Errorf("CircuitBreakerState() = %q, want closed", client.CircuitBreakerState())
	}
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() error = %v, want nil", err)
	}
}

func TestDo_ClientErrorsDoNotTripBreaker(t *testing.T) {
	t.Parallel()

	srv := statusServer(t, http.StatusNotFound, nil)

	cfg := testConfig(srv.URL)
	cfg.CircuitBreaker.MaxFailures = 1
	client := httpclient.New(cfg, "salbom-backend", nil, testLogger())

	for range 3 {
		if _, err := get(t, client, context.Background()); err != nil {
			t.Fatalf("Get() error = %v", err)
		}
	}
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil", err)
	}
}

func TestDo_CircuitBreakerRecovery(t *testing.T) {
	t.Parallel()

	var fail atomic.Bool
	fail.Store(true)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(srv.URL)
	cfg.CircuitBreaker.MaxFailures = 1
	cfg.CircuitBreaker.Timeout = 100 * time.Millisecond
	client := httpclient.New(cfg, "salbom-backend", nil, testLogger())

	_, _ = get(t, client, context.Background())

	if _, err := get(t, client, context.Background()); !errors.Is(err, httpclient.ErrCircuitOpen) {
		t.Fatalf("error = %v, want ErrCircuitOpen", err)
	}

	time.Sleep(150 * time.Millisecond)
	if err := client.HealthCheck(context.Background()); err == nil || !strings.Contains(err.Error(), "degraded") {
		t.Errorf("HealthCheck() = %v, want degraded while half-open", err)
	}

	fail.Store(false)

	resp, err := get(t, client, context.Background())
	if err != nil {
		t.Fatalf("Get() error = %v, want recovery", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil after recovery", err)
	}
}

func TestClient_HealthCheck(t *testing.T) {
	t.Parallel()

	srv := statusServer(t, http.StatusInternalServerError, nil)

	cfg := testConfig(srv.URL)
	cfg.CircuitBreaker.MaxFailures = 1
	client := httpclient.New(cfg, "salbom-backend", nil, testLogger())

	if client.Name() != "salbom-backend" {
		t.Errorf("Name() = %q, want salbom-backend", client.Name())
	}
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil for a fresh client", err)
	}

	_, _ = get(t, client, context.Background())

	err := client.HealthCheck(context.Background())
	if err == nil || !strings.Contains(err.Error(), "failing") {
		t.Errorf("HealthCheck() = %v, want failing once open", err)
	}
}

func TestDo_RecordsMetrics(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	metrics, err := telemetry.NewMetrics(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))
	if err != nil {
		t.Fatalf("NewMetrics error = %v", err)
	}

	srv := statusServer(t, http.StatusOK, nil)
	client := httpclient.New(testConfig(srv.URL), "salbom-backend", metrics, testLogger())

	if _, err := get(t, client, context.Background()); err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect error = %v", err)
	}

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if sum, ok := m.Data.(metricdata.Sum[int64]); ok && m.Name == "http.client.request.total" {
				for _, dp := range sum.DataPoints {
					total += dp.Value
				}
			}
		}
	}
	if total != 1 {
		t.Errorf("http.client.request.total = %d, want 1", total)
	}
}
