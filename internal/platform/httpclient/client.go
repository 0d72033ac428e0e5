// Package httpclient is the instrumented HTTP client shared by every call to
// the SalBom backend. It is built once at start-up from config.BackendConfig
// and injected; callers never construct their own.
//
// Each call passes through, in order:
//
//	Circuit Breaker → Rate Limiter → Default + Request Headers → OTEL Span → Attempts → HTTP
//
// Usage:
//
//	client := httpclient.New(&cfg.Backend, "salbom-backend", metrics, logger)
//	resp, err := client.Get(ctx, "/factura_pdf", url.Values{"facturaId": {"F-1"}})
//
// Do and Get return a response for every completed HTTP exchange, whatever
// its status. A non-nil error means no response was obtained.
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/SalBom/app-sb-sub001/internal/platform/config"
	"github.com/SalBom/app-sb-sub001/internal/platform/telemetry"
)

// ErrCircuitOpen is returned when the circuit breaker rejects a call without
// contacting the backend.
var ErrCircuitOpen = errors.New("httpclient: circuit breaker open")

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID stores the inbound request ID so outbound calls forward it as
// X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithCorrelationID stores the correlation ID so outbound calls forward it as
// X-Correlation-ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

type retryPolicy struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

// Client is safe for concurrent use. It holds no per-call state.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	headers     http.Header
	serviceName string
	breaker     *gobreaker.CircuitBreaker[*http.Response]
	limiter     *rate.Limiter // nil when rate limiting is disabled
	retry       retryPolicy
	metrics     *telemetry.Metrics
	logger      *slog.Logger
}

// New builds a Client from cfg. serviceName labels traces, metrics and the
// health check. metrics may be nil.
func New(cfg *config.BackendConfig, serviceName string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	cb := gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        serviceName,
		MaxRequests: toUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: readyToTrip(cfg.CircuitBreaker.MaxFailures),
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	var limiter *rate.Limiter
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.BurstSize)
	}

	headers := make(http.Header, len(cfg.Headers))
	for name, value := range cfg.Headers {
		headers.Set(name, value)
	}

	return &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		headers:     headers,
		serviceName: serviceName,
		breaker:     cb,
		limiter:     limiter,
		retry: retryPolicy{
			maxAttempts:     max(cfg.Retry.MaxAttempts, 1),
			initialInterval: cfg.Retry.InitialInterval,
			maxInterval:     cfg.Retry.MaxInterval,
			multiplier:      cfg.Retry.Multiplier,
		},
		metrics: metrics,
		logger:  logger,
	}
}

// Get sends a GET for path (relative to the base URL) with the given query.
// The caller must close the response body.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*http.Response, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating GET request for %s: %w", path, err)
	}
	return c.Do(ctx, req)
}

// Do sends req through the breaker, limiter, header injection and tracing.
// The caller must close the response body. 5xx and 429 responses count as
// breaker failures but are still returned with a nil error.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()
	method := req.Method

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		if err := c.waitForRateLimit(ctx); err != nil {
			return nil, err
		}

		c.injectHeaders(ctx, req)

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		r, attemptErr := c.doAttempts(spanCtx, req.WithContext(spanCtx))
		c.finishSpan(span, r, attemptErr)

		if attemptErr == nil && isRetryableStatus(r.StatusCode) {
			// Hand the response back but count the exchange as a failure.
			return r, errFailureStatus
		}
		return r, attemptErr
	})

	switch {
	case errors.Is(err, errFailureStatus):
		err = nil
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		err = fmt.Errorf("%w: %w", ErrCircuitOpen, err)
	}

	c.recordMetrics(ctx, method, start, resp, err)

	if err != nil {
		if resp != nil {
			drainResponseBody(resp)
		}
		return nil, err
	}
	return resp, nil
}

// BaseURL returns the configured backend root without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Name returns the backend identifier used in traces, metrics and readiness.
func (c *Client) Name() string {
	return c.serviceName
}

// CircuitBreakerState returns "closed", "half-open" or "open".
func (c *Client) CircuitBreakerState() string {
	return c.breaker.State().String()
}

// HealthCheck derives backend health from the breaker state without making
// a network call. A half-open breaker reports degraded.
func (c *Client) HealthCheck(_ context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.serviceName)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.serviceName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", c.serviceName, state)
	}
}

func (c *Client) waitForRateLimit(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}

// injectHeaders applies the configured default headers, then the request and
// correlation IDs from ctx. Headers already set on req are kept.
func (c *Client) injectHeaders(ctx context.Context, req *http.Request) {
	for name, values := range c.headers {
		if req.Header.Get(name) == "" {
			req.Header[name] = append([]string(nil), values...)
		}
	}
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		req.Header.Set("X-Request-ID", id)
	}
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok && id != "" {
		req.Header.Set("X-Correlation-ID", id)
	}
}

func (c *Client) startSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer("httpclient")

	ctx, span := tracer.Start(ctx, fmt.Sprintf("HTTP %s %s", req.Method, req.URL.Path),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
			attribute.String("peer.service", c.serviceName),
		),
	)

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	return ctx, span
}

func (c *Client) finishSpan(span trace.Span, resp *http.Response, err error) {
	if resp != nil {
		span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
		if resp.StatusCode >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, resp.Status)
		}
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// recordMetrics runs outside the breaker so rejected calls are counted.
func (c *Client) recordMetrics(ctx context.Context, method string, start time.Time, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	statusCode := 0
	result := "error"
	if resp != nil && err == nil {
		statusCode = resp.StatusCode
		if statusCode < http.StatusBadRequest {
			result = "success"
		}
	}
	if errors.Is(err, ErrCircuitOpen) {
		result = "circuit_open"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(statusCode),
		telemetry.AttrPeerService.String(c.serviceName),
		telemetry.AttrResult.String(result),
	)

	c.metrics.ClientRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

// toUint32 clamps v into the uint32 range.
// readyToTrip opens the breaker after maxFailures consecutive failures. Zero
// never trips, so calls stay independent of earlier failures.
func readyToTrip(maxFailures int) func(gobreaker.Counts) bool {
	return func(counts gobreaker.Counts) bool {
		return maxFailures > 0 && int(counts.ConsecutiveFailures) >= maxFailures
	}
}

func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
