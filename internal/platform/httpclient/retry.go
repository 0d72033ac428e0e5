package httpclient

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/SalBom/app-sb-sub001/internal/platform/logging"
)

// errFailureStatus marks a completed exchange that the breaker must count as
// a failure (5xx, 429). It never leaves the package.
var errFailureStatus = errors.New("httpclient: failure status")

// ±25% of the computed delay.
const jitterFraction = 0.25

// doAttempts sends req up to maxAttempts times. With the default policy of
// one attempt it is a single round trip. Only network errors, 5xx and 429
// are attempted again; the final response is returned whatever its status.
func (c *Client) doAttempts(ctx context.Context, req *http.Request) (*http.Response, error) {
	bodyBytes, err := bufferRequestBody(req)
	if err != nil {
		return nil, err
	}

	var lastErr error

	for attempt := range c.retry.maxAttempts {
		last := attempt == c.retry.maxAttempts-1

		if attempt > 0 {
			if err := c.waitBeforeAttempt(ctx, req, attempt, lastErr); err != nil {
				return nil, err
			}
		}

		resetRequestBody(req, bodyBytes)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			if last || !isRetryable(err) {
				return nil, err
			}
			continue
		}

		if last || !isRetryableStatus(resp.StatusCode) {
			return resp, nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", resp.StatusCode, c.serviceName)
		drainResponseBody(resp)
	}

	return nil, lastErr
}

func bufferRequestBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}

	bodyBytes, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	_ = req.Body.Close()

	return bodyBytes, nil
}

func resetRequestBody(req *http.Request, bodyBytes []byte) {
	if bodyBytes == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(bodyBytes))
	req.ContentLength = int64(len(bodyBytes))
}

// drainResponseBody discards and closes the body so the connection can be reused.
func drainResponseBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

func (c *Client) waitBeforeAttempt(ctx context.Context, req *http.Request, attempt int, lastErr error) error {
	delay := backoff(attempt, c.retry)

	logging.FromContext(ctx).WarnContext(ctx, "retrying backend request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.String("peer_service", c.serviceName),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retry.maxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// backoff returns the jittered exponential delay before the given attempt
// (1 is the first retry), capped at maxInterval before jitter.
func backoff(attempt int, p retryPolicy) time.Duration {
	delay := float64(p.initialInterval) * math.Pow(p.multiplier, float64(attempt-1))
	if delay > float64(p.maxInterval) {
		delay = float64(p.maxInterval)
	}

	jitter := delay * jitterFraction
	delay += jitter * (2*randFloat64() - 1)

	return time.Duration(max(delay, 0))
}

// randFloat64 returns a value in [0, 1) from crypto/rand.
func randFloat64() float64 {
	const mantissaBits = 53

	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0
	}
	return float64(binary.BigEndian.Uint64(b[:])>>(64-mantissaBits)) / float64(uint64(1)<<mantissaBits)
}

// isRetryable reports whether a transport error may be attempted again.
// Cancellation and deadlines are final.
func isRetryable(err error) bool {
	return err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// isRetryableStatus reports 5xx and 429.
func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || statusCode >= http.StatusInternalServerError
}
