package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SalBom/app-sb-sub001/internal/platform/telemetry"
)

// Chain composes middleware; the first argument is the outermost, so
// Chain(a, b)(h) is a(b(h)).
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			handler = middlewares[i](handler)
		}
		return handler
	}
}

// Default is the gateway pipeline:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout
//
// metrics may be nil when telemetry is disabled; a zero timeout disables
// the request deadline.
func Default(logger *slog.Logger, metrics *telemetry.Metrics, timeout time.Duration) func(http.Handler) http.Handler {
	return Chain(
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		OpenTelemetry(metrics),
		Logging(logger),
		Timeout(timeout),
	)
}
