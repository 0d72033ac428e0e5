// Package logging builds the service's slog loggers and carries them through
// request contexts.
//
//	logger := logging.New("info", "json", os.Stderr)
//	ctx = logging.WithLogger(ctx, logger)
//	ctx = logging.With(ctx, slog.String("invoice_id", id))
//	logging.FromContext(ctx).InfoContext(ctx, "invoice pdf resolved")
//
// Error logs name the operation, the entity identifiers and the full error
// chain:
//
//	logger.ErrorContext(ctx, "invoice pdf fetch failed",
//	    slog.String("operation", "FetchInvoicePDF"),
//	    slog.String("invoice_id", id.String()),
//	    slog.Any("error", err),
//	)
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type contextKey struct{}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// New returns a logger writing to w. Level is one of debug, info, warn or
// error (case-insensitive, info otherwise). Format "text" selects the text
// handler; anything else is JSON. Debug loggers include the source location.
// Credential-like attributes are redacted by every logger New returns.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ParseLevel maps a level name to its slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	if lvl, ok := levels[strings.ToLower(level)]; ok {
		return lvl
	}
	return slog.LevelInfo
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// With returns a context whose logger carries the extra attributes.
func With(ctx context.Context, args ...any) context.Context {
	return WithLogger(ctx, FromContext(ctx).With(args...))
}
