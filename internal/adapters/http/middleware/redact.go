package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/SalBom/app-sb-sub001/internal/platform/logging"
)

const redacted = "[REDACTED]"

// headerAttrs renders request headers for a debug log line, sorted by name.
// Headers in logging.SensitiveHeaders are replaced with "[REDACTED]";
// multi-value headers are joined with a comma.
func headerAttrs(headers http.Header) []any {
	names := slices.Sorted(func(yield func(string) bool) {
		for name := range headers {
			if !yield(name) {
				return
			}
		}
	})

	attrs := make([]any, 0, len(names))
	for _, name := range names {
		value := strings.Join(headers[name], ",")
		if logging.SensitiveHeaders[strings.ToLower(name)] {
			value = redacted
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return attrs
}
