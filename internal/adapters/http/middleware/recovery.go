package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/SalBom/app-sb-sub001/internal/adapters/http/dto"
)

// Recovery turns a handler panic into a logged stack trace and a 500
// problem response. If the handler already started the response only the
// log entry is written. http.ErrAbortHandler is re-raised so net/http can
// abort the connection as intended.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler { //nolint:errorlint // sentinel compared by identity, as net/http does
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", r.Header.Get(headerRequestID)),
				)

				if !rw.headerWritten {
					dto.WriteProblem(rw, r, http.StatusInternalServerError, "unexpected error")
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
