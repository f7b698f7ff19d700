package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime/debug"
)

// recoveryWriter tracks whether any part of the response reached the client.
type recoveryWriter struct {
	http.ResponseWriter
	committed bool
}

func (rw *recoveryWriter) WriteHeader(code int) {
	rw.committed = true
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *recoveryWriter) Write(b []byte) (int, error) {
	rw.committed = true
	return rw.ResponseWriter.Write(b)
}

func (rw *recoveryWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

var internalErrorBody = map[string]any{
	"error": map[string]string{
		"code":    "INTERNAL_ERROR",
		"message": "internal server error",
	},
}

// Recovery turns a handler panic into a 500 response. Store transactions
// opened by the handler are rolled back by their own deferred cleanup before
// the panic reaches this point.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := &recoveryWriter{ResponseWriter: w}

			defer func() {
				p := recover()
				if p == nil {
					return
				}
				if p == http.ErrAbortHandler {
					panic(p)
				}

				logger.Error("panic recovered",
					"error", p,
					"method", r.Method,
					"path", r.URL.Path,
					"request_id", GetRequestID(r),
					"stack", string(debug.Stack()),
				)

				if rw.committed {
					return
				}

				rw.Header().Set("Content-Type", "application/json")
				rw.WriteHeader(http.StatusInternalServerError)
				if err := json.NewEncoder(rw).Encode(internalErrorBody); err != nil {
					logger.Error("failed to write recovery response", "error", err)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
