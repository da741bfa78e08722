// ABOUTME: HTTP request logging middleware with correlation IDs.
// ABOUTME: Logs request start/end with method, path, status, and latency.

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// RequestIDHeader carries the correlation ID on requests and responses
const RequestIDHeader = "X-Request-ID"

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.wroteHeader {
		rw.statusCode = code
		rw.wroteHeader = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.wroteHeader = true
	return rw.ResponseWriter.Write(b)
}

// wrapResponseWriter reuses an existing wrapper so nested middleware share one status
func wrapResponseWriter(w http.ResponseWriter) *responseWriter {
	if rw, ok := w.(*responseWriter); ok {
		return rw
	}
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

// LogRequest logs HTTP requests with timing and correlation ID.
// A well-formed incoming X-Request-ID is reused; otherwise a new UUID is issued.
func LogRequest(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := incomingRequestID(r)

		// Add request ID to response header
		w.Header().Set(RequestIDHeader, requestID)
		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		path := sanitizePath(r.URL.Path)

		slog.Info("Request started",
			"request_id", requestID,
			"method", r.Method,
			"path", path,
		)

		// Wrap response writer to capture status
		wrapped := wrapResponseWriter(w)

		next(wrapped, r.WithContext(ctx))

		slog.Info("Request completed",
			"request_id", requestID,
			"method", r.Method,
			"path", path,
			"status", wrapped.statusCode,
			"latency_ms", time.Since(start).Milliseconds(),
		)
	}
}

// RequestID returns the correlation ID stored by LogRequest, or ""
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

func incomingRequestID(r *http.Request) string {
	if id := r.Header.Get(RequestIDHeader); id != "" {
		if parsed, err := uuid.Parse(id); err == nil {
			return parsed.String()
		}
	}
	return uuid.NewString()
}

// sanitizePath strips control characters so request paths cannot forge log lines
func sanitizePath(p string) string {
	return strings.Map(func(r rune) rune {
		if r < 32 || r == 127 {
			return -1
		}
		return r
	}, p)
}
