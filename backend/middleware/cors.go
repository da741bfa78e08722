// ABOUTME: CORS middleware for API cross-origin requests
// ABOUTME: Echoes allowed origins, answers preflight requests, and exposes request id and quota headers

package middleware

import (
	"net/http"
	"slices"
)

const (
	corsAllowMethods  = "GET, POST, OPTIONS"
	corsAllowHeaders  = "Content-Type, X-Request-ID"
	corsExposeHeaders = "X-Request-ID, Retry-After, X-RateLimit-Limit, X-RateLimit-Remaining"
)

// CORS returns middleware that adds CORS headers to responses.
// With no allowed origins every origin is accepted ("*"); otherwise only
// listed origins are echoed back. OPTIONS preflight requests are answered
// with 204 without calling the wrapped handler.
func CORS(allowedOrigins []string) Middleware {
	allowAll := len(allowedOrigins) == 0

	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			switch {
			case allowAll:
				w.Header().Set("Access-Control-Allow-Origin", "*")
			case origin != "" && slices.Contains(allowedOrigins, origin):
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			default:
				origin = ""
			}

			if allowAll || origin != "" {
				w.Header().Set("Access-Control-Allow-Methods", corsAllowMethods)
				w.Header().Set("Access-Control-Allow-Headers", corsAllowHeaders)
				w.Header().Set("Access-Control-Expose-Headers", corsExposeHeaders)
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next(w, r)
		}
	}
}
