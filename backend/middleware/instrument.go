// ABOUTME: Prometheus instrumentation middleware
// ABOUTME: Records request counts, latency, and in-flight requests per route

package middleware

import (
	"net/http"
	"time"

	"github.com/markalston/ledwall-calc/backend/metrics"
)

// Instrument returns middleware that records metrics under the given route
// label. Using the route pattern rather than the raw path keeps label
// cardinality bounded. A nil registry disables instrumentation.
func Instrument(reg *metrics.Registry, route string) Middleware {
	return func(next http.HandlerFunc) http.HandlerFunc {
		if reg == nil {
			return next
		}
		return func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reg.HTTPRequestsInFlight.Inc()
			defer reg.HTTPRequestsInFlight.Dec()

			wrapped := wrapResponseWriter(w)
			next(wrapped, r)

			reg.RecordHTTPRequest(r.Method, route, wrapped.statusCode, time.Since(start))
		}
	}
}
