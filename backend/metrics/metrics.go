// ABOUTME: Prometheus metrics registry for the HTTP service and wall computations
// ABOUTME: Each Registry owns its own prometheus.Registry so tests never share state

package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ledwall"

// Registry holds all metrics for the service
type Registry struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Wall Metrics
	PlansTotal          prometheus.Counter
	WallPixels          prometheus.Histogram
	VerdictsTotal       *prometheus.CounterVec
	RendersTotal        *prometheus.CounterVec
	AdviceRequestsTotal *prometheus.CounterVec
	AdviceDuration      prometheus.Histogram
	RateLimitedTotal    *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewRegistry creates a registry with every metric initialized, plus the
// standard Go runtime and process collectors
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	r := &Registry{registry: reg}
	r.initHTTPMetrics()
	r.initWallMetrics()
	return r
}

func (r *Registry) initHTTPMetrics() {
	r.HTTPRequestsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	r.HTTPRequestDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	r.HTTPRequestsInFlight = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Current number of HTTP requests being processed",
		},
	)
}

func (r *Registry) initWallMetrics() {
	r.PlansTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "plans_computed_total",
			Help:      "Total number of wall plans computed",
		},
	)

	r.WallPixels = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "wall_pixels",
			Help:      "Total pixel count of planned walls",
			Buckets:   prometheus.ExponentialBuckets(250_000, 2, 8),
		},
	)

	r.VerdictsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "compatibility_verdicts_total",
			Help:      "Processor compatibility verdicts by outcome",
		},
		[]string{"outcome"},
	)

	r.RendersTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "Rendered wall images by view and format",
		},
		[]string{"view", "format"},
	)

	r.AdviceRequestsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "advice_requests_total",
			Help:      "Advice requests by outcome",
		},
		[]string{"outcome"},
	)

	r.AdviceDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "advice_duration_seconds",
			Help:      "Time to answer an advice request, including fallbacks",
			Buckets:   []float64{0.01, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	r.RateLimitedTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_total",
			Help:      "Requests rejected by a rate limit tier",
		},
		[]string{"tier"},
	)
}

// RecordHTTPRequest records a completed HTTP request
func (r *Registry) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	r.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordPlan records one computed plan and its verdict outcomes
func (r *Registry) RecordPlan(totalPixels, compatible, incompatible int) {
	r.PlansTotal.Inc()
	r.WallPixels.Observe(float64(totalPixels))
	r.VerdictsTotal.WithLabelValues("compatible").Add(float64(compatible))
	r.VerdictsTotal.WithLabelValues("incompatible").Add(float64(incompatible))
}

// RecordRender records one rendered image
func (r *Registry) RecordRender(view, format string) {
	r.RendersTotal.WithLabelValues(view, format).Inc()
}

// RecordAdvice records one advice outcome and its latency
func (r *Registry) RecordAdvice(outcome string, duration time.Duration) {
	r.AdviceRequestsTotal.WithLabelValues(outcome).Inc()
	r.AdviceDuration.Observe(duration.Seconds())
}

// RecordRateLimited records one request rejected by a quota tier
func (r *Registry) RecordRateLimited(tier string) {
	r.RateLimitedTotal.WithLabelValues(tier).Inc()
}

// Handler exposes the registry in the Prometheus text format
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
