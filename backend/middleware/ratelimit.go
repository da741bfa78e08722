// ABOUTME: Per-client request quotas for the advice and planning route tiers
// ABOUTME: Fixed one-minute windows keyed by client IP, reported via headers and metrics

package middleware

import (
	"fmt"
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/markalston/ledwall-calc/backend/metrics"
)

// Tier names a group of routes that share one quota
type Tier string

const (
	// TierAdvice covers the advisor endpoint, which calls an external API
	TierAdvice Tier = "advice"
	// TierPlanning covers every pure computation endpoint
	TierPlanning Tier = "planning"
)

// quotaWindow is the length of one counting window
const quotaWindow = time.Minute

// sweepEvery is how many new windows are opened between sweeps of stale clients
const sweepEvery = 100

type window struct {
	used    int
	resetAt time.Time
}

// Decision is the outcome of charging one request against a quota
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	Reset     time.Duration // time until the window resets; zero when allowed in a fresh window
}

// Limiter enforces a per-client request quota for one tier
type Limiter struct {
	tier    Tier
	limit   int
	now     func() time.Time
	mu      sync.Mutex
	clients map[string]*window
	opened  int
}

// NewLimiter allows perMinute requests per client per minute
func NewLimiter(tier Tier, perMinute int) *Limiter {
	return &Limiter{
		tier:    tier,
		limit:   perMinute,
		now:     time.Now,
		clients: make(map[string]*window),
	}
}

// Tier returns the quota's tier name
func (l *Limiter) Tier() Tier {
	return l.tier
}

// Take charges one request to client
func (l *Limiter) Take(client string) Decision {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.clients[client]

	// The reset instant itself belongs to the next window
	if !ok || !now.Before(w.resetAt) {
		l.clients[client] = &window{used: 1, resetAt: now.Add(quotaWindow)}
		l.opened++
		if l.opened >= sweepEvery {
			l.sweepLocked(now)
			l.opened = 0
		}
		return Decision{Allowed: true, Limit: l.limit, Remaining: l.limit - 1}
	}

	if w.used < l.limit {
		w.used++
		return Decision{Allowed: true, Limit: l.limit, Remaining: l.limit - w.used}
	}
	return Decision{Allowed: false, Limit: l.limit, Reset: w.resetAt.Sub(now)}
}

// Clients returns the number of clients with a tracked window
func (l *Limiter) Clients() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

func (l *Limiter) sweepLocked(now time.Time) {
	for k, w := range l.clients {
		if !now.Before(w.resetAt) {
			delete(l.clients, k)
		}
	}
}

// ClientKey identifies the caller: the leftmost X-Forwarded-For address when
// it parses as an IP, else the RemoteAddr host. The service trusts
// X-Forwarded-For, so it must sit behind a proxy that sets it.
func ClientKey(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); net.ParseIP(ip) != nil {
			return ip
		}
	}
	host := r.RemoteAddr
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return host
}

// RateLimit charges every request to limiter. A nil limiter disables the
// quota; requests without an identifiable client pass through.
func RateLimit(limiter *Limiter, reg *metrics.Registry) Middleware {
	return func(next http.HandlerFunc) http.HandlerFunc {
		if limiter == nil {
			return next
		}
		return func(w http.ResponseWriter, r *http.Request) {
			client := ClientKey(r)
			if client == "" {
				next(w, r)
				return
			}

			d := limiter.Take(client)
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(d.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
			if d.Allowed {
				next(w, r)
				return
			}

			retry := int(math.Ceil(d.Reset.Seconds()))
			slog.Warn("Rate limit exceeded", "tier", limiter.Tier(), "client", client, "path", r.URL.Path, "retry_after", retry)
			if reg != nil {
				reg.RecordRateLimited(string(limiter.Tier()))
			}

			w.Header().Set("Retry-After", strconv.Itoa(retry))
			writeJSONError(w, "Rate limit exceeded",
				fmt.Sprintf("%s quota of %d per minute used, retry after %ds", limiter.Tier(), d.Limit, retry),
				http.StatusTooManyRequests)
		}
	}
}
