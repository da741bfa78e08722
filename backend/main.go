// ABOUTME: Entry point for the LED wall calculator backend service
// ABOUTME: Serves wall planning, rendering, and advice over an HTTP API

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/markalston/ledwall-calc/backend/cache"
	"github.com/markalston/ledwall-calc/backend/catalog"
	"github.com/markalston/ledwall-calc/backend/config"
	"github.com/markalston/ledwall-calc/backend/handlers"
	"github.com/markalston/ledwall-calc/backend/logger"
	"github.com/markalston/ledwall-calc/backend/metrics"
	"github.com/markalston/ledwall-calc/backend/middleware"
	"github.com/markalston/ledwall-calc/backend/models"
	"github.com/markalston/ledwall-calc/backend/services"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Initialize structured logging
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

// app holds the long-lived components built from the configuration
type app struct {
	handler  http.Handler
	plans    *cache.Cache[models.WallPlan]
	advisory *services.AdvisoryService
}

func (a *app) close() {
	a.plans.Stop()
	a.advisory.Close()
}

func run(ctx context.Context, cfg *config.Config) error {
	slog.Info("Starting LED Wall Calculator Backend")

	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.close()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           a.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func newApp(cfg *config.Config) (*app, error) {
	cat, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}
	slog.Info("Catalog loaded",
		"cabinets", len(cat.Cabinets()),
		"processors", len(cat.Processors()),
		"default_cabinet", cat.DefaultCabinet().ID)

	planner := services.NewPlanner(cat, services.NewMetricsCalculator(cfg.PixelsPerPort))

	plans := cache.New[models.WallPlan](cfg.CacheDuration())
	slog.Info("Cache initialized", "ttl", cfg.CacheDuration())

	var reg *metrics.Registry
	if cfg.MetricsEnabled {
		reg = metrics.NewRegistry()
	}

	advisory := services.NewAdvisoryService(newAdvisor(cfg), services.AdvisoryConfig{
		Timeout:  cfg.AdvisorTimeoutDuration(),
		CacheTTL: cfg.AdviceCacheDuration(),
	})
	if reg != nil {
		advisory.SetObserver(reg.RecordAdvice)
	}

	h := handlers.NewHandler(cfg, planner, advisory, plans, reg)

	return &app{
		handler:  newMux(cfg, h, reg),
		plans:    plans,
		advisory: advisory,
	}, nil
}

// loadCatalog returns the builtin catalog or CATALOG_FILE, with the
// DEFAULT_CABINET override applied.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	cat := catalog.Builtin()
	if cfg.CatalogFile != "" {
		loaded, err := catalog.LoadFile(cfg.CatalogFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
		cat = loaded
	}
	if cfg.DefaultCabinet != "" {
		overridden, err := cat.WithDefault(cfg.DefaultCabinet)
		if err != nil {
			return nil, fmt.Errorf("invalid DEFAULT_CABINET: %w", err)
		}
		cat = overridden
	}
	return cat, nil
}

// newAdvisor returns nil when no API key is set, which makes every answer
// the fallback text.
func newAdvisor(cfg *config.Config) services.Advisor {
	if !cfg.AdvisorConfigured() {
		slog.Info("Advisor not configured, advice will use fallback text")
		return nil
	}
	advisor, err := services.NewAnthropicAdvisor(services.AnthropicConfig{
		APIKey:    cfg.AnthropicAPIKey,
		Model:     cfg.AdvisorModel,
		MaxTokens: cfg.AdvisorMaxTokens,
		BaseURL:   cfg.AdvisorBaseURL,
	})
	if err != nil {
		slog.Warn("Advisor disabled", "error", err)
		return nil
	}
	slog.Info("Advisor configured", "model", advisor.Model())
	return advisor
}

// newMux registers every route with logging, CORS, rate limiting, and
// instrumentation.
func newMux(cfg *config.Config, h *handlers.Handler, reg *metrics.Registry) *http.ServeMux {
	var adviceQuota, planningQuota *middleware.Limiter
	if cfg.RateLimitEnabled {
		adviceQuota = middleware.NewLimiter(middleware.TierAdvice, cfg.RateLimitAdvice)
		planningQuota = middleware.NewLimiter(middleware.TierPlanning, cfg.RateLimitDefault)
		slog.Info("Rate limiting enabled", "advice_per_min", cfg.RateLimitAdvice, "planning_per_min", cfg.RateLimitDefault)
	}
	adviceLimit := middleware.RateLimit(adviceQuota, reg)
	defaultLimit := middleware.RateLimit(planningQuota, reg)
	cors := middleware.CORS(cfg.CORSAllowedOrigins)

	mux := http.NewServeMux()
	preflight := make(map[string]bool)
	for _, route := range h.Routes() {
		limit := defaultLimit
		if route.Strict {
			limit = adviceLimit
		}
		mux.HandleFunc(route.Pattern(), middleware.Chain(route.Handler,
			middleware.LogRequest,
			cors,
			middleware.Instrument(reg, route.Path),
			limit,
		))
		// Preflight requests share the path but not the method
		if !preflight[route.Path] {
			preflight[route.Path] = true
			mux.HandleFunc(http.MethodOptions+" "+route.Path, cors(func(w http.ResponseWriter, r *http.Request) {}))
		}
	}

	if reg != nil {
		mux.Handle("GET /metrics", reg.Handler())
	}
	return mux
}
