// ABOUTME: HTTP handler container and shared response helpers
// ABOUTME: Decodes and validates request bodies, then delegates to the planner

package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/markalston/ledwall-calc/backend/cache"
	"github.com/markalston/ledwall-calc/backend/catalog"
	"github.com/markalston/ledwall-calc/backend/config"
	"github.com/markalston/ledwall-calc/backend/metrics"
	"github.com/markalston/ledwall-calc/backend/models"
	"github.com/markalston/ledwall-calc/backend/services"
)

// maxBodyBytes caps request bodies
const maxBodyBytes = 1 << 20

type Handler struct {
	cfg      *config.Config
	planner  *services.Planner
	advisory *services.AdvisoryService
	plans    *cache.Cache[models.WallPlan]
	metrics  *metrics.Registry
}

// NewHandler wires the handlers. Any dependency may be nil: a nil planner
// uses the builtin catalog, a nil advisory service always falls back, a
// nil plan cache disables caching, and a nil registry disables metrics.
func NewHandler(cfg *config.Config, planner *services.Planner, advisory *services.AdvisoryService, plans *cache.Cache[models.WallPlan], reg *metrics.Registry) *Handler {
	if planner == nil {
		planner = services.NewPlanner(catalog.Builtin(), nil)
	}
	if advisory == nil {
		advisory = services.NewAdvisoryService(nil, services.AdvisoryConfig{})
	}
	return &Handler{
		cfg:      cfg,
		planner:  planner,
		advisory: advisory,
		plans:    plans,
		metrics:  reg,
	}
}

// plan returns the full plan for cfg, served from the plan cache when possible
func (h *Handler) plan(cfg models.WallConfig) models.WallPlan {
	key := planKey(cfg)
	if h.plans != nil {
		if cached, ok := h.plans.Get(key); ok {
			slog.Debug("Plan cache hit", "key", key)
			return cached
		}
	}

	plan := h.planner.Plan(cfg)

	if h.plans != nil {
		h.plans.Set(key, plan)
	}
	if h.metrics != nil {
		compatible := services.CompatibleCount(plan.Compatibility)
		h.metrics.RecordPlan(plan.Stats.TotalPixels, compatible, len(plan.Compatibility)-compatible)
	}
	return plan
}

// planKey identifies a configuration. Unknown cabinet ids share the
// default cabinet's plan but keep their own key.
func planKey(cfg models.WallConfig) string {
	return fmt.Sprintf("plan:%d:%d:%s:%s:%d",
		cfg.Rows, cfg.Cols, cfg.CabinetID,
		strconv.FormatFloat(cfg.CurveAngle, 'g', -1, 64), cfg.Spares)
}

// decodeWallConfig reads and validates a WallConfig body, writing a 400 on failure
func (h *Handler) decodeWallConfig(w http.ResponseWriter, r *http.Request) (models.WallConfig, bool) {
	var cfg models.WallConfig
	if !h.decodeJSON(w, r, &cfg) {
		return cfg, false
	}
	if err := services.ValidateWallConfig(cfg); err != nil {
		h.writeErrorDetails(w, "Invalid wall configuration", err.Error(), http.StatusBadRequest)
		return cfg, false
	}
	return cfg, true
}

func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.writeError(w, "Request body too large", http.StatusBadRequest)
			return false
		}
		h.writeErrorDetails(w, "Invalid JSON", err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	h.writeErrorDetails(w, message, "", code)
}

func (h *Handler) writeErrorDetails(w http.ResponseWriter, message, details string, code int) {
	h.writeJSON(w, code, models.ErrorResponse{
		Error:   message,
		Details: details,
		Code:    code,
	})
}
