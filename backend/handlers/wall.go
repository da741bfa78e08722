// ABOUTME: HTTP handlers for wall statistics, layouts, compatibility, and plans
// ABOUTME: Also serves SVG and PNG renders of the front and top views

package handlers

import (
	"bytes"
	"image"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/markalston/ledwall-calc/backend/models"
	"github.com/markalston/ledwall-calc/backend/render"
	"github.com/markalston/ledwall-calc/backend/services"
)

// WallStats returns the resolved cabinet and derived statistics.
func (h *Handler) WallStats(w http.ResponseWriter, r *http.Request) {
	cfg, ok := h.decodeWallConfig(w, r)
	if !ok {
		return
	}

	cab, stats := h.planner.Stats(cfg)
	h.writeJSON(w, http.StatusOK, models.StatsResponse{Cabinet: cab, Stats: stats})
}

// WallLayout returns the front grid and, for curved walls, the floor plan.
func (h *Handler) WallLayout(w http.ResponseWriter, r *http.Request) {
	cfg, ok := h.decodeWallConfig(w, r)
	if !ok {
		return
	}

	plan := h.plan(cfg)
	h.writeJSON(w, http.StatusOK, models.LayoutResponse{Front: plan.Front, Curved: plan.Curved})
}

// WallCompatibility returns one verdict per catalog processor.
func (h *Handler) WallCompatibility(w http.ResponseWriter, r *http.Request) {
	cfg, ok := h.decodeWallConfig(w, r)
	if !ok {
		return
	}

	plan := h.plan(cfg)
	h.writeJSON(w, http.StatusOK, models.CompatibilityResponse{
		Verdicts:        plan.Compatibility,
		CompatibleCount: services.CompatibleCount(plan.Compatibility),
	})
}

// WallPlan returns every derived view of the configuration.
func (h *Handler) WallPlan(w http.ResponseWriter, r *http.Request) {
	cfg, ok := h.decodeWallConfig(w, r)
	if !ok {
		return
	}

	h.writeJSON(w, http.StatusOK, h.plan(cfg))
}

// RenderWall draws the requested view. Query parameters: view (front|top),
// format (svg|png) and width (raster width in pixels).
func (h *Handler) RenderWall(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	view, err := render.ParseView(q.Get("view"))
	if err != nil {
		h.writeErrorDetails(w, "Invalid view", err.Error(), http.StatusBadRequest)
		return
	}
	format, err := render.ParseFormat(q.Get("format"))
	if err != nil {
		h.writeErrorDetails(w, "Invalid format", err.Error(), http.StatusBadRequest)
		return
	}
	width := 0
	if raw := q.Get("width"); raw != "" {
		width, err = strconv.Atoi(raw)
		if err != nil || width <= 0 {
			h.writeError(w, "width must be a positive integer", http.StatusBadRequest)
			return
		}
	}

	cfg, ok := h.decodeWallConfig(w, r)
	if !ok {
		return
	}
	plan := h.plan(cfg)

	if view == render.ViewTop && plan.Curved == nil {
		h.writeError(w, "Top view requires a curved wall", http.StatusUnprocessableEntity)
		return
	}

	if format == render.FormatSVG {
		var svg string
		if view == render.ViewTop {
			svg, _ = render.TopSVG(plan)
		} else {
			svg = render.FrontSVG(plan)
		}
		h.recordRender(view, format)
		w.Header().Set("Content-Type", "image/svg+xml")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(svg))
		return
	}

	var img *image.RGBA
	if view == render.ViewTop {
		img, _ = render.TopPNG(plan, width)
	} else {
		img = render.FrontPNG(plan, width)
	}

	var buf bytes.Buffer
	if err := render.EncodePNG(&buf, img); err != nil {
		slog.Error("PNG render failed", "error", err)
		h.writeError(w, "Failed to render image", http.StatusInternalServerError)
		return
	}
	h.recordRender(view, format)
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) recordRender(view render.View, format render.Format) {
	if h.metrics != nil {
		h.metrics.RecordRender(string(view), string(format))
	}
}
