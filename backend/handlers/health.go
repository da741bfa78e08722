// ABOUTME: HTTP handlers for health and catalog endpoints
// ABOUTME: Reports service status and lists catalog cabinets and processors

package handlers

import (
	"net/http"

	"github.com/markalston/ledwall-calc/backend/models"
)

// Health returns API health status including catalog sizes and advisor state.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	cat := h.planner.Catalog()

	h.writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:            "ok",
		CabinetCount:      len(cat.Cabinets()),
		ProcessorCount:    len(cat.Processors()),
		DefaultCabinet:    cat.DefaultCabinet().ID,
		AdvisorConfigured: h.advisory.Configured(),
		PixelsPerPort:     h.planner.PixelsPerPort(),
	})
}

// ListCabinets returns every catalog cabinet in catalog order.
func (h *Handler) ListCabinets(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.planner.Catalog().Cabinets())
}

// ListProcessors returns every catalog processor in catalog order.
func (h *Handler) ListProcessors(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.planner.Catalog().Processors())
}
