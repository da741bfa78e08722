// ABOUTME: HTTP handler for the technical advisor endpoint
// ABOUTME: Always answers 200 with either advice or the fallback text

package handlers

import (
	"net/http"

	"github.com/markalston/ledwall-calc/backend/models"
	"github.com/markalston/ledwall-calc/backend/services"
)

// Advice asks the advisor a question about the posted configuration.
func (h *Handler) Advice(w http.ResponseWriter, r *http.Request) {
	var req models.AdviceRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	req.Question = services.SanitizeQuestion(req.Question)
	if err := services.ValidateAdviceRequest(req); err != nil {
		h.writeErrorDetails(w, "Invalid advice request", err.Error(), http.StatusBadRequest)
		return
	}

	cab, stats := h.planner.Stats(req.Config)
	h.writeJSON(w, http.StatusOK, h.advisory.Advise(r.Context(), stats, cab, req.Question))
}
