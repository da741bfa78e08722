// ABOUTME: Declarative route table for API endpoints
// ABOUTME: Defines all routes with their HTTP methods and handlers

package handlers

import "net/http"

// Route defines an API endpoint with its HTTP method and handler.
type Route struct {
	Method  string           // HTTP method (GET, POST, etc.)
	Path    string           // URL path (e.g., "/api/v1/health")
	Handler http.HandlerFunc // Handler function
	Strict  bool             // uses the stricter advice rate limit
}

// Pattern returns the ServeMux pattern for the route, e.g. "GET /api/v1/health"
func (r Route) Pattern() string {
	return r.Method + " " + r.Path
}

// Routes returns all API routes for registration.
func (h *Handler) Routes() []Route {
	return []Route{
		// Health & Catalog
		{Method: http.MethodGet, Path: "/api/v1/health", Handler: h.Health},
		{Method: http.MethodGet, Path: "/api/v1/catalog/cabinets", Handler: h.ListCabinets},
		{Method: http.MethodGet, Path: "/api/v1/catalog/processors", Handler: h.ListProcessors},

		// Wall planning
		{Method: http.MethodPost, Path: "/api/v1/wall/stats", Handler: h.WallStats},
		{Method: http.MethodPost, Path: "/api/v1/wall/layout", Handler: h.WallLayout},
		{Method: http.MethodPost, Path: "/api/v1/wall/compatibility", Handler: h.WallCompatibility},
		{Method: http.MethodPost, Path: "/api/v1/wall/plan", Handler: h.WallPlan},
		{Method: http.MethodPost, Path: "/api/v1/wall/render", Handler: h.RenderWall},

		// Advisor
		{Method: http.MethodPost, Path: "/api/v1/advice", Handler: h.Advice, Strict: true},

		// Documentation
		{Method: http.MethodGet, Path: "/api/v1/openapi.yaml", Handler: h.OpenAPISpec},
	}
}
