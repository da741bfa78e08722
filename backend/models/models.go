// ABOUTME: Catalog data models for LED cabinets, video processors, and API responses
// ABOUTME: JSON/YAML-serializable structures with validation tags for catalog files

package models

// Cabinet is one physical modular LED display unit as listed in the catalog
type Cabinet struct {
	ID        string  `json:"id" yaml:"id" validate:"required,max=64"`
	Model     string  `json:"model" yaml:"model" validate:"required"`
	Brand     string  `json:"brand" yaml:"brand"`
	Pitch     float64 `json:"pitch" yaml:"pitch" validate:"gte=0"` // mm, informational
	WidthMm   float64 `json:"width_mm" yaml:"width_mm" validate:"gt=0"`
	HeightMm  float64 `json:"height_mm" yaml:"height_mm" validate:"gt=0"`
	PixelsW   int     `json:"pixels_w" yaml:"pixels_w" validate:"gt=0"`
	PixelsH   int     `json:"pixels_h" yaml:"pixels_h" validate:"gt=0"`
	WeightKg  float64 `json:"weight_kg" yaml:"weight_kg" validate:"gt=0"`
	MaxPowerW float64 `json:"max_power_w" yaml:"max_power_w" validate:"gt=0"`
	AvgPowerW float64 `json:"avg_power_w" yaml:"avg_power_w" validate:"gt=0"`
}

// Processor is a video processor with fixed capacity limits
type Processor struct {
	ID        string `json:"id" yaml:"id" validate:"required,max=64"`
	Name      string `json:"name" yaml:"name" validate:"required"`
	Brand     string `json:"brand" yaml:"brand"`
	MaxPixels int    `json:"max_pixels" yaml:"max_pixels" validate:"gt=0"`
	MaxWidth  int    `json:"max_width" yaml:"max_width" validate:"gt=0"`
	MaxHeight int    `json:"max_height" yaml:"max_height" validate:"gt=0"`
}

// Label returns a short human-readable cabinet description, e.g. "P2.6 - BP2 (500x500)"
func (c Cabinet) Label() string {
	return "P" + formatNumber(c.Pitch) + " - " + c.Model + " (" + formatNumber(c.WidthMm) + "x" + formatNumber(c.HeightMm) + ")"
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Code    int    `json:"code"`
}

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status            string `json:"status"`
	CabinetCount      int    `json:"cabinet_count"`
	ProcessorCount    int    `json:"processor_count"`
	DefaultCabinet    string `json:"default_cabinet"`
	AdvisorConfigured bool   `json:"advisor_configured"`
	PixelsPerPort     int    `json:"pixels_per_port"`
}
