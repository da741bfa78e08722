// ABOUTME: Data models for processor compatibility, full wall plans, and advice requests
// ABOUTME: WallPlan bundles every derived view of a single configuration

package models

// Compatibility reasons
const (
	ReasonCapacityExceeded  = "capacity exceeded"
	ReasonDimensionExceeded = "dimension exceeded"
)

// CompatibilityVerdict is the result of checking a wall against one processor
type CompatibilityVerdict struct {
	ProcessorID   string  `json:"processor_id"`
	ProcessorName string  `json:"processor_name"`
	Brand         string  `json:"brand"`
	Compatible    bool    `json:"compatible"`
	Reason        string  `json:"reason,omitempty"`        // set when incompatible
	UsagePercent  float64 `json:"usage_percent,omitempty"` // set when compatible
}

// WallPlan is the complete derived view of one configuration
type WallPlan struct {
	Config        WallConfig             `json:"config"`
	Cabinet       Cabinet                `json:"cabinet"`
	Stats         WallStats              `json:"stats"`
	Front         FrontLayout            `json:"front"`
	Curved        *CurvedLayout          `json:"curved,omitempty"`
	Compatibility []CompatibilityVerdict `json:"compatibility"`
}

// StatsResponse is returned by the stats endpoint
type StatsResponse struct {
	Cabinet Cabinet   `json:"cabinet"`
	Stats   WallStats `json:"stats"`
}

// LayoutResponse is returned by the layout endpoint
type LayoutResponse struct {
	Front  FrontLayout   `json:"front"`
	Curved *CurvedLayout `json:"curved,omitempty"`
}

// CompatibilityResponse is returned by the compatibility endpoint
type CompatibilityResponse struct {
	Verdicts        []CompatibilityVerdict `json:"verdicts"`
	CompatibleCount int                    `json:"compatible_count"`
}

// AdviceRequest asks the advisor a question about a configuration
type AdviceRequest struct {
	Config   WallConfig `json:"config"`
	Question string     `json:"question" validate:"required,max=2000"`
}

// AdviceResponse carries the advisor's answer. Fallback is true when the
// advisor could not be reached and Advice holds the static fallback text.
type AdviceResponse struct {
	Advice   string `json:"advice"`
	Fallback bool   `json:"fallback"`
	Cached   bool   `json:"cached"`
}
