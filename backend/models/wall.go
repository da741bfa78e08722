// ABOUTME: Wall configuration input and derived wall statistics
// ABOUTME: WallStats is always a fresh value computed from a WallConfig and its Cabinet

package models

import "strconv"

// WallConfig is the user-editable description of a wall.
// CurveAngle is degrees per cabinet: 0 flat, >0 concave, <0 convex.
type WallConfig struct {
	Rows       int     `json:"rows" validate:"min=1,max=1000"`
	Cols       int     `json:"cols" validate:"min=1,max=1000"`
	CabinetID  string  `json:"cabinet_id" validate:"max=64"`
	CurveAngle float64 `json:"curve_angle" validate:"gte=-90,lte=90"`
	Spares     int     `json:"spares" validate:"min=0,max=10000"`
}

// IsCurved reports whether the wall bends at all
func (c WallConfig) IsCurved() bool {
	return c.CurveAngle != 0
}

// IsConcave reports whether the wall curls toward the viewer
func (c WallConfig) IsConcave() bool {
	return c.CurveAngle > 0
}

// WallStats holds every derived figure for one wall
type WallStats struct {
	TotalWidthMm   float64 `json:"total_width_mm"`  // arc width, along the surface
	LinearWidthMm  float64 `json:"linear_width_mm"` // chord width, end to end
	TotalHeightMm  float64 `json:"total_height_mm"`
	TotalPixelsW   int     `json:"total_pixels_w"`
	TotalPixelsH   int     `json:"total_pixels_h"`
	TotalPixels    int     `json:"total_pixels"`
	AspectRatio    float64 `json:"aspect_ratio"`
	TotalWeightKg  float64 `json:"total_weight_kg"`
	TotalMaxPowerW float64 `json:"total_max_power_w"`
	TotalAvgPowerW float64 `json:"total_avg_power_w"`

	CurveRadiusMm   *float64 `json:"curve_radius_mm"` // nil when flat
	TotalCurveAngle float64  `json:"total_curve_angle"`

	ActiveCabinets int `json:"active_cabinets"`
	TotalCabinets  int `json:"total_cabinets"`
	EstimatedPorts int `json:"estimated_ports"`
}

// IsCurved reports whether a curve radius was computed
func (s WallStats) IsCurved() bool {
	return s.CurveRadiusMm != nil
}

// SpareCabinets returns the number of cabinets held in reserve
func (s WallStats) SpareCabinets() int {
	return s.TotalCabinets - s.ActiveCabinets
}

// CurveType names the orientation of the wall for display
func (s WallStats) CurveType() string {
	switch {
	case s.CurveRadiusMm == nil:
		return "flat"
	case s.TotalCurveAngle > 0:
		return "concave"
	case s.TotalCurveAngle < 0:
		return "convex"
	default:
		return "single column"
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
