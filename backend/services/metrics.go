// ABOUTME: Wall metrics calculator for resolution, power, weight, and curvature
// ABOUTME: Pure function of a WallConfig and its resolved Cabinet, no I/O and no failure modes

package services

import (
	"math"

	"github.com/markalston/ledwall-calc/backend/models"
)

// DefaultPixelsPerPort is the conservative pixel budget of one processor output port
const DefaultPixelsPerPort = 655360

// MetricsCalculator computes WallStats
type MetricsCalculator struct {
	PixelsPerPort int
}

// NewMetricsCalculator creates a calculator with the given per-port pixel budget.
// A non-positive budget uses DefaultPixelsPerPort.
func NewMetricsCalculator(pixelsPerPort int) *MetricsCalculator {
	if pixelsPerPort <= 0 {
		pixelsPerPort = DefaultPixelsPerPort
	}
	return &MetricsCalculator{PixelsPerPort: pixelsPerPort}
}

// Calculate derives the wall statistics. Degenerate inputs (zero rows, cols,
// or angle) produce zero-valued figures rather than errors.
func (c *MetricsCalculator) Calculate(cfg models.WallConfig, cab models.Cabinet) models.WallStats {
	activeCabinets := cfg.Cols * cfg.Rows
	totalCabinets := activeCabinets + cfg.Spares

	pixelsW := cfg.Cols * cab.PixelsW
	pixelsH := cfg.Rows * cab.PixelsH
	totalPixels := pixelsW * pixelsH

	arcWidthMm := float64(cfg.Cols) * cab.WidthMm
	heightMm := float64(cfg.Rows) * cab.HeightMm

	var radius *float64
	linearWidthMm := arcWidthMm
	totalCurveAngle := 0.0

	if cfg.CurveAngle != 0 {
		// Each cabinet face is a chord of the circle: R = w / (2 sin(a/2))
		angleRad := degToRad(math.Abs(cfg.CurveAngle))
		r := cab.WidthMm / (2 * math.Sin(angleRad/2))
		radius = &r

		// Span across cabinet centers, one fewer interval than cabinets
		totalCurveAngle = cfg.CurveAngle * float64(cfg.Cols-1)
		if totalCurveAngle == 0 {
			// a single column with a negative angle yields -0
			totalCurveAngle = 0
		}
		totalAngleRad := degToRad(math.Abs(totalCurveAngle))
		linearWidthMm = 2 * r * math.Sin(totalAngleRad/2)
	}

	aspectRatio := 0.0
	if pixelsH > 0 {
		aspectRatio = float64(pixelsW) / float64(pixelsH)
	}

	return models.WallStats{
		TotalWidthMm:    arcWidthMm,
		LinearWidthMm:   linearWidthMm,
		TotalHeightMm:   heightMm,
		TotalPixelsW:    pixelsW,
		TotalPixelsH:    pixelsH,
		TotalPixels:     totalPixels,
		AspectRatio:     aspectRatio,
		TotalWeightKg:   float64(totalCabinets) * cab.WeightKg,
		TotalMaxPowerW:  float64(totalCabinets) * cab.MaxPowerW,
		TotalAvgPowerW:  float64(totalCabinets) * cab.AvgPowerW,
		CurveRadiusMm:   radius,
		TotalCurveAngle: totalCurveAngle,
		ActiveCabinets:  activeCabinets,
		TotalCabinets:   totalCabinets,
		EstimatedPorts:  c.estimatePorts(totalPixels),
	}
}

// estimatePorts returns ceil(totalPixels / PixelsPerPort)
func (c *MetricsCalculator) estimatePorts(totalPixels int) int {
	perPort := c.PixelsPerPort
	if perPort <= 0 {
		perPort = DefaultPixelsPerPort
	}
	if totalPixels <= 0 {
		return 0
	}
	return (totalPixels + perPort - 1) / perPort
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
