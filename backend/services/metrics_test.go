// ABOUTME: Tests for the wall metrics calculator
// ABOUTME: Covers flat and curved walls, spares, degenerate grids, and port estimates

package services

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markalston/ledwall-calc/backend/models"
)

// testCabinet is a 500mm square cabinet with 168x168 pixels
func testCabinet() models.Cabinet {
	return models.Cabinet{
		ID:        "test-500",
		Model:     "T500",
		Brand:     "Test",
		Pitch:     2.97,
		WidthMm:   500,
		HeightMm:  500,
		PixelsW:   168,
		PixelsH:   168,
		WeightKg:  7.5,
		MaxPowerW: 190,
		AvgPowerW: 65,
	}
}

func TestCalculate_FlatTenBySix(t *testing.T) {
	calc := NewMetricsCalculator(0)
	stats := calc.Calculate(models.WallConfig{Rows: 6, Cols: 10}, testCabinet())

	assert.Equal(t, 1680, stats.TotalPixelsW)
	assert.Equal(t, 1008, stats.TotalPixelsH)
	assert.Equal(t, 1693440, stats.TotalPixels)
	assert.Equal(t, 5000.0, stats.TotalWidthMm)
	assert.Equal(t, 5000.0, stats.LinearWidthMm)
	assert.Equal(t, 3000.0, stats.TotalHeightMm)
	assert.Equal(t, 3, stats.EstimatedPorts)
	assert.Nil(t, stats.CurveRadiusMm)
	assert.Equal(t, 0.0, stats.TotalCurveAngle)
	assert.InDelta(t, 1680.0/1008.0, stats.AspectRatio, 1e-12)
	assert.Equal(t, 60, stats.ActiveCabinets)
	assert.Equal(t, 60, stats.TotalCabinets)
	assert.InDelta(t, 450.0, stats.TotalWeightKg, 1e-9)
	assert.InDelta(t, 11400.0, stats.TotalMaxPowerW, 1e-9)
	assert.InDelta(t, 3900.0, stats.TotalAvgPowerW, 1e-9)
}

func TestCalculate_SparesCountTowardWeightAndPower(t *testing.T) {
	calc := NewMetricsCalculator(0)
	cab := testCabinet()

	without := calc.Calculate(models.WallConfig{Rows: 2, Cols: 2}, cab)
	with := calc.Calculate(models.WallConfig{Rows: 2, Cols: 2, Spares: 3}, cab)

	assert.Equal(t, 4, with.ActiveCabinets)
	assert.Equal(t, 7, with.TotalCabinets)
	assert.Equal(t, 3, with.SpareCabinets())
	assert.InDelta(t, 7*cab.WeightKg, with.TotalWeightKg, 1e-9)
	assert.InDelta(t, 7*cab.MaxPowerW, with.TotalMaxPowerW, 1e-9)

	// Spares add no pixels or geometry
	assert.Equal(t, without.TotalPixels, with.TotalPixels)
	assert.Equal(t, without.TotalWidthMm, with.TotalWidthMm)
}

func TestCalculate_CurvedWall(t *testing.T) {
	calc := NewMetricsCalculator(0)
	cab := testCabinet()

	stats := calc.Calculate(models.WallConfig{Rows: 4, Cols: 10, CurveAngle: 5}, cab)

	require.NotNil(t, stats.CurveRadiusMm)
	wantRadius := 500 / (2 * math.Sin(2.5*math.Pi/180))
	assert.InDelta(t, wantRadius, *stats.CurveRadiusMm, 1e-9)
	assert.InDelta(t, 5731.4, *stats.CurveRadiusMm, 0.1)
	assert.Equal(t, 45.0, stats.TotalCurveAngle)
	assert.InDelta(t, 2*wantRadius*math.Sin(22.5*math.Pi/180), stats.LinearWidthMm, 1e-9)
	assert.Less(t, stats.LinearWidthMm, stats.TotalWidthMm, "chord is shorter than arc")
	assert.Equal(t, 5000.0, stats.TotalWidthMm)
	assert.Equal(t, "concave", stats.CurveType())
}

func TestCalculate_ConvexMirrorsConcave(t *testing.T) {
	calc := NewMetricsCalculator(0)
	cab := testCabinet()

	concave := calc.Calculate(models.WallConfig{Rows: 3, Cols: 8, CurveAngle: 7.5}, cab)
	convex := calc.Calculate(models.WallConfig{Rows: 3, Cols: 8, CurveAngle: -7.5}, cab)

	require.NotNil(t, concave.CurveRadiusMm)
	require.NotNil(t, convex.CurveRadiusMm)
	assert.Equal(t, *concave.CurveRadiusMm, *convex.CurveRadiusMm)
	assert.Equal(t, concave.LinearWidthMm, convex.LinearWidthMm)
	assert.Equal(t, -concave.TotalCurveAngle, convex.TotalCurveAngle)
	assert.Equal(t, "convex", convex.CurveType())
}

func TestCalculate_SingleColumnCurved(t *testing.T) {
	calc := NewMetricsCalculator(0)
	stats := calc.Calculate(models.WallConfig{Rows: 5, Cols: 1, CurveAngle: 10}, testCabinet())

	require.NotNil(t, stats.CurveRadiusMm, "radius is still derived from the per-cabinet angle")
	assert.Equal(t, 0.0, stats.TotalCurveAngle)
	assert.Equal(t, 0.0, stats.LinearWidthMm)
	assert.Equal(t, 500.0, stats.TotalWidthMm)
	assert.Equal(t, "single column", stats.CurveType())

	// A negative angle must not serialise as -0
	neg := calc.Calculate(models.WallConfig{Rows: 5, Cols: 1, CurveAngle: -7}, testCabinet())
	assert.False(t, math.Signbit(neg.TotalCurveAngle))
	out, err := json.Marshal(neg)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"total_curve_angle":0`)
}

func TestCalculate_DegenerateGrids(t *testing.T) {
	calc := NewMetricsCalculator(0)

	tests := []struct {
		name string
		cfg  models.WallConfig
	}{
		{"zero rows", models.WallConfig{Rows: 0, Cols: 10}},
		{"zero cols", models.WallConfig{Rows: 6, Cols: 0}},
		{"zero both", models.WallConfig{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := calc.Calculate(tt.cfg, testCabinet())

			assert.Equal(t, 0, stats.TotalPixels)
			assert.Equal(t, 0, stats.EstimatedPorts)
			assert.Equal(t, 0, stats.ActiveCabinets)
			assert.False(t, math.IsNaN(stats.AspectRatio))
			if stats.TotalPixelsH == 0 {
				assert.Equal(t, 0.0, stats.AspectRatio)
			}
		})
	}
}

func TestCalculate_ExtremeAnglesStayFinite(t *testing.T) {
	calc := NewMetricsCalculator(0)

	for _, angle := range []float64{0.001, -0.001, 45, -90, 90, 179} {
		stats := calc.Calculate(models.WallConfig{Rows: 2, Cols: 6, CurveAngle: angle}, testCabinet())
		require.NotNil(t, stats.CurveRadiusMm, "angle %v", angle)
		assert.False(t, math.IsNaN(*stats.CurveRadiusMm), "angle %v", angle)
		assert.False(t, math.IsInf(*stats.CurveRadiusMm, 0), "angle %v", angle)
		assert.False(t, math.IsNaN(stats.LinearWidthMm), "angle %v", angle)
	}
}

func TestEstimatePorts(t *testing.T) {
	tests := []struct {
		name    string
		perPort int
		pixels  int
		want    int
	}{
		{"zero pixels", 0, 0, 0},
		{"exactly one port", 0, DefaultPixelsPerPort, 1},
		{"one pixel over", 0, DefaultPixelsPerPort + 1, 2},
		{"ten by six wall", 0, 1693440, 3},
		{"custom budget", 1_000_000, 1693440, 2},
		{"negative budget uses default", -5, 1693440, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := NewMetricsCalculator(tt.perPort)
			assert.Equal(t, tt.want, calc.estimatePorts(tt.pixels))
		})
	}
}

func TestNewMetricsCalculator_DefaultBudget(t *testing.T) {
	assert.Equal(t, DefaultPixelsPerPort, NewMetricsCalculator(0).PixelsPerPort)
	assert.Equal(t, 500000, NewMetricsCalculator(500000).PixelsPerPort)
}
