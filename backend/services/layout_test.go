// ABOUTME: Tests for the curved floor plan and front elevation layouts
// ABOUTME: Checks face placement on the circle, symmetry, depth offsets, and viewports

package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markalston/ledwall-calc/backend/models"
)

const geomTolerance = 1e-6

func curvedLayoutFor(t *testing.T, cfg models.WallConfig, cab models.Cabinet) (models.WallStats, models.CurvedLayout) {
	t.Helper()
	stats := NewMetricsCalculator(0).Calculate(cfg, cab)
	layout, ok := NewLayoutCalculator().CurvedFromStats(cfg, cab, stats)
	require.True(t, ok)
	return stats, layout
}

func TestCurvedFromStats_FlatDoesNotRun(t *testing.T) {
	cfg := models.WallConfig{Rows: 2, Cols: 4}
	stats := NewMetricsCalculator(0).Calculate(cfg, testCabinet())

	_, ok := NewLayoutCalculator().CurvedFromStats(cfg, testCabinet(), stats)
	assert.False(t, ok)
}

func TestCurved_FacePivotsLieOnApothem(t *testing.T) {
	for _, angle := range []float64{1, 5, -5, 12.5, -15, 30} {
		for _, cols := range []int{1, 2, 7, 10} {
			cfg := models.WallConfig{Rows: 1, Cols: cols, CurveAngle: angle}
			_, layout := curvedLayoutFor(t, cfg, testCabinet())

			require.Len(t, layout.Placements, cols)
			for _, p := range layout.Placements {
				px, py := FacePivot(p, layout.CabinetDepthMm, layout.Concave)
				assert.InDelta(t, layout.ApothemMm, math.Hypot(px, py), geomTolerance,
					"angle %v cols %d cabinet %d", angle, cols, p.Index)
			}
		}
	}
}

func TestCurved_AdjacentFacesMeetEdgeToEdge(t *testing.T) {
	cab := testCabinet()
	cfg := models.WallConfig{Rows: 1, Cols: 9, CurveAngle: 6}
	_, layout := curvedLayoutFor(t, cfg, cab)

	half := cab.WidthMm / 2
	for i := 0; i+1 < len(layout.Placements); i++ {
		a, b := layout.Placements[i], layout.Placements[i+1]
		ax, ay := FacePivot(a, layout.CabinetDepthMm, true)
		bx, by := FacePivot(b, layout.CabinetDepthMm, true)

		// Right edge of face a, left edge of face b
		rax, ray := rotatePoint(half, 0, a.Rotation)
		lbx, lby := rotatePoint(-half, 0, b.Rotation)

		assert.InDelta(t, ax+rax, bx+lbx, geomTolerance, "cabinets %d/%d x", i, i+1)
		assert.InDelta(t, ay+ray, by+lby, geomTolerance, "cabinets %d/%d y", i, i+1)
	}
}

func TestCurved_SymmetricAboutCenterAxis(t *testing.T) {
	for _, cols := range []int{6, 7} {
		cfg := models.WallConfig{Rows: 1, Cols: cols, CurveAngle: 4}
		_, layout := curvedLayoutFor(t, cfg, testCabinet())

		n := len(layout.Placements)
		for i := 0; i < n/2; i++ {
			left, right := layout.Placements[i], layout.Placements[n-1-i]
			assert.InDelta(t, -left.X, right.X, geomTolerance)
			assert.InDelta(t, left.Y, right.Y, geomTolerance)
			assert.InDelta(t, -left.Rotation, right.Rotation, geomTolerance)
		}
	}
}

func TestCurved_OddColumnsCenterCabinetOnAxis(t *testing.T) {
	cab := testCabinet()
	cfg := models.WallConfig{Rows: 1, Cols: 5, CurveAngle: 8}
	_, layout := curvedLayoutFor(t, cfg, cab)

	mid := layout.Placements[2]
	assert.InDelta(t, 0, mid.X, geomTolerance)
	assert.InDelta(t, 0, mid.Rotation, geomTolerance)
	assert.InDelta(t, layout.ApothemMm+layout.CabinetDepthMm/2, mid.Y, geomTolerance)
}

func TestCurved_DepthOffsetDirection(t *testing.T) {
	cab := testCabinet()
	depth := CabinetDepth(cab)

	_, concave := curvedLayoutFor(t, models.WallConfig{Rows: 1, Cols: 3, CurveAngle: 10}, cab)
	_, convex := curvedLayoutFor(t, models.WallConfig{Rows: 1, Cols: 3, CurveAngle: -10}, cab)

	assert.True(t, concave.Concave)
	assert.False(t, convex.Concave)

	// Concave bodies sit behind the face, farther from the center
	c := concave.Placements[1]
	assert.InDelta(t, concave.ApothemMm+depth/2, math.Hypot(c.X, c.Y), geomTolerance)

	// Convex bodies sit in front, closer to the center
	v := convex.Placements[1]
	assert.InDelta(t, convex.ApothemMm-depth/2, math.Hypot(v.X, v.Y), geomTolerance)
}

func TestCabinetDepth(t *testing.T) {
	assert.Equal(t, 150.0, CabinetDepth(models.Cabinet{WidthMm: 500}))
	assert.Equal(t, 300.0, CabinetDepth(models.Cabinet{WidthMm: 1000}))
}

func TestCurved_ViewportContainsEveryCorner(t *testing.T) {
	cab := testCabinet()
	cfg := models.WallConfig{Rows: 1, Cols: 12, CurveAngle: -9}
	_, layout := curvedLayoutFor(t, cfg, cab)

	vp := layout.Viewport
	for _, p := range layout.Placements {
		for _, corner := range rectCorners(layout.CabinetWidthMm, layout.CabinetDepthMm) {
			rx, ry := rotatePoint(corner[0], corner[1], p.Rotation)
			x, y := rx+p.X, ry+p.Y
			assert.GreaterOrEqual(t, x, vp.MinX+ViewportMarginMm)
			assert.LessOrEqual(t, x, vp.MinX+vp.Width-ViewportMarginMm)
			assert.GreaterOrEqual(t, y, vp.MinY+ViewportMarginMm)
			assert.LessOrEqual(t, y, vp.MinY+vp.Height-ViewportMarginMm)
		}
	}
	assert.Equal(t, vp.String(), layout.ViewBox)
}

func TestCurved_SingleColumn(t *testing.T) {
	cab := testCabinet()
	_, layout := curvedLayoutFor(t, models.WallConfig{Rows: 3, Cols: 1, CurveAngle: 10}, cab)

	require.Len(t, layout.Placements, 1)
	p := layout.Placements[0]
	assert.InDelta(t, 0, p.X, geomTolerance)
	assert.InDelta(t, 0, p.Rotation, geomTolerance)

	// Bounding box is the bare cabinet rectangle, padded
	assert.InDelta(t, cab.WidthMm*1.3+2*ViewportMarginMm, layout.Viewport.Width, geomTolerance)
}

func TestFront_TenBySix(t *testing.T) {
	layout := NewLayoutCalculator().Front(models.WallConfig{Rows: 6, Cols: 10}, testCabinet())

	assert.Len(t, layout.Cells, 60)
	assert.Equal(t, 5000.0, layout.WidthMm)
	assert.Equal(t, 3000.0, layout.HeightMm)
	assert.Equal(t, 750.0, layout.Padding)
	assert.Equal(t, "-750 -750 6500 4500", layout.ViewBox)
	assert.InDelta(t, 240.0, layout.LabelFontSize, 1e-9)

	last := layout.Cells[len(layout.Cells)-1]
	assert.Equal(t, 5, last.Row)
	assert.Equal(t, 9, last.Col)
	assert.Equal(t, 4500.0, last.X)
	assert.Equal(t, 2500.0, last.Y)
}

func TestFront_LabelFontUsesCabinetWidthForSmallWalls(t *testing.T) {
	layout := NewLayoutCalculator().Front(models.WallConfig{Rows: 1, Cols: 2}, testCabinet())

	assert.InDelta(t, 200.0, layout.LabelFontSize, 1e-9)
}

func TestFront_EmptyGrid(t *testing.T) {
	layout := NewLayoutCalculator().Front(models.WallConfig{}, testCabinet())

	assert.Empty(t, layout.Cells)
	assert.Equal(t, 0.0, layout.Padding)
}
