// ABOUTME: Layout calculator for the curved floor plan and the flat front elevation
// ABOUTME: Places cabinet faces edge-to-edge on the circle and computes padded viewports

package services

import (
	"math"

	"github.com/markalston/ledwall-calc/backend/models"
)

const (
	// MinCabinetDepthMm is the smallest drawn cabinet depth in the floor plan
	MinCabinetDepthMm = 150.0
	// CabinetDepthRatio scales drawn depth from cabinet width
	CabinetDepthRatio = 0.3
	// ViewportPadRatio pads each viewport axis by a share of its span
	ViewportPadRatio = 0.15
	// ViewportMarginMm is added to the floor plan padding on each axis
	ViewportMarginMm = 200.0

	frontLabelRatio    = 0.4
	frontLabelMinRatio = 0.08
	frontPaddingRatio  = 0.15
)

// LayoutCalculator computes drawable layouts for a wall
type LayoutCalculator struct{}

// NewLayoutCalculator creates a new layout calculator
func NewLayoutCalculator() *LayoutCalculator {
	return &LayoutCalculator{}
}

// CabinetDepth returns the drawn depth of a cabinet in the floor plan.
// This is a rendering convention; real cabinet depth is not modeled.
func CabinetDepth(cab models.Cabinet) float64 {
	return math.Max(MinCabinetDepthMm, cab.WidthMm*CabinetDepthRatio)
}

// CurvedFromStats runs the curved layout when the stats carry a radius.
// It returns false for flat walls.
func (l *LayoutCalculator) CurvedFromStats(cfg models.WallConfig, cab models.Cabinet, stats models.WallStats) (models.CurvedLayout, bool) {
	if cfg.CurveAngle == 0 || stats.CurveRadiusMm == nil {
		return models.CurvedLayout{}, false
	}
	return l.Curved(cfg, cab, *stats.CurveRadiusMm), true
}

// Curved places cfg.Cols cabinets along an arc of the given circumradius.
// Face pivots sit at the apothem so adjacent faces meet with no gap; the
// arc is symmetric about angle 0.
func (l *LayoutCalculator) Curved(cfg models.WallConfig, cab models.Cabinet, radiusMm float64) models.CurvedLayout {
	angleRad := degToRad(math.Abs(cfg.CurveAngle))
	concave := cfg.CurveAngle > 0

	apothem := radiusMm * math.Cos(angleRad/2)
	depth := CabinetDepth(cab)
	width := cab.WidthMm

	// Concave: body behind the face, away from the center. Convex: in front.
	depthOffset := depth / 2
	if !concave {
		depthOffset = -depthOffset
	}

	totalArc := angleRad * float64(cfg.Cols)
	startAngle := -totalArc/2 + angleRad/2

	cols := cfg.Cols
	if cols < 0 {
		cols = 0
	}
	placements := make([]models.Placement, 0, cols)
	bounds := newBounds()

	for i := 0; i < cols; i++ {
		theta := startAngle + float64(i)*angleRad
		sin, cos := math.Sincos(theta)

		pivotX := apothem * sin
		pivotY := apothem * cos

		cx := pivotX + depthOffset*sin
		cy := pivotY + depthOffset*cos
		rotation := -radToDeg(theta)

		placements = append(placements, models.Placement{
			Index:    i,
			X:        cx,
			Y:        cy,
			Rotation: rotation,
		})

		for _, corner := range rectCorners(width, depth) {
			rx, ry := rotatePoint(corner[0], corner[1], rotation)
			bounds.add(rx+cx, ry+cy)
		}
	}

	viewport := bounds.viewport(ViewportPadRatio, ViewportMarginMm)

	return models.CurvedLayout{
		Placements:     placements,
		Viewport:       viewport,
		ViewBox:        viewport.String(),
		CabinetWidthMm: width,
		CabinetDepthMm: depth,
		RadiusMm:       radiusMm,
		ApothemMm:      apothem,
		Concave:        concave,
	}
}

// Front lays out the flat front elevation: one rectangle per cabinet
// and a viewport padded by 15% of the larger wall dimension.
func (l *LayoutCalculator) Front(cfg models.WallConfig, cab models.Cabinet) models.FrontLayout {
	rows, cols := cfg.Rows, cfg.Cols
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}

	totalW := float64(cols) * cab.WidthMm
	totalH := float64(rows) * cab.HeightMm
	padding := math.Max(totalW, totalH) * frontPaddingRatio

	cells := make([]models.GridCell, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cells = append(cells, models.GridCell{
				Row:    r,
				Col:    c,
				X:      float64(c) * cab.WidthMm,
				Y:      float64(r) * cab.HeightMm,
				Width:  cab.WidthMm,
				Height: cab.HeightMm,
			})
		}
	}

	viewport := models.Viewport{
		MinX:   -padding,
		MinY:   -padding,
		Width:  totalW + padding*2,
		Height: totalH + padding*2,
	}

	return models.FrontLayout{
		Cells:         cells,
		WidthMm:       totalW,
		HeightMm:      totalH,
		Padding:       padding,
		LabelFontSize: math.Max(cab.WidthMm*frontLabelRatio, math.Min(totalW, totalH)*frontLabelMinRatio),
		Viewport:      viewport,
		ViewBox:       viewport.String(),
	}
}

// FacePivot recovers the face-center pivot of a placement by undoing the
// depth offset along the radial direction.
func FacePivot(p models.Placement, depth float64, concave bool) (float64, float64) {
	theta := -degToRad(p.Rotation)
	offset := depth / 2
	if !concave {
		offset = -offset
	}
	sin, cos := math.Sincos(theta)
	return p.X - offset*sin, p.Y - offset*cos
}

// rectCorners returns the corners of a w x h rectangle centered on the origin
func rectCorners(w, h float64) [4][2]float64 {
	return [4][2]float64{
		{-w / 2, -h / 2},
		{w / 2, -h / 2},
		{w / 2, h / 2},
		{-w / 2, h / 2},
	}
}

// rotatePoint rotates (x, y) about the origin by angleDeg
func rotatePoint(x, y, angleDeg float64) (float64, float64) {
	sin, cos := math.Sincos(degToRad(angleDeg))
	return x*cos - y*sin, x*sin + y*cos
}

type bounds struct {
	minX, maxX, minY, maxY float64
}

func newBounds() *bounds {
	return &bounds{
		minX: math.Inf(1),
		maxX: math.Inf(-1),
		minY: math.Inf(1),
		maxY: math.Inf(-1),
	}
}

func (b *bounds) add(x, y float64) {
	b.minX = math.Min(b.minX, x)
	b.maxX = math.Max(b.maxX, x)
	b.minY = math.Min(b.minY, y)
	b.maxY = math.Max(b.maxY, y)
}

// viewport pads each axis by ratio*span + margin. An empty box yields a
// margin-sized viewport around the origin.
func (b *bounds) viewport(ratio, margin float64) models.Viewport {
	if math.IsInf(b.minX, 1) {
		return models.Viewport{MinX: -margin, MinY: -margin, Width: margin * 2, Height: margin * 2}
	}

	spanX := b.maxX - b.minX
	spanY := b.maxY - b.minY
	padX := spanX*ratio + margin
	padY := spanY*ratio + margin

	return models.Viewport{
		MinX:   b.minX - padX,
		MinY:   b.minY - padY,
		Width:  spanX + padX*2,
		Height: spanY + padY*2,
	}
}
