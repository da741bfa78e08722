// ABOUTME: Layout models for the front elevation grid and the curved floor plan
// ABOUTME: Viewports travel both as boxes and as SVG viewBox strings

package models

// Placement positions one column's cabinet in the top-down floor plan.
// X/Y is the cabinet body center in mm; Rotation is degrees.
type Placement struct {
	Index    int     `json:"index"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotation float64 `json:"rotation"`
}

// Viewport is an axis-aligned box in mm
type Viewport struct {
	MinX   float64 `json:"min_x"`
	MinY   float64 `json:"min_y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// String returns the viewport in SVG viewBox form: "minX minY width height"
func (v Viewport) String() string {
	return formatNumber(v.MinX) + " " + formatNumber(v.MinY) + " " +
		formatNumber(v.Width) + " " + formatNumber(v.Height)
}

// CurvedLayout is the floor plan of a curved wall
type CurvedLayout struct {
	Placements     []Placement `json:"placements"`
	Viewport       Viewport    `json:"viewport"`
	ViewBox        string      `json:"view_box"`
	CabinetWidthMm float64     `json:"cabinet_width_mm"`
	CabinetDepthMm float64     `json:"cabinet_depth_mm"`
	RadiusMm       float64     `json:"radius_mm"`
	ApothemMm      float64     `json:"apothem_mm"`
	Concave        bool        `json:"concave"`
}

// GridCell is one cabinet rectangle in the front elevation
type GridCell struct {
	Row    int     `json:"row"`
	Col    int     `json:"col"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// FrontLayout is the flat front elevation of the wall
type FrontLayout struct {
	Cells         []GridCell `json:"cells"`
	WidthMm       float64    `json:"width_mm"`
	HeightMm      float64    `json:"height_mm"`
	Padding       float64    `json:"padding"`
	LabelFontSize float64    `json:"label_font_size"`
	Viewport      Viewport   `json:"viewport"`
	ViewBox       string     `json:"view_box"`
}
