// ABOUTME: Shared drawing parameters for wall images
// ABOUTME: Colors, label text, and viewport-to-pixel sizing used by both SVG and PNG output

package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/markalston/ledwall-calc/backend/models"
)

// View selects which drawing to produce
type View string

const (
	ViewFront View = "front"
	ViewTop   View = "top"
)

// Format selects the output encoding
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

const (
	// DefaultWidthPx is the raster width when none is requested
	DefaultWidthPx = 1200
	// MinWidthPx and MaxWidthPx bound raster widths
	MinWidthPx = 64
	MaxWidthPx = 8192
)

var (
	colorBackground = color.RGBA{R: 0x0b, G: 0x11, B: 0x20, A: 0xff}
	colorCabinet    = color.RGBA{R: 0x1e, G: 0x29, B: 0x3b, A: 0xff}
	colorGrid       = color.RGBA{R: 0x38, G: 0xbd, B: 0xf8, A: 0xff}
	colorBodyEdge   = color.RGBA{R: 0x47, G: 0x55, B: 0x69, A: 0xff}
	colorFace       = color.RGBA{R: 0x06, G: 0xb6, B: 0xd4, A: 0xff}
	colorConnector  = color.RGBA{R: 0x64, G: 0x74, B: 0x8b, A: 0xff}
	colorAxis       = color.RGBA{R: 0x33, G: 0x41, B: 0x55, A: 0xff}
	colorLabel      = color.RGBA{R: 0xe2, G: 0xe8, B: 0xf0, A: 0xff}
	colorRadius     = color.RGBA{R: 0xfb, G: 0xbf, B: 0x24, A: 0xff}
)

// ParseView validates a view name, defaulting to front
func ParseView(s string) (View, error) {
	switch View(s) {
	case "", ViewFront:
		return ViewFront, nil
	case ViewTop:
		return ViewTop, nil
	default:
		return "", fmt.Errorf("unknown view %q (want front or top)", s)
	}
}

// ParseFormat validates a format name, defaulting to svg
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatSVG:
		return FormatSVG, nil
	case FormatPNG:
		return FormatPNG, nil
	default:
		return "", fmt.Errorf("unknown format %q (want svg or png)", s)
	}
}

// ClampWidth bounds a requested raster width; zero means DefaultWidthPx
func ClampWidth(widthPx int) int {
	switch {
	case widthPx == 0:
		return DefaultWidthPx
	case widthPx < MinWidthPx:
		return MinWidthPx
	case widthPx > MaxWidthPx:
		return MaxWidthPx
	default:
		return widthPx
	}
}

// WidthLabel is the front-view width annotation: the chord width when curved
func WidthLabel(stats models.WallStats) string {
	if stats.IsCurved() {
		return fmt.Sprintf("~%.2fm (chord)", stats.LinearWidthMm/1000)
	}
	return fmt.Sprintf("%.2fm", stats.TotalWidthMm/1000)
}

// HeightLabel is the front-view height annotation
func HeightLabel(stats models.WallStats) string {
	return fmt.Sprintf("%.2fm", stats.TotalHeightMm/1000)
}

// RadiusLabel is the top-view radius annotation
func RadiusLabel(radiusMm float64) string {
	return fmt.Sprintf("R = %.2fm", radiusMm/1000)
}

// radiusLabelY places the radius label beyond the apex of the arc
func radiusLabelY(curved *models.CurvedLayout) float64 {
	if curved.Concave {
		return curved.RadiusMm + curved.CabinetWidthMm*0.8
	}
	return curved.RadiusMm - curved.CabinetWidthMm*0.8
}

// faceY is the local y of the screen face inside a rotated cabinet body
func faceY(curved *models.CurvedLayout) float64 {
	if curved.Concave {
		return -curved.CabinetDepthMm / 2
	}
	return curved.CabinetDepthMm / 2
}

// rotate turns (x, y) about the origin by deg degrees
func rotate(x, y, deg float64) (float64, float64) {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return x*cos - y*sin, x*sin + y*cos
}
