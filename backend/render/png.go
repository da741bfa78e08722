// ABOUTME: Raster snapshots of the front elevation and the curved floor plan
// ABOUTME: Polygons are filled with x/image/vector and labels drawn with basicfont

package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/markalston/ledwall-calc/backend/models"
)

// FrontPNG rasterises the front elevation at the given width in pixels
func FrontPNG(plan models.WallPlan, widthPx int) *image.RGBA {
	front := plan.Front
	c := newCanvas(front.Viewport, ClampWidth(widthPx))

	for _, cell := range front.Cells {
		x0, y0 := cell.X, cell.Y
		x1, y1 := cell.X+cell.Width, cell.Y+cell.Height
		corners := [][2]float64{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
		c.fillPolygon(corners, colorCabinet)
		c.strokePolygon(corners, 1.5, colorGrid)
	}

	labelOffset := front.Padding * 0.4
	c.drawLabel(WidthLabel(plan.Stats), front.WidthMm/2, -labelOffset, colorLabel)
	c.drawLabel(HeightLabel(plan.Stats), -labelOffset, front.HeightMm/2, colorLabel)

	return c.img
}

// TopPNG rasterises the curved floor plan. It returns false for flat walls.
func TopPNG(plan models.WallPlan, widthPx int) (*image.RGBA, bool) {
	curved := plan.Curved
	if curved == nil {
		return nil, false
	}

	vp := curved.Viewport
	c := newCanvas(vp, ClampWidth(widthPx))

	c.dashedVertical(0, vp.MinY, vp.MinY+vp.Height, 20, colorAxis)

	w := curved.CabinetWidthMm
	d := curved.CabinetDepthMm
	fy := faceY(curved)
	for _, p := range curved.Placements {
		local := [][2]float64{{-w / 2, -d / 2}, {w / 2, -d / 2}, {w / 2, d / 2}, {-w / 2, d / 2}}
		body := make([][2]float64, len(local))
		for i, pt := range local {
			rx, ry := rotate(pt[0], pt[1], p.Rotation)
			body[i] = [2]float64{rx + p.X, ry + p.Y}
		}
		c.fillPolygon(body, colorCabinet)
		c.strokePolygon(body, 1, colorBodyEdge)

		ax, ay := rotate(-w/2, fy, p.Rotation)
		bx, by := rotate(w/2, fy, p.Rotation)
		c.line(ax+p.X, ay+p.Y, bx+p.X, by+p.Y, math.Max(2, w*0.02*c.scale), colorFace)
	}

	c.drawLabel(RadiusLabel(curved.RadiusMm), 0, radiusLabelY(curved), colorRadius)

	return c.img, true
}

// EncodePNG writes img as PNG
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// canvas maps viewport millimetres onto an RGBA image
type canvas struct {
	img   *image.RGBA
	vp    models.Viewport
	scale float64 // pixels per mm
	ras   *vector.Rasterizer
}

func newCanvas(vp models.Viewport, widthPx int) *canvas {
	heightPx := 1
	scale := 1.0
	if vp.Width > 0 {
		scale = float64(widthPx) / vp.Width
		heightPx = int(math.Max(1, math.Round(vp.Height*scale)))
	}
	// Tall viewports are fitted to the height cap so nothing is cropped
	if heightPx > MaxWidthPx {
		heightPx = MaxWidthPx
		scale = float64(heightPx) / vp.Height
		widthPx = int(math.Max(1, math.Round(vp.Width*scale)))
	}

	img := image.NewRGBA(image.Rect(0, 0, widthPx, heightPx))
	draw.Draw(img, img.Bounds(), image.NewUniform(colorBackground), image.Point{}, draw.Src)

	return &canvas{
		img:   img,
		vp:    vp,
		scale: scale,
		ras:   vector.NewRasterizer(widthPx, heightPx),
	}
}

func (c *canvas) toPixel(x, y float64) (float32, float32) {
	return float32((x - c.vp.MinX) * c.scale), float32((y - c.vp.MinY) * c.scale)
}

func (c *canvas) fillPolygon(pts [][2]float64, col color.Color) {
	if len(pts) < 3 {
		return
	}
	b := c.img.Bounds()
	c.ras.Reset(b.Dx(), b.Dy())

	x, y := c.toPixel(pts[0][0], pts[0][1])
	c.ras.MoveTo(x, y)
	for _, pt := range pts[1:] {
		x, y = c.toPixel(pt[0], pt[1])
		c.ras.LineTo(x, y)
	}
	c.ras.ClosePath()
	c.ras.Draw(c.img, b, image.NewUniform(col), image.Point{})
}

// line draws a segment between two points in mm, widthPx pixels thick
func (c *canvas) line(x0, y0, x1, y1, widthPx float64, col color.Color) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	// Half-width normal, converted from pixels back to mm
	half := widthPx / 2 / c.scale
	nx, ny := -dy/length*half, dx/length*half
	c.fillPolygon([][2]float64{
		{x0 + nx, y0 + ny},
		{x1 + nx, y1 + ny},
		{x1 - nx, y1 - ny},
		{x0 - nx, y0 - ny},
	}, col)
}

func (c *canvas) strokePolygon(pts [][2]float64, widthPx float64, col color.Color) {
	for i := range pts {
		next := pts[(i+1)%len(pts)]
		c.line(pts[i][0], pts[i][1], next[0], next[1], widthPx, col)
	}
}

// dashedVertical draws a dashed line at x from y0 to y1 with dashPx-long dashes
func (c *canvas) dashedVertical(x, y0, y1, dashPx float64, col color.Color) {
	step := dashPx / c.scale
	if step <= 0 {
		return
	}
	for y := y0; y < y1; y += step * 2 {
		c.line(x, y, x, math.Min(y+step, y1), 1.5, col)
	}
}

// drawLabel centers text on (x, y) in mm
func (c *canvas) drawLabel(text string, x, y float64, col color.Color) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
	}
	px, py := c.toPixel(x, y)
	width := d.MeasureString(text).Ceil()
	metrics := face.Metrics()
	textHeight := (metrics.Ascent + metrics.Descent).Ceil()

	d.Dot = fixed.P(int(px)-width/2, int(py)+textHeight/2-metrics.Descent.Ceil())
	d.DrawString(text)
}
