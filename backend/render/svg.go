// ABOUTME: SVG documents for the front elevation and the curved floor plan
// ABOUTME: Coordinates are millimetres inside the computed viewBox

package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/markalston/ledwall-calc/backend/models"
)

// FrontSVG draws the cabinet grid with width and height annotations
func FrontSVG(plan models.WallPlan) string {
	front := plan.Front
	var sb strings.Builder

	writeSVGOpen(&sb, front.Viewport, fmt.Sprintf("Front view %dx%d", plan.Config.Cols, plan.Config.Rows))

	labelOffset := front.Padding * 0.4
	fmt.Fprintf(&sb, `<text x="%s" y="%s" text-anchor="middle" fill="%s" font-family="monospace" font-size="%s">%s</text>`+"\n",
		num(front.WidthMm/2), num(-labelOffset), hex(colorLabel), num(front.LabelFontSize), escape(WidthLabel(plan.Stats)))
	fmt.Fprintf(&sb, `<text x="%s" y="%s" text-anchor="middle" fill="%s" font-family="monospace" font-size="%s" transform="rotate(-90 %s %s)">%s</text>`+"\n",
		num(-labelOffset), num(front.HeightMm/2), hex(colorLabel), num(front.LabelFontSize),
		num(-labelOffset), num(front.HeightMm/2), escape(HeightLabel(plan.Stats)))

	sb.WriteString(`<g opacity="0.9">` + "\n")
	for _, cell := range front.Cells {
		fmt.Fprintf(&sb, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s" stroke="%s" stroke-width="1.5" vector-effect="non-scaling-stroke"/>`+"\n",
			num(cell.X), num(cell.Y), num(cell.Width), num(cell.Height), hex(colorCabinet), hex(colorGrid))
	}
	sb.WriteString("</g>\n</svg>\n")

	return sb.String()
}

// TopSVG draws the curved floor plan. It returns false for flat walls.
func TopSVG(plan models.WallPlan) (string, bool) {
	curved := plan.Curved
	if curved == nil {
		return "", false
	}

	var sb strings.Builder
	orientation := "convex"
	if curved.Concave {
		orientation = "concave"
	}
	writeSVGOpen(&sb, curved.Viewport, "Top view ("+orientation+")")

	vp := curved.Viewport
	fmt.Fprintf(&sb, `<line x1="0" y1="%s" x2="0" y2="%s" stroke="%s" stroke-dasharray="20,20" stroke-width="2" vector-effect="non-scaling-stroke"/>`+"\n",
		num(vp.MinY), num(vp.MinY+vp.Height), hex(colorAxis))

	w := curved.CabinetWidthMm
	d := curved.CabinetDepthMm
	fy := faceY(curved)
	for _, p := range curved.Placements {
		fmt.Fprintf(&sb, `<g transform="translate(%s %s) rotate(%s)">`+"\n", num(p.X), num(p.Y), num(p.Rotation))
		fmt.Fprintf(&sb, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s" stroke="%s" stroke-width="%s"/>`+"\n",
			num(-w/2), num(-d/2), num(w), num(d), hex(colorCabinet), hex(colorBodyEdge), num(w*0.005))
		fmt.Fprintf(&sb, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s" stroke-linecap="round"/>`+"\n",
			num(-w/2), num(fy), num(w/2), num(fy), hex(colorFace), num(w*0.02))
		fmt.Fprintf(&sb, `<circle cx="%s" cy="0" r="%s" fill="%s"/>`+"\n", num(w/2), num(w*0.015), hex(colorConnector))
		fmt.Fprintf(&sb, `<circle cx="%s" cy="0" r="%s" fill="%s"/>`+"\n", num(-w/2), num(w*0.015), hex(colorConnector))
		sb.WriteString("</g>\n")
	}

	fmt.Fprintf(&sb, `<text x="0" y="%s" text-anchor="middle" dominant-baseline="middle" fill="%s" font-family="monospace" font-weight="bold" font-size="%s">%s</text>`+"\n",
		num(radiusLabelY(curved)), hex(colorRadius), num(w*0.15), escape(RadiusLabel(curved.RadiusMm)))
	sb.WriteString("</svg>\n")

	return sb.String(), true
}

func writeSVGOpen(sb *strings.Builder, vp models.Viewport, title string) {
	fmt.Fprintf(sb, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s" preserveAspectRatio="xMidYMid meet">`+"\n", vp.String())
	fmt.Fprintf(sb, "<title>%s</title>\n", escape(title))
	fmt.Fprintf(sb, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
		num(vp.MinX), num(vp.MinY), num(vp.Width), num(vp.Height), hex(colorBackground))
}

func num(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

var svgEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func escape(s string) string {
	return svgEscaper.Replace(s)
}
