// ABOUTME: Tests for SVG and PNG wall drawings
// ABOUTME: Checks viewBox wiring, label text, cell counts, and raster sizing

package render

import (
	"bytes"
	"image/png"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markalston/ledwall-calc/backend/catalog"
	"github.com/markalston/ledwall-calc/backend/models"
	"github.com/markalston/ledwall-calc/backend/services"
)

func testPlan(t *testing.T, rows, cols int, angle float64) models.WallPlan {
	t.Helper()
	planner := services.NewPlanner(catalog.Builtin(), nil)
	return planner.Plan(models.WallConfig{
		Rows:       rows,
		Cols:       cols,
		CabinetID:  "p29-indoor-500",
		CurveAngle: angle,
	})
}

func TestParseView(t *testing.T) {
	v, err := ParseView("")
	require.NoError(t, err)
	assert.Equal(t, ViewFront, v)

	v, err = ParseView("top")
	require.NoError(t, err)
	assert.Equal(t, ViewTop, v)

	_, err = ParseView("side")
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatSVG, f)

	f, err = ParseFormat("png")
	require.NoError(t, err)
	assert.Equal(t, FormatPNG, f)

	_, err = ParseFormat("gif")
	assert.Error(t, err)
}

func TestClampWidth(t *testing.T) {
	assert.Equal(t, DefaultWidthPx, ClampWidth(0))
	assert.Equal(t, MinWidthPx, ClampWidth(10))
	assert.Equal(t, MinWidthPx, ClampWidth(-5))
	assert.Equal(t, MaxWidthPx, ClampWidth(100000))
	assert.Equal(t, 800, ClampWidth(800))
}

func TestLabels(t *testing.T) {
	flat := testPlan(t, 6, 10, 0)
	assert.Equal(t, "5.00m", WidthLabel(flat.Stats))
	assert.Equal(t, "3.00m", HeightLabel(flat.Stats))

	curved := testPlan(t, 6, 10, 5)
	assert.True(t, strings.HasSuffix(WidthLabel(curved.Stats), "(chord)"))
	assert.True(t, strings.HasPrefix(WidthLabel(curved.Stats), "~"))

	assert.Equal(t, "R = 5.74m", RadiusLabel(5737.1))
}

func TestFrontSVG_Flat(t *testing.T) {
	plan := testPlan(t, 6, 10, 0)

	svg := FrontSVG(plan)

	assert.True(t, strings.HasPrefix(svg, "<svg "))
	assert.Contains(t, svg, `viewBox="`+plan.Front.ViewBox+`"`)
	assert.Equal(t, 60, strings.Count(svg, `stroke-width="1.5"`), "one rect per cabinet")
	assert.Contains(t, svg, ">5.00m<")
	assert.Contains(t, svg, ">3.00m<")
	assert.NotContains(t, svg, "(chord)")
	assert.True(t, strings.HasSuffix(svg, "</svg>\n"))
}

func TestFrontSVG_CurvedShowsChord(t *testing.T) {
	plan := testPlan(t, 2, 8, -7.5)

	svg := FrontSVG(plan)

	assert.Contains(t, svg, "(chord)")
	assert.Equal(t, 16, strings.Count(svg, `stroke-width="1.5"`))
}

func TestTopSVG_FlatHasNoView(t *testing.T) {
	_, ok := TopSVG(testPlan(t, 6, 10, 0))
	assert.False(t, ok)
}

func TestTopSVG_Curved(t *testing.T) {
	for _, angle := range []float64{5, -5} {
		plan := testPlan(t, 3, 12, angle)

		svg, ok := TopSVG(plan)
		require.True(t, ok)

		assert.Contains(t, svg, `viewBox="`+plan.Curved.ViewBox+`"`)
		assert.Equal(t, 12, strings.Count(svg, "<g transform="), "one group per column")
		assert.Equal(t, 24, strings.Count(svg, "<circle"), "two connectors per cabinet")
		assert.Contains(t, svg, RadiusLabel(plan.Curved.RadiusMm))
		if angle > 0 {
			assert.Contains(t, svg, "(concave)")
		} else {
			assert.Contains(t, svg, "(convex)")
		}
	}
}

func TestNum(t *testing.T) {
	assert.Equal(t, "0", num(0))
	assert.Equal(t, "0", num(-0.0001))
	assert.Equal(t, "1.5", num(1.5))
	assert.Equal(t, "-750", num(-750))
	assert.Equal(t, "3.142", num(math.Pi))
}

func TestEscape(t *testing.T) {
	assert.Equal(t, "a &lt;b&gt; &amp; &quot;c&quot;", escape(`a <b> & "c"`))
}

func TestFrontPNG_Dimensions(t *testing.T) {
	plan := testPlan(t, 6, 10, 0)

	img := FrontPNG(plan, 600)

	vp := plan.Front.Viewport
	wantH := int(math.Round(vp.Height * 600 / vp.Width))
	assert.Equal(t, 600, img.Bounds().Dx())
	assert.Equal(t, wantH, img.Bounds().Dy())

	// Corners are background, the wall center is cabinet fill or grid
	assert.Equal(t, colorBackground, img.RGBAAt(0, 0))
	cx, cy := img.Bounds().Dx()/2, img.Bounds().Dy()/2
	assert.NotEqual(t, colorBackground, img.RGBAAt(cx, cy))
}

func TestFrontPNG_ClampsWidth(t *testing.T) {
	img := FrontPNG(testPlan(t, 2, 2, 0), 1)
	assert.Equal(t, MinWidthPx, img.Bounds().Dx())
}

func TestFrontPNG_TallWallFitsHeightCap(t *testing.T) {
	plan := testPlan(t, 1000, 1, 0)

	img := FrontPNG(plan, 2000)

	vp := plan.Front.Viewport
	scale := float64(MaxWidthPx) / vp.Height
	assert.Equal(t, MaxWidthPx, img.Bounds().Dy())
	assert.Equal(t, int(math.Round(vp.Width*scale)), img.Bounds().Dx())
	assert.Less(t, img.Bounds().Dx(), 2000)

	// The bottom cabinet is still inside the image
	last := plan.Front.Cells[len(plan.Front.Cells)-1]
	px := int((last.X + last.Width/2 - vp.MinX) * scale)
	py := int((last.Y + last.Height/2 - vp.MinY) * scale)
	require.Less(t, py, img.Bounds().Dy())
	assert.NotEqual(t, colorBackground, img.RGBAAt(px, py))
}

func TestTopPNG(t *testing.T) {
	_, ok := TopPNG(testPlan(t, 6, 10, 0), 400)
	assert.False(t, ok)

	img, ok := TopPNG(testPlan(t, 6, 10, 5), 400)
	require.True(t, ok)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Greater(t, img.Bounds().Dy(), 0)
}

func TestEncodePNG_Decodes(t *testing.T) {
	img := FrontPNG(testPlan(t, 4, 4, 0), 256)

	var buf bytes.Buffer
	require.NoError(t, EncodePNG(&buf, img))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}
