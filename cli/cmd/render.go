// ABOUTME: Render command for the ledwall CLI
// ABOUTME: Exports the front elevation or curved floor plan as SVG or PNG

package cmd

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/markalston/ledwall-calc/backend/models"
	"github.com/markalston/ledwall-calc/backend/render"
	"github.com/markalston/ledwall-calc/backend/services"
)

var (
	renderView   string
	renderFormat string
	renderWidth  int
	renderOut    string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Export a wall drawing",
	Long: `Render the front elevation or the curved floor plan.

The top view is only available for curved walls.

Example:
  ledwall render --cols 12 --angle 5 --view top --format png --out wall.png`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := resolveWallConfig(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		planner, err := newPlanner()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		if exitCode := runRender(os.Stdout, os.Stderr, planner, cfg); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	addWallFlags(renderCmd)
	renderCmd.Flags().StringVar(&renderView, "view", "front", "View to draw: front or top")
	renderCmd.Flags().StringVar(&renderFormat, "format", "svg", "Output format: svg or png")
	renderCmd.Flags().IntVar(&renderWidth, "width", render.DefaultWidthPx, "PNG width in pixels")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "Output file (default: stdout)")
}

// runRender writes the image to --out, or to stdout when unset.
// Errors go to errW so they never mix with image bytes.
func runRender(stdout, errW io.Writer, planner *services.Planner, cfg models.WallConfig) int {
	view, err := render.ParseView(renderView)
	if err != nil {
		fmt.Fprintf(errW, "Error: %v\n", err)
		return 2
	}
	format, err := render.ParseFormat(renderFormat)
	if err != nil {
		fmt.Fprintf(errW, "Error: %v\n", err)
		return 2
	}

	plan := planner.Plan(cfg)
	if view == render.ViewTop && plan.Curved == nil {
		fmt.Fprintln(errW, "Error: top view requires a curved wall (set --angle)")
		return 2
	}

	data, err := renderPlan(plan, view, format, renderWidth)
	if err != nil {
		fmt.Fprintf(errW, "Error: %v\n", err)
		return 2
	}

	if renderOut == "" || renderOut == "-" {
		if _, err := stdout.Write(data); err != nil {
			fmt.Fprintf(errW, "Error: %v\n", err)
			return 2
		}
		return 0
	}

	if err := os.WriteFile(renderOut, data, 0o644); err != nil {
		fmt.Fprintf(errW, "Error: failed to write %s: %v\n", renderOut, err)
		return 2
	}
	fmt.Fprintf(errW, "Wrote %s (%d bytes)\n", renderOut, len(data))
	return 0
}

func renderPlan(plan models.WallPlan, view render.View, format render.Format, width int) ([]byte, error) {
	if format == render.FormatSVG {
		if view == render.ViewTop {
			svg, _ := render.TopSVG(plan)
			return []byte(svg), nil
		}
		return []byte(render.FrontSVG(plan)), nil
	}

	var img *image.RGBA
	if view == render.ViewTop {
		img, _ = render.TopPNG(plan, width)
	} else {
		img = render.FrontPNG(plan, width)
	}
	var buf bytes.Buffer
	if err := render.EncodePNG(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
