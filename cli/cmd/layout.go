// ABOUTME: Layout command for the ledwall CLI
// ABOUTME: Prints curved floor-plan placements or the flat front grid summary

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/markalston/ledwall-calc/backend/models"
	"github.com/markalston/ledwall-calc/backend/services"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Show cabinet placements",
	Long: `Compute the wall layout locally.

Curved walls print one placement per column (center in mm, rotation in
degrees) and the floor-plan viewport. Flat walls print the front grid.

Example:
  ledwall layout --cols 12 --angle -5 --json`,
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
		if exitCode := runLayout(os.Stdout, planner, cfg); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(layoutCmd)
	addWallFlags(layoutCmd)
}

func runLayout(w io.Writer, planner *services.Planner, cfg models.WallConfig) int {
	plan := planner.Plan(cfg)

	if IsJSONOutput() {
		if err := writeJSON(w, models.LayoutResponse{Front: plan.Front, Curved: plan.Curved}); err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
		return 0
	}

	if plan.Curved == nil {
		front := plan.Front
		fmt.Fprintf(w, "Flat wall: %d x %d cabinets\n", plan.Config.Cols, plan.Config.Rows)
		fmt.Fprintf(w, "Front:     %.0f x %.0f mm\n", front.WidthMm, front.HeightMm)
		fmt.Fprintf(w, "ViewBox:   %s\n", front.ViewBox)
		return 0
	}

	curved := plan.Curved
	orientation := "convex"
	if curved.Concave {
		orientation = "concave"
	}
	fmt.Fprintf(w, "Curved wall (%s)\n", orientation)
	fmt.Fprintf(w, "==================\n\n")
	fmt.Fprintf(w, "Radius:   %.1f mm\n", curved.RadiusMm)
	fmt.Fprintf(w, "Apothem:  %.1f mm\n", curved.ApothemMm)
	fmt.Fprintf(w, "ViewBox:  %s\n\n", curved.ViewBox)
	fmt.Fprintf(w, "%5s %10s %10s %9s\n", "COL", "X (mm)", "Y (mm)", "ROT (°)")
	for _, p := range curved.Placements {
		fmt.Fprintf(w, "%5d %10.1f %10.1f %9.2f\n", p.Index, p.X, p.Y, p.Rotation)
	}
	return 0
}
