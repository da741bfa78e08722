// ABOUTME: Stats command for the ledwall CLI
// ABOUTME: Prints resolution, physical size, power, weight, and curvature of a wall

package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/markalston/ledwall-calc/backend/models"
	"github.com/markalston/ledwall-calc/backend/services"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show wall statistics",
	Long: `Compute wall statistics locally: resolution, physical size, power, weight,
curve radius, and estimated processor ports.

Example:
  ledwall stats --rows 6 --cols 10 --cabinet p29-indoor-500 --angle 5`,
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
		if exitCode := runStats(os.Stdout, planner, cfg); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	addWallFlags(statsCmd)
}

// runStats prints the stats for cfg and returns exit code
func runStats(w io.Writer, planner *services.Planner, cfg models.WallConfig) int {
	cab, stats := planner.Stats(cfg)

	if IsJSONOutput() {
		if err := writeJSON(w, models.StatsResponse{Cabinet: cab, Stats: stats}); err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
		return 0
	}

	fmt.Fprintln(w, formatStatsHuman(cab, stats))
	return 0
}

// formatStatsHuman formats wall stats for human readability
func formatStatsHuman(cab models.Cabinet, stats models.WallStats) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Cabinet:     %s %s\n", cab.Brand, cab.Label())
	fmt.Fprintf(&sb, "Resolution:  %d x %d px (%s px)\n",
		stats.TotalPixelsW, stats.TotalPixelsH, humanize.Comma(int64(stats.TotalPixels)))
	fmt.Fprintf(&sb, "Aspect:      %.3f:1\n", stats.AspectRatio)
	if stats.IsCurved() {
		fmt.Fprintf(&sb, "Size:        %.2f m arc (%.2f m chord) x %.2f m\n",
			stats.TotalWidthMm/1000, stats.LinearWidthMm/1000, stats.TotalHeightMm/1000)
	} else {
		fmt.Fprintf(&sb, "Size:        %.2f m x %.2f m\n", stats.TotalWidthMm/1000, stats.TotalHeightMm/1000)
	}
	fmt.Fprintf(&sb, "Cabinets:    %d active + %d spare = %d\n",
		stats.ActiveCabinets, stats.SpareCabinets(), stats.TotalCabinets)
	fmt.Fprintf(&sb, "Weight:      %s kg\n", humanize.CommafWithDigits(stats.TotalWeightKg, 1))
	fmt.Fprintf(&sb, "Power:       %s W max, %s W avg\n",
		humanize.CommafWithDigits(stats.TotalMaxPowerW, 0), humanize.CommafWithDigits(stats.TotalAvgPowerW, 0))
	fmt.Fprintf(&sb, "Ports:       %d (estimated)\n", stats.EstimatedPorts)

	fmt.Fprintf(&sb, "Curve:       %s", stats.CurveType())
	if stats.IsCurved() {
		fmt.Fprintf(&sb, ", R = %.2f m, total %.1f°", *stats.CurveRadiusMm/1000, stats.TotalCurveAngle)
	}

	return sb.String()
}
