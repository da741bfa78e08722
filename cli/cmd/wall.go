// ABOUTME: Shared wall configuration flags for planning commands
// ABOUTME: Merges an optional JSON config file with explicitly set flags

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/markalston/ledwall-calc/backend/models"
	"github.com/markalston/ledwall-calc/backend/services"
)

// wallFlags holds the wall flags shared by every planning command
var wallFlags struct {
	rows       int
	cols       int
	cabinet    string
	angle      float64
	spares     int
	configFile string
}

// addWallFlags registers the wall flags on cmd
func addWallFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&wallFlags.rows, "rows", 6, "Cabinet rows")
	cmd.Flags().IntVar(&wallFlags.cols, "cols", 10, "Cabinet columns")
	cmd.Flags().StringVar(&wallFlags.cabinet, "cabinet", "", "Cabinet id (default: catalog default)")
	cmd.Flags().Float64Var(&wallFlags.angle, "angle", 0, "Curve angle per cabinet in degrees (>0 concave, <0 convex)")
	cmd.Flags().IntVar(&wallFlags.spares, "spares", 0, "Spare cabinets")
	cmd.Flags().StringVar(&wallFlags.configFile, "config", "", "JSON wall config file; explicit flags override it")
}

// resolveWallConfig builds the wall config from --config and any flags
// the user set explicitly, then validates it.
func resolveWallConfig(cmd *cobra.Command) (models.WallConfig, error) {
	cfg := models.WallConfig{
		Rows:       wallFlags.rows,
		Cols:       wallFlags.cols,
		CabinetID:  wallFlags.cabinet,
		CurveAngle: wallFlags.angle,
		Spares:     wallFlags.spares,
	}

	if wallFlags.configFile != "" {
		fileCfg, err := readWallConfig(wallFlags.configFile)
		if err != nil {
			return cfg, err
		}
		flags := cmd.Flags()
		if !flags.Changed("rows") {
			cfg.Rows = fileCfg.Rows
		}
		if !flags.Changed("cols") {
			cfg.Cols = fileCfg.Cols
		}
		if !flags.Changed("cabinet") {
			cfg.CabinetID = fileCfg.CabinetID
		}
		if !flags.Changed("angle") {
			cfg.CurveAngle = fileCfg.CurveAngle
		}
		if !flags.Changed("spares") {
			cfg.Spares = fileCfg.Spares
		}
	}

	if err := services.ValidateWallConfig(cfg); err != nil {
		return cfg, fmt.Errorf("invalid wall configuration: %w", err)
	}
	return cfg, nil
}

func readWallConfig(path string) (models.WallConfig, error) {
	var cfg models.WallConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// writeJSON pretty-prints v to w
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
