// ABOUTME: Tests for shared wall flag handling
// ABOUTME: Verifies config file merging, validation, and the tui resume rule

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func newWallCommand(t *testing.T) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	addWallFlags(cmd)
	return cmd
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wall.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolveWallConfig_Defaults(t *testing.T) {
	cmd := newWallCommand(t)

	cfg, err := resolveWallConfig(cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Rows != 6 || cfg.Cols != 10 || cfg.CabinetID != "" || cfg.CurveAngle != 0 || cfg.Spares != 0 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestResolveWallConfig_FileWithFlagOverride(t *testing.T) {
	path := writeConfig(t, `{"rows": 5, "cols": 16, "cabinet_id": "p26-indoor-500", "curve_angle": -5, "spares": 4}`)
	cmd := newWallCommand(t)
	cmd.Flags().Set("config", path)
	cmd.Flags().Set("cols", "12")

	cfg, err := resolveWallConfig(cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Cols != 12 {
		t.Errorf("expected explicit --cols to win, got %d", cfg.Cols)
	}
	if cfg.Rows != 5 || cfg.CabinetID != "p26-indoor-500" || cfg.CurveAngle != -5 || cfg.Spares != 4 {
		t.Errorf("expected file values for unset flags, got %+v", cfg)
	}
}

func TestResolveWallConfig_Invalid(t *testing.T) {
	cmd := newWallCommand(t)
	cmd.Flags().Set("rows", "0")

	if _, err := resolveWallConfig(cmd); err == nil {
		t.Error("expected error for zero rows")
	}

	cmd = newWallCommand(t)
	cmd.Flags().Set("angle", "120")
	if _, err := resolveWallConfig(cmd); err == nil {
		t.Error("expected error for out-of-range angle")
	}
}

func TestResolveWallConfig_BadFile(t *testing.T) {
	cmd := newWallCommand(t)
	cmd.Flags().Set("config", writeConfig(t, "{not json"))

	if _, err := resolveWallConfig(cmd); err == nil {
		t.Error("expected parse error")
	}

	cmd = newWallCommand(t)
	cmd.Flags().Set("config", filepath.Join(t.TempDir(), "missing.json"))
	if _, err := resolveWallConfig(cmd); err == nil {
		t.Error("expected read error")
	}
}

func TestWallFlagsSet(t *testing.T) {
	cmd := newWallCommand(t)
	if wallFlagsSet(cmd) {
		t.Error("expected no wall flags on a fresh command")
	}

	cmd.Flags().Set("spares", "2")
	if !wallFlagsSet(cmd) {
		t.Error("expected --spares to count as a wall flag")
	}
}
