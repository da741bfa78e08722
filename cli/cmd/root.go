// ABOUTME: Root command for the ledwall CLI
// ABOUTME: Handles global flags and configuration

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/markalston/ledwall-calc/backend/catalog"
	"github.com/markalston/ledwall-calc/backend/services"
)

var (
	apiURL        string
	jsonOutput    bool
	catalogFile   string
	pixelsPerPort int
)

const defaultAPIURL = "http://localhost:8080"

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "ledwall",
	Short: "Plan modular LED video walls",
	Long: `ledwall computes resolution, power, weight, curvature, and processor
compatibility for modular LED video walls.

Most commands run locally. advise and health talk to the backend.

Environment Variables:
  LEDWALL_API_URL  Backend API URL (default: http://localhost:8080)`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend API URL (overrides LEDWALL_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
	rootCmd.PersistentFlags().StringVar(&catalogFile, "catalog", "", "YAML catalog file replacing the builtin catalog")
	rootCmd.PersistentFlags().IntVar(&pixelsPerPort, "pixels-per-port", services.DefaultPixelsPerPort, "Pixel budget of one processor output port")
}

// GetAPIURL returns the API URL from flag, env, or default (in priority order)
func GetAPIURL() string {
	if apiURL != "" {
		return apiURL
	}
	if envURL := os.Getenv("LEDWALL_API_URL"); envURL != "" {
		return envURL
	}
	return defaultAPIURL
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// loadCatalog returns the --catalog file or the builtin catalog
func loadCatalog() (*catalog.Catalog, error) {
	if catalogFile == "" {
		return catalog.Builtin(), nil
	}
	return catalog.LoadFile(catalogFile)
}

// newPlanner builds a local planner from the global flags
func newPlanner() (*services.Planner, error) {
	cat, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	return services.NewPlanner(cat, services.NewMetricsCalculator(pixelsPerPort)), nil
}
