// ABOUTME: Health command for the ledwall CLI
// ABOUTME: Checks backend connectivity and service status

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/markalston/ledwall-calc/backend/models"
	"github.com/markalston/ledwall-calc/cli/internal/client"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check backend connectivity",
	Long:  `Check connectivity to the LED wall calculator backend and verify service status.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runHealth(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

// runHealth executes the health check and returns exit code
func runHealth(ctx context.Context, w io.Writer) int {
	url := GetAPIURL()
	c := client.New(url)

	resp, err := c.Health(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatHealthJSON(url, resp))
	} else {
		fmt.Fprintln(w, formatHealthHuman(url, resp))
	}

	return 0
}

// formatHealthHuman formats health response for human readability
func formatHealthHuman(url string, resp *models.HealthResponse) string {
	advisor := "not configured"
	if resp.AdvisorConfigured {
		advisor = "configured"
	}
	return fmt.Sprintf(`Backend:         %s
Status:          %s
Cabinets:        %d (default: %s)
Processors:      %d
Pixels per port: %d
Advisor:         %s`, url, resp.Status, resp.CabinetCount, resp.DefaultCabinet,
		resp.ProcessorCount, resp.PixelsPerPort, advisor)
}

// formatHealthJSON formats health response as JSON
func formatHealthJSON(url string, resp *models.HealthResponse) string {
	output := map[string]interface{}{
		"backend":            url,
		"status":             resp.Status,
		"cabinet_count":      resp.CabinetCount,
		"processor_count":    resp.ProcessorCount,
		"default_cabinet":    resp.DefaultCabinet,
		"advisor_configured": resp.AdvisorConfigured,
		"pixels_per_port":    resp.PixelsPerPort,
	}
	data, _ := json.MarshalIndent(output, "", "  ")
	return string(data)
}
