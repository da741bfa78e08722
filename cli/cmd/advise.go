// ABOUTME: Advise command for the ledwall CLI
// ABOUTME: Asks the backend advisor a question about a wall configuration

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/markalston/ledwall-calc/backend/models"
	"github.com/markalston/ledwall-calc/backend/services"
	"github.com/markalston/ledwall-calc/cli/internal/client"
)

var adviseCmd = &cobra.Command{
	Use:   "advise QUESTION",
	Short: "Ask the technical advisor",
	Long: `Ask the backend's technical advisor a question about the wall.

When the advisor is unavailable the backend answers with fallback text.

Example:
  ledwall advise --cols 16 --rows 9 "What power distribution do I need?"`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		cfg, err := resolveWallConfig(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		c := client.New(GetAPIURL())
		if exitCode := runAdvise(ctx, os.Stdout, c, cfg, strings.Join(args, " ")); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(adviseCmd)
	addWallFlags(adviseCmd)
}

// runAdvise sends the question and prints the answer
func runAdvise(ctx context.Context, w io.Writer, c *client.Client, cfg models.WallConfig, question string) int {
	question = services.SanitizeQuestion(question)
	if question == "" {
		fmt.Fprintln(w, "Error: question is required")
		return 2
	}

	resp, err := c.Advice(ctx, cfg, question)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		if err := writeJSON(w, resp); err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
		return 0
	}

	fmt.Fprintln(w, resp.Advice)
	if resp.Fallback {
		fmt.Fprintln(w, "\n(advisor unavailable, showing fallback text)")
	}
	return 0
}
