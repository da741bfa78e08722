// ABOUTME: TUI command for the ledwall CLI
// ABOUTME: Opens the interactive wall configurator on the given or most recent wall

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/markalston/ledwall-calc/cli/internal/client"
	"github.com/markalston/ledwall-calc/cli/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive wall configurator",
	Long: `Open the interactive configurator.

Planning runs locally; every edit replans immediately. The advisor screen
talks to the backend at --api-url.

Without wall flags or --config the last planned wall is reopened.

Keys:
  e  edit the wall
  a  ask the advisor
  r  reopen a recent wall
  q  quit`,
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

		if err := tui.Run(planner, client.New(GetAPIURL()), cfg, !wallFlagsSet(cmd)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	addWallFlags(tuiCmd)
}

// wallFlagsSet reports whether the user described a wall on the command line
func wallFlagsSet(cmd *cobra.Command) bool {
	for _, name := range []string{"rows", "cols", "cabinet", "angle", "spares", "config"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}
