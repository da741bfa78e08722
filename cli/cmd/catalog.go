// ABOUTME: Catalog command for the ledwall CLI
// ABOUTME: Lists catalog cabinets and processors

package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/markalston/ledwall-calc/backend/catalog"
)

var catalogCmd = &cobra.Command{
	Use:       "catalog [cabinets|processors]",
	Short:     "List catalog entries",
	Long:      `List the cabinets and processors of the builtin catalog, or of --catalog when set.`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"cabinets", "processors"},
	Run: func(cmd *cobra.Command, args []string) {
		cat, err := loadCatalog()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		which := ""
		if len(args) == 1 {
			which = args[0]
		}
		if exitCode := runCatalog(os.Stdout, cat, which); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

// runCatalog lists cabinets, processors, or both when which is empty
func runCatalog(w io.Writer, cat *catalog.Catalog, which string) int {
	showCabinets := which == "" || which == "cabinets"
	showProcessors := which == "" || which == "processors"
	if !showCabinets && !showProcessors {
		fmt.Fprintf(w, "Error: unknown catalog section %q\n", which)
		return 2
	}

	if IsJSONOutput() {
		output := map[string]interface{}{}
		if showCabinets {
			output["cabinets"] = cat.Cabinets()
			output["default_cabinet"] = cat.DefaultCabinet().ID
		}
		if showProcessors {
			output["processors"] = cat.Processors()
		}
		if err := writeJSON(w, output); err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
		return 0
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if showCabinets {
		defaultID := cat.DefaultCabinet().ID
		fmt.Fprintln(tw, "ID\tCABINET\tPIXELS\tWEIGHT\tMAX POWER\t")
		for _, cab := range cat.Cabinets() {
			id := cab.ID
			if id == defaultID {
				id += " *"
			}
			fmt.Fprintf(tw, "%s\t%s %s\t%dx%d\t%.1f kg\t%.0f W\t\n",
				id, cab.Brand, cab.Label(), cab.PixelsW, cab.PixelsH, cab.WeightKg, cab.MaxPowerW)
		}
	}
	if showCabinets && showProcessors {
		fmt.Fprintln(tw, "\t\t\t\t\t")
	}
	if showProcessors {
		fmt.Fprintln(tw, "ID\tPROCESSOR\tMAX PIXELS\tMAX WIDTH\tMAX HEIGHT\t")
		for _, proc := range cat.Processors() {
			fmt.Fprintf(tw, "%s\t%s %s\t%s\t%d\t%d\t\n",
				proc.ID, proc.Brand, proc.Name, humanize.Comma(int64(proc.MaxPixels)), proc.MaxWidth, proc.MaxHeight)
		}
	}
	if err := tw.Flush(); err != nil {
		return 2
	}
	return 0
}
