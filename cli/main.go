// ABOUTME: Entry point for the ledwall CLI
// ABOUTME: Command-line tool for planning LED video walls and CI/CD checks

package main

import (
	"fmt"
	"os"

	"github.com/markalston/ledwall-calc/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
