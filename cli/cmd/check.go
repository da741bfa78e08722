// ABOUTME: Check command for the ledwall CLI
// ABOUTME: Validates processor compatibility and headroom for CI/CD pipelines

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

var (
	checkProcessors []string
	minHeadroom     float64
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check processor compatibility",
	Long: `Check the wall against video processors and exit non-zero if any fail.

Without --processor every catalog processor is checked. --min-headroom
additionally fails compatible processors whose spare pixel capacity is
below the given percentage.

Exit codes:
  0 - All checks passed
  1 - One or more processors incompatible or below headroom
  2 - Error (invalid input, unknown processor, unreadable catalog)`,
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
		exitCode := runCheck(os.Stdout, planner, cfg, checkProcessors, minHeadroom)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	addWallFlags(checkCmd)
	checkCmd.Flags().StringSliceVar(&checkProcessors, "processor", nil, "Processor id to check (repeatable; default all)")
	checkCmd.Flags().Float64Var(&minHeadroom, "min-headroom", 0, "Minimum spare pixel capacity percentage")
}

// checkResult represents the result of checking one processor
type checkResult struct {
	verdict  models.CompatibilityVerdict
	headroom float64
	passed   bool
}

// runCheck executes the compatibility checks and returns exit code
func runCheck(w io.Writer, planner *services.Planner, cfg models.WallConfig, processorIDs []string, headroom float64) int {
	if err := validateHeadroom(headroom); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	cat := planner.Catalog()
	procs := cat.Processors()
	if len(processorIDs) > 0 {
		procs = procs[:0:0]
		for _, id := range processorIDs {
			proc, ok := cat.LookupProcessor(id)
			if !ok {
				fmt.Fprintf(w, "Error: unknown processor %q\n", id)
				return 2
			}
			procs = append(procs, proc)
		}
	}

	_, stats := planner.Stats(cfg)
	results := performChecks(services.EvaluateAll(stats, procs), headroom)

	if IsJSONOutput() {
		fmt.Fprintln(w, formatCheckJSON(results, headroom))
	} else {
		fmt.Fprintln(w, formatCheckHuman(results, headroom))
	}

	_, failed := countResults(results)
	if failed > 0 {
		return 1
	}
	return 0
}

// validateHeadroom ensures the headroom percentage is valid
func validateHeadroom(headroom float64) error {
	if headroom < 0 || headroom > 100 {
		return fmt.Errorf("--min-headroom must be between 0 and 100")
	}
	return nil
}

// performChecks applies the headroom threshold to each verdict
func performChecks(verdicts []models.CompatibilityVerdict, headroom float64) []checkResult {
	results := make([]checkResult, 0, len(verdicts))
	for _, v := range verdicts {
		r := checkResult{verdict: v}
		if v.Compatible {
			r.headroom = 100 - v.UsagePercent
			r.passed = r.headroom >= headroom
		}
		results = append(results, r)
	}
	return results
}

// countResults returns the count of passed and failed checks
func countResults(results []checkResult) (passed, failed int) {
	for _, r := range results {
		if r.passed {
			passed++
		} else {
			failed++
		}
	}
	return
}

// formatCheckHuman formats check results for human readability
func formatCheckHuman(results []checkResult, headroom float64) string {
	var output string

	for _, r := range results {
		v := r.verdict
		switch {
		case !v.Compatible:
			output += fmt.Sprintf("✗ %s %s: %s\n", v.Brand, v.ProcessorName, v.Reason)
		case !r.passed:
			output += fmt.Sprintf("✗ %s %s: %.1f%% used, headroom %.1f%% (minimum: %.1f%%)\n",
				v.Brand, v.ProcessorName, v.UsagePercent, r.headroom, headroom)
		default:
			output += fmt.Sprintf("✓ %s %s: %.1f%% used\n", v.Brand, v.ProcessorName, v.UsagePercent)
		}
	}

	passed, failed := countResults(results)
	if failed > 0 {
		output += fmt.Sprintf("\nFAILED: %d of %d processor(s) failed", failed, len(results))
	} else {
		output += fmt.Sprintf("\nPASSED: All %d processor(s) compatible", passed)
	}

	return output
}

// formatCheckJSON formats check results as JSON
func formatCheckJSON(results []checkResult, headroom float64) string {
	_, failed := countResults(results)

	checks := make([]map[string]interface{}, len(results))
	for i, r := range results {
		check := map[string]interface{}{
			"processor_id": r.verdict.ProcessorID,
			"name":         r.verdict.ProcessorName,
			"compatible":   r.verdict.Compatible,
			"passed":       r.passed,
		}
		if r.verdict.Compatible {
			check["usage_percent"] = r.verdict.UsagePercent
			check["headroom_percent"] = r.headroom
		} else {
			check["reason"] = r.verdict.Reason
		}
		checks[i] = check
	}

	status := "passed"
	if failed > 0 {
		status = "failed"
	}

	output := map[string]interface{}{
		"status":       status,
		"min_headroom": headroom,
		"checks":       checks,
	}

	data, _ := json.MarshalIndent(output, "", "  ")
	return string(data)
}
